package zir

// Extra records referenced by instruction payloads. Each struct mirrors
// the fixed prefix of its payload; trailing variable-length data is
// documented per record and read by chaining from the end offset
// ExtraData returns.
type (
	// Block trails with BodyLen instruction indices. Used by block,
	// block_comptime, block_inline, suspend_block, loop, c_import,
	// typeof_builtin, and through bool_br payloads.
	Block struct {
		BodyLen uint32
	}

	// CondBr trails with ThenBodyLen then ElseBodyLen indices.
	CondBr struct {
		Condition   Ref
		ThenBodyLen uint32
		ElseBodyLen uint32
	}

	// Try trails with BodyLen indices.
	Try struct {
		Operand Ref
		BodyLen uint32
	}

	// Bin is a two-operand payload.
	Bin struct {
		Lhs Ref
		Rhs Ref
	}

	// Call trails with ArgsLen end offsets followed by the argument
	// bodies. End offsets are relative to the start of the offsets
	// table; argument i spans [end[i-1], end[i]) with end[-1] = ArgsLen.
	Call struct {
		Flags  CallFlags
		Callee Ref
	}

	// FieldCall is Call with the callee named through a field access.
	// Same trailing layout as Call.
	FieldCall struct {
		Flags     CallFlags
		ObjPtr    Ref
		FieldName NullTerminatedString
	}

	// DeferErrCodePayload is the payload of defer_err_code: the body
	// location plus the error code binding.
	DeferErrCodePayload struct {
		Index uint32
		Len   uint32
	}

	// SwitchBlock trails with: multi cases count (if HasMultiCases),
	// else prong (if HasElse), scalar prongs, then multi prongs. Every
	// prong is a ProngInfo word followed by its body; scalar prongs are
	// preceded by one item Ref, multi prongs by items/ranges counts and
	// their Refs.
	SwitchBlock struct {
		Operand Ref
		Bits    SwitchBits
	}

	// StructInitAnon trails with FieldsLen pairs of
	// (field name, init Ref) words.
	StructInitAnon struct {
		FieldsLen uint32
	}

	// Reify is the payload of the reify extended instruction.
	Reify struct {
		Node    NodeOffset
		Operand Ref
		SrcLine uint32
	}

	// CallFlags is a packed word: the argument count plus the call
	// modifier bits.
	CallFlags uint32

	// SwitchBits is a packed word of switch shape flags and the scalar
	// prong count.
	SwitchBits uint32

	// ProngInfo is a packed word describing one switch prong: body
	// length, capture kind and inline-ness.
	ProngInfo uint32
)

const (
	callFlagsArgsLenBits  = 28
	callFlagsArgsLenMask  = 1<<callFlagsArgsLenBits - 1
	callFlagsModifierBits = 3

	CallFlagPopErrorReturnTrace CallFlags = 1 << 31
)

func (f CallFlags) ArgsLen() uint32 { return uint32(f) & callFlagsArgsLenMask }

func (f CallFlags) Modifier() uint8 {
	return uint8(f>>callFlagsArgsLenBits) & (1<<callFlagsModifierBits - 1)
}

func (f CallFlags) PopErrorReturnTrace() bool { return f&CallFlagPopErrorReturnTrace != 0 }

// MakeCallFlags packs the components; producers and tests only.
func MakeCallFlags(argsLen uint32, modifier uint8, popErrTrace bool) CallFlags {
	f := CallFlags(argsLen&callFlagsArgsLenMask) |
		CallFlags(modifier&(1<<callFlagsModifierBits-1))<<callFlagsArgsLenBits

	if popErrTrace {
		f |= CallFlagPopErrorReturnTrace
	}

	return f
}

const (
	switchBitsHasMultiCases SwitchBits = 1 << iota
	switchBitsHasElse
	switchBitsAnyHasTagCapture

	switchBitsScalarShift = 4
)

func (b SwitchBits) HasMultiCases() bool    { return b&switchBitsHasMultiCases != 0 }
func (b SwitchBits) HasElse() bool          { return b&switchBitsHasElse != 0 }
func (b SwitchBits) AnyHasTagCapture() bool { return b&switchBitsAnyHasTagCapture != 0 }
func (b SwitchBits) ScalarCasesLen() uint32 { return uint32(b) >> switchBitsScalarShift }

func MakeSwitchBits(scalarCases uint32, multi, hasElse bool) SwitchBits {
	b := SwitchBits(scalarCases << switchBitsScalarShift)

	if multi {
		b |= switchBitsHasMultiCases
	}

	if hasElse {
		b |= switchBitsHasElse
	}

	return b
}

const (
	prongBodyLenBits = 28
	prongBodyLenMask = 1<<prongBodyLenBits - 1

	prongCaptureShift = prongBodyLenBits

	prongIsInline      ProngInfo = 1 << 30
	prongHasTagCapture ProngInfo = 1 << 31
)

// ProngCapture is the by-value/by-ref disposition of a prong capture.
type ProngCapture uint8

const (
	ProngCaptureNone ProngCapture = iota
	ProngCaptureByVal
	ProngCaptureByRef
)

func (p ProngInfo) BodyLen() uint32 { return uint32(p) & prongBodyLenMask }

func (p ProngInfo) Capture() ProngCapture {
	return ProngCapture(p>>prongCaptureShift) & 3
}

func (p ProngInfo) IsInline() bool      { return p&prongIsInline != 0 }
func (p ProngInfo) HasTagCapture() bool { return p&prongHasTagCapture != 0 }

func MakeProngInfo(bodyLen uint32, capture ProngCapture, inline bool) ProngInfo {
	p := ProngInfo(bodyLen&prongBodyLenMask) | ProngInfo(capture)<<prongCaptureShift

	if inline {
		p |= prongIsInline
	}

	return p
}
