package zir

import "fmt"

type (
	// DeclID is the 5-bit declaration discriminant. Every semantic
	// question about a declaration (name, linkage, which bodies are
	// present) is a total function over these 29 variants; there is no
	// separate field to go stale.
	DeclID uint8

	// DeclKind is the source-level kind of a declaration.
	DeclKind uint8

	// Linkage of a declaration.
	Linkage uint8

	// Declaration is the decoded form of a declaration instruction.
	// Body slices alias the container's extra array.
	Declaration struct {
		SrcHash [4]uint32

		SrcLine   uint32
		SrcColumn uint32
		ID        DeclID

		Name    NullTerminatedString
		LibName NullTerminatedString

		TypeBody        []Index
		AlignBody       []Index
		LinksectionBody []Index
		AddrspaceBody   []Index
		ValueBody       []Index
	}

	// Capture is one value flowing into a nested type declaration's
	// closure: a 3-bit tag plus a 29-bit payload.
	Capture uint32

	CaptureTag uint8
)

const (
	DeclUnnamedTest DeclID = iota
	DeclTest
	DeclDecltest
	DeclComptime

	DeclConst
	DeclConstTyped
	DeclConstSpecial
	DeclConstTypedSpecial
	DeclPubConst
	DeclPubConstTyped
	DeclPubConstSpecial
	DeclPubConstTypedSpecial

	DeclVar
	DeclVarTyped
	DeclVarSpecial
	DeclVarTypedSpecial
	DeclPubVar
	DeclPubVarTyped
	DeclPubVarSpecial
	DeclPubVarTypedSpecial

	DeclVarThreadlocal
	DeclVarTypedThreadlocal
	DeclPubVarThreadlocal
	DeclPubVarTypedThreadlocal

	DeclExternConst
	DeclPubExternConst
	DeclExternVar
	DeclPubExternVar
	DeclExternVarThreadlocal

	numDeclIDs
)

const (
	KindUnnamedTest DeclKind = iota
	KindTest
	KindDecltest
	KindComptime
	KindConst
	KindVar
)

const (
	LinkageNormal Linkage = iota
	LinkageExtern
)

var declIDNames = [numDeclIDs]string{
	DeclUnnamedTest:            "unnamed_test",
	DeclTest:                   "test",
	DeclDecltest:               "decltest",
	DeclComptime:               "comptime",
	DeclConst:                  "const",
	DeclConstTyped:             "const_typed",
	DeclConstSpecial:           "const_special",
	DeclConstTypedSpecial:      "const_typed_special",
	DeclPubConst:               "pub_const",
	DeclPubConstTyped:          "pub_const_typed",
	DeclPubConstSpecial:        "pub_const_special",
	DeclPubConstTypedSpecial:   "pub_const_typed_special",
	DeclVar:                    "var",
	DeclVarTyped:               "var_typed",
	DeclVarSpecial:             "var_special",
	DeclVarTypedSpecial:        "var_typed_special",
	DeclPubVar:                 "pub_var",
	DeclPubVarTyped:            "pub_var_typed",
	DeclPubVarSpecial:          "pub_var_special",
	DeclPubVarTypedSpecial:     "pub_var_typed_special",
	DeclVarThreadlocal:         "var_threadlocal",
	DeclVarTypedThreadlocal:    "var_typed_threadlocal",
	DeclPubVarThreadlocal:      "pub_var_threadlocal",
	DeclPubVarTypedThreadlocal: "pub_var_typed_threadlocal",
	DeclExternConst:            "extern_const",
	DeclPubExternConst:         "pub_extern_const",
	DeclExternVar:              "extern_var",
	DeclPubExternVar:           "pub_extern_var",
	DeclExternVarThreadlocal:   "extern_var_threadlocal",
}

func (id DeclID) String() string {
	if id >= numDeclIDs {
		return fmt.Sprintf("DeclID(%d)", uint8(id))
	}

	return declIDNames[id]
}

func (id DeclID) Kind() DeclKind {
	switch id {
	case DeclUnnamedTest:
		return KindUnnamedTest
	case DeclTest:
		return KindTest
	case DeclDecltest:
		return KindDecltest
	case DeclComptime:
		return KindComptime
	case DeclConst, DeclConstTyped, DeclConstSpecial, DeclConstTypedSpecial,
		DeclPubConst, DeclPubConstTyped, DeclPubConstSpecial, DeclPubConstTypedSpecial,
		DeclExternConst, DeclPubExternConst:
		return KindConst
	default:
		return KindVar
	}
}

func (id DeclID) HasName() bool {
	switch id {
	case DeclUnnamedTest, DeclComptime:
		return false
	default:
		return true
	}
}

func (id DeclID) HasLibName() bool {
	switch id {
	case DeclExternConst, DeclPubExternConst, DeclExternVar, DeclPubExternVar, DeclExternVarThreadlocal:
		return true
	default:
		return false
	}
}

func (id DeclID) HasTypeBody() bool {
	switch id {
	case DeclConstTyped, DeclConstTypedSpecial, DeclPubConstTyped, DeclPubConstTypedSpecial,
		DeclVarTyped, DeclVarTypedSpecial, DeclPubVarTyped, DeclPubVarTypedSpecial,
		DeclVarTypedThreadlocal, DeclPubVarTypedThreadlocal,
		DeclExternConst, DeclPubExternConst, DeclExternVar, DeclPubExternVar, DeclExternVarThreadlocal:
		return true
	default:
		return false
	}
}

func (id DeclID) HasSpecialBodies() bool {
	switch id {
	case DeclConstSpecial, DeclConstTypedSpecial, DeclPubConstSpecial, DeclPubConstTypedSpecial,
		DeclVarSpecial, DeclVarTypedSpecial, DeclPubVarSpecial, DeclPubVarTypedSpecial:
		return true
	default:
		return false
	}
}

func (id DeclID) HasValueBody() bool {
	return !id.HasLibName()
}

func (id DeclID) IsPub() bool {
	switch id {
	case DeclPubConst, DeclPubConstTyped, DeclPubConstSpecial, DeclPubConstTypedSpecial,
		DeclPubVar, DeclPubVarTyped, DeclPubVarSpecial, DeclPubVarTypedSpecial,
		DeclPubVarThreadlocal, DeclPubVarTypedThreadlocal,
		DeclPubExternConst, DeclPubExternVar:
		return true
	default:
		return false
	}
}

func (id DeclID) IsThreadlocal() bool {
	switch id {
	case DeclVarThreadlocal, DeclVarTypedThreadlocal,
		DeclPubVarThreadlocal, DeclPubVarTypedThreadlocal,
		DeclExternVarThreadlocal:
		return true
	default:
		return false
	}
}

func (id DeclID) Linkage() Linkage {
	if id.HasLibName() {
		return LinkageExtern
	}

	return LinkageNormal
}

// declPayload is the fixed prefix of a declaration payload. The two
// flags words concatenate into the packed 64-bit flags value.
type declPayload struct {
	SrcHash0 uint32
	SrcHash1 uint32
	SrcHash2 uint32
	SrcHash3 uint32
	Flags0   uint32
	Flags1   uint32
}

// Packed declaration flags bit ranges.
const (
	declSrcLineBits   = 30
	declSrcColumnBits = 29

	declSrcColumnShift = declSrcLineBits
	declIDShift        = declSrcLineBits + declSrcColumnBits
)

// MakeDeclFlags packs line, column and id into the two flags words.
func MakeDeclFlags(srcLine, srcColumn uint32, id DeclID) (flags0, flags1 uint32) {
	f := uint64(srcLine&(1<<declSrcLineBits-1)) |
		uint64(srcColumn&(1<<declSrcColumnBits-1))<<declSrcColumnShift |
		uint64(id)<<declIDShift

	return uint32(f), uint32(f >> 32)
}

// GetDeclaration decodes the declaration at inst, which must carry the
// declaration tag. Trailing data is read in the fixed order: name,
// lib name, gated body length words, then the bodies themselves.
func (c *Code) GetDeclaration(inst Index) Declaration {
	in := c.Get(inst)
	if in.Tag != TagDeclaration {
		panicf("GetDeclaration on %v instruction %d", in.Tag, inst)
	}

	pl := in.PlNode()

	rec, i := ExtraData[declPayload](c, pl.Payload)

	flags := uint64(rec.Flags0) | uint64(rec.Flags1)<<32

	d := Declaration{
		SrcHash:   [4]uint32{rec.SrcHash0, rec.SrcHash1, rec.SrcHash2, rec.SrcHash3},
		SrcLine:   uint32(flags & (1<<declSrcLineBits - 1)),
		SrcColumn: uint32(flags >> declSrcColumnShift & (1<<declSrcColumnBits - 1)),
		ID:        DeclID(flags >> declIDShift),
	}

	if d.ID.HasName() {
		d.Name = NullTerminatedString(c.Extra[i])
		i++
	}

	if d.ID.HasLibName() {
		d.LibName = NullTerminatedString(c.Extra[i])
		i++
	}

	var typeLen, alignLen, sectionLen, addrspaceLen, valueLen uint32

	if d.ID.HasTypeBody() {
		typeLen = c.Extra[i]
		i++
	}

	if d.ID.HasSpecialBodies() {
		alignLen, sectionLen, addrspaceLen = c.Extra[i], c.Extra[i+1], c.Extra[i+2]
		i += 3
	}

	if d.ID.HasValueBody() {
		valueLen = c.Extra[i]
		i++
	}

	d.TypeBody = c.BodySlice(i, typeLen)
	i += typeLen

	d.AlignBody = c.BodySlice(i, alignLen)
	i += alignLen

	d.LinksectionBody = c.BodySlice(i, sectionLen)
	i += sectionLen

	d.AddrspaceBody = c.BodySlice(i, addrspaceLen)
	i += addrspaceLen

	d.ValueBody = c.BodySlice(i, valueLen)

	return d
}

const (
	CaptureNested CaptureTag = iota
	CaptureInstruction
	CaptureInstructionLoad
	CaptureDeclVal
	CaptureDeclRef
)

const (
	capturePayloadBits = 29
	capturePayloadMask = 1<<capturePayloadBits - 1
)

func MakeCapture(tag CaptureTag, payload uint32) Capture {
	return Capture(tag)<<capturePayloadBits | Capture(payload&capturePayloadMask)
}

func (cp Capture) Tag() CaptureTag {
	return CaptureTag(cp >> capturePayloadBits)
}

// NestedIndex is the position in the enclosing container's capture
// list. The relationship is hierarchical, never cyclic.
func (cp Capture) NestedIndex() uint32 {
	if cp.Tag() != CaptureNested {
		panicf("NestedIndex on %d capture", cp.Tag())
	}

	return uint32(cp) & capturePayloadMask
}

func (cp Capture) Inst() Index {
	if t := cp.Tag(); t != CaptureInstruction && t != CaptureInstructionLoad {
		panicf("Inst on %d capture", t)
	}

	return Index(uint32(cp) & capturePayloadMask)
}

func (cp Capture) DeclName() NullTerminatedString {
	if t := cp.Tag(); t != CaptureDeclVal && t != CaptureDeclRef {
		panicf("DeclName on %d capture", t)
	}

	return NullTerminatedString(uint32(cp) & capturePayloadMask)
}
