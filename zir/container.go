package zir

import "unsafe"

// Container (struct/enum/union/opaque) instructions are extended
// instructions; the Small word of the instruction gates which length
// words are present in the payload trailing data.
//
// Length words come in a fixed order: captures, fields, decls for
// struct/enum/union; decls before captures for opaque. The asymmetry is
// inherited from the producer format and must not be normalized.
type (
	StructDeclSmall uint16
	EnumDeclSmall   uint16
	UnionDeclSmall  uint16
	OpaqueDeclSmall uint16

	// NameStrategy tells semantic analysis how to name the type.
	NameStrategy uint8

	// ContainerLayout is the memory layout of a struct or union.
	ContainerLayout uint8

	// StructDecl is the fixed payload prefix of a struct_decl.
	// Trailing: gated length words, captures (values then names), decl
	// indices, the optional backing integer type (a length word, then a
	// single Ref when the length is zero or that many body indices),
	// per-field flag bags (4 bits per field, 8 fields per word), field
	// headers, then all field bodies merged back to back.
	StructDecl struct {
		FieldsHash0 uint32
		FieldsHash1 uint32
		FieldsHash2 uint32
		FieldsHash3 uint32
		SrcLine     uint32
		SrcNode     NodeOffset
	}

	// EnumDecl is the fixed payload prefix of an enum_decl. Trailing:
	// the optional tag type Ref, gated length words, captures, decl
	// indices, the value computation body, per-field has-value bags
	// (1 bit per field), then field names with optional value Refs.
	EnumDecl struct {
		SrcLine uint32
		SrcNode NodeOffset
	}

	// UnionDecl trails like EnumDecl, with 4-bit per-field bags gating
	// inline type/align/tag-value Refs per field.
	UnionDecl struct {
		SrcLine uint32
		SrcNode NodeOffset
	}

	// OpaqueDecl trails with gated length words (decls first), captures
	// and decl indices.
	OpaqueDecl struct {
		SrcLine uint32
		SrcNode NodeOffset
	}

	StructDeclInfo struct {
		Small StructDeclSmall

		CapturesLen uint32
		FieldsLen   uint32
		DeclsLen    uint32

		Captures     []Capture
		CaptureNames []NullTerminatedString
		Decls        []Index

		BackingIntRef  Ref
		BackingIntBody []Index

		// FieldsAt is the extra offset of the per-field flag bags.
		FieldsAt uint32
	}

	EnumDeclInfo struct {
		Small EnumDeclSmall

		TagType Ref

		CapturesLen uint32
		FieldsLen   uint32
		DeclsLen    uint32

		Captures     []Capture
		CaptureNames []NullTerminatedString
		Decls        []Index

		Body []Index

		FieldsAt uint32
	}

	UnionDeclInfo struct {
		Small UnionDeclSmall

		TagType Ref

		CapturesLen uint32
		FieldsLen   uint32
		DeclsLen    uint32

		Captures     []Capture
		CaptureNames []NullTerminatedString
		Decls        []Index

		Body []Index

		FieldsAt uint32
	}

	OpaqueDeclInfo struct {
		Small OpaqueDeclSmall

		CapturesLen uint32
		DeclsLen    uint32

		Captures     []Capture
		CaptureNames []NullTerminatedString
		Decls        []Index
	}

	// DeclIterator walks the declaration instructions nested in a
	// container, skipping capture and field payloads entirely.
	DeclIterator struct {
		decls []Index
		i     int
	}
)

const (
	NameAnon NameStrategy = iota
	NameParent
	NameFunc
	NameDbgSuffix
)

const (
	LayoutAuto ContainerLayout = iota
	LayoutExtern
	LayoutPacked
)

const (
	StructSmallHasCapturesLen StructDeclSmall = 1 << iota
	StructSmallHasFieldsLen
	StructSmallHasDeclsLen
	StructSmallHasBackingInt
	StructSmallKnownNonOpaque
	StructSmallKnownComptimeOnly

	structSmallNameStrategyShift = 6
	structSmallLayoutShift       = 8

	StructSmallAnyDefaultInits   StructDeclSmall = 1 << 10
	StructSmallAnyComptimeFields StructDeclSmall = 1 << 11
	StructSmallAnyAlignedFields  StructDeclSmall = 1 << 12
)

func (s StructDeclSmall) HasCapturesLen() bool { return s&StructSmallHasCapturesLen != 0 }
func (s StructDeclSmall) HasFieldsLen() bool   { return s&StructSmallHasFieldsLen != 0 }
func (s StructDeclSmall) HasDeclsLen() bool    { return s&StructSmallHasDeclsLen != 0 }
func (s StructDeclSmall) HasBackingInt() bool  { return s&StructSmallHasBackingInt != 0 }

func (s StructDeclSmall) NameStrategy() NameStrategy {
	return NameStrategy(s>>structSmallNameStrategyShift) & 3
}

func (s StructDeclSmall) Layout() ContainerLayout {
	return ContainerLayout(s>>structSmallLayoutShift) & 3
}

const (
	EnumSmallHasTagType EnumDeclSmall = 1 << iota
	EnumSmallHasCapturesLen
	EnumSmallHasBodyLen
	EnumSmallHasFieldsLen
	EnumSmallHasDeclsLen

	enumSmallNameStrategyShift = 5

	EnumSmallNonexhaustive EnumDeclSmall = 1 << 7
)

func (s EnumDeclSmall) HasTagType() bool     { return s&EnumSmallHasTagType != 0 }
func (s EnumDeclSmall) HasCapturesLen() bool { return s&EnumSmallHasCapturesLen != 0 }
func (s EnumDeclSmall) HasBodyLen() bool     { return s&EnumSmallHasBodyLen != 0 }
func (s EnumDeclSmall) HasFieldsLen() bool   { return s&EnumSmallHasFieldsLen != 0 }
func (s EnumDeclSmall) HasDeclsLen() bool    { return s&EnumSmallHasDeclsLen != 0 }
func (s EnumDeclSmall) Nonexhaustive() bool  { return s&EnumSmallNonexhaustive != 0 }

func (s EnumDeclSmall) NameStrategy() NameStrategy {
	return NameStrategy(s>>enumSmallNameStrategyShift) & 3
}

const (
	UnionSmallHasTagType UnionDeclSmall = 1 << iota
	UnionSmallHasCapturesLen
	UnionSmallHasBodyLen
	UnionSmallHasFieldsLen
	UnionSmallHasDeclsLen

	unionSmallNameStrategyShift = 5
	unionSmallLayoutShift       = 7

	UnionSmallAutoEnumTag      UnionDeclSmall = 1 << 9
	UnionSmallAnyAlignedFields UnionDeclSmall = 1 << 10
)

func (s UnionDeclSmall) HasTagType() bool     { return s&UnionSmallHasTagType != 0 }
func (s UnionDeclSmall) HasCapturesLen() bool { return s&UnionSmallHasCapturesLen != 0 }
func (s UnionDeclSmall) HasBodyLen() bool     { return s&UnionSmallHasBodyLen != 0 }
func (s UnionDeclSmall) HasFieldsLen() bool   { return s&UnionSmallHasFieldsLen != 0 }
func (s UnionDeclSmall) HasDeclsLen() bool    { return s&UnionSmallHasDeclsLen != 0 }
func (s UnionDeclSmall) AutoEnumTag() bool    { return s&UnionSmallAutoEnumTag != 0 }

func (s UnionDeclSmall) NameStrategy() NameStrategy {
	return NameStrategy(s>>unionSmallNameStrategyShift) & 3
}

func (s UnionDeclSmall) Layout() ContainerLayout {
	return ContainerLayout(s>>unionSmallLayoutShift) & 3
}

const (
	OpaqueSmallHasDeclsLen OpaqueDeclSmall = 1 << iota
	OpaqueSmallHasCapturesLen

	opaqueSmallNameStrategyShift = 2
)

func (s OpaqueDeclSmall) HasDeclsLen() bool    { return s&OpaqueSmallHasDeclsLen != 0 }
func (s OpaqueDeclSmall) HasCapturesLen() bool { return s&OpaqueSmallHasCapturesLen != 0 }

func (s OpaqueDeclSmall) NameStrategy() NameStrategy {
	return NameStrategy(s>>opaqueSmallNameStrategyShift) & 3
}

func (c *Code) captureSlice(start, length uint32) []Capture {
	if length == 0 {
		return nil
	}

	return unsafe.Slice((*Capture)(unsafe.Pointer(&c.Extra[start])), length)
}

func (c *Code) stringSlice(start, length uint32) []NullTerminatedString {
	if length == 0 {
		return nil
	}

	return unsafe.Slice((*NullTerminatedString)(unsafe.Pointer(&c.Extra[start])), length)
}

func (c *Code) extendedInst(inst Index, opcode Extended) ExtendedInst {
	in := c.Get(inst)
	if in.Tag != TagExtended {
		panicf("%v expected at %d, found %v", opcode, inst, in.Tag)
	}

	ext := in.Extended()
	if ext.Opcode != opcode {
		panicf("%v expected at %d, found %v", opcode, inst, ext.Opcode)
	}

	return ext
}

// StructDeclInfo decodes the header of the struct_decl at inst, up to
// but not including the per-field flag bags.
func (c *Code) StructDeclInfo(inst Index) StructDeclInfo {
	ext := c.extendedInst(inst, ExtStructDecl)

	var r StructDeclInfo

	r.Small = StructDeclSmall(ext.Small)

	_, i := ExtraData[StructDecl](c, ext.Operand)

	if r.Small.HasCapturesLen() {
		r.CapturesLen = c.Extra[i]
		i++
	}

	if r.Small.HasFieldsLen() {
		r.FieldsLen = c.Extra[i]
		i++
	}

	if r.Small.HasDeclsLen() {
		r.DeclsLen = c.Extra[i]
		i++
	}

	r.Captures = c.captureSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.CaptureNames = c.stringSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.Decls = c.BodySlice(i, r.DeclsLen)
	i += r.DeclsLen

	r.BackingIntRef = NoneRef

	if r.Small.HasBackingInt() {
		l := c.Extra[i]
		i++

		if l == 0 {
			r.BackingIntRef = Ref(c.Extra[i])
			i++
		} else {
			r.BackingIntBody = c.BodySlice(i, l)
			i += l
		}
	}

	r.FieldsAt = i

	return r
}

// EnumDeclInfo decodes the header of the enum_decl at inst.
func (c *Code) EnumDeclInfo(inst Index) EnumDeclInfo {
	ext := c.extendedInst(inst, ExtEnumDecl)

	var r EnumDeclInfo

	r.Small = EnumDeclSmall(ext.Small)
	r.TagType = NoneRef

	_, i := ExtraData[EnumDecl](c, ext.Operand)

	if r.Small.HasTagType() {
		r.TagType = Ref(c.Extra[i])
		i++
	}

	var bodyLen uint32

	if r.Small.HasCapturesLen() {
		r.CapturesLen = c.Extra[i]
		i++
	}

	if r.Small.HasBodyLen() {
		bodyLen = c.Extra[i]
		i++
	}

	if r.Small.HasFieldsLen() {
		r.FieldsLen = c.Extra[i]
		i++
	}

	if r.Small.HasDeclsLen() {
		r.DeclsLen = c.Extra[i]
		i++
	}

	r.Captures = c.captureSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.CaptureNames = c.stringSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.Decls = c.BodySlice(i, r.DeclsLen)
	i += r.DeclsLen

	r.Body = c.BodySlice(i, bodyLen)
	i += bodyLen

	r.FieldsAt = i

	return r
}

// UnionDeclInfo decodes the header of the union_decl at inst.
func (c *Code) UnionDeclInfo(inst Index) UnionDeclInfo {
	ext := c.extendedInst(inst, ExtUnionDecl)

	var r UnionDeclInfo

	r.Small = UnionDeclSmall(ext.Small)
	r.TagType = NoneRef

	_, i := ExtraData[UnionDecl](c, ext.Operand)

	if r.Small.HasTagType() {
		r.TagType = Ref(c.Extra[i])
		i++
	}

	var bodyLen uint32

	if r.Small.HasCapturesLen() {
		r.CapturesLen = c.Extra[i]
		i++
	}

	if r.Small.HasBodyLen() {
		bodyLen = c.Extra[i]
		i++
	}

	if r.Small.HasFieldsLen() {
		r.FieldsLen = c.Extra[i]
		i++
	}

	if r.Small.HasDeclsLen() {
		r.DeclsLen = c.Extra[i]
		i++
	}

	r.Captures = c.captureSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.CaptureNames = c.stringSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.Decls = c.BodySlice(i, r.DeclsLen)
	i += r.DeclsLen

	r.Body = c.BodySlice(i, bodyLen)
	i += bodyLen

	r.FieldsAt = i

	return r
}

// OpaqueDeclInfo decodes the header of the opaque_decl at inst. Note
// the decls length word precedes the captures length word here.
func (c *Code) OpaqueDeclInfo(inst Index) OpaqueDeclInfo {
	ext := c.extendedInst(inst, ExtOpaqueDecl)

	var r OpaqueDeclInfo

	r.Small = OpaqueDeclSmall(ext.Small)

	_, i := ExtraData[OpaqueDecl](c, ext.Operand)

	if r.Small.HasDeclsLen() {
		r.DeclsLen = c.Extra[i]
		i++
	}

	if r.Small.HasCapturesLen() {
		r.CapturesLen = c.Extra[i]
		i++
	}

	r.Captures = c.captureSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.CaptureNames = c.stringSlice(i, r.CapturesLen)
	i += r.CapturesLen

	r.Decls = c.BodySlice(i, r.DeclsLen)

	return r
}

// DeclIterator iterates the declarations of the container instruction
// at inst, which must be a struct, enum, union or opaque declaration.
func (c *Code) DeclIterator(inst Index) DeclIterator {
	in := c.Get(inst)
	if in.Tag != TagExtended {
		panicf("DeclIterator on %v instruction %d", in.Tag, inst)
	}

	switch in.Extended().Opcode {
	case ExtStructDecl:
		return DeclIterator{decls: c.StructDeclInfo(inst).Decls}
	case ExtEnumDecl:
		return DeclIterator{decls: c.EnumDeclInfo(inst).Decls}
	case ExtUnionDecl:
		return DeclIterator{decls: c.UnionDeclInfo(inst).Decls}
	case ExtOpaqueDecl:
		return DeclIterator{decls: c.OpaqueDeclInfo(inst).Decls}
	default:
		panicf("DeclIterator on %v instruction %d", in.Extended().Opcode, inst)
	}

	return DeclIterator{}
}

func (it *DeclIterator) Next() (Index, bool) {
	if it.i == len(it.decls) {
		return 0, false
	}

	d := it.decls[it.i]
	it.i++

	return d, true
}

func (it *DeclIterator) Remaining() int {
	return len(it.decls) - it.i
}
