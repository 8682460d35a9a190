package zir

import (
	"reflect"
	"strings"
)

// Builder assembles a container. It owns the four arrays while they
// grow; Finish hands them over as an immutable Code.
//
// The zero Builder is not usable, the arrays carry fixed prefixes.
type Builder struct {
	tags        []Tag
	data        []Data
	stringBytes []byte
	extra       []uint32

	strings map[string]NullTerminatedString
}

func NewBuilder() *Builder {
	return &Builder{
		stringBytes: []byte{0},
		extra:       make([]uint32, extraIndexCount),
		strings:     map[string]NullTerminatedString{"": EmptyString},
	}
}

// String interns s into the string table and returns its offset. Equal
// strings share one entry. s must not contain a zero byte.
func (b *Builder) String(s string) NullTerminatedString {
	if off, ok := b.strings[s]; ok {
		return off
	}

	if strings.IndexByte(s, 0) >= 0 {
		panicf("string %q contains a zero byte", s)
	}

	off := NullTerminatedString(len(b.stringBytes))

	b.stringBytes = append(b.stringBytes, s...)
	b.stringBytes = append(b.stringBytes, 0)

	b.strings[s] = off

	return off
}

// Extra appends raw words and returns the offset of the first.
func (b *Builder) Extra(words ...uint32) uint32 {
	off := uint32(len(b.extra))

	b.extra = append(b.extra, words...)

	return off
}

// Body appends instruction indices as extra words.
func (b *Builder) Body(body ...Index) uint32 {
	off := uint32(len(b.extra))

	for _, inst := range body {
		b.extra = append(b.extra, uint32(inst))
	}

	return off
}

// SetExtra backpatches one extra word, for lengths known only after the
// trailing data is emitted.
func (b *Builder) SetExtra(i uint32, w uint32) {
	b.extra[i] = w
}

// AddExtra appends the record's fields as extra words and returns the
// record's offset. The field type set matches ExtraData.
func AddExtra[T any](b *Builder, data T) uint32 {
	rv := reflect.ValueOf(data)
	rt := rv.Type()

	off := uint32(len(b.extra))

	for f := 0; f < rt.NumField(); f++ {
		fv := rv.Field(f)

		switch rt.Field(f).Type {
		case tpUint32, tpRef, tpIndex, tpOptionalIndex, tpString,
			tpCallFlags, tpSwitchBits, tpFuncFancyBits, tpPtrTypeFlags:
			b.extra = append(b.extra, uint32(fv.Uint()))
		case tpNodeOffset, tpTokenOffset:
			b.extra = append(b.extra, uint32(int32(fv.Int())))
		default:
			panicf("extra record %v: unsupported field type %v", rt, rt.Field(f).Type)
		}
	}

	return off
}

// Inst appends an instruction and returns its index.
func (b *Builder) Inst(tag Tag, data Data) Index {
	inst := Index(len(b.tags))

	b.tags = append(b.tags, tag)
	b.data = append(b.data, data)

	return inst
}

// SetInst overwrites a previously reserved instruction, for cases where
// the payload references instructions emitted after it.
func (b *Builder) SetInst(inst Index, tag Tag, data Data) {
	b.tags[inst] = tag
	b.data[inst] = data
}

// ExtendedInst appends an extended instruction.
func (b *Builder) ExtendedInst(opcode Extended, small uint16, operand uint32) Index {
	return b.Inst(TagExtended, Data{
		A: uint32(opcode)<<16 | uint32(small),
		B: operand,
	})
}

// PlNodeInst appends a pl_node instruction pointing at payload.
func (b *Builder) PlNodeInst(tag Tag, node NodeOffset, payload uint32) Index {
	if dataKinds[tag] != DataPlNode {
		panicf("tag %v carries %v data, not pl_node", tag, dataKinds[tag])
	}

	return b.Inst(tag, Data{A: uint32(int32(node)), B: payload})
}

// PlTokInst appends a pl_tok instruction pointing at payload.
func (b *Builder) PlTokInst(tag Tag, tok TokenOffset, payload uint32) Index {
	if dataKinds[tag] != DataPlTok {
		panicf("tag %v carries %v data, not pl_tok", tag, dataKinds[tag])
	}

	return b.Inst(tag, Data{A: uint32(int32(tok)), B: payload})
}

// DeclBodies is the producer-side form of a declaration's bodies, in
// the order they trail the payload.
type DeclBodies struct {
	Type        []Index
	Align       []Index
	Linksection []Index
	Addrspace   []Index
	Value       []Index
}

// Declaration appends a declaration instruction together with its
// payload. Which trailing parts are emitted follows from id alone;
// bodies the id does not admit must be empty.
func (b *Builder) Declaration(node NodeOffset, id DeclID, srcHash [4]uint32, srcLine, srcColumn uint32, name, libName string, bodies DeclBodies) Index {
	if !id.HasName() && name != "" {
		panicf("%v declaration with name %q", id, name)
	}

	if !id.HasLibName() && libName != "" {
		panicf("%v declaration with lib name %q", id, libName)
	}

	if !id.HasTypeBody() && len(bodies.Type) != 0 {
		panicf("%v declaration with a type body", id)
	}

	if !id.HasSpecialBodies() && (len(bodies.Align) != 0 || len(bodies.Linksection) != 0 || len(bodies.Addrspace) != 0) {
		panicf("%v declaration with align/linksection/addrspace bodies", id)
	}

	if !id.HasValueBody() && len(bodies.Value) != 0 {
		panicf("%v declaration with a value body", id)
	}

	flags0, flags1 := MakeDeclFlags(srcLine, srcColumn, id)

	payload := AddExtra(b, declPayload{
		SrcHash0: srcHash[0],
		SrcHash1: srcHash[1],
		SrcHash2: srcHash[2],
		SrcHash3: srcHash[3],
		Flags0:   flags0,
		Flags1:   flags1,
	})

	if id.HasName() {
		b.Extra(uint32(b.String(name)))
	}

	if id.HasLibName() {
		b.Extra(uint32(b.String(libName)))
	}

	if id.HasTypeBody() {
		b.Extra(uint32(len(bodies.Type)))
	}

	if id.HasSpecialBodies() {
		b.Extra(uint32(len(bodies.Align)), uint32(len(bodies.Linksection)), uint32(len(bodies.Addrspace)))
	}

	if id.HasValueBody() {
		b.Extra(uint32(len(bodies.Value)))
	}

	b.Body(bodies.Type...)
	b.Body(bodies.Align...)
	b.Body(bodies.Linksection...)
	b.Body(bodies.Addrspace...)
	b.Body(bodies.Value...)

	return b.PlNodeInst(TagDeclaration, node, payload)
}

// Block appends a block-family instruction with its body.
func (b *Builder) Block(tag Tag, node NodeOffset, body ...Index) Index {
	payload := AddExtra(b, Block{BodyLen: uint32(len(body))})

	b.Body(body...)

	return b.PlNodeInst(tag, node, payload)
}

// Func appends a func or func_inferred instruction. The source hash
// trails the body only when the body is nonempty.
func (b *Builder) Func(tag Tag, node NodeOffset, paramBlock Index, retBody, body []Index, srcHash [4]uint32) Index {
	payload := AddExtra(b, Func{
		ParamBlock: paramBlock,
		RetBodyLen: uint32(len(retBody)),
		BodyLen:    uint32(len(body)),
	})

	b.Body(retBody...)
	b.Body(body...)

	if len(body) != 0 {
		b.Extra(srcHash[0], srcHash[1], srcHash[2], srcHash[3])
	}

	return b.PlNodeInst(tag, node, payload)
}

// SetCompileErrors records the offset of the compile errors payload in
// the fixed extra slot.
func (b *Builder) SetCompileErrors(payload uint32) {
	b.extra[ExtraCompileErrors] = payload
}

// SetImports records the offset of the imports payload in the fixed
// extra slot.
func (b *Builder) SetImports(payload uint32) {
	b.extra[ExtraImports] = payload
}

// Finish hands the arrays over. The builder must not be used after.
func (b *Builder) Finish() *Code {
	c := &Code{
		Tags:        b.tags,
		Data:        b.data,
		StringBytes: b.stringBytes,
		Extra:       b.extra,
	}

	*b = Builder{}

	return c
}
