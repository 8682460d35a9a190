package zir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testHash = [4]uint32{1, 2, 3, 4}

// buildRootStruct patches instruction 0 into a struct_decl holding the
// given declarations, the way a lowered file always has its root
// container first.
func buildRootStruct(b *Builder, root Index, decls ...Index) {
	payload := AddExtra(b, StructDecl{})

	b.Extra(uint32(len(decls)))
	b.Body(decls...)

	b.SetInst(root, TagExtended, Data{
		A: uint32(ExtStructDecl)<<16 | uint32(StructSmallHasDeclsLen),
		B: payload,
	})
}

func TestFindTrackableConst(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	v := b.Inst(TagInt, Data{A: 1})
	decl := b.Declaration(0, DeclConst, testHash, 0, 0, "a", "", DeclBodies{Value: []Index{v}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	if _, ok := dc.FuncDecl.Unwrap(); ok {
		t.Errorf("const of an int owns a function")
	}

	require.Empty(t, dc.ExplicitTypes)
	require.Empty(t, dc.Other)

	it := c.DeclIterator(MainStructInst)

	got, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, decl, got)

	_, ok = it.Next()
	require.False(t, ok)
}

func TestFindTrackableFunc(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	paramBlock := b.Block(TagBlockInline, 0)

	body := b.Inst(TagInt, Data{A: 1})
	fn := b.Func(TagFunc, 0, paramBlock, nil, []Index{body}, testHash)

	decl := b.Declaration(0, DeclConst, testHash, 0, 0, "f", "", DeclBodies{Value: []Index{fn}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	got, ok := dc.FuncDecl.Unwrap()
	require.True(t, ok)
	require.Equal(t, fn, got)

	fi := c.GetFnInfo(fn)

	require.Equal(t, paramBlock, fi.ParamBlock)
	require.Equal(t, uint32(0), fi.TotalParamsLen)
	require.Equal(t, []Index{body}, fi.Body)

	h, ok := c.GetAssociatedSrcHash(fn)
	require.True(t, ok)
	require.Equal(t, testHash, h)
}

func TestFindTrackablePrototype(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	paramBlock := b.Block(TagBlockInline, 0)

	fn := b.Func(TagFunc, 0, paramBlock, []Index{b.Inst(TagInt, Data{A: 1})}, nil, [4]uint32{})

	decl := b.Declaration(0, DeclConst, testHash, 0, 0, "proto", "", DeclBodies{Value: []Index{fn}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	if _, ok := dc.FuncDecl.Unwrap(); ok {
		t.Errorf("bodyless function counted as the owned function")
	}

	if _, ok := c.GetAssociatedSrcHash(fn); ok {
		t.Errorf("bodyless function has a source hash")
	}
}

func TestFindTrackableDeferDedup(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	anonPayload := AddExtra(b, StructInitAnon{})
	anon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)

	bodyAt := b.Body(anon)

	d1 := b.Inst(TagDefer, Data{A: bodyAt, B: 1})
	d2 := b.Inst(TagDefer, Data{A: bodyAt, B: 1})

	decl := b.Declaration(0, DeclComptime, testHash, 0, 0, "", "", DeclBodies{Value: []Index{d1, d2}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	require.Equal(t, []Index{anon}, dc.Other)
}

func TestFindTrackableStructFields(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	anonPayload := AddExtra(b, StructInitAnon{})
	anon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)

	alignInst := b.Inst(TagInt, Data{A: 8})

	structPayload := AddExtra(b, StructDecl{FieldsHash0: 9})

	b.Extra(2) // fields len

	b.Extra(structFieldHasTypeBody | structFieldHasAlign) // field 0 bag; field 1 empty

	b.Extra(uint32(b.String("x")), 0, 1, 1)               // field 0: name, doc, type body len, align len
	b.Extra(uint32(b.String("y")), 0, uint32(RefU32Type)) // field 1: name, doc, type ref

	b.Body(anon)      // field 0 type body
	b.Body(alignInst) // field 0 align body

	st := b.ExtendedInst(ExtStructDecl, uint16(StructSmallHasFieldsLen), structPayload)

	decl := b.Declaration(0, DeclConst, testHash, 0, 0, "S", "", DeclBodies{Value: []Index{st}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	require.Equal(t, []Index{st}, dc.ExplicitTypes)
	require.Equal(t, []Index{anon}, dc.Other)
}

func TestFindTrackableNestedDeclBoundary(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	// inner fn declaration, owned by the nested struct
	paramBlock := b.Block(TagBlockInline, 0)
	fn := b.Func(TagFunc, 0, paramBlock, nil, []Index{b.Inst(TagInt, Data{A: 1})}, testHash)
	innerDecl := b.Declaration(0, DeclConst, testHash, 0, 0, "f", "", DeclBodies{Value: []Index{fn}})

	structPayload := AddExtra(b, StructDecl{})
	b.Extra(1) // decls len
	b.Body(innerDecl)

	st := b.ExtendedInst(ExtStructDecl, uint16(StructSmallHasDeclsLen), structPayload)

	outerDecl := b.Declaration(0, DeclConst, testHash, 0, 0, "S", "", DeclBodies{Value: []Index{st}})

	buildRootStruct(b, root, outerDecl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, outerDecl)

	if _, ok := dc.FuncDecl.Unwrap(); ok {
		t.Errorf("outer declaration claims the nested function")
	}

	require.Equal(t, []Index{st}, dc.ExplicitTypes)

	c.FindTrackable(&dc, innerDecl)

	got, ok := dc.FuncDecl.Unwrap()
	require.True(t, ok)
	require.Equal(t, fn, got)
	require.Empty(t, dc.ExplicitTypes)
}

func TestFindTrackableControlFlow(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	anonPayload := AddExtra(b, StructInitAnon{})
	thenAnon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)
	elseAnon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)

	condPayload := AddExtra(b, CondBr{Condition: RefBoolTrue, ThenBodyLen: 1, ElseBodyLen: 1})
	b.Body(thenAnon)
	b.Body(elseAnon)

	cond := b.PlNodeInst(TagCondbr, 0, condPayload)

	blk := b.Block(TagBlock, 0, cond)

	decl := b.Declaration(0, DeclComptime, testHash, 0, 0, "", "", DeclBodies{Value: []Index{blk}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	require.Equal(t, []Index{thenAnon, elseAnon}, dc.Other)
}

func TestFindTrackableSwitch(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	anonPayload := AddExtra(b, StructInitAnon{})
	scalarAnon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)
	elseAnon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)
	multiAnon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)

	payload := AddExtra(b, SwitchBlock{
		Operand: RefZero,
		Bits:    MakeSwitchBits(1, true, true),
	})

	b.Extra(1) // multi cases len

	// else prong
	b.Extra(uint32(MakeProngInfo(1, ProngCaptureNone, false)))
	b.Body(elseAnon)

	// scalar prong: item, info, body
	b.Extra(uint32(RefOne))
	b.Extra(uint32(MakeProngInfo(1, ProngCaptureByVal, false)))
	b.Body(scalarAnon)

	// multi prong: items len, ranges len, items, ranges, info, body
	b.Extra(2, 1)
	b.Extra(uint32(RefZero), uint32(RefOne))
	b.Extra(uint32(RefZeroU8), uint32(RefOneU8))
	b.Extra(uint32(MakeProngInfo(1, ProngCaptureNone, true)))
	b.Body(multiAnon)

	sw := b.PlNodeInst(TagSwitchBlock, 0, payload)

	decl := b.Declaration(0, DeclComptime, testHash, 0, 0, "", "", DeclBodies{Value: []Index{sw}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	require.Equal(t, []Index{elseAnon, scalarAnon, multiAnon}, dc.Other)
}

func TestFindTrackableCallArgs(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	anonPayload := AddExtra(b, StructInitAnon{})
	arg0 := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)
	arg1 := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)

	payload := AddExtra(b, Call{
		Flags:  MakeCallFlags(2, 0, false),
		Callee: RefOne,
	})

	// end offsets, then the two single-instruction bodies
	b.Extra(3, 4)
	b.Body(arg0)
	b.Body(arg1)

	call := b.PlNodeInst(TagCall, 0, payload)

	decl := b.Declaration(0, DeclComptime, testHash, 0, 0, "", "", DeclBodies{Value: []Index{call}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	require.Equal(t, []Index{arg0, arg1}, dc.Other)
}

func TestFindTrackableReify(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	payload := AddExtra(b, Reify{Node: -2, Operand: RefTypeInfoType, SrcLine: 6})

	re := b.ExtendedInst(ExtReify, 0, payload)

	decl := b.Declaration(0, DeclConst, testHash, 0, 0, "T", "", DeclBodies{Value: []Index{re}})

	buildRootStruct(b, root, decl)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, decl)

	require.Equal(t, []Index{re}, dc.ExplicitTypes)

	rec, _ := ExtraData[Reify](c, c.Get(re).Extended().Operand)

	require.Equal(t, NodeOffset(-2), rec.Node)
	require.Equal(t, RefTypeInfoType, rec.Operand)
	require.Equal(t, uint32(6), rec.SrcLine)
}

func TestFindTrackableReuse(t *testing.T) {
	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	anonPayload := AddExtra(b, StructInitAnon{})
	anon := b.PlNodeInst(TagStructInitAnon, 0, anonPayload)

	d1 := b.Declaration(0, DeclComptime, testHash, 0, 0, "", "", DeclBodies{Value: []Index{anon}})
	d2 := b.Declaration(0, DeclConst, testHash, 0, 0, "a", "", DeclBodies{Value: []Index{b.Inst(TagInt, Data{A: 1})}})

	buildRootStruct(b, root, d1, d2)

	c := b.Finish()

	var dc DeclContents

	c.FindTrackable(&dc, d1)
	require.Equal(t, []Index{anon}, dc.Other)

	c.FindTrackable(&dc, d2)
	require.Empty(t, dc.Other)

	if _, ok := dc.FuncDecl.Unwrap(); ok {
		t.Errorf("stale function survived the reuse")
	}

	// repeating a discovery through the same accumulator changes nothing
	c.FindTrackable(&dc, d1)

	first := DeclContents{
		FuncDecl:      dc.FuncDecl,
		ExplicitTypes: append([]Index(nil), dc.ExplicitTypes...),
		Other:         append([]Index(nil), dc.Other...),
	}

	c.FindTrackable(&dc, d1)

	require.Equal(t, first.FuncDecl, dc.FuncDecl)
	require.Equal(t, first.ExplicitTypes, dc.ExplicitTypes)
	require.Equal(t, first.Other, dc.Other)
	require.Equal(t, []Index{anon}, dc.Other)
}
