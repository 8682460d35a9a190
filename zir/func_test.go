package zir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFnInfoParams(t *testing.T) {
	b := NewBuilder()

	tyInst := b.Inst(TagInt, Data{A: 1})

	paramPayload := AddExtra(b, Param{Name: b.String("n"), BodyLen: 1})
	b.Body(tyInst)

	p0 := b.PlTokInst(TagParam, 0, paramPayload)
	p1 := b.Inst(TagParamAnytype, Data{A: uint32(b.String("any")), B: 0})

	paramBlock := b.Block(TagBlockInline, 0, p0, p1)

	body := b.Inst(TagInt, Data{A: 2})
	fn := b.Func(TagFuncInferred, 0, paramBlock, nil, []Index{body}, testHash)

	c := b.Finish()

	fi := c.GetFnInfo(fn)

	require.Equal(t, uint32(2), fi.TotalParamsLen)
	require.Equal(t, []Index{p0, p1}, fi.ParamBody)
	require.Equal(t, []Index{body}, fi.Body)
	require.Empty(t, fi.RetTyBody)

	require.Equal(t, "n", c.NullTerminatedString(c.GetParamName(p0)))
	require.Equal(t, "any", c.NullTerminatedString(c.GetParamName(p1)))
}

func TestGetFnInfoFancy(t *testing.T) {
	b := NewBuilder()

	paramBlock := b.Block(TagBlockInline, 0)

	ccInst := b.Inst(TagInt, Data{A: 1})
	retInst := b.Inst(TagInt, Data{A: 2})
	bodyInst := b.Inst(TagInt, Data{A: 3})

	payload := AddExtra(b, FuncFancy{
		ParamBlock: paramBlock,
		Bits:       FancyHasAlignRef | FancyHasCcBody | FancyIsNoinline,
	})

	b.Extra(uint32(RefU8Type)) // align ref

	b.Extra(1) // cc body
	b.Body(ccInst)

	b.Extra(1) // ret body
	b.Body(retInst)

	b.Extra(1) // body
	b.Body(bodyInst)

	b.Extra(testHash[0], testHash[1], testHash[2], testHash[3])

	fn := b.PlNodeInst(TagFuncFancy, 0, payload)

	c := b.Finish()

	fi := c.GetFnInfo(fn)

	require.Equal(t, paramBlock, fi.ParamBlock)
	require.Empty(t, fi.AlignBody)
	require.Empty(t, fi.AddrspaceBody)
	require.Empty(t, fi.SectionBody)
	require.Equal(t, []Index{ccInst}, fi.CallconvBody)
	require.Equal(t, []Index{retInst}, fi.RetTyBody)
	require.Equal(t, []Index{bodyInst}, fi.Body)

	h, ok := c.GetAssociatedSrcHash(fn)
	require.True(t, ok)
	require.Equal(t, testHash, h)
}

func TestGetFnInfoRejectsOtherTags(t *testing.T) {
	b := NewBuilder()

	v := b.Inst(TagInt, Data{A: 1})

	c := b.Finish()

	defer func() {
		if recover() == nil {
			t.Errorf("GetFnInfo on a value did not panic")
		}
	}()

	_ = c.GetFnInfo(v)
}

func TestAssociatedSrcHashDeclaration(t *testing.T) {
	b := NewBuilder()

	v := b.Inst(TagInt, Data{A: 1})
	decl := b.Declaration(0, DeclConst, testHash, 0, 0, "a", "", DeclBodies{Value: []Index{v}})

	c := b.Finish()

	h, ok := c.GetAssociatedSrcHash(decl)
	require.True(t, ok)
	require.Equal(t, testHash, h)

	_, ok = c.GetAssociatedSrcHash(v)
	require.False(t, ok)
}
