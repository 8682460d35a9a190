package zir

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTestCode(t *testing.T) *Code {
	t.Helper()

	b := NewBuilder()

	root := b.Inst(TagExtended, Data{})

	v := b.Inst(TagInt, Data{A: 1})
	decl := b.Declaration(0, DeclConst, testHash, 2, 4, "answer", "", DeclBodies{Value: []Index{v}})

	buildRootStruct(b, root, decl)

	return b.Finish()
}

func TestStoreLoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	c := buildTestCode(t)

	stat := Stat{Inode: 11, Size: 22, Mtime: 33}

	var buf bytes.Buffer

	err := StoreCode(ctx, &buf, c, stat)
	require.NoError(t, err)

	got, h, err := LoadCode(ctx, &buf)
	require.NoError(t, err)

	require.Equal(t, uint32(c.Len()), h.InstLen)
	require.Equal(t, stat.Inode, h.StatInode)
	require.Equal(t, stat.Size, h.StatSize)
	require.Equal(t, stat.Mtime, h.StatMtime)

	require.Equal(t, c.Tags, got.Tags)
	require.Equal(t, c.Data, got.Data)
	require.Equal(t, c.StringBytes, got.StringBytes)
	require.Equal(t, c.Extra, got.Extra)

	it := got.DeclIterator(MainStructInst)

	decl, ok := it.Next()
	require.True(t, ok)

	d := got.GetDeclaration(decl)

	require.Equal(t, DeclConst, d.ID)
	require.Equal(t, "answer", got.NullTerminatedString(d.Name))
}

func TestLoadRejectsReservedWord(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	err := StoreCode(ctx, &buf, buildTestCode(t), Stat{})
	require.NoError(t, err)

	buf.Bytes()[12] = 1 // reserved header word

	_, _, err = LoadCode(ctx, bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
}

func TestLoadRejectsUnknownTag(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	err := StoreCode(ctx, &buf, buildTestCode(t), Stat{})
	require.NoError(t, err)

	buf.Bytes()[headerSize] = 0xff // first tag

	_, _, err = LoadCode(ctx, bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
}

func TestLoadRejectsTruncated(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	err := StoreCode(ctx, &buf, buildTestCode(t), Stat{})
	require.NoError(t, err)

	for _, n := range []int{0, headerSize - 1, headerSize + 3, buf.Len() - 1} {
		_, _, err = LoadCode(ctx, bytes.NewReader(buf.Bytes()[:n]))
		require.Error(t, err, "cut at %d", n)
	}
}
