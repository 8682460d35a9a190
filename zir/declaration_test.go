package zir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeclarationRoundTrip(t *testing.T) {
	hash := [4]uint32{0x11, 0x22, 0x33, 0x44}

	for id := DeclID(0); id < numDeclIDs; id++ {
		id := id

		t.Run(id.String(), func(t *testing.T) {
			b := NewBuilder()

			var bodies DeclBodies

			if id.HasTypeBody() {
				bodies.Type = []Index{b.Inst(TagInt, Data{A: 1})}
			}

			if id.HasSpecialBodies() {
				bodies.Align = []Index{b.Inst(TagInt, Data{A: 2})}
				bodies.Linksection = []Index{b.Inst(TagInt, Data{A: 3})}
				bodies.Addrspace = []Index{b.Inst(TagInt, Data{A: 4})}
			}

			if id.HasValueBody() {
				bodies.Value = []Index{b.Inst(TagInt, Data{A: 5}), b.Inst(TagInt, Data{A: 6})}
			}

			var name, lib string

			if id.HasName() {
				name = "decl_name"
			}

			if id.HasLibName() {
				lib = "c"
			}

			decl := b.Declaration(3, id, hash, 11, 7, name, lib, bodies)

			c := b.Finish()

			d := c.GetDeclaration(decl)

			require.Equal(t, id, d.ID)
			require.Equal(t, hash, d.SrcHash)
			require.Equal(t, uint32(11), d.SrcLine)
			require.Equal(t, uint32(7), d.SrcColumn)

			if id.HasName() {
				require.Equal(t, name, c.NullTerminatedString(d.Name))
			}

			if id.HasLibName() {
				require.Equal(t, lib, c.NullTerminatedString(d.LibName))
			}

			require.Equal(t, bodies.Type, d.TypeBody)
			require.Equal(t, bodies.Align, d.AlignBody)
			require.Equal(t, bodies.Linksection, d.LinksectionBody)
			require.Equal(t, bodies.Addrspace, d.AddrspaceBody)
			require.Equal(t, bodies.Value, d.ValueBody)
		})
	}
}

func TestDeclIDPredicates(t *testing.T) {
	for id := DeclID(0); id < numDeclIDs; id++ {
		if id.HasLibName() {
			if id.Linkage() != LinkageExtern {
				t.Errorf("%v has a lib name but normal linkage", id)
			}

			if id.HasValueBody() {
				t.Errorf("%v is extern but has a value body", id)
			}

			if !id.HasTypeBody() {
				t.Errorf("%v is extern but has no type body", id)
			}
		}

		if id.HasSpecialBodies() && id.Linkage() != LinkageNormal {
			t.Errorf("%v has special bodies with extern linkage", id)
		}

		if !id.HasName() && id.IsPub() {
			t.Errorf("%v is pub but unnamed", id)
		}

		switch id.Kind() {
		case KindConst:
			if id.IsThreadlocal() {
				t.Errorf("%v is a threadlocal const", id)
			}
		case KindUnnamedTest, KindTest, KindDecltest, KindComptime:
			if id.HasTypeBody() || id.HasSpecialBodies() || id.HasLibName() {
				t.Errorf("%v carries var/const only bodies", id)
			}
		}
	}
}

func TestDeclFlagsPacking(t *testing.T) {
	f0, f1 := MakeDeclFlags(1<<declSrcLineBits-1, 1<<declSrcColumnBits-1, numDeclIDs-1)

	flags := uint64(f0) | uint64(f1)<<32

	require.Equal(t, uint64(1<<declSrcLineBits-1), flags&(1<<declSrcLineBits-1))
	require.Equal(t, uint64(1<<declSrcColumnBits-1), flags>>declSrcColumnShift&(1<<declSrcColumnBits-1))
	require.Equal(t, numDeclIDs-1, DeclID(flags>>declIDShift))
}

func TestCapturePacking(t *testing.T) {
	cp := MakeCapture(CaptureInstruction, 12345)

	require.Equal(t, CaptureInstruction, cp.Tag())
	require.Equal(t, Index(12345), cp.Inst())

	cp = MakeCapture(CaptureDeclRef, 77)

	require.Equal(t, CaptureDeclRef, cp.Tag())
	require.Equal(t, NullTerminatedString(77), cp.DeclName())

	cp = MakeCapture(CaptureNested, 3)

	require.Equal(t, uint32(3), cp.NestedIndex())
}
