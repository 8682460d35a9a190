// Package zir is an untyped, compact instruction representation of a
// single source file: one level above syntax, one level below typed IR.
//
// A Code holds three flat buffers: a columnar array of (tag, data)
// instruction pairs, a byte arena of null-terminated strings, and a word
// arena (extra) carrying every variable-length payload. Instruction
// identity is position. Once built, a Code is immutable and safe for
// concurrent read-only traversal.
package zir

type (
	// Code is one compiled unit. All fields are write-once at
	// construction; consumers only read.
	Code struct {
		Tags        []Tag
		Data        []Data
		StringBytes []byte
		Extra       []uint32
	}

	// ExtraIndex is a reserved slot at the front of the extra array.
	ExtraIndex uint32
)

const (
	// ExtraCompileErrors holds the payload index of the CompileErrors
	// record, or 0 if lowering recorded no errors.
	ExtraCompileErrors ExtraIndex = iota

	// ExtraImports holds the payload index of the Imports record, or 0
	// if the file imports nothing.
	ExtraImports

	extraIndexCount
)

// Records referenced by the reserved extra slots.
type (
	// CompileErrors trails with ItemsLen Item records.
	CompileErrors struct {
		ItemsLen uint32
	}

	// CompileErrorItem is one recorded lowering error. Exactly one of
	// Node and Token is meaningful; Token is used with ByteOffset when
	// Node is 0. Notes is the payload index of a nested CompileErrors
	// record, or 0.
	CompileErrorItem struct {
		Msg        NullTerminatedString
		Node       NodeOffset
		Token      TokenOffset
		ByteOffset uint32
		Notes      uint32
	}

	// Imports trails with ImportsLen ImportItem records.
	Imports struct {
		ImportsLen uint32
	}

	ImportItem struct {
		Name  NullTerminatedString
		Token TokenOffset
	}
)

func (c *Code) Len() int {
	return len(c.Tags)
}

func (c *Code) Get(i Index) Inst {
	return Inst{Tag: c.Tags[i], Data: c.Data[i]}
}

// HasCompileErrors reports whether lowering recorded any compile errors.
// Such a container is still structurally valid.
func (c *Code) HasCompileErrors() bool {
	return c.Extra[ExtraCompileErrors] != 0
}

// LoweringFailed reports whether lowering produced no instructions at
// all. That is only legal with recorded compile errors.
func (c *Code) LoweringFailed() bool {
	if len(c.Tags) != 0 {
		return false
	}

	if !c.HasCompileErrors() {
		panicf("empty instruction sequence without compile errors")
	}

	return true
}

// Deinit drops the backing buffers. The container must not be used
// afterwards and must not be deinitialized twice while traversals still
// reference it.
func (c *Code) Deinit() {
	*c = Code{}
}
