package zir

import (
	"bytes"
	"reflect"
	"unsafe"
)

// The recognized extra-record field types. Decoding a record with any
// other field type is a programming error, not a data error.
var (
	tpUint32        = reflect.TypeOf(uint32(0))
	tpRef           = reflect.TypeOf(Ref(0))
	tpIndex         = reflect.TypeOf(Index(0))
	tpOptionalIndex = reflect.TypeOf(OptionalIndex(0))
	tpString        = reflect.TypeOf(NullTerminatedString(0))
	tpNodeOffset    = reflect.TypeOf(NodeOffset(0))
	tpTokenOffset   = reflect.TypeOf(TokenOffset(0))
	tpCallFlags     = reflect.TypeOf(CallFlags(0))
	tpSwitchBits    = reflect.TypeOf(SwitchBits(0))
	tpFuncFancyBits = reflect.TypeOf(FuncFancyBits(0))
	tpPtrTypeFlags  = reflect.TypeOf(PtrTypeFlags(0))
)

// ExtraData decodes the record T at the given word offset of the extra
// array and returns it together with the offset of the first word after
// it, so callers can keep reading trailing variable-length data.
//
// Word-sized fields decode verbatim; node/token offsets are bit-cast to
// signed; packed flag words keep their bit layout.
func ExtraData[T any](c *Code, index uint32) (data T, end uint32) {
	rv := reflect.ValueOf(&data).Elem()
	rt := rv.Type()

	i := index

	for f := 0; f < rt.NumField(); f++ {
		w := c.Extra[i]
		fv := rv.Field(f)

		switch rt.Field(f).Type {
		case tpUint32, tpRef, tpIndex, tpOptionalIndex, tpString,
			tpCallFlags, tpSwitchBits, tpFuncFancyBits, tpPtrTypeFlags:
			fv.SetUint(uint64(w))
		case tpNodeOffset, tpTokenOffset:
			fv.SetInt(int64(int32(w)))
		default:
			panicf("extra record %v: unsupported field type %v", rt, rt.Field(f).Type)
		}

		i++
	}

	return data, i
}

// BodySlice reinterprets a word range of the extra array as instruction
// indices, in place. The slice aliases the container and must not
// outlive it.
func (c *Code) BodySlice(start, length uint32) []Index {
	if length == 0 {
		return nil
	}

	return unsafe.Slice((*Index)(unsafe.Pointer(&c.Extra[start])), length)
}

// RefSlice is BodySlice for Ref values.
func (c *Code) RefSlice(start, length uint32) []Ref {
	if length == 0 {
		return nil
	}

	return unsafe.Slice((*Ref)(unsafe.Pointer(&c.Extra[start])), length)
}

// NullTerminatedString returns the string starting at the given offset
// of the string table, up to the first zero byte. The returned string
// aliases the table.
func (c *Code) NullTerminatedString(s NullTerminatedString) string {
	b := c.StringBytes[s:]

	i := bytes.IndexByte(b, 0)
	if i < 0 {
		panicf("string table is not terminated at %d", s)
	}

	if i == 0 {
		return ""
	}

	return unsafe.String(&b[0], i)
}
