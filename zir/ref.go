package zir

import (
	"fmt"
	"math"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Index is a position in the instruction store. The position is the
	// instruction's identity for the whole lifetime of the container.
	Index uint32

	// OptionalIndex is an Index with a "none" sentinel instead of a
	// separate bool.
	OptionalIndex uint32

	// Ref names either one of the well-known compile-time values below
	// RefStartIndex or, offset by RefStartIndex, an instruction index.
	Ref uint32

	// NodeOffset is a signed delta from the declaration's base AST node,
	// stored bit-for-bit in an extra word.
	NodeOffset int32

	// TokenOffset is a signed delta from the declaration's base token.
	TokenOffset int32

	// NullTerminatedString is a byte offset into Code.StringBytes.
	// Offset 0 is reserved and means the empty string.
	NullTerminatedString uint32
)

// MainStructInst is the root container instruction of a file.
const MainStructInst Index = 0

const (
	NoneIndex OptionalIndex = math.MaxUint32
	NoneRef   Ref           = math.MaxUint32

	EmptyString NullTerminatedString = 0
)

// Well-known compile-time types and values. Everything below
// RefStartIndex denotes an interned primitive, not an instruction.
const (
	RefU1Type Ref = iota
	RefU8Type
	RefI8Type
	RefU16Type
	RefI16Type
	RefU29Type
	RefU32Type
	RefI32Type
	RefU64Type
	RefI64Type
	RefU80Type
	RefU128Type
	RefI128Type
	RefUsizeType
	RefIsizeType
	RefCCharType
	RefCShortType
	RefCUshortType
	RefCIntType
	RefCUintType
	RefCLongType
	RefCUlongType
	RefCLonglongType
	RefCUlonglongType
	RefCLongdoubleType
	RefF16Type
	RefF32Type
	RefF64Type
	RefF80Type
	RefF128Type
	RefAnyopaqueType
	RefBoolType
	RefVoidType
	RefTypeType
	RefAnyerrorType
	RefComptimeIntType
	RefComptimeFloatType
	RefNoreturnType
	RefAnyframeType
	RefNullType
	RefUndefinedType
	RefEnumLiteralType
	RefAtomicOrderType
	RefAtomicRmwOpType
	RefCallingConventionType
	RefAddressSpaceType
	RefFloatModeType
	RefReduceOpType
	RefCallModifierType
	RefPrefetchOptionsType
	RefExportOptionsType
	RefExternOptionsType
	RefTypeInfoType
	RefManyptrU8Type
	RefManyptrConstU8Type
	RefManyptrConstU8SentinelType
	RefSingleConstPointerToComptimeIntType
	RefSliceConstU8Type
	RefSliceConstU8SentinelType
	RefOptionalNoreturnType
	RefAnyerrorVoidErrorUnionType
	RefGenericPoisonType
	RefEmptyStructType

	RefUndef
	RefZero
	RefZeroUsize
	RefZeroU8
	RefOne
	RefOneUsize
	RefOneU8
	RefFourU8
	RefNegativeOne
	RefVoidValue
	RefUnreachableValue
	RefNullValue
	RefBoolTrue
	RefBoolFalse
	RefEmptyStruct
	RefGenericPoison

	// RefStartIndex is where instruction indices begin in the Ref space.
	// Must stay last in this block.
	RefStartIndex
)

var refNames = [RefStartIndex]string{
	RefU1Type:                              "u1_type",
	RefU8Type:                              "u8_type",
	RefI8Type:                              "i8_type",
	RefU16Type:                             "u16_type",
	RefI16Type:                             "i16_type",
	RefU29Type:                             "u29_type",
	RefU32Type:                             "u32_type",
	RefI32Type:                             "i32_type",
	RefU64Type:                             "u64_type",
	RefI64Type:                             "i64_type",
	RefU80Type:                             "u80_type",
	RefU128Type:                            "u128_type",
	RefI128Type:                            "i128_type",
	RefUsizeType:                           "usize_type",
	RefIsizeType:                           "isize_type",
	RefCCharType:                           "c_char_type",
	RefCShortType:                          "c_short_type",
	RefCUshortType:                         "c_ushort_type",
	RefCIntType:                            "c_int_type",
	RefCUintType:                           "c_uint_type",
	RefCLongType:                           "c_long_type",
	RefCUlongType:                          "c_ulong_type",
	RefCLonglongType:                       "c_longlong_type",
	RefCUlonglongType:                      "c_ulonglong_type",
	RefCLongdoubleType:                     "c_longdouble_type",
	RefF16Type:                             "f16_type",
	RefF32Type:                             "f32_type",
	RefF64Type:                             "f64_type",
	RefF80Type:                             "f80_type",
	RefF128Type:                            "f128_type",
	RefAnyopaqueType:                       "anyopaque_type",
	RefBoolType:                            "bool_type",
	RefVoidType:                            "void_type",
	RefTypeType:                            "type_type",
	RefAnyerrorType:                        "anyerror_type",
	RefComptimeIntType:                     "comptime_int_type",
	RefComptimeFloatType:                   "comptime_float_type",
	RefNoreturnType:                        "noreturn_type",
	RefAnyframeType:                        "anyframe_type",
	RefNullType:                            "null_type",
	RefUndefinedType:                       "undefined_type",
	RefEnumLiteralType:                     "enum_literal_type",
	RefAtomicOrderType:                     "atomic_order_type",
	RefAtomicRmwOpType:                     "atomic_rmw_op_type",
	RefCallingConventionType:               "calling_convention_type",
	RefAddressSpaceType:                    "address_space_type",
	RefFloatModeType:                       "float_mode_type",
	RefReduceOpType:                        "reduce_op_type",
	RefCallModifierType:                    "call_modifier_type",
	RefPrefetchOptionsType:                 "prefetch_options_type",
	RefExportOptionsType:                   "export_options_type",
	RefExternOptionsType:                   "extern_options_type",
	RefTypeInfoType:                        "type_info_type",
	RefManyptrU8Type:                       "manyptr_u8_type",
	RefManyptrConstU8Type:                  "manyptr_const_u8_type",
	RefManyptrConstU8SentinelType:          "manyptr_const_u8_sentinel_0_type",
	RefSingleConstPointerToComptimeIntType: "single_const_pointer_to_comptime_int_type",
	RefSliceConstU8Type:                    "slice_const_u8_type",
	RefSliceConstU8SentinelType:            "slice_const_u8_sentinel_0_type",
	RefOptionalNoreturnType:                "optional_noreturn_type",
	RefAnyerrorVoidErrorUnionType:          "anyerror_void_error_union_type",
	RefGenericPoisonType:                   "generic_poison_type",
	RefEmptyStructType:                     "empty_struct_type",
	RefUndef:                               "undef",
	RefZero:                                "zero",
	RefZeroUsize:                           "zero_usize",
	RefZeroU8:                              "zero_u8",
	RefOne:                                 "one",
	RefOneUsize:                            "one_usize",
	RefOneU8:                               "one_u8",
	RefFourU8:                              "four_u8",
	RefNegativeOne:                         "negative_one",
	RefVoidValue:                           "void_value",
	RefUnreachableValue:                    "unreachable_value",
	RefNullValue:                           "null_value",
	RefBoolTrue:                            "bool_true",
	RefBoolFalse:                           "bool_false",
	RefEmptyStruct:                         "empty_struct",
	RefGenericPoison:                       "generic_poison",
}

func (i Index) ToRef() Ref {
	return RefStartIndex + Ref(i)
}

func (i Index) ToOptional() OptionalIndex {
	return OptionalIndex(i)
}

// Unwrap returns the index and true, or false for none.
func (oi OptionalIndex) Unwrap() (Index, bool) {
	if oi == NoneIndex {
		return 0, false
	}

	return Index(oi), true
}

// ToIndex returns the instruction index and true if r names an
// instruction, and false if it names an interned primitive.
// r must not be none.
func (r Ref) ToIndex() (Index, bool) {
	if r == NoneRef {
		panicf("ToIndex called on none ref")
	}

	if r < RefStartIndex {
		return 0, false
	}

	return Index(r - RefStartIndex), true
}

// ToIndexAllowNone is ToIndex with none mapped to false.
func (r Ref) ToIndexAllowNone() (Index, bool) {
	if r == NoneRef {
		return 0, false
	}

	return r.ToIndex()
}

func (r Ref) String() string {
	switch {
	case r == NoneRef:
		return "none"
	case r < RefStartIndex:
		return refNames[r]
	default:
		return fmt.Sprintf("%%%d", uint32(r-RefStartIndex))
	}
}

func (r Ref) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	if r == NoneRef {
		return e.AppendNil(b)
	}

	if r < RefStartIndex {
		return e.AppendString(b, refNames[r])
	}

	return e.AppendUint64(b, uint64(r-RefStartIndex))
}

func (oi OptionalIndex) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	if oi == NoneIndex {
		return e.AppendNil(b)
	}

	return e.AppendUint64(b, uint64(oi))
}
