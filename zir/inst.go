package zir

import (
	"fmt"
	"math"
)

type (
	// Tag names the operation of an instruction. The tag fully determines
	// how the 8-byte Data payload is interpreted; the mapping lives in
	// dataKinds and is total over the tag set.
	Tag uint8

	// Extended is the opcode of a TagExtended instruction. It extends the
	// tag space beyond 256 operations; the 16-bit small operand rides in
	// the instruction itself.
	Extended uint16

	// Data is the fixed 8-byte instruction payload. It is opaque; shaped
	// views are obtained through the Inst accessors, which check the tag.
	Data struct {
		A, B uint32
	}

	Inst struct {
		Tag  Tag
		Data Data
	}

	// DataKind is the decoded shape of a Data payload.
	DataKind uint8
)

const (
	// arithmetic and bitwise
	TagAdd Tag = iota
	TagAddwrap
	TagAddSat
	TagAddUnsafe
	TagSub
	TagSubwrap
	TagSubSat
	TagMul
	TagMulwrap
	TagMulSat
	TagDiv
	TagMod
	TagRem
	TagModRem
	TagShl
	TagShlExact
	TagShlSat
	TagShr
	TagShrExact
	TagMin
	TagMax
	TagMulAdd
	TagBitAnd
	TagBitOr
	TagXor
	TagBitNot
	TagBoolNot
	TagNegate
	TagNegateWrap
	TagBoolBrAnd
	TagBoolBrOr

	// comparisons
	TagCmpLt
	TagCmpLte
	TagCmpEq
	TagCmpGte
	TagCmpGt
	TagCmpNeq

	// parameters and declarations
	TagParam
	TagParamComptime
	TagParamAnytype
	TagParamAnytypeComptime
	TagDeclaration
	TagExtended

	// blocks and control flow
	TagBlock
	TagBlockComptime
	TagBlockInline
	TagSuspendBlock
	TagLoop
	TagCImport
	TagTypeofBuiltin
	TagBreak
	TagBreakInline
	TagSwitchContinue
	TagRepeat
	TagRepeatInline
	TagCondbr
	TagCondbrInline
	TagSwitchBlock
	TagSwitchBlockRef
	TagTry
	TagTryPtr
	TagUnreachable
	TagCheckComptimeControlFlow
	TagForLen

	// calls
	TagCall
	TagFieldCall
	TagBuiltinCall

	// functions
	TagFunc
	TagFuncInferred
	TagFuncFancy

	// defers
	TagDefer
	TagDeferErrCode

	// memory
	TagAlloc
	TagAllocMut
	TagAllocComptimeMut
	TagAllocInferred
	TagAllocInferredMut
	TagAllocInferredComptime
	TagAllocInferredComptimeMut
	TagMakePtrConst
	TagResolveInferredAlloc
	TagLoad
	TagStoreNode
	TagStoreToInferredPtr
	TagRef

	// values
	TagInt
	TagIntBig
	TagFloat
	TagFloat128
	TagStr
	TagEnumLiteral
	TagDeclLiteral
	TagDeclLiteralNoCoerce
	TagDeclRef
	TagDeclVal
	TagErrorValue
	TagImport

	// types
	TagArrayType
	TagArrayTypeSentinel
	TagVectorType
	TagArrayCat
	TagArrayMul
	TagElemType
	TagIndexablePtrElemType
	TagIndexablePtrLen
	TagAnyframeType
	TagErrorSetDecl
	TagErrorUnionType
	TagMergeErrorSets
	TagOptionalType
	TagPtrType
	TagIntType
	TagTypeof
	TagTypeofLog2IntType
	TagRetType

	// field and element access
	TagFieldPtr
	TagFieldVal
	TagFieldPtrNamed
	TagFieldValNamed
	TagElemPtr
	TagElemVal
	TagElemPtrNode
	TagElemValNode
	TagElemValImm
	TagArrayBasePtr
	TagFieldBasePtr
	TagSliceStart
	TagSliceEnd
	TagSliceSentinel
	TagSliceLength
	TagOptEuBasePtrInit
	TagCoercePtrElemTy

	// result-location validation
	TagEnsureResultUsed
	TagEnsureResultNonError
	TagEnsureErrUnionPayloadVoid
	TagValidateArrayInitTy
	TagValidateStructInitTy
	TagValidateStructInitResultTy
	TagValidatePtrStructInit
	TagValidateArrayInitResultTy
	TagValidatePtrArrayInit
	TagValidateRefTy
	TagValidateConst

	// aggregate initialization
	TagStructInitEmpty
	TagStructInitEmptyResult
	TagStructInitEmptyRefResult
	TagStructInitAnon
	TagStructInit
	TagStructInitRef
	TagStructInitFieldType
	TagStructInitFieldPtr
	TagArrayInitAnon
	TagArrayInit
	TagArrayInitRef
	TagArrayInitElemType
	TagArrayInitElemPtr
	TagUnionInit

	// optionals and error unions
	TagErrUnionCode
	TagErrUnionCodePtr
	TagErrUnionPayloadUnsafe
	TagErrUnionPayloadUnsafePtr
	TagOptionalPayloadSafe
	TagOptionalPayloadSafePtr
	TagOptionalPayloadUnsafe
	TagOptionalPayloadUnsafePtr
	TagIsNonNull
	TagIsNonNullPtr
	TagIsNonErr
	TagIsNonErrPtr
	TagGetUnionTag

	// returns and error-return trace
	TagRetNode
	TagRetLoad
	TagRetImplicit
	TagRetErrValue
	TagRetErrValueCode
	TagRetPtr
	TagSaveErrRetIndex
	TagRestoreErrRetIndexUnconditional
	TagRestoreErrRetIndexFnEntry

	// builtins
	TagAsNode
	TagAsShiftOperand
	TagBitcast
	TagTypeInfo
	TagSizeOf
	TagBitSizeOf
	TagAlignOf
	TagIntFromPtr
	TagIntFromEnum
	TagEnumFromInt
	TagIntFromBool
	TagIntFromFloat
	TagFloatFromInt
	TagPtrFromInt
	TagCompileError
	TagSetEvalBranchQuota
	TagEmbedFile
	TagErrorName
	TagPanic
	TagTrap
	TagSetRuntimeSafety
	TagTagName
	TagTypeName
	TagFrameType
	TagFrameSize
	TagSplat
	TagReduce
	TagShuffle
	TagAtomicLoad
	TagAtomicRmw
	TagAtomicStore
	TagMemcpy
	TagMemset
	TagExport

	// float math
	TagSqrt
	TagSin
	TagCos
	TagTan
	TagExp
	TagExp2
	TagLog
	TagLog2
	TagLog10
	TagAbs
	TagFloor
	TagCeil
	TagTrunc
	TagRound

	// debug info
	TagDbgStmt
	TagDbgVarPtr
	TagDbgVarVal

	numTags
)

const (
	ExtStructDecl Extended = iota
	ExtEnumDecl
	ExtUnionDecl
	ExtOpaqueDecl
	ExtReify
	ExtThis
	ExtRetAddr
	ExtBuiltinSrc
	ExtErrorReturnTrace
	ExtFrame
	ExtFrameAddress
	ExtAlloc
	ExtBuiltinExtern
	ExtAsm
	ExtAsmExpr
	ExtCompileLog
	ExtMinMulti
	ExtMaxMulti
	ExtAddWithOverflow
	ExtSubWithOverflow
	ExtMulWithOverflow
	ExtShlWithOverflow
	ExtCDefine
	ExtCInclude
	ExtCUndef
	ExtWasmMemorySize
	ExtWasmMemoryGrow
	ExtPrefetch
	ExtErrSetCast
	ExtSetFloatMode
	ExtBranchHint
	ExtInComptime
	ExtClosureGet
	ExtFieldParentPtr
	ExtSelect
	ExtCVaArg
	ExtCVaCopy
	ExtCVaEnd
	ExtCVaStart
	ExtWorkItemId
	ExtWorkGroupSize
	ExtWorkGroupId

	numExtended
)

const (
	DataInvalid DataKind = iota
	DataExtended
	DataUnNode
	DataUnTok
	DataPlNode
	DataPlTok
	DataBin
	DataStr
	DataStrTok
	DataStrOp
	DataNode
	DataInt
	DataFloat
	DataPtrType
	DataIntType
	DataBoolBr
	DataBreak
	DataDbgStmt
	DataDefer
	DataDeferErrCode
	DataElemValImm
)

// dataKinds is the total tag -> payload shape mapping. Every tag must
// have a non-invalid entry; TestDataKindsTotal walks the whole table.
var dataKinds = [numTags]DataKind{
	TagAdd:        DataPlNode,
	TagAddwrap:    DataPlNode,
	TagAddSat:     DataPlNode,
	TagAddUnsafe:  DataPlNode,
	TagSub:        DataPlNode,
	TagSubwrap:    DataPlNode,
	TagSubSat:     DataPlNode,
	TagMul:        DataPlNode,
	TagMulwrap:    DataPlNode,
	TagMulSat:     DataPlNode,
	TagDiv:        DataPlNode,
	TagMod:        DataPlNode,
	TagRem:        DataPlNode,
	TagModRem:     DataPlNode,
	TagShl:        DataPlNode,
	TagShlExact:   DataPlNode,
	TagShlSat:     DataPlNode,
	TagShr:        DataPlNode,
	TagShrExact:   DataPlNode,
	TagMin:        DataPlNode,
	TagMax:        DataPlNode,
	TagMulAdd:     DataPlNode,
	TagBitAnd:     DataPlNode,
	TagBitOr:      DataPlNode,
	TagXor:        DataPlNode,
	TagBitNot:     DataUnNode,
	TagBoolNot:    DataUnNode,
	TagNegate:     DataUnNode,
	TagNegateWrap: DataUnNode,
	TagBoolBrAnd:  DataBoolBr,
	TagBoolBrOr:   DataBoolBr,

	TagCmpLt:  DataPlNode,
	TagCmpLte: DataPlNode,
	TagCmpEq:  DataPlNode,
	TagCmpGte: DataPlNode,
	TagCmpGt:  DataPlNode,
	TagCmpNeq: DataPlNode,

	TagParam:                DataPlTok,
	TagParamComptime:        DataPlTok,
	TagParamAnytype:         DataStrTok,
	TagParamAnytypeComptime: DataStrTok,
	TagDeclaration:          DataPlNode,
	TagExtended:             DataExtended,

	TagBlock:                    DataPlNode,
	TagBlockComptime:            DataPlNode,
	TagBlockInline:              DataPlNode,
	TagSuspendBlock:             DataPlNode,
	TagLoop:                     DataPlNode,
	TagCImport:                  DataPlNode,
	TagTypeofBuiltin:            DataPlNode,
	TagBreak:                    DataBreak,
	TagBreakInline:              DataBreak,
	TagSwitchContinue:           DataBreak,
	TagRepeat:                   DataNode,
	TagRepeatInline:             DataNode,
	TagCondbr:                   DataPlNode,
	TagCondbrInline:             DataPlNode,
	TagSwitchBlock:              DataPlNode,
	TagSwitchBlockRef:           DataPlNode,
	TagTry:                      DataPlNode,
	TagTryPtr:                   DataPlNode,
	TagUnreachable:              DataNode,
	TagCheckComptimeControlFlow: DataUnNode,
	TagForLen:                   DataPlNode,

	TagCall:        DataPlNode,
	TagFieldCall:   DataPlNode,
	TagBuiltinCall: DataPlNode,

	TagFunc:         DataPlNode,
	TagFuncInferred: DataPlNode,
	TagFuncFancy:    DataPlNode,

	TagDefer:        DataDefer,
	TagDeferErrCode: DataDeferErrCode,

	TagAlloc:                    DataUnNode,
	TagAllocMut:                 DataUnNode,
	TagAllocComptimeMut:         DataUnNode,
	TagAllocInferred:            DataNode,
	TagAllocInferredMut:         DataNode,
	TagAllocInferredComptime:    DataNode,
	TagAllocInferredComptimeMut: DataNode,
	TagMakePtrConst:             DataUnNode,
	TagResolveInferredAlloc:     DataUnNode,
	TagLoad:                     DataUnNode,
	TagStoreNode:                DataPlNode,
	TagStoreToInferredPtr:       DataPlNode,
	TagRef:                      DataUnTok,

	TagInt:                 DataInt,
	TagIntBig:              DataStr,
	TagFloat:               DataFloat,
	TagFloat128:            DataPlNode,
	TagStr:                 DataStr,
	TagEnumLiteral:         DataStrTok,
	TagDeclLiteral:         DataPlNode,
	TagDeclLiteralNoCoerce: DataPlNode,
	TagDeclRef:             DataStrTok,
	TagDeclVal:             DataStrTok,
	TagErrorValue:          DataStrTok,
	TagImport:              DataStrTok,

	TagArrayType:            DataBin,
	TagArrayTypeSentinel:    DataPlNode,
	TagVectorType:           DataPlNode,
	TagArrayCat:             DataPlNode,
	TagArrayMul:             DataPlNode,
	TagElemType:             DataUnNode,
	TagIndexablePtrElemType: DataUnNode,
	TagIndexablePtrLen:      DataUnNode,
	TagAnyframeType:         DataUnNode,
	TagErrorSetDecl:         DataPlNode,
	TagErrorUnionType:       DataPlNode,
	TagMergeErrorSets:       DataPlNode,
	TagOptionalType:         DataUnNode,
	TagPtrType:              DataPtrType,
	TagIntType:              DataIntType,
	TagTypeof:               DataUnNode,
	TagTypeofLog2IntType:    DataUnNode,
	TagRetType:              DataNode,

	TagFieldPtr:         DataPlNode,
	TagFieldVal:         DataPlNode,
	TagFieldPtrNamed:    DataPlNode,
	TagFieldValNamed:    DataPlNode,
	TagElemPtr:          DataPlNode,
	TagElemVal:          DataPlNode,
	TagElemPtrNode:      DataPlNode,
	TagElemValNode:      DataPlNode,
	TagElemValImm:       DataElemValImm,
	TagArrayBasePtr:     DataUnNode,
	TagFieldBasePtr:     DataUnNode,
	TagSliceStart:       DataPlNode,
	TagSliceEnd:         DataPlNode,
	TagSliceSentinel:    DataPlNode,
	TagSliceLength:      DataPlNode,
	TagOptEuBasePtrInit: DataPlNode,
	TagCoercePtrElemTy:  DataPlNode,

	TagEnsureResultUsed:           DataUnNode,
	TagEnsureResultNonError:       DataUnNode,
	TagEnsureErrUnionPayloadVoid:  DataUnNode,
	TagValidateArrayInitTy:        DataPlNode,
	TagValidateStructInitTy:       DataUnNode,
	TagValidateStructInitResultTy: DataUnNode,
	TagValidatePtrStructInit:      DataPlNode,
	TagValidateArrayInitResultTy:  DataPlNode,
	TagValidatePtrArrayInit:       DataPlNode,
	TagValidateRefTy:              DataUnTok,
	TagValidateConst:              DataUnNode,

	TagStructInitEmpty:          DataUnNode,
	TagStructInitEmptyResult:    DataUnNode,
	TagStructInitEmptyRefResult: DataUnNode,
	TagStructInitAnon:           DataPlNode,
	TagStructInit:               DataPlNode,
	TagStructInitRef:            DataPlNode,
	TagStructInitFieldType:      DataPlNode,
	TagStructInitFieldPtr:       DataPlNode,
	TagArrayInitAnon:            DataPlNode,
	TagArrayInit:                DataPlNode,
	TagArrayInitRef:             DataPlNode,
	TagArrayInitElemType:        DataBin,
	TagArrayInitElemPtr:         DataPlNode,
	TagUnionInit:                DataPlNode,

	TagErrUnionCode:             DataUnNode,
	TagErrUnionCodePtr:          DataUnNode,
	TagErrUnionPayloadUnsafe:    DataUnNode,
	TagErrUnionPayloadUnsafePtr: DataUnNode,
	TagOptionalPayloadSafe:      DataUnNode,
	TagOptionalPayloadSafePtr:   DataUnNode,
	TagOptionalPayloadUnsafe:    DataUnNode,
	TagOptionalPayloadUnsafePtr: DataUnNode,
	TagIsNonNull:                DataUnNode,
	TagIsNonNullPtr:             DataUnNode,
	TagIsNonErr:                 DataUnNode,
	TagIsNonErrPtr:              DataUnNode,
	TagGetUnionTag:              DataUnNode,

	TagRetNode:                         DataUnNode,
	TagRetLoad:                         DataUnNode,
	TagRetImplicit:                     DataUnTok,
	TagRetErrValue:                     DataStrTok,
	TagRetErrValueCode:                 DataStrTok,
	TagRetPtr:                          DataNode,
	TagSaveErrRetIndex:                 DataUnNode,
	TagRestoreErrRetIndexUnconditional: DataUnNode,
	TagRestoreErrRetIndexFnEntry:       DataUnNode,

	TagAsNode:             DataPlNode,
	TagAsShiftOperand:     DataPlNode,
	TagBitcast:            DataPlNode,
	TagTypeInfo:           DataUnNode,
	TagSizeOf:             DataUnNode,
	TagBitSizeOf:          DataUnNode,
	TagAlignOf:            DataUnNode,
	TagIntFromPtr:         DataUnNode,
	TagIntFromEnum:        DataUnNode,
	TagEnumFromInt:        DataPlNode,
	TagIntFromBool:        DataUnNode,
	TagIntFromFloat:       DataPlNode,
	TagFloatFromInt:       DataPlNode,
	TagPtrFromInt:         DataUnNode,
	TagCompileError:       DataUnNode,
	TagSetEvalBranchQuota: DataUnNode,
	TagEmbedFile:          DataUnNode,
	TagErrorName:          DataUnNode,
	TagPanic:              DataUnNode,
	TagTrap:               DataNode,
	TagSetRuntimeSafety:   DataUnNode,
	TagTagName:            DataUnNode,
	TagTypeName:           DataUnNode,
	TagFrameType:          DataUnNode,
	TagFrameSize:          DataUnNode,
	TagSplat:              DataPlNode,
	TagReduce:             DataPlNode,
	TagShuffle:            DataPlNode,
	TagAtomicLoad:         DataPlNode,
	TagAtomicRmw:          DataPlNode,
	TagAtomicStore:        DataPlNode,
	TagMemcpy:             DataPlNode,
	TagMemset:             DataPlNode,
	TagExport:             DataPlNode,

	TagSqrt:  DataUnNode,
	TagSin:   DataUnNode,
	TagCos:   DataUnNode,
	TagTan:   DataUnNode,
	TagExp:   DataUnNode,
	TagExp2:  DataUnNode,
	TagLog:   DataUnNode,
	TagLog2:  DataUnNode,
	TagLog10: DataUnNode,
	TagAbs:   DataUnNode,
	TagFloor: DataUnNode,
	TagCeil:  DataUnNode,
	TagTrunc: DataUnNode,
	TagRound: DataUnNode,

	TagDbgStmt:   DataDbgStmt,
	TagDbgVarPtr: DataStrOp,
	TagDbgVarVal: DataStrOp,
}

// DataKind returns the payload shape of the tag.
func (t Tag) DataKind() DataKind {
	if t >= numTags {
		panicf("unknown tag %d", t)
	}

	return dataKinds[t]
}

func (t Tag) String() string {
	if t >= numTags {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}

	return tagNames[t]
}

func (op Extended) String() string {
	if op >= numExtended {
		return fmt.Sprintf("Extended(%d)", uint16(op))
	}

	return extNames[op]
}

// Shaped payload views. Field meaning depends on the owning tag; the
// accessors on Inst check the tag's shape before reinterpreting.
type (
	ExtendedInst struct {
		Opcode  Extended
		Small   uint16
		Operand uint32
	}

	UnNode struct {
		SrcNode NodeOffset
		Operand Ref
	}

	UnTok struct {
		SrcTok  TokenOffset
		Operand Ref
	}

	PlNode struct {
		SrcNode NodeOffset
		Payload uint32
	}

	PlTok struct {
		SrcTok  TokenOffset
		Payload uint32
	}

	BinData struct {
		Lhs Ref
		Rhs Ref
	}

	StrData struct {
		Start NullTerminatedString
		Len   uint32
	}

	StrTok struct {
		Start  NullTerminatedString
		SrcTok TokenOffset
	}

	StrOp struct {
		Str     NullTerminatedString
		Operand Ref
	}

	PtrTypeData struct {
		Flags   PtrTypeFlags
		Payload uint32
	}

	IntTypeData struct {
		SrcNode NodeOffset
		Signed  bool
		Bits    uint16
	}

	BoolBr struct {
		Operand Ref
		Payload uint32
	}

	BreakData struct {
		Operand Ref
		Payload uint32
	}

	DeferBody struct {
		Index uint32
		Len   uint32
	}

	// PtrTypeFlags is a packed word of pointer type qualifiers.
	PtrTypeFlags uint32
)

const (
	PtrFlagAllowzero PtrTypeFlags = 1 << iota
	PtrFlagMutable
	PtrFlagVolatile
	PtrFlagHasSentinel
	PtrFlagHasAlign
	PtrFlagHasAddrspace
	PtrFlagHasBitRange
)

func (f PtrTypeFlags) Has(bit PtrTypeFlags) bool { return f&bit != 0 }

func (i Inst) assertKind(k DataKind) {
	if dataKinds[i.Tag] != k {
		panicf("tag %v carries %v data, accessed as %v", i.Tag, dataKinds[i.Tag], k)
	}
}

func (i Inst) Extended() ExtendedInst {
	i.assertKind(DataExtended)

	return ExtendedInst{
		Opcode:  Extended(i.Data.A >> 16),
		Small:   uint16(i.Data.A),
		Operand: i.Data.B,
	}
}

func (i Inst) UnNode() UnNode {
	i.assertKind(DataUnNode)

	return UnNode{
		SrcNode: NodeOffset(int32(i.Data.A)),
		Operand: Ref(i.Data.B),
	}
}

func (i Inst) UnTok() UnTok {
	i.assertKind(DataUnTok)

	return UnTok{
		SrcTok:  TokenOffset(int32(i.Data.A)),
		Operand: Ref(i.Data.B),
	}
}

func (i Inst) PlNode() PlNode {
	i.assertKind(DataPlNode)

	return PlNode{
		SrcNode: NodeOffset(int32(i.Data.A)),
		Payload: i.Data.B,
	}
}

func (i Inst) PlTok() PlTok {
	i.assertKind(DataPlTok)

	return PlTok{
		SrcTok:  TokenOffset(int32(i.Data.A)),
		Payload: i.Data.B,
	}
}

func (i Inst) Bin() BinData {
	i.assertKind(DataBin)

	return BinData{Lhs: Ref(i.Data.A), Rhs: Ref(i.Data.B)}
}

func (i Inst) Str() StrData {
	i.assertKind(DataStr)

	return StrData{Start: NullTerminatedString(i.Data.A), Len: i.Data.B}
}

func (i Inst) StrTok() StrTok {
	i.assertKind(DataStrTok)

	return StrTok{
		Start:  NullTerminatedString(i.Data.A),
		SrcTok: TokenOffset(int32(i.Data.B)),
	}
}

func (i Inst) StrOp() StrOp {
	i.assertKind(DataStrOp)

	return StrOp{Str: NullTerminatedString(i.Data.A), Operand: Ref(i.Data.B)}
}

func (i Inst) Node() NodeOffset {
	i.assertKind(DataNode)

	return NodeOffset(int32(i.Data.A))
}

func (i Inst) Int() uint64 {
	i.assertKind(DataInt)

	return uint64(i.Data.A) | uint64(i.Data.B)<<32
}

func (i Inst) Float() float64 {
	i.assertKind(DataFloat)

	return math.Float64frombits(uint64(i.Data.A) | uint64(i.Data.B)<<32)
}

func (i Inst) PtrType() PtrTypeData {
	i.assertKind(DataPtrType)

	return PtrTypeData{Flags: PtrTypeFlags(i.Data.A), Payload: i.Data.B}
}

func (i Inst) IntType() IntTypeData {
	i.assertKind(DataIntType)

	return IntTypeData{
		SrcNode: NodeOffset(int32(i.Data.A)),
		Signed:  i.Data.B>>16 != 0,
		Bits:    uint16(i.Data.B),
	}
}

func (i Inst) BoolBr() BoolBr {
	i.assertKind(DataBoolBr)

	return BoolBr{Operand: Ref(i.Data.A), Payload: i.Data.B}
}

func (i Inst) Break() BreakData {
	i.assertKind(DataBreak)

	return BreakData{Operand: Ref(i.Data.A), Payload: i.Data.B}
}

func (i Inst) DbgStmt() (line, column uint32) {
	i.assertKind(DataDbgStmt)

	return i.Data.A, i.Data.B
}

func (i Inst) Defer() DeferBody {
	i.assertKind(DataDefer)

	return DeferBody{Index: i.Data.A, Len: i.Data.B}
}

func (i Inst) DeferErrCode() (errCode Ref, payload uint32) {
	i.assertKind(DataDeferErrCode)

	return Ref(i.Data.A), i.Data.B
}

func (i Inst) ElemValImm() (operand Ref, idx uint32) {
	i.assertKind(DataElemValImm)

	return Ref(i.Data.A), i.Data.B
}

func (k DataKind) String() string {
	names := [...]string{
		DataInvalid:      "invalid",
		DataExtended:     "extended",
		DataUnNode:       "un_node",
		DataUnTok:        "un_tok",
		DataPlNode:       "pl_node",
		DataPlTok:        "pl_tok",
		DataBin:          "bin",
		DataStr:          "str",
		DataStrTok:       "str_tok",
		DataStrOp:        "str_op",
		DataNode:         "node",
		DataInt:          "int",
		DataFloat:        "float",
		DataPtrType:      "ptr_type",
		DataIntType:      "int_type",
		DataBoolBr:       "bool_br",
		DataBreak:        "break",
		DataDbgStmt:      "dbg_stmt",
		DataDefer:        "defer",
		DataDeferErrCode: "defer_err_code",
		DataElemValImm:   "elem_val_imm",
	}

	if int(k) >= len(names) {
		return fmt.Sprintf("DataKind(%d)", uint8(k))
	}

	return names[k]
}
