package zir

var tagNames = [numTags]string{
	TagAdd:        "add",
	TagAddwrap:    "addwrap",
	TagAddSat:     "add_sat",
	TagAddUnsafe:  "add_unsafe",
	TagSub:        "sub",
	TagSubwrap:    "subwrap",
	TagSubSat:     "sub_sat",
	TagMul:        "mul",
	TagMulwrap:    "mulwrap",
	TagMulSat:     "mul_sat",
	TagDiv:        "div",
	TagMod:        "mod",
	TagRem:        "rem",
	TagModRem:     "mod_rem",
	TagShl:        "shl",
	TagShlExact:   "shl_exact",
	TagShlSat:     "shl_sat",
	TagShr:        "shr",
	TagShrExact:   "shr_exact",
	TagMin:        "min",
	TagMax:        "max",
	TagMulAdd:     "mul_add",
	TagBitAnd:     "bit_and",
	TagBitOr:      "bit_or",
	TagXor:        "xor",
	TagBitNot:     "bit_not",
	TagBoolNot:    "bool_not",
	TagNegate:     "negate",
	TagNegateWrap: "negate_wrap",
	TagBoolBrAnd:  "bool_br_and",
	TagBoolBrOr:   "bool_br_or",

	TagCmpLt:  "cmp_lt",
	TagCmpLte: "cmp_lte",
	TagCmpEq:  "cmp_eq",
	TagCmpGte: "cmp_gte",
	TagCmpGt:  "cmp_gt",
	TagCmpNeq: "cmp_neq",

	TagParam:                "param",
	TagParamComptime:        "param_comptime",
	TagParamAnytype:         "param_anytype",
	TagParamAnytypeComptime: "param_anytype_comptime",
	TagDeclaration:          "declaration",
	TagExtended:             "extended",

	TagBlock:                    "block",
	TagBlockComptime:            "block_comptime",
	TagBlockInline:              "block_inline",
	TagSuspendBlock:             "suspend_block",
	TagLoop:                     "loop",
	TagCImport:                  "c_import",
	TagTypeofBuiltin:            "typeof_builtin",
	TagBreak:                    "break",
	TagBreakInline:              "break_inline",
	TagSwitchContinue:           "switch_continue",
	TagRepeat:                   "repeat",
	TagRepeatInline:             "repeat_inline",
	TagCondbr:                   "condbr",
	TagCondbrInline:             "condbr_inline",
	TagSwitchBlock:              "switch_block",
	TagSwitchBlockRef:           "switch_block_ref",
	TagTry:                      "try",
	TagTryPtr:                   "try_ptr",
	TagUnreachable:              "unreachable",
	TagCheckComptimeControlFlow: "check_comptime_control_flow",
	TagForLen:                   "for_len",

	TagCall:        "call",
	TagFieldCall:   "field_call",
	TagBuiltinCall: "builtin_call",

	TagFunc:         "func",
	TagFuncInferred: "func_inferred",
	TagFuncFancy:    "func_fancy",

	TagDefer:        "defer",
	TagDeferErrCode: "defer_err_code",

	TagAlloc:                    "alloc",
	TagAllocMut:                 "alloc_mut",
	TagAllocComptimeMut:         "alloc_comptime_mut",
	TagAllocInferred:            "alloc_inferred",
	TagAllocInferredMut:         "alloc_inferred_mut",
	TagAllocInferredComptime:    "alloc_inferred_comptime",
	TagAllocInferredComptimeMut: "alloc_inferred_comptime_mut",
	TagMakePtrConst:             "make_ptr_const",
	TagResolveInferredAlloc:     "resolve_inferred_alloc",
	TagLoad:                     "load",
	TagStoreNode:                "store_node",
	TagStoreToInferredPtr:       "store_to_inferred_ptr",
	TagRef:                      "ref",

	TagInt:                 "int",
	TagIntBig:              "int_big",
	TagFloat:               "float",
	TagFloat128:            "float128",
	TagStr:                 "str",
	TagEnumLiteral:         "enum_literal",
	TagDeclLiteral:         "decl_literal",
	TagDeclLiteralNoCoerce: "decl_literal_no_coerce",
	TagDeclRef:             "decl_ref",
	TagDeclVal:             "decl_val",
	TagErrorValue:          "error_value",
	TagImport:              "import",

	TagArrayType:            "array_type",
	TagArrayTypeSentinel:    "array_type_sentinel",
	TagVectorType:           "vector_type",
	TagArrayCat:             "array_cat",
	TagArrayMul:             "array_mul",
	TagElemType:             "elem_type",
	TagIndexablePtrElemType: "indexable_ptr_elem_type",
	TagIndexablePtrLen:      "indexable_ptr_len",
	TagAnyframeType:         "anyframe_type",
	TagErrorSetDecl:         "error_set_decl",
	TagErrorUnionType:       "error_union_type",
	TagMergeErrorSets:       "merge_error_sets",
	TagOptionalType:         "optional_type",
	TagPtrType:              "ptr_type",
	TagIntType:              "int_type",
	TagTypeof:               "typeof",
	TagTypeofLog2IntType:    "typeof_log2_int_type",
	TagRetType:              "ret_type",

	TagFieldPtr:         "field_ptr",
	TagFieldVal:         "field_val",
	TagFieldPtrNamed:    "field_ptr_named",
	TagFieldValNamed:    "field_val_named",
	TagElemPtr:          "elem_ptr",
	TagElemVal:          "elem_val",
	TagElemPtrNode:      "elem_ptr_node",
	TagElemValNode:      "elem_val_node",
	TagElemValImm:       "elem_val_imm",
	TagArrayBasePtr:     "array_base_ptr",
	TagFieldBasePtr:     "field_base_ptr",
	TagSliceStart:       "slice_start",
	TagSliceEnd:         "slice_end",
	TagSliceSentinel:    "slice_sentinel",
	TagSliceLength:      "slice_length",
	TagOptEuBasePtrInit: "opt_eu_base_ptr_init",
	TagCoercePtrElemTy:  "coerce_ptr_elem_ty",

	TagEnsureResultUsed:           "ensure_result_used",
	TagEnsureResultNonError:       "ensure_result_non_error",
	TagEnsureErrUnionPayloadVoid:  "ensure_err_union_payload_void",
	TagValidateArrayInitTy:        "validate_array_init_ty",
	TagValidateStructInitTy:       "validate_struct_init_ty",
	TagValidateStructInitResultTy: "validate_struct_init_result_ty",
	TagValidatePtrStructInit:      "validate_ptr_struct_init",
	TagValidateArrayInitResultTy:  "validate_array_init_result_ty",
	TagValidatePtrArrayInit:       "validate_ptr_array_init",
	TagValidateRefTy:              "validate_ref_ty",
	TagValidateConst:              "validate_const",

	TagStructInitEmpty:          "struct_init_empty",
	TagStructInitEmptyResult:    "struct_init_empty_result",
	TagStructInitEmptyRefResult: "struct_init_empty_ref_result",
	TagStructInitAnon:           "struct_init_anon",
	TagStructInit:               "struct_init",
	TagStructInitRef:            "struct_init_ref",
	TagStructInitFieldType:      "struct_init_field_type",
	TagStructInitFieldPtr:       "struct_init_field_ptr",
	TagArrayInitAnon:            "array_init_anon",
	TagArrayInit:                "array_init",
	TagArrayInitRef:             "array_init_ref",
	TagArrayInitElemType:        "array_init_elem_type",
	TagArrayInitElemPtr:         "array_init_elem_ptr",
	TagUnionInit:                "union_init",

	TagErrUnionCode:             "err_union_code",
	TagErrUnionCodePtr:          "err_union_code_ptr",
	TagErrUnionPayloadUnsafe:    "err_union_payload_unsafe",
	TagErrUnionPayloadUnsafePtr: "err_union_payload_unsafe_ptr",
	TagOptionalPayloadSafe:      "optional_payload_safe",
	TagOptionalPayloadSafePtr:   "optional_payload_safe_ptr",
	TagOptionalPayloadUnsafe:    "optional_payload_unsafe",
	TagOptionalPayloadUnsafePtr: "optional_payload_unsafe_ptr",
	TagIsNonNull:                "is_non_null",
	TagIsNonNullPtr:             "is_non_null_ptr",
	TagIsNonErr:                 "is_non_err",
	TagIsNonErrPtr:              "is_non_err_ptr",
	TagGetUnionTag:              "get_union_tag",

	TagRetNode:                         "ret_node",
	TagRetLoad:                         "ret_load",
	TagRetImplicit:                     "ret_implicit",
	TagRetErrValue:                     "ret_err_value",
	TagRetErrValueCode:                 "ret_err_value_code",
	TagRetPtr:                          "ret_ptr",
	TagSaveErrRetIndex:                 "save_err_ret_index",
	TagRestoreErrRetIndexUnconditional: "restore_err_ret_index_unconditional",
	TagRestoreErrRetIndexFnEntry:       "restore_err_ret_index_fn_entry",

	TagAsNode:             "as_node",
	TagAsShiftOperand:     "as_shift_operand",
	TagBitcast:            "bitcast",
	TagTypeInfo:           "type_info",
	TagSizeOf:             "size_of",
	TagBitSizeOf:          "bit_size_of",
	TagAlignOf:            "align_of",
	TagIntFromPtr:         "int_from_ptr",
	TagIntFromEnum:        "int_from_enum",
	TagEnumFromInt:        "enum_from_int",
	TagIntFromBool:        "int_from_bool",
	TagIntFromFloat:       "int_from_float",
	TagFloatFromInt:       "float_from_int",
	TagPtrFromInt:         "ptr_from_int",
	TagCompileError:       "compile_error",
	TagSetEvalBranchQuota: "set_eval_branch_quota",
	TagEmbedFile:          "embed_file",
	TagErrorName:          "error_name",
	TagPanic:              "panic",
	TagTrap:               "trap",
	TagSetRuntimeSafety:   "set_runtime_safety",
	TagTagName:            "tag_name",
	TagTypeName:           "type_name",
	TagFrameType:          "frame_type",
	TagFrameSize:          "frame_size",
	TagSplat:              "splat",
	TagReduce:             "reduce",
	TagShuffle:            "shuffle",
	TagAtomicLoad:         "atomic_load",
	TagAtomicRmw:          "atomic_rmw",
	TagAtomicStore:        "atomic_store",
	TagMemcpy:             "memcpy",
	TagMemset:             "memset",
	TagExport:             "export",

	TagSqrt:  "sqrt",
	TagSin:   "sin",
	TagCos:   "cos",
	TagTan:   "tan",
	TagExp:   "exp",
	TagExp2:  "exp2",
	TagLog:   "log",
	TagLog2:  "log2",
	TagLog10: "log10",
	TagAbs:   "abs",
	TagFloor: "floor",
	TagCeil:  "ceil",
	TagTrunc: "trunc",
	TagRound: "round",

	TagDbgStmt:   "dbg_stmt",
	TagDbgVarPtr: "dbg_var_ptr",
	TagDbgVarVal: "dbg_var_val",
}

var extNames = [numExtended]string{
	ExtStructDecl:       "struct_decl",
	ExtEnumDecl:         "enum_decl",
	ExtUnionDecl:        "union_decl",
	ExtOpaqueDecl:       "opaque_decl",
	ExtReify:            "reify",
	ExtThis:             "this",
	ExtRetAddr:          "ret_addr",
	ExtBuiltinSrc:       "builtin_src",
	ExtErrorReturnTrace: "error_return_trace",
	ExtFrame:            "frame",
	ExtFrameAddress:     "frame_address",
	ExtAlloc:            "alloc",
	ExtBuiltinExtern:    "builtin_extern",
	ExtAsm:              "asm",
	ExtAsmExpr:          "asm_expr",
	ExtCompileLog:       "compile_log",
	ExtMinMulti:         "min_multi",
	ExtMaxMulti:         "max_multi",
	ExtAddWithOverflow:  "add_with_overflow",
	ExtSubWithOverflow:  "sub_with_overflow",
	ExtMulWithOverflow:  "mul_with_overflow",
	ExtShlWithOverflow:  "shl_with_overflow",
	ExtCDefine:          "c_define",
	ExtCInclude:         "c_include",
	ExtCUndef:           "c_undef",
	ExtWasmMemorySize:   "wasm_memory_size",
	ExtWasmMemoryGrow:   "wasm_memory_grow",
	ExtPrefetch:         "prefetch",
	ExtErrSetCast:       "err_set_cast",
	ExtSetFloatMode:     "set_float_mode",
	ExtBranchHint:       "branch_hint",
	ExtInComptime:       "in_comptime",
	ExtClosureGet:       "closure_get",
	ExtFieldParentPtr:   "field_parent_ptr",
	ExtSelect:           "select",
	ExtCVaArg:           "c_va_arg",
	ExtCVaCopy:          "c_va_copy",
	ExtCVaEnd:           "c_va_end",
	ExtCVaStart:         "c_va_start",
	ExtWorkItemId:       "work_item_id",
	ExtWorkGroupSize:    "work_group_size",
	ExtWorkGroupId:      "work_group_id",
}
