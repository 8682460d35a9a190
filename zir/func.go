package zir

type (
	// Func is the fixed payload prefix of func and func_inferred.
	// Trailing: RetBodyLen return type body indices, BodyLen body
	// indices, then four source hash words when the body is nonempty
	// (a prototype has no hash to track).
	Func struct {
		ParamBlock Index
		RetBodyLen uint32
		BodyLen    uint32
	}

	// FuncFancy is the payload prefix of func_fancy: a function with
	// align/addrspace/linksection/callconv expressions. Trailing, each
	// gated by Bits: align, addrspace, section and callconv clauses
	// (a length word plus body when the corresponding Body bit is set,
	// a single Ref word when the Ref bit is set), then the return type
	// length word and body, the body length word and body, then the
	// source hash words when the body is nonempty.
	FuncFancy struct {
		ParamBlock Index
		Bits       FuncFancyBits
	}

	// Param is the payload of param and param_comptime; trails with
	// BodyLen indices computing the parameter type.
	Param struct {
		Name    NullTerminatedString
		BodyLen uint32
	}

	// FuncFancyBits is a packed word of func_fancy shape flags.
	FuncFancyBits uint32

	// FnInfo is the decoded shape of any of the three func tags.
	// Slices alias the container.
	FnInfo struct {
		ParamBlock     Index
		ParamBody      []Index
		RetTyBody      []Index
		Body           []Index
		TotalParamsLen uint32

		// func_fancy clause bodies, nil otherwise.
		AlignBody     []Index
		AddrspaceBody []Index
		SectionBody   []Index
		CallconvBody  []Index
	}
)

const (
	FancyHasAlignRef FuncFancyBits = 1 << iota
	FancyHasAlignBody
	FancyHasAddrspaceRef
	FancyHasAddrspaceBody
	FancyHasSectionRef
	FancyHasSectionBody
	FancyHasCcRef
	FancyHasCcBody
	FancyIsVarArgs
	FancyIsInferredError
	FancyIsNoinline
)

func (b FuncFancyBits) Has(bit FuncFancyBits) bool { return b&bit != 0 }

// fancyClause reads one gated clause: a body when the body bit is set,
// a bare Ref word when the ref bit is set.
func (c *Code) fancyClause(i uint32, bits FuncFancyBits, refBit, bodyBit FuncFancyBits) (body []Index, next uint32) {
	switch {
	case bits.Has(bodyBit):
		l := c.Extra[i]
		i++

		return c.BodySlice(i, l), i + l
	case bits.Has(refBit):
		return nil, i + 1
	default:
		return nil, i
	}
}

// GetFnInfo decodes the function at fn, which must carry one of the
// func, func_inferred or func_fancy tags.
func (c *Code) GetFnInfo(fn Index) FnInfo {
	in := c.Get(fn)

	var r FnInfo

	switch in.Tag {
	case TagFunc, TagFuncInferred:
		rec, i := ExtraData[Func](c, in.PlNode().Payload)

		r.ParamBlock = rec.ParamBlock

		r.RetTyBody = c.BodySlice(i, rec.RetBodyLen)
		i += rec.RetBodyLen

		r.Body = c.BodySlice(i, rec.BodyLen)

	case TagFuncFancy:
		rec, i := ExtraData[FuncFancy](c, in.PlNode().Payload)

		r.ParamBlock = rec.ParamBlock

		r.AlignBody, i = c.fancyClause(i, rec.Bits, FancyHasAlignRef, FancyHasAlignBody)
		r.AddrspaceBody, i = c.fancyClause(i, rec.Bits, FancyHasAddrspaceRef, FancyHasAddrspaceBody)
		r.SectionBody, i = c.fancyClause(i, rec.Bits, FancyHasSectionRef, FancyHasSectionBody)
		r.CallconvBody, i = c.fancyClause(i, rec.Bits, FancyHasCcRef, FancyHasCcBody)

		retLen := c.Extra[i]
		i++

		r.RetTyBody = c.BodySlice(i, retLen)
		i += retLen

		bodyLen := c.Extra[i]
		i++

		r.Body = c.BodySlice(i, bodyLen)

	default:
		panicf("GetFnInfo on %v instruction %d", in.Tag, fn)
	}

	r.ParamBody = c.GetParamBody(r.ParamBlock)

	for _, pi := range r.ParamBody {
		switch c.Tags[pi] {
		case TagParam, TagParamComptime, TagParamAnytype, TagParamAnytypeComptime:
			r.TotalParamsLen++
		}
	}

	return r
}

// GetParamBody returns the body of the function's parameter block.
func (c *Code) GetParamBody(block Index) []Index {
	in := c.Get(block)

	switch in.Tag {
	case TagBlock, TagBlockComptime, TagBlockInline:
	default:
		panicf("GetParamBody on %v instruction %d", in.Tag, block)
	}

	rec, i := ExtraData[Block](c, in.PlNode().Payload)

	return c.BodySlice(i, rec.BodyLen)
}

// GetParamName returns the parameter name, which for anytype parameters
// lives in the instruction itself rather than the payload.
func (c *Code) GetParamName(param Index) NullTerminatedString {
	in := c.Get(param)

	switch in.Tag {
	case TagParam, TagParamComptime:
		rec, _ := ExtraData[Param](c, in.PlTok().Payload)

		return rec.Name
	case TagParamAnytype, TagParamAnytypeComptime:
		return in.StrTok().Start
	default:
		panicf("GetParamName on %v instruction %d", in.Tag, param)
	}

	return 0
}

// GetAssociatedSrcHash returns the 128-bit source hash correlated with
// the instruction across incremental updates, if it has one.
// Declarations carry the hash inline; function bodies trail it after
// the body. Prototypes have none.
func (c *Code) GetAssociatedSrcHash(inst Index) ([4]uint32, bool) {
	in := c.Get(inst)

	switch in.Tag {
	case TagDeclaration:
		return c.GetDeclaration(inst).SrcHash, true

	case TagFunc, TagFuncInferred:
		rec, i := ExtraData[Func](c, in.PlNode().Payload)
		if rec.BodyLen == 0 {
			return [4]uint32{}, false
		}

		i += rec.RetBodyLen + rec.BodyLen

		return [4]uint32{c.Extra[i], c.Extra[i+1], c.Extra[i+2], c.Extra[i+3]}, true

	case TagFuncFancy:
		rec, i := ExtraData[FuncFancy](c, in.PlNode().Payload)

		_, i = c.fancyClause(i, rec.Bits, FancyHasAlignRef, FancyHasAlignBody)
		_, i = c.fancyClause(i, rec.Bits, FancyHasAddrspaceRef, FancyHasAddrspaceBody)
		_, i = c.fancyClause(i, rec.Bits, FancyHasSectionRef, FancyHasSectionBody)
		_, i = c.fancyClause(i, rec.Bits, FancyHasCcRef, FancyHasCcBody)

		retLen := c.Extra[i]
		i += 1 + retLen

		bodyLen := c.Extra[i]
		i += 1 + bodyLen

		if bodyLen == 0 {
			return [4]uint32{}, false
		}

		return [4]uint32{c.Extra[i], c.Extra[i+1], c.Extra[i+2], c.Extra[i+3]}, true
	}

	return [4]uint32{}, false
}
