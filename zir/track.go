package zir

import "github.com/truemedian/zig/zir/set"

// InstTrackingVersion must be bumped whenever the tag set changes, so
// the dispatch in findTrackableInner is re-audited against every tag.
const InstTrackingVersion = 2

// DeclContents is the result of one trackable discovery call. It is
// owned by the caller and reused across calls; every call clears it
// first. Lists are in discovery order.
type DeclContents struct {
	// FuncDecl is the declaration's function body owner. A declaration
	// has at most one.
	FuncDecl OptionalIndex

	// ExplicitTypes holds container declarations and reifications.
	ExplicitTypes []Index

	// Other holds the remaining trackable instructions, currently
	// anonymous struct initializations.
	Other []Index
}

func (dc *DeclContents) Clear() {
	dc.FuncDecl = NoneIndex
	dc.ExplicitTypes = dc.ExplicitTypes[:0]
	dc.Other = dc.Other[:0]
}

// FindTrackable computes the set of instructions reachable from the
// declaration at declInst whose identity the incremental layer must
// correlate across edits. Nested declarations are boundaries: each is
// correlated by name and discovered by its own FindTrackable call.
func (c *Code) FindTrackable(dc *DeclContents, declInst Index) {
	dc.Clear()

	d := c.GetDeclaration(declInst)

	defers := set.MakeBits[uint32](0)

	c.findTrackableBody(dc, &defers, d.TypeBody)
	c.findTrackableBody(dc, &defers, d.AlignBody)
	c.findTrackableBody(dc, &defers, d.LinksectionBody)
	c.findTrackableBody(dc, &defers, d.AddrspaceBody)
	c.findTrackableBody(dc, &defers, d.ValueBody)
}

// FindTrackableRoot is FindTrackable for the file's root container.
func (c *Code) FindTrackableRoot(dc *DeclContents) {
	dc.Clear()

	defers := set.MakeBits[uint32](0)

	c.findTrackableInner(dc, &defers, MainStructInst)
}

func (c *Code) findTrackableBody(dc *DeclContents, defers *set.Bits[uint32], body []Index) {
	for _, inst := range body {
		c.findTrackableInner(dc, defers, inst)
	}
}

func (c *Code) findTrackableInner(dc *DeclContents, defers *set.Bits[uint32], inst Index) {
	in := c.Get(inst)

	switch in.Tag {
	case TagDeclaration:
		panicf("declaration %d inside a declaration body", inst)

	case TagFunc, TagFuncInferred, TagFuncFancy:
		// The function instruction lives inside its own param block, so
		// the params were already visited on the way here.
		fi := c.GetFnInfo(inst)

		if len(fi.Body) != 0 {
			if dc.FuncDecl != NoneIndex {
				panicf("second function body %d in one declaration", inst)
			}

			dc.FuncDecl = inst.ToOptional()
		}

		c.findTrackableBody(dc, defers, fi.AlignBody)
		c.findTrackableBody(dc, defers, fi.AddrspaceBody)
		c.findTrackableBody(dc, defers, fi.SectionBody)
		c.findTrackableBody(dc, defers, fi.CallconvBody)
		c.findTrackableBody(dc, defers, fi.RetTyBody)
		c.findTrackableBody(dc, defers, fi.Body)

	case TagParam, TagParamComptime:
		rec, i := ExtraData[Param](c, in.PlTok().Payload)

		c.findTrackableBody(dc, defers, c.BodySlice(i, rec.BodyLen))

	case TagBlock, TagBlockComptime, TagBlockInline, TagSuspendBlock,
		TagLoop, TagCImport, TagTypeofBuiltin:
		rec, i := ExtraData[Block](c, in.PlNode().Payload)

		c.findTrackableBody(dc, defers, c.BodySlice(i, rec.BodyLen))

	case TagBoolBrAnd, TagBoolBrOr:
		rec, i := ExtraData[Block](c, in.BoolBr().Payload)

		c.findTrackableBody(dc, defers, c.BodySlice(i, rec.BodyLen))

	case TagCondbr, TagCondbrInline:
		rec, i := ExtraData[CondBr](c, in.PlNode().Payload)

		c.findTrackableBody(dc, defers, c.BodySlice(i, rec.ThenBodyLen))
		c.findTrackableBody(dc, defers, c.BodySlice(i+rec.ThenBodyLen, rec.ElseBodyLen))

	case TagTry, TagTryPtr:
		rec, i := ExtraData[Try](c, in.PlNode().Payload)

		c.findTrackableBody(dc, defers, c.BodySlice(i, rec.BodyLen))

	case TagSwitchBlock, TagSwitchBlockRef:
		c.findTrackableSwitch(dc, defers, in)

	case TagCall:
		rec, base := ExtraData[Call](c, in.PlNode().Payload)

		c.findTrackableArgs(dc, defers, base, rec.Flags.ArgsLen())

	case TagFieldCall:
		rec, base := ExtraData[FieldCall](c, in.PlNode().Payload)

		c.findTrackableArgs(dc, defers, base, rec.Flags.ArgsLen())

	case TagDefer:
		d := in.Defer()

		c.findTrackableDefer(dc, defers, d.Index, d.Len)

	case TagDeferErrCode:
		_, payload := in.DeferErrCode()

		rec, _ := ExtraData[DeferErrCodePayload](c, payload)

		c.findTrackableDefer(dc, defers, rec.Index, rec.Len)

	case TagStructInitAnon:
		dc.Other = append(dc.Other, inst)

	case TagExtended:
		switch in.Extended().Opcode {
		case ExtStructDecl:
			c.findTrackableStruct(dc, defers, inst)
		case ExtEnumDecl:
			info := c.EnumDeclInfo(inst)

			dc.ExplicitTypes = append(dc.ExplicitTypes, inst)

			c.findTrackableBody(dc, defers, info.Body)
		case ExtUnionDecl:
			info := c.UnionDeclInfo(inst)

			dc.ExplicitTypes = append(dc.ExplicitTypes, inst)

			c.findTrackableBody(dc, defers, info.Body)
		case ExtOpaqueDecl:
			dc.ExplicitTypes = append(dc.ExplicitTypes, inst)
		case ExtReify:
			dc.ExplicitTypes = append(dc.ExplicitTypes, inst)
		}
	}
}

// findTrackableDefer visits a defer body once, no matter how many defer
// sites reference it. The lowering duplicates the body reference at
// every exit, so an unconditional visit recurses exponentially on
// nested defers.
func (c *Code) findTrackableDefer(dc *DeclContents, defers *set.Bits[uint32], index, length uint32) {
	if defers.IsSet(index) {
		return
	}

	defers.Set(index)

	c.findTrackableBody(dc, defers, c.BodySlice(index, length))
}

func (c *Code) findTrackableArgs(dc *DeclContents, defers *set.Bits[uint32], base, argsLen uint32) {
	start := argsLen

	for a := uint32(0); a < argsLen; a++ {
		end := c.Extra[base+a]

		c.findTrackableBody(dc, defers, c.BodySlice(base+start, end-start))

		start = end
	}
}

func (c *Code) findTrackableSwitch(dc *DeclContents, defers *set.Bits[uint32], in Inst) {
	rec, i := ExtraData[SwitchBlock](c, in.PlNode().Payload)

	var multiLen uint32

	if rec.Bits.HasMultiCases() {
		multiLen = c.Extra[i]
		i++
	}

	prong := func() {
		info := ProngInfo(c.Extra[i])
		i++

		c.findTrackableBody(dc, defers, c.BodySlice(i, info.BodyLen()))
		i += info.BodyLen()
	}

	if rec.Bits.HasElse() {
		prong()
	}

	for s := uint32(0); s < rec.Bits.ScalarCasesLen(); s++ {
		i++ // item

		prong()
	}

	for m := uint32(0); m < multiLen; m++ {
		itemsLen := c.Extra[i]
		rangesLen := c.Extra[i+1]
		i += 2 + itemsLen + 2*rangesLen

		prong()
	}
}

// Per-field flag bag bits of a struct declaration.
const (
	structFieldHasAlign uint32 = 1 << iota
	structFieldHasInit
	structFieldHasTypeBody
	structFieldIsComptime

	structFieldBits     = 4
	structFieldsPerWord = 32 / structFieldBits
	structFieldBitsMask = 1<<structFieldBits - 1
)

// findTrackableStruct walks the field headers of a struct declaration
// only to compute the combined word length of all trailing field
// bodies; they are stored back to back and recursion does not need the
// per-field boundaries.
func (c *Code) findTrackableStruct(dc *DeclContents, defers *set.Bits[uint32], inst Index) {
	info := c.StructDeclInfo(inst)

	dc.ExplicitTypes = append(dc.ExplicitTypes, inst)

	c.findTrackableBody(dc, defers, info.BackingIntBody)

	if info.FieldsLen == 0 {
		return
	}

	bags := (info.FieldsLen + structFieldsPerWord - 1) / structFieldsPerWord

	bagsAt := info.FieldsAt
	i := bagsAt + bags

	var total uint32

	for f := uint32(0); f < info.FieldsLen; f++ {
		bits := c.Extra[bagsAt+f/structFieldsPerWord] >> (structFieldBits * (f % structFieldsPerWord)) & structFieldBitsMask

		i += 2 // name, doc comment

		if bits&structFieldHasTypeBody != 0 {
			total += c.Extra[i]
		}

		i++ // type body length or type ref

		if bits&structFieldHasAlign != 0 {
			total += c.Extra[i]
			i++
		}

		if bits&structFieldHasInit != 0 {
			total += c.Extra[i]
			i++
		}
	}

	c.findTrackableBody(dc, defers, c.BodySlice(i, total))
}
