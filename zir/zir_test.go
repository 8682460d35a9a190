package zir

import "testing"

func TestCompileErrors(t *testing.T) {
	b := NewBuilder()

	b.Inst(TagInt, Data{A: 1})

	c := b.Finish()

	if c.HasCompileErrors() {
		t.Errorf("fresh container reports compile errors")
	}

	if c.LoweringFailed() {
		t.Errorf("nonempty container reports failed lowering")
	}

	b = NewBuilder()

	payload := AddExtra(b, CompileErrors{ItemsLen: 1})

	AddExtra(b, CompileErrorItem{
		Msg:        b.String("expected expression"),
		ByteOffset: 17,
	})

	b.SetCompileErrors(payload)

	c = b.Finish()

	if !c.HasCompileErrors() {
		t.Errorf("recorded error not reported")
	}

	if !c.LoweringFailed() {
		t.Errorf("empty container with errors not reported as failed")
	}

	rec, i := ExtraData[CompileErrors](c, c.Extra[ExtraCompileErrors])
	if rec.ItemsLen != 1 {
		t.Errorf("items len %d", rec.ItemsLen)
	}

	item, _ := ExtraData[CompileErrorItem](c, i)
	if got := c.NullTerminatedString(item.Msg); got != "expected expression" {
		t.Errorf("message %q", got)
	}

	if item.ByteOffset != 17 {
		t.Errorf("byte offset %d", item.ByteOffset)
	}
}

func TestImports(t *testing.T) {
	b := NewBuilder()

	b.Inst(TagInt, Data{A: 1})

	payload := AddExtra(b, Imports{ImportsLen: 2})

	AddExtra(b, ImportItem{Name: b.String("std"), Token: 3})
	AddExtra(b, ImportItem{Name: b.String("builtin"), Token: 9})

	b.SetImports(payload)

	c := b.Finish()

	at := c.Extra[ExtraImports]
	if at == 0 {
		t.Fatalf("imports slot not set")
	}

	rec, i := ExtraData[Imports](c, at)
	if rec.ImportsLen != 2 {
		t.Fatalf("imports len %d", rec.ImportsLen)
	}

	want := []struct {
		name  string
		token TokenOffset
	}{
		{"std", 3},
		{"builtin", 9},
	}

	for _, w := range want {
		var item ImportItem

		item, i = ExtraData[ImportItem](c, i)

		if got := c.NullTerminatedString(item.Name); got != w.name {
			t.Errorf("import name %q, wanted %q", got, w.name)
		}

		if item.Token != w.token {
			t.Errorf("import %v token %d", w.name, item.Token)
		}
	}
}

func TestLoweringFailedPanicsWithoutErrors(t *testing.T) {
	c := NewBuilder().Finish()

	defer func() {
		if recover() == nil {
			t.Errorf("empty container without errors did not panic")
		}
	}()

	_ = c.LoweringFailed()
}

func TestDeinit(t *testing.T) {
	c := buildTestCode(t)

	c.Deinit()

	if c.Tags != nil || c.Extra != nil || c.StringBytes != nil || c.Data != nil {
		t.Errorf("deinit left buffers behind")
	}
}
