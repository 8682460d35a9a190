package zir

import "testing"

func TestBuilderStringInterning(t *testing.T) {
	b := NewBuilder()

	a := b.String("name")
	c := b.String("other")
	d := b.String("name")

	if a != d {
		t.Errorf("equal strings interned at %d and %d", a, d)
	}

	if a == c {
		t.Errorf("distinct strings share offset %d", a)
	}

	if e := b.String(""); e != EmptyString {
		t.Errorf("empty string at %d", e)
	}

	code := b.Finish()

	if got := code.NullTerminatedString(a); got != "name" {
		t.Errorf("read back %q", got)
	}

	if got := code.NullTerminatedString(EmptyString); got != "" {
		t.Errorf("empty string read back %q", got)
	}
}

func TestBuilderRejectsEmbeddedZero(t *testing.T) {
	b := NewBuilder()

	defer func() {
		if recover() == nil {
			t.Errorf("embedded zero byte accepted")
		}
	}()

	_ = b.String("a\x00b")
}

func TestBuilderExtraBackpatch(t *testing.T) {
	b := NewBuilder()

	at := b.Extra(0, 7)

	b.SetExtra(at, 5)

	c := b.Finish()

	if c.Extra[at] != 5 || c.Extra[at+1] != 7 {
		t.Errorf("extra words %v", c.Extra[at:at+2])
	}
}

func TestBuilderDeclarationRejectsMismatchedBodies(t *testing.T) {
	b := NewBuilder()

	v := b.Inst(TagInt, Data{A: 1})

	defer func() {
		if recover() == nil {
			t.Errorf("type body on an untyped declaration accepted")
		}
	}()

	_ = b.Declaration(0, DeclConst, testHash, 0, 0, "a", "", DeclBodies{
		Type:  []Index{v},
		Value: []Index{v},
	})
}
