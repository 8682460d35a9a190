package set

import "testing"

func TestBits(t *testing.T) {
	s := MakeBits[uint32](0)

	for _, k := range []uint32{0, 1, 63, 64, 500} {
		s.Set(k)
	}

	for _, k := range []uint32{0, 1, 63, 64, 500} {
		if !s.IsSet(k) {
			t.Errorf("%d not set", k)
		}
	}

	if s.IsSet(2) || s.IsSet(501) || s.IsSet(100000) {
		t.Errorf("unexpected bits set")
	}

	if s.Size() != 5 {
		t.Errorf("size %d", s.Size())
	}

	s.Clear(63)

	if s.IsSet(63) {
		t.Errorf("63 still set")
	}

	var got []uint32

	s.Range(func(k uint32) bool {
		got = append(got, k)

		return true
	})

	want := []uint32{0, 1, 64, 500}

	if len(got) != len(want) {
		t.Fatalf("range visited %v", got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range visited %v", got)
			break
		}
	}
}

func TestBitsBase(t *testing.T) {
	s := MakeBits[int64](1000)

	s.Set(1001)

	if !s.IsSet(1001) || s.IsSet(1000) {
		t.Errorf("base offset mishandled")
	}
}

func TestBitsMerge(t *testing.T) {
	a := MakeBits[int](0)
	b := MakeBits[int](0)

	a.Set(1)
	b.Set(200)

	a.Merge(b)

	if !a.IsSet(1) || !a.IsSet(200) {
		t.Errorf("merge lost bits")
	}

	a.Reset()

	if a.Size() != 0 {
		t.Errorf("reset left %d bits", a.Size())
	}
}
