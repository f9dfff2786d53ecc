package rng

import (
	"testing"
)

func TestSeedInt(t *testing.T) {
	// Reference values: md5 hex digest read base-16, mod 10^6.
	cases := []struct {
		seed string
		want uint64
	}{
		{"test", 528374},
		{"a", 726497},
		{"b", 795343},
		{"bootstrap", 40975},
		{"", 178366},
	}
	for _, c := range cases {
		if got := SeedInt(c.seed); got != c.want {
			t.Errorf("SeedInt(%q) = %d, want %d", c.seed, got, c.want)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	a := New("test", false)
	b := New("test", false)
	for i := 0; i < 100; i++ {
		x, y := a.Intn(1000), b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d differs for identical seeds: %d vs %d", i, x, y)
		}
	}

	// Normal draws must be reproducible too.
	a = New("test", false)
	b = New("test", false)
	for i := 0; i < 100; i++ {
		x, y := a.NormFloat64(), b.NormFloat64()
		if x != y {
			t.Fatalf("normal draw %d differs for identical seeds: %g vs %g", i, x, y)
		}
	}
}

func TestSeedSensitivity(t *testing.T) {
	a := New("a", false)
	b := New("b", false)
	for i := 0; i < 32; i++ {
		if a.Uint64() != b.Uint64() {
			return
		}
	}
	t.Error("seeds \"a\" and \"b\" produced identical draw sequences")
}

func TestVerboseDoesNotAffectDraws(t *testing.T) {
	quiet := New("test", false)
	loud := New("test", true)
	for i := 0; i < 32; i++ {
		if quiet.Uint64() != loud.Uint64() {
			t.Fatal("verbose trace changed the draw sequence")
		}
	}
}

func TestDefaultSourceIndependent(t *testing.T) {
	a := DefaultSource()
	b := DefaultSource()
	for i := 0; i < 16; i++ {
		if a.Uint64() != b.Uint64() {
			return
		}
	}
	t.Error("two default sources produced identical draw sequences")
}
