package rhythm

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestResolveCommonUnit(t *testing.T) {
	tests := []struct {
		sigs  []Signature
		unit  int64
		beats []int64
	}{
		{sigs: []Signature{{4, 8}, {3, 4}}, unit: 8, beats: []int64{4, 6}},
		{sigs: []Signature{{4, 4}, {3, 4}}, unit: 4, beats: []int64{4, 3}},
		{sigs: []Signature{{2, 3}, {3, 4}}, unit: 12, beats: []int64{8, 9}},
		{sigs: []Signature{{7, 8}}, unit: 8, beats: []int64{7}},
		{sigs: []Signature{{5, 4}, {6, 8}, {9, 16}}, unit: 16, beats: []int64{20, 12, 9}},
	}

	for _, test := range tests {
		unit, rescaled, err := Resolve(test.sigs)
		if err != nil {
			t.Fatalf("Resolve(%v): %v", test.sigs, err)
		}
		if want, got := test.unit, unit; want != got {
			t.Errorf("Resolve(%v): want unit %d, got %d", test.sigs, want, got)
		}
		for i, r := range rescaled {
			if want, got := test.beats[i], r.Beats; want != got {
				t.Errorf("Resolve(%v)[%d]: want %d beats, got %d", test.sigs, i, want, got)
			}
			if r.Unit != unit {
				t.Errorf("Resolve(%v)[%d]: unit %d differs from common unit %d", test.sigs, i, r.Unit, unit)
			}
		}
	}
}

func TestResolveIsSmallestCommonMultiple(t *testing.T) {
	for a := int64(1); a <= 24; a++ {
		for b := int64(1); b <= 24; b++ {
			unit, _, err := Resolve([]Signature{{1, a}, {1, b}})
			if err != nil {
				t.Fatalf("Resolve(1/%d, 1/%d): %v", a, b, err)
			}
			if unit <= 0 || unit%a != 0 || unit%b != 0 {
				t.Fatalf("unit %d is not a common multiple of %d and %d", unit, a, b)
			}
			for m := int64(1); m < unit; m++ {
				if m%a == 0 && m%b == 0 {
					t.Fatalf("unit %d for %d and %d, but %d is smaller", unit, a, b, m)
				}
			}
		}
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		sigs []Signature
		want error
	}{
		{"empty", nil, ErrInvalidArgument},
		{"zero beats", []Signature{{0, 4}}, ErrInvalidArgument},
		{"zero note value", []Signature{{4, 4}, {3, 0}}, ErrInvalidArgument},
		{"negative", []Signature{{-3, 4}}, ErrInvalidArgument},
		{"unit overflow", []Signature{{1, 1_000_000_007}, {1, 1_000_000_009}, {1, 998_244_353}}, ErrArithmeticOverflow},
		{"beats overflow", []Signature{{math.MaxInt64, 1}, {1, 2}}, ErrArithmeticOverflow},
	}

	for _, test := range tests {
		_, _, err := Resolve(test.sigs)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: want %v, got %v", test.name, test.want, err)
		}
	}
}

func TestParseSignature(t *testing.T) {
	sig, err := ParseSignature("7/8")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Signature{7, 8}); sig != want {
		t.Errorf("want %v, got %v", want, sig)
	}

	for _, input := range []string{"", "4", "4/4/4", "a/4", "0/4", "3/0"} {
		if _, err := ParseSignature(input); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseSignature(%q): want invalid argument, got %v", input, err)
		}
	}
}
