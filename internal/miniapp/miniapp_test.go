package miniapp

import (
	"errors"
	"math"
	"testing"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"impulse", ImpulseCmp, true},
		{"Impulse", ImpulseCmp, true},
		{"asym", AsymCoefCmp, true},
		{" asym_coef_cmp ", AsymCoefCmp, true},
		{"pendulum", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrUnknownApp) {
			t.Errorf("ParseKind(%q): expected ErrUnknownApp, got %v", tt.in, err)
		}
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("round trip of %v failed: %v, %v", k, got, err)
		}
	}
}

func TestKindNext(t *testing.T) {
	if ImpulseCmp.Next() != AsymCoefCmp {
		t.Error("expected impulse -> asym")
	}
	if AsymCoefCmp.Next() != ImpulseCmp {
		t.Error("expected asym -> impulse")
	}
}

func TestSetCount(t *testing.T) {
	a := New(ImpulseCmp)
	if a.Count() != 6 {
		t.Fatalf("default count = %d, want 6", a.Count())
	}
	a.SetCount(3)
	if a.Count() != 3 {
		t.Errorf("expected 3, got %d", a.Count())
	}
	a.SetCount(9)
	if a.Count() != 6 {
		t.Errorf("expected clamp to 6, got %d", a.Count())
	}
	a.SetCount(0)
	if a.Count() != 1 {
		t.Errorf("expected clamp to 1, got %d", a.Count())
	}

	fixed := New(AsymCoefCmp)
	fixed.SetCount(2)
	if fixed.Count() != 6 {
		t.Errorf("fixed app changed count to %d", fixed.Count())
	}
}

func TestCalculate_ReplacesResult(t *testing.T) {
	a := New(ImpulseCmp)
	if a.Result() != nil {
		t.Fatal("expected no result before Calculate")
	}

	a.SetCount(2)
	if err := a.Calculate(); err != nil {
		t.Fatal(err)
	}
	first := a.Result()
	if first.Harmonics != 2 {
		t.Errorf("expected 2 harmonics, got %d", first.Harmonics)
	}

	a.SetCount(5)
	ref, sup := a.Legend()
	if ref != "N = 1" || sup != "N = 2" {
		t.Errorf("legend should follow last result, got %q %q", ref, sup)
	}

	if err := a.Calculate(); err != nil {
		t.Fatal(err)
	}
	if a.Result() == first {
		t.Error("expected a fresh result")
	}
	if _, sup := a.Legend(); sup != "N = 5" {
		t.Errorf("expected N = 5, got %q", sup)
	}
}

func TestReferenceGain(t *testing.T) {
	imp := New(ImpulseCmp)
	asym := New(AsymCoefCmp)
	if err := imp.Calculate(); err != nil {
		t.Fatal(err)
	}
	if err := asym.Calculate(); err != nil {
		t.Fatal(err)
	}

	mid := (harmonic.DefaultGridSize - 1) / 2
	single := harmonic.Debalances().Amplitude(0, 1)
	if got := imp.Result().Reference.Points[mid].Y; math.Abs(got-single) > 1e-12 {
		t.Errorf("impulse reference at 0 = %v, want %v", got, single)
	}
	if got := asym.Result().Reference.Points[mid].Y; math.Abs(got-2*single) > 1e-12 {
		t.Errorf("asym reference at 0 = %v, want %v", got, 2*single)
	}
}

func TestCalculate_GridError(t *testing.T) {
	a := New(ImpulseCmp)
	a.Sampler().GridSize = 0
	err := a.Calculate()
	if !errors.Is(err, harmonic.ErrInvalidGridSize) {
		t.Errorf("expected ErrInvalidGridSize, got %v", err)
	}
	if a.Result() != nil {
		t.Error("failed recompute must not store a result")
	}
}
