package miniapp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

var ErrUnknownApp = errors.New("miniapp: unknown app")

// Kind selects one of the closed set of mini-apps.
type Kind int

const (
	ImpulseCmp Kind = iota
	AsymCoefCmp
)

var kinds = []Kind{ImpulseCmp, AsymCoefCmp}

// Kinds lists the mini-apps in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func (k Kind) String() string {
	switch k {
	case ImpulseCmp:
		return "impulse"
	case AsymCoefCmp:
		return "asym"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Title is the human readable name shown in the app selector.
func (k Kind) Title() string {
	switch k {
	case ImpulseCmp:
		return "Impulse"
	case AsymCoefCmp:
		return "Asymmetry coefficient"
	}
	return k.String()
}

// Next cycles through Kinds.
func (k Kind) Next() Kind {
	for i, kk := range kinds {
		if kk == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "impulse", "impulse_cmp", "impulsecmp":
		return ImpulseCmp, nil
	case "asym", "asym_coef", "asym_coef_cmp", "asymcoefcmp":
		return AsymCoefCmp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownApp, name)
}

// App holds the parameters and last computed result of one mini-app.
type App struct {
	Kind       Kind
	Adjustable bool
	XLabel     string
	YLabel     string

	sampler *harmonic.Sampler
	count   int
	result  *harmonic.Result
}

// New returns the mini-app for kind with its default parameters.
func New(kind Kind) *App {
	s := harmonic.NewSampler()
	a := &App{
		Kind:    kind,
		XLabel:  "Time",
		YLabel:  "Force",
		sampler: s,
		count:   harmonic.MaxHarmonics,
	}
	switch kind {
	case ImpulseCmp:
		a.Adjustable = true
	case AsymCoefCmp:
		s.ReferenceGain = 2
	}
	return a
}

// Sampler exposes the sampler so callers can change the grid size.
func (a *App) Sampler() *harmonic.Sampler { return a.sampler }

// Count is the pending harmonic count used by the next Calculate.
func (a *App) Count() int { return a.count }

// MaxCount is the largest count the coefficient table allows.
func (a *App) MaxCount() int { return a.sampler.Coefficients.Len() }

// SetCount clamps n into the valid range. Fixed apps ignore it.
func (a *App) SetCount(n int) {
	if !a.Adjustable {
		return
	}
	a.count = harmonic.ClampCount(n, a.MaxCount())
}

// Calculate recomputes both curves and replaces the previous result.
func (a *App) Calculate() error {
	res, err := a.sampler.Sample(a.count)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Kind, err)
	}
	a.result = res
	return nil
}

// Result is nil until the first Calculate.
func (a *App) Result() *harmonic.Result { return a.result }

// Legend returns the labels of the last computed curves.
func (a *App) Legend() (reference, superposed string) {
	if a.result == nil {
		return harmonic.Legend(1), harmonic.Legend(a.count)
	}
	return a.result.Reference.Label, a.result.Superposed.Label
}
