package harmonic_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

var _ = Describe("Sampler", func() {
	var s *harmonic.Sampler

	BeforeEach(func() {
		s = harmonic.NewSampler()
	})

	It("samples both curves on the default grid", func() {
		res, err := s.Sample(6)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Grid).To(HaveLen(harmonic.DefaultGridSize))
		Expect(res.Reference.Points).To(HaveLen(harmonic.DefaultGridSize))
		Expect(res.Superposed.Points).To(HaveLen(harmonic.DefaultGridSize))
		Expect(res.Harmonics).To(Equal(6))
	})

	It("labels the curves for the legend", func() {
		res, err := s.Sample(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Reference.Label).To(Equal("N = 1"))
		Expect(res.Superposed.Label).To(Equal("N = 4"))
	})

	It("shares abscissas between the curves", func() {
		res, err := s.Sample(3)
		Expect(err).NotTo(HaveOccurred())
		for i := range res.Grid {
			Expect(res.Reference.Points[i].X).To(Equal(res.Grid[i]))
			Expect(res.Superposed.Points[i].X).To(Equal(res.Grid[i]))
		}
	})

	It("matches the closed form sum at t = 0", func() {
		res, err := s.Sample(6)
		Expect(err).NotTo(HaveOccurred())

		want := 0.0
		for j := 0; j < 6; j++ {
			k := float64(j + 1)
			want += harmonic.Debalances().Mass[j] * k * k * harmonic.Debalances().Radius[j]
		}
		mid := res.Superposed.Points[(harmonic.DefaultGridSize-1)/2]
		Expect(mid.X).To(BeNumerically("~", 0, 1e-12))
		Expect(mid.Y).To(BeNumerically("~", want, 1e-9))
	})

	It("is idempotent", func() {
		a, err := s.Sample(5)
		Expect(err).NotTo(HaveOccurred())
		b, err := s.Sample(5)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Superposed.Points).To(Equal(b.Superposed.Points))
	})

	Context("with a reference gain", func() {
		It("scales only the reference curve", func() {
			base, err := s.Sample(6)
			Expect(err).NotTo(HaveOccurred())

			s.ReferenceGain = 2
			doubled, err := s.Sample(6)
			Expect(err).NotTo(HaveOccurred())

			for i := range base.Grid {
				Expect(doubled.Reference.Points[i].Y).To(BeNumerically("~", 2*base.Reference.Points[i].Y, 1e-12))
				Expect(doubled.Superposed.Points[i].Y).To(Equal(base.Superposed.Points[i].Y))
			}
		})
	})

	Context("with a single harmonic", func() {
		It("reproduces the reference curve", func() {
			res, err := s.Sample(1)
			Expect(err).NotTo(HaveOccurred())
			for i := range res.Grid {
				Expect(res.Superposed.Points[i].Y).To(BeNumerically("~", res.Reference.Points[i].Y, 1e-12))
			}
		})
	})

	Context("at the boundaries", func() {
		It("accepts all six pairs", func() {
			_, err := s.Sample(harmonic.MaxHarmonics)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a seventh pair", func() {
			_, err := s.Sample(7)
			Expect(err).To(MatchError(harmonic.ErrInvalidHarmonicCount))
		})

		It("rejects zero harmonics", func() {
			_, err := s.Sample(0)
			Expect(err).To(MatchError(harmonic.ErrInvalidHarmonicCount))
		})

		It("rejects a degenerate grid", func() {
			s.GridSize = 1
			_, err := s.Sample(1)
			Expect(err).To(MatchError(harmonic.ErrInvalidGridSize))
		})
	})

	It("evaluates the alternating harmonic sum at -π", func() {
		res, err := s.Sample(2)
		Expect(err).NotTo(HaveOccurred())
		first := res.Superposed.Points[0]
		want := -harmonic.Debalances().Amplitude(0, 1) + harmonic.Debalances().Amplitude(1, 1)
		Expect(first.X).To(BeNumerically("~", -math.Pi, 1e-12))
		Expect(first.Y).To(BeNumerically("~", want, 1e-12))
	})
})
