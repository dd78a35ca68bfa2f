package harmonic_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHarmonic(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Harmonic Suite")
}
