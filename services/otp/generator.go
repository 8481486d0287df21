package otp

import (
	"math/rand/v2"
	"strconv"
)

const (
	codeMin   = 100000
	codeRange = 900000
)

// Generator mints 6-digit numeric codes, uniform over [100000, 999999].
// The codes gate in-person handoffs and are not a security boundary,
// so the default source is math/rand.
type Generator struct {
	intN func(n int) int
}

// NewGenerator returns a Generator drawing from intN, or math/rand when nil.
func NewGenerator(intN func(n int) int) *Generator {
	if intN == nil {
		intN = rand.IntN
	}
	return &Generator{intN: intN}
}

// Generate returns a fresh code.
func (g *Generator) Generate() string {
	return strconv.Itoa(codeMin + g.intN(codeRange))
}
