package world

import "math/rand/v2"

const (
	// CodeLength is the fixed length of a country code.
	CodeLength = 3

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// CodeGenerator produces fixed-length random country codes, each character
// drawn uniformly from [A-Za-z0-9].
type CodeGenerator struct {
	rand *rand.Rand
}

// NewCodeGenerator creates a generator over the given source. A nil source
// falls back to a randomly seeded one.
func NewCodeGenerator(src rand.Source) *CodeGenerator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &CodeGenerator{rand: rand.New(src)}
}

func (g *CodeGenerator) NewCode() string {
	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = codeAlphabet[g.rand.IntN(len(codeAlphabet))]
	}
	return string(code)
}
