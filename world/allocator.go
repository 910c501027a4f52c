package world

// DefaultMaxAttempts bounds the allocation retry loop.
const DefaultMaxAttempts = 100

// CodeAllocator produces country codes that do not collide with codes
// already in the store. The check-then-use window is closed by the unique
// constraint on the code column: callers that hit ErrDuplicateKey on insert
// allocate again.
type CodeAllocator struct {
	gen         *CodeGenerator
	maxAttempts int
}

func NewCodeAllocator(gen *CodeGenerator, maxAttempts int) *CodeAllocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &CodeAllocator{gen: gen, maxAttempts: maxAttempts}
}

// Allocate returns a code that was free at the moment of probing, or
// ErrCodeSpaceExhausted when every attempt collided.
func (a *CodeAllocator) Allocate(store Store) (string, error) {
	for i := 0; i < a.maxAttempts; i++ {
		candidate := a.gen.NewCode()
		exists, err := codeExists(store, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

// codeExists probes the store for a candidate code. An empty candidate is
// never stored, so it short-circuits without a query.
func codeExists(store Store, candidate string) (bool, error) {
	if candidate == "" {
		return false, nil
	}
	return store.CountryCodeExists(candidate)
}
