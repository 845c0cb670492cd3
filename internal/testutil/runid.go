package testutil

// FixedRunIDGenerator returns the same run id every time.
//
// Runner logs carry the run id, so a fixed id keeps captured logs
// byte-identical across test runs.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a generator for id.
// If id is empty, Generate returns "test-run-default".
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run id.
//
// Implements runner.IDGenerator.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
