package lifelong

import (
	"math/rand/v2"
)

// Source is a deterministic PCG random stream. It is not safe for concurrent
// use; take a Snapshot or Derive a child per goroutine instead.
type Source struct {
	pcg *rand.PCG
	rnd *rand.Rand
}

// NewSource returns the stream of seed. Equal seeds give equal streams.
func NewSource(seed uint64) *Source {
	return newSource(rand.NewPCG(seed, mix(seed, 0)))
}

func newSource(p *rand.PCG) *Source {
	return &Source{pcg: p, rnd: rand.New(p)}
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rnd.IntN(n)
}

// Uint64 returns a uniform 64-bit value.
func (s *Source) Uint64() uint64 {
	return s.pcg.Uint64()
}

// Snapshot returns an independent copy positioned at the same point of the
// stream. Advancing either one leaves the other untouched.
// Complexity: O(1).
func (s *Source) Snapshot() *Source {
	cp := *s.pcg
	return newSource(&cp)
}

// MarshalBinary encodes the current stream position.
func (s *Source) MarshalBinary() ([]byte, error) {
	return s.pcg.MarshalBinary()
}

// UnmarshalBinary restores a position produced by MarshalBinary.
func (s *Source) UnmarshalBinary(data []byte) error {
	if s.pcg == nil {
		*s = *newSource(new(rand.PCG))
	}
	return s.pcg.UnmarshalBinary(data)
}

// Derive returns a child stream identified by stream. One value of s is
// consumed, so deriving the same stream id twice gives different children.
// Complexity: O(1).
func (s *Source) Derive(stream uint64) *Source {
	parent := s.pcg.Uint64()
	seed := mix(parent, stream)
	return newSource(rand.NewPCG(seed, mix(seed, stream+1)))
}

// mix is the SplitMix64 finalizer applied to parent and stream.
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
