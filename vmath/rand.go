package vmath

// Rand is the randomness surface consumed by the simulation
// Every draw goes through Intn so a fixed seed reproduces a whole run
type Rand interface {
	Intn(n int) int
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero is remapped since xorshift has a zero fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for non-positive n
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// OneIn reports a 1-in-n event
func OneIn(r Rand, n int) bool {
	return r.Intn(n) == 0
}

// Sequence replays a fixed list of draws, wrapping at the end
// Each value is reduced modulo n so scripted tests stay in range
type Sequence struct {
	Values []int
	pos    int
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
