// Package rng provides a Mersenne Twister source that reproduces CPython's
// random module bit for bit, including integer seeding and shuffle. A maze
// seed therefore means the same layout here as under random.seed in Python.
package rng

import "math/bits"

const (
	stateSize   = 624
	shiftSize   = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initialSeed = 19650218
)

// MT19937 is a 32-bit Mersenne Twister generator.
// It is not safe for concurrent use.
type MT19937 struct {
	mt  [stateSize]uint32
	mti int
}

// New returns a generator seeded like random.seed(seed) in CPython.
func New(seed int64) *MT19937 {
	r := &MT19937{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state. The absolute value of seed is split into
// little-endian 32-bit words and fed through init_by_array.
func (r *MT19937) Seed(seed int64) {
	u := uint64(seed)
	if seed < 0 {
		u = -u
	}

	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	r.initByArray(key)
}

func (r *MT19937) initGenrand(s uint32) {
	r.mt[0] = s
	for i := 1; i < stateSize; i++ {
		prev := r.mt[i-1]
		r.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	r.mti = stateSize
}

func (r *MT19937) initByArray(key []uint32) {
	r.initGenrand(initialSeed)

	i, j := 1, 0
	k := max(stateSize, len(key))
	for ; k > 0; k-- {
		prev := r.mt[i-1]
		r.mt[i] = (r.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= stateSize {
			r.mt[0] = r.mt[stateSize-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = stateSize - 1; k > 0; k-- {
		prev := r.mt[i-1]
		r.mt[i] = (r.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= stateSize {
			r.mt[0] = r.mt[stateSize-1]
			i = 1
		}
	}
	r.mt[0] = 0x80000000
}

// twist regenerates the whole state block.
func (r *MT19937) twist() {
	mag := func(y uint32) uint32 {
		if y&1 == 1 {
			return matrixA
		}
		return 0
	}

	var kk int
	for kk = 0; kk < stateSize-shiftSize; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+shiftSize] ^ (y >> 1) ^ mag(y)
	}
	for ; kk < stateSize-1; kk++ {
		y := (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+(shiftSize-stateSize)] ^ (y >> 1) ^ mag(y)
	}
	y := (r.mt[stateSize-1] & upperMask) | (r.mt[0] & lowerMask)
	r.mt[stateSize-1] = r.mt[shiftSize-1] ^ (y >> 1) ^ mag(y)

	r.mti = 0
}

// Uint32 returns the next tempered 32-bit output.
func (r *MT19937) Uint32() uint32 {
	if r.mti >= stateSize {
		r.twist()
	}

	y := r.mt[r.mti]
	r.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Getrandbits returns a value with k random bits, 0 <= k <= 64.
// Words are consumed least significant first, and the last partial word
// keeps its most significant bits, matching random.getrandbits.
func (r *MT19937) Getrandbits(k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k > 64 {
		k = 64
	}
	if k <= 32 {
		return uint64(r.Uint32() >> (32 - k))
	}

	var out uint64
	for shift := 0; k > 0; shift, k = shift+32, k-32 {
		w := r.Uint32()
		if k < 32 {
			w >>= 32 - k
		}
		out |= uint64(w) << shift
	}
	return out
}

// Randbelow returns a uniform int in [0, n) by rejection sampling on
// bit-length draws. It returns 0 when n <= 0.
func (r *MT19937) Randbelow(n int) int {
	if n <= 0 {
		return 0
	}
	k := bits.Len(uint(n))
	v := r.Getrandbits(k)
	for v >= uint64(n) {
		v = r.Getrandbits(k)
	}
	return int(v)
}

// Shuffle permutes n elements in place through swap, walking from the last
// index down and drawing each partner index with Randbelow.
func (r *MT19937) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Randbelow(i + 1)
		swap(i, j)
	}
}
