// Package hwy provides portable SIMD operations with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: write once,
// run optimally everywhere. Operations take a tag describing the vector
// width selected at runtime (16 bytes for SSE2/NEON, 32 for AVX2, 64 for
// AVX-512) and work on fixed-size vector values that never touch the heap.
//
// Byte vectors are kept in 64-bit words and most operations work on all
// eight lanes of a word at once (SIMD within a register), so the same code
// is fast on every target and needs no assembly.
//
// Basic usage:
//
//	import "github.com/go-hwy/condstat/hwy"
//
//	d := hwy.ScalableByteTag()
//	a := hwy.LoadU(d, data)
//	m := hwy.Greater(d, a, hwy.Set(d, 128))
//	n := hwy.ReduceSum(d, hwy.SumsOf8(d, hwy.And(d, m, hwy.Set(d, 1))))
package hwy

// Lanes is a constraint for the unsigned sample types that image buffers
// and aligned allocations hold.
type Lanes interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxBytes is the widest vector width, in bytes, of any supported target.
const MaxBytes = 64

const maxWords = MaxBytes / 8

// Bytes is a vector of uint8 lanes. Lane i lives in bits 8*(i%8) of word
// i/8, the order a little-endian load produces. Comparisons return Bytes
// masks whose lanes are 0xFF (true) or 0x00 (false).
//
// Lanes beyond the tag's width are always zero.
type Bytes struct {
	w [maxWords]uint64
}

// Lane returns byte lane i.
// This is primarily for testing and should not be used in performance-critical code.
func (v Bytes) Lane(i int) uint8 {
	return uint8(v.w[i>>3] >> (8 * (i & 7)))
}

// Uint32s is a vector of uint32 lanes produced by pairwise widening
// operations: lane k covers byte lanes 2k and 2k+1.
type Uint32s struct {
	l [MaxBytes / 2]uint32
}

// Lane returns 32-bit lane i.
func (v Uint32s) Lane(i int) uint32 {
	return v.l[i]
}

// Uint64s is a vector of uint64 lanes: lane k covers byte lanes 8k..8k+7,
// matching the layout of a sum-of-absolute-differences instruction.
type Uint64s struct {
	w [maxWords]uint64
}

// Lane returns 64-bit lane i.
func (v Uint64s) Lane(i int) uint64 {
	return v.w[i]
}
