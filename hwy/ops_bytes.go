// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"encoding/binary"
	"math/bits"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Per-word SWAR constants.
const (
	lsbs  = 0x0101010101010101 // low bit of every byte
	msbs  = 0x8080808080808080 // high bit of every byte
	low7s = 0x7f7f7f7f7f7f7f7f // low seven bits of every byte
	evens = 0x00ff00ff00ff00ff // even bytes, as 16-bit lanes
	bit8s = 0x0100010001000100 // bit 8 of every 16-bit lane
)

// Set returns a vector with all lanes set to value.
func Set(d ByteTag, value uint8) Bytes {
	var v Bytes
	w := uint64(value) * lsbs
	for i := range d.words {
		v.w[i] = w
	}
	return v
}

// LoadU loads d.Lanes() bytes from src, which may have any alignment.
// src must hold at least d.Lanes() bytes.
func LoadU(d ByteTag, src []byte) Bytes {
	var v Bytes
	_ = src[d.words*8-1]
	for i := range d.words {
		v.w[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
	return v
}

// Load loads d.Lanes() bytes from src, reading whole words directly.
// The first byte of src must be aligned to 8 bytes (callers align to the
// vector width) and src must hold at least d.Lanes() bytes.
func Load(d ByteTag, src []byte) Bytes {
	var v Bytes
	_ = src[d.words*8-1]
	p := unsafe.Pointer(unsafe.SliceData(src))
	for i := range d.words {
		w := *(*uint64)(unsafe.Add(p, 8*i))
		if cpu.IsBigEndian {
			w = bits.ReverseBytes64(w)
		}
		v.w[i] = w
	}
	return v
}

// And returns a & b.
func And(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = a.w[i] & b.w[i]
	}
	return r
}

// Not returns ^v on the lanes covered by d.
func Not(d ByteTag, v Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = ^v.w[i]
	}
	return r
}

// geWord returns 0xFF in every byte where a >= b (unsigned), 0x00 elsewhere.
func geWord(a, b uint64) uint64 {
	// Each 16-bit lane holds 256 + a - b, in [1, 511], so no borrow crosses
	// lanes and bit 8 is set exactly when a >= b.
	ge := ((a&evens | bit8s) - b&evens) & bit8s >> 8
	ge |= ((a>>8&evens | bit8s) - b>>8&evens) & bit8s
	return ge * 0xff
}

// neWord returns 0xFF in every byte where a != b, 0x00 elsewhere.
func neWord(a, b uint64) uint64 {
	t := a ^ b
	nz := ((t&low7s + low7s) | t) & msbs
	return nz >> 7 * 0xff
}

// subWord subtracts b from a in every byte, modulo 256.
func subWord(a, b uint64) uint64 {
	return ((a | msbs) - (b & low7s)) ^ ((a ^ ^b) & msbs)
}

// Equal returns a mask of lanes where a == b.
func Equal(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = ^neWord(a.w[i], b.w[i])
	}
	return r
}

// NotEqual returns a mask of lanes where a != b.
func NotEqual(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = neWord(a.w[i], b.w[i])
	}
	return r
}

// Greater returns a mask of lanes where a > b (unsigned).
func Greater(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = ^geWord(b.w[i], a.w[i])
	}
	return r
}

// GreaterEqual returns a mask of lanes where a >= b (unsigned).
func GreaterEqual(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = geWord(a.w[i], b.w[i])
	}
	return r
}

// Less returns a mask of lanes where a < b (unsigned).
func Less(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = ^geWord(a.w[i], b.w[i])
	}
	return r
}

// LessEqual returns a mask of lanes where a <= b (unsigned).
func LessEqual(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		r.w[i] = geWord(b.w[i], a.w[i])
	}
	return r
}

// AbsDiff returns |a - b| in every lane.
func AbsDiff(d ByteTag, a, b Bytes) Bytes {
	var r Bytes
	for i := range d.words {
		x, y := a.w[i], b.w[i]
		ge := geWord(x, y)
		r.w[i] = ge&subWord(x, y) | ^ge&subWord(y, x)
	}
	return r
}
