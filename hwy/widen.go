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

// Widening reductions. Byte lanes are summed into wider lanes before the
// values can overflow, so callers can keep most of their arithmetic narrow
// and fold into 64-bit lanes only occasionally.

// SumsOf8 adds each group of 8 consecutive byte lanes into one uint64 lane,
// the way PSADBW against zero does.
func SumsOf8(d ByteTag, v Bytes) Uint64s {
	var r Uint64s
	for i := range d.words {
		w := v.w[i]
		// Four 16-bit lanes of at most 510 each; the multiply gathers their
		// sum (at most 2040) into the top 16 bits without carries.
		s := w&evens + w>>8&evens
		r.w[i] = s * 0x0001000100010001 >> 48
	}
	return r
}

// SquaresOf2 squares every byte lane and adds adjacent pairs into uint32
// lanes: lane k = v[2k]^2 + v[2k+1]^2, at most 130050.
func SquaresOf2(d ByteTag, v Bytes) Uint32s {
	var r Uint32s
	for i := range d.words {
		w := v.w[i]
		for j := range 4 {
			lo := uint32(w>>(16*j)) & 0xff
			hi := uint32(w>>(16*j+8)) & 0xff
			r.l[4*i+j] = lo*lo + hi*hi
		}
	}
	return r
}

// AddU32 returns a + b lane by lane. Lanes wrap on overflow.
func AddU32(d ByteTag, a, b Uint32s) Uint32s {
	var r Uint32s
	for i := range d.words * 4 {
		r.l[i] = a.l[i] + b.l[i]
	}
	return r
}

// SumsOf4 folds each group of 4 uint32 lanes into one uint64 lane, so the
// result has the same layout as SumsOf8.
func SumsOf4(d ByteTag, v Uint32s) Uint64s {
	var r Uint64s
	for i := range d.words {
		l := v.l[4*i : 4*i+4]
		r.w[i] = uint64(l[0]) + uint64(l[1]) + uint64(l[2]) + uint64(l[3])
	}
	return r
}

// AddU64 returns a + b lane by lane.
func AddU64(d ByteTag, a, b Uint64s) Uint64s {
	var r Uint64s
	for i := range d.words {
		r.w[i] = a.w[i] + b.w[i]
	}
	return r
}

// ReduceSum returns the sum of all uint64 lanes.
func ReduceSum(d ByteTag, v Uint64s) uint64 {
	var sum uint64
	for i := range d.words {
		sum += v.w[i]
	}
	return sum
}
