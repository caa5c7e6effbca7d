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

package conditional

import "github.com/go-hwy/condstat/hwy"

// predicate is one comparison kind. Kernels take it as a type parameter so
// a call picks the comparison once and the loops contain no switch on it.
type predicate interface {
	// test reports whether the scalar mask sample passes.
	test(value, threshold uint8) bool

	// apply returns 0xFF in every lane of v that passes, 0x00 elsewhere.
	apply(d hwy.ByteTag, v, threshold hwy.Bytes) hwy.Bytes
}

type equal struct{}

func (equal) test(v, t uint8) bool { return v == t }

func (equal) apply(d hwy.ByteTag, v, t hwy.Bytes) hwy.Bytes { return hwy.Equal(d, v, t) }

type notEqual struct{}

func (notEqual) test(v, t uint8) bool { return v != t }

func (notEqual) apply(d hwy.ByteTag, v, t hwy.Bytes) hwy.Bytes { return hwy.NotEqual(d, v, t) }

type greater struct{}

func (greater) test(v, t uint8) bool { return v > t }

func (greater) apply(d hwy.ByteTag, v, t hwy.Bytes) hwy.Bytes { return hwy.Greater(d, v, t) }

type greaterOrEqual struct{}

func (greaterOrEqual) test(v, t uint8) bool { return v >= t }

func (greaterOrEqual) apply(d hwy.ByteTag, v, t hwy.Bytes) hwy.Bytes {
	return hwy.GreaterEqual(d, v, t)
}

type lesser struct{}

func (lesser) test(v, t uint8) bool { return v < t }

func (lesser) apply(d hwy.ByteTag, v, t hwy.Bytes) hwy.Bytes { return hwy.Less(d, v, t) }

type lesserOrEqual struct{}

func (lesserOrEqual) test(v, t uint8) bool { return v <= t }

func (lesserOrEqual) apply(d hwy.ByteTag, v, t hwy.Bytes) hwy.Bytes { return hwy.LessEqual(d, v, t) }

// loader is the load flavor of the full-width chunks, fixed per call.
type loader interface {
	load(d hwy.ByteTag, src []byte) hwy.Bytes
}

type alignedLoad struct{}

func (alignedLoad) load(d hwy.ByteTag, src []byte) hwy.Bytes { return hwy.Load(d, src) }

type unalignedLoad struct{}

func (unalignedLoad) load(d hwy.ByteTag, src []byte) hwy.Bytes { return hwy.LoadU(d, src) }

// aligned reports whether every buffer starts on a vector boundary and
// every stride is a whole number of vectors, so row chunks at multiples of
// the vector width can use aligned loads.
func aligned(d hwy.ByteTag, src []byte, srcStride int, mask []byte, maskStride int) bool {
	a := d.Lanes()
	return hwy.Aligned(src, a) && srcStride%a == 0 &&
		hwy.Aligned(mask, a) && maskStride%a == 0
}
