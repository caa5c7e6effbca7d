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

// Per-pixel kernels. They accept the same tag as the vector kernels and
// enforce the same contract, so switching targets never changes which
// calls are valid.

func scalarCount[P predicate](d hwy.ByteTag, src []byte, stride, width, height int, value uint8) uint32 {
	checkCount(d, src, stride, width, height)
	var pred P
	var n uint64
	for row := range height {
		for _, v := range src[row*stride : row*stride+width] {
			if pred.test(v, value) {
				n++
			}
		}
	}
	return uint32(n)
}

func scalarSum[P predicate](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	checkMasked(d, src, srcStride, width, height, mask, maskStride)
	var pred P
	var total uint64
	for row := range height {
		s := src[row*srcStride : row*srcStride+width]
		m := mask[row*maskStride : row*maskStride+width]
		for x, v := range m {
			if pred.test(v, value) {
				total += uint64(s[x])
			}
		}
	}
	return total
}

func scalarSquareSum[P predicate](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	checkMasked(d, src, srcStride, width, height, mask, maskStride)
	checkRowLanes(d, width, squareLaneGrowth)
	var pred P
	var total uint64
	for row := range height {
		s := src[row*srcStride : row*srcStride+width]
		m := mask[row*maskStride : row*maskStride+width]
		for x, v := range m {
			if pred.test(v, value) {
				total += uint64(s[x]) * uint64(s[x])
			}
		}
	}
	return total
}

func scalarSquareGradientSum[P predicate](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	checkGradient(d, src, srcStride, width, height, mask, maskStride)
	var pred P
	var total uint64
	for row := 1; row < height-1; row++ {
		s := row * srcStride
		m := mask[row*maskStride : row*maskStride+width]
		for x := 1; x < width-1; x++ {
			if !pred.test(m[x], value) {
				continue
			}
			dx := int(src[s+x+1]) - int(src[s+x-1])
			dy := int(src[s+x+srcStride]) - int(src[s+x-srcStride])
			total += uint64(dx*dx + dy*dy)
		}
	}
	return total
}
