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

// count validates the call and picks the load path for predicate P.
func count[P predicate](d hwy.ByteTag, src []byte, stride, width, height int, value uint8) uint32 {
	checkCount(d, src, stride, width, height)
	if hwy.Aligned(src, d.Lanes()) && stride%d.Lanes() == 0 {
		return countRows[P, alignedLoad](d, src, stride, width, height, value)
	}
	return countRows[P, unalignedLoad](d, src, stride, width, height, value)
}

func countRows[P predicate, L loader](d hwy.ByteTag, src []byte, stride, width, height int, value uint8) uint32 {
	var pred P
	var ld L
	lanes := d.Lanes()
	alignedWidth := hwy.AlignLo(width, lanes)
	tailMask := hwy.LastN(d, width-alignedWidth)
	ones := hwy.Set(d, 1)
	threshold := hwy.Set(d, value)

	var total hwy.Uint64s
	for row := range height {
		line := src[row*stride : row*stride+width]
		for col := 0; col < alignedWidth; col += lanes {
			m := pred.apply(d, ld.load(d, line[col:]), threshold)
			total = hwy.AddU64(d, total, hwy.SumsOf8(d, hwy.And(d, m, ones)))
		}
		if alignedWidth != width {
			m := hwy.And(d, pred.apply(d, hwy.LoadU(d, line[width-lanes:]), threshold), tailMask)
			total = hwy.AddU64(d, total, hwy.SumsOf8(d, hwy.And(d, m, ones)))
		}
	}
	return uint32(hwy.ReduceSum(d, total))
}

func sum[P predicate](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	checkMasked(d, src, srcStride, width, height, mask, maskStride)
	if aligned(d, src, srcStride, mask, maskStride) {
		return sumRows[P, alignedLoad](d, src, srcStride, width, height, mask, maskStride, value)
	}
	return sumRows[P, unalignedLoad](d, src, srcStride, width, height, mask, maskStride, value)
}

func sumRows[P predicate, L loader](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	var pred P
	var ld L
	lanes := d.Lanes()
	alignedWidth := hwy.AlignLo(width, lanes)
	tailMask := hwy.LastN(d, width-alignedWidth)
	threshold := hwy.Set(d, value)

	var total hwy.Uint64s
	for row := range height {
		s := src[row*srcStride : row*srcStride+width]
		m := mask[row*maskStride : row*maskStride+width]
		for col := 0; col < alignedWidth; col += lanes {
			sel := pred.apply(d, ld.load(d, m[col:]), threshold)
			total = hwy.AddU64(d, total, hwy.SumsOf8(d, hwy.And(d, sel, ld.load(d, s[col:]))))
		}
		if alignedWidth != width {
			off := width - lanes
			sel := hwy.And(d, pred.apply(d, hwy.LoadU(d, m[off:]), threshold), tailMask)
			total = hwy.AddU64(d, total, hwy.SumsOf8(d, hwy.And(d, sel, hwy.LoadU(d, s[off:]))))
		}
	}
	return hwy.ReduceSum(d, total)
}

func squareSum[P predicate](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	checkMasked(d, src, srcStride, width, height, mask, maskStride)
	checkRowLanes(d, width, squareLaneGrowth)
	if aligned(d, src, srcStride, mask, maskStride) {
		return squareSumRows[P, alignedLoad](d, src, srcStride, width, height, mask, maskStride, value)
	}
	return squareSumRows[P, unalignedLoad](d, src, srcStride, width, height, mask, maskStride, value)
}

func squareSumRows[P predicate, L loader](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	var pred P
	var ld L
	lanes := d.Lanes()
	alignedWidth := hwy.AlignLo(width, lanes)
	tailMask := hwy.LastN(d, width-alignedWidth)
	threshold := hwy.Set(d, value)

	var total hwy.Uint64s
	for row := range height {
		s := src[row*srcStride : row*srcStride+width]
		m := mask[row*maskStride : row*maskStride+width]
		var rowSum hwy.Uint32s
		for col := 0; col < alignedWidth; col += lanes {
			sel := pred.apply(d, ld.load(d, m[col:]), threshold)
			rowSum = hwy.AddU32(d, rowSum, hwy.SquaresOf2(d, hwy.And(d, sel, ld.load(d, s[col:]))))
		}
		if alignedWidth != width {
			off := width - lanes
			sel := hwy.And(d, pred.apply(d, hwy.LoadU(d, m[off:]), threshold), tailMask)
			rowSum = hwy.AddU32(d, rowSum, hwy.SquaresOf2(d, hwy.And(d, sel, hwy.LoadU(d, s[off:]))))
		}
		total = hwy.AddU64(d, total, hwy.SumsOf4(d, rowSum))
	}
	return hwy.ReduceSum(d, total)
}

// squaredDifference returns the pairwise squared differences between the
// samples step bytes before and after src[at:], both masked by sel first.
func squaredDifference[L loader](d hwy.ByteTag, src []byte, at, step int, sel hwy.Bytes) hwy.Uint32s {
	var ld L
	a := hwy.And(d, ld.load(d, src[at-step:]), sel)
	b := hwy.And(d, ld.load(d, src[at+step:]), sel)
	return hwy.SquaresOf2(d, hwy.AbsDiff(d, a, b))
}

func squareGradientSum[P predicate](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	checkGradient(d, src, srcStride, width, height, mask, maskStride)
	if aligned(d, src, srcStride, mask, maskStride) {
		return squareGradientSumRows[P, alignedLoad](d, src, srcStride, width, height, mask, maskStride, value)
	}
	return squareGradientSumRows[P, unalignedLoad](d, src, srcStride, width, height, mask, maskStride, value)
}

func squareGradientSumRows[P predicate, L loader](d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8) uint64 {
	var pred P
	var ld L
	lanes := d.Lanes()
	// Interior columns are [1, width-1); the nose chunk starts at column 1
	// and covers up to lanes-1, full chunks start at lanes.
	alignedWidth := hwy.AlignLo(width-1, lanes)
	noseMask := hwy.FirstN(d, lanes-1)
	tailMask := hwy.LastN(d, width-1-alignedWidth)
	threshold := hwy.Set(d, value)

	var total hwy.Uint64s
	for row := 1; row < height-1; row++ {
		s := row * srcStride
		m := mask[row*maskStride : row*maskStride+width]
		var rowSum hwy.Uint32s

		sel := hwy.And(d, pred.apply(d, hwy.LoadU(d, m[1:]), threshold), noseMask)
		rowSum = hwy.AddU32(d, rowSum, squaredDifference[unalignedLoad](d, src, s+1, 1, sel))
		rowSum = hwy.AddU32(d, rowSum, squaredDifference[unalignedLoad](d, src, s+1, srcStride, sel))

		for col := lanes; col < alignedWidth; col += lanes {
			sel := pred.apply(d, ld.load(d, m[col:]), threshold)
			rowSum = hwy.AddU32(d, rowSum, squaredDifference[unalignedLoad](d, src, s+col, 1, sel))
			rowSum = hwy.AddU32(d, rowSum, squaredDifference[L](d, src, s+col, srcStride, sel))
		}

		if alignedWidth != width-1 {
			off := width - lanes - 1
			sel := hwy.And(d, pred.apply(d, hwy.LoadU(d, m[off:]), threshold), tailMask)
			rowSum = hwy.AddU32(d, rowSum, squaredDifference[unalignedLoad](d, src, s+off, 1, sel))
			rowSum = hwy.AddU32(d, rowSum, squaredDifference[unalignedLoad](d, src, s+off, srcStride, sel))
		}

		total = hwy.AddU64(d, total, hwy.SumsOf4(d, rowSum))
	}
	return hwy.ReduceSum(d, total)
}
