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

// Dispatched entry points. They run on the widest byte vector the CPU
// supports, or on the per-pixel kernels when HWY_NO_SIMD is set or no
// vector target was detected.
var (
	// Count returns the number of pixels of src that pass compare against value.
	Count func(src []byte, stride, width, height int, value uint8, compare CompareType) uint32

	// Sum returns the sum of the src samples whose mask passes compare against value.
	Sum func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64

	// SquareSum returns the sum of squares of the src samples whose mask passes.
	SquareSum func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64

	// SquareGradientSum returns the sum of squared central differences of src
	// over the interior pixels whose mask passes.
	SquareGradientSum func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64
)

// scalarTarget reports whether the per-pixel kernels are bound.
var scalarTarget bool

func init() {
	bind(hwy.NoSimdEnv() || hwy.CurrentLevel() == hwy.DispatchScalar)
}

// bind installs the dispatched entry points for the current width.
func bind(scalar bool) {
	d := hwy.ScalableByteTag()
	scalarTarget = scalar
	if scalar {
		Count = func(src []byte, stride, width, height int, value uint8, compare CompareType) uint32 {
			return ScalarCount(d, src, stride, width, height, value, compare)
		}
		Sum = func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64 {
			return ScalarSum(d, src, srcStride, width, height, mask, maskStride, value, compare)
		}
		SquareSum = func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64 {
			return ScalarSquareSum(d, src, srcStride, width, height, mask, maskStride, value, compare)
		}
		SquareGradientSum = func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64 {
			return ScalarSquareGradientSum(d, src, srcStride, width, height, mask, maskStride, value, compare)
		}
		return
	}
	Count = func(src []byte, stride, width, height int, value uint8, compare CompareType) uint32 {
		return BaseCount(d, src, stride, width, height, value, compare)
	}
	Sum = func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64 {
		return BaseSum(d, src, srcStride, width, height, mask, maskStride, value, compare)
	}
	SquareSum = func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64 {
		return BaseSquareSum(d, src, srcStride, width, height, mask, maskStride, value, compare)
	}
	SquareGradientSum = func(src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8, compare CompareType) uint64 {
		return BaseSquareGradientSum(d, src, srcStride, width, height, mask, maskStride, value, compare)
	}
}

// Target describes the bound implementation, e.g. "avx2/256bit" or
// "scalar/128bit". The level is the detected CPU and the suffix the bytes
// per chunk; every vector level runs the same portable word-packed code.
func Target() string {
	d := hwy.ScalableByteTag()
	if scalarTarget {
		return "scalar/" + d.Name()
	}
	return hwy.CurrentName() + "/" + d.Name()
}

// MinWidth returns the narrowest image the dispatched Count, Sum and
// SquareSum accept.
func MinWidth() int {
	return hwy.ScalableByteTag().Lanes()
}

// MinGradientSize returns the smallest width and height the dispatched
// SquareGradientSum accepts.
func MinGradientSize() int {
	return hwy.ScalableByteTag().Lanes() + 3
}

// MaxSquareSumWidth returns the widest image the dispatched SquareSum
// accepts. Count and Sum have no width limit.
func MaxSquareSumWidth() int {
	return maxRowWidth(hwy.ScalableByteTag(), squareLaneGrowth)
}

// MaxGradientWidth returns the widest image the dispatched
// SquareGradientSum accepts.
func MaxGradientWidth() int {
	return maxRowWidth(hwy.ScalableByteTag(), gradientLaneGrowth)
}
