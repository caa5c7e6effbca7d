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

import "github.com/go-hwy/condstat/hwy/contrib/image"

// CountImage counts the pixels of src passing compare against value.
func CountImage(src *image.Image[uint8], value uint8, compare CompareType) uint32 {
	return Count(src.Data(), src.Stride(), src.Width(), src.Height(), value, compare)
}

// SumImage sums src over the pixels whose mask passes compare against value.
// src and mask must have the same size.
func SumImage(src, mask *image.Image[uint8], value uint8, compare CompareType) uint64 {
	checkSameSize(src, mask)
	return Sum(src.Data(), src.Stride(), src.Width(), src.Height(),
		mask.Data(), mask.Stride(), value, compare)
}

// SquareSumImage sums the squares of src over the pixels whose mask passes.
func SquareSumImage(src, mask *image.Image[uint8], value uint8, compare CompareType) uint64 {
	checkSameSize(src, mask)
	return SquareSum(src.Data(), src.Stride(), src.Width(), src.Height(),
		mask.Data(), mask.Stride(), value, compare)
}

// SquareGradientSumImage sums the squared central differences of src over
// the interior pixels whose mask passes.
func SquareGradientSumImage(src, mask *image.Image[uint8], value uint8, compare CompareType) uint64 {
	checkSameSize(src, mask)
	return SquareGradientSum(src.Data(), src.Stride(), src.Width(), src.Height(),
		mask.Data(), mask.Stride(), value, compare)
}

func checkSameSize(src, mask *image.Image[uint8]) {
	if !image.SameSize(src, mask) {
		panic("conditional: image and mask sizes differ")
	}
}
