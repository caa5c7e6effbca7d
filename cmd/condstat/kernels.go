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

package main

import (
	"github.com/samber/lo"

	"github.com/go-hwy/condstat/hwy"
	"github.com/go-hwy/condstat/hwy/contrib/conditional"
	"github.com/go-hwy/condstat/hwy/contrib/image"
)

type frameFunc func(src, mask *image.Image[uint8], value uint8, compare conditional.CompareType) uint64

// kernel binds a statistic to its dispatched and per-pixel entry points.
type kernel struct {
	name     string
	gradient bool
	maxWidth func() int // nil when the kernel has no width limit
	run      frameFunc
	scalar   frameFunc
}

func (k kernel) minWidth() int {
	if k.gradient {
		return conditional.MinGradientSize()
	}
	return conditional.MinWidth()
}

func (k kernel) minHeight() int {
	if k.gradient {
		return conditional.MinGradientSize()
	}
	return 1
}

var kernels = []kernel{
	{
		name: "count",
		run: func(src, _ *image.Image[uint8], value uint8, compare conditional.CompareType) uint64 {
			return uint64(conditional.CountImage(src, value, compare))
		},
		scalar: func(src, _ *image.Image[uint8], value uint8, compare conditional.CompareType) uint64 {
			return uint64(conditional.ScalarCount(hwy.ScalableByteTag(),
				src.Data(), src.Stride(), src.Width(), src.Height(), value, compare))
		},
	},
	{
		name: "sum",
		run:  conditional.SumImage,
		scalar: func(src, mask *image.Image[uint8], value uint8, compare conditional.CompareType) uint64 {
			return conditional.ScalarSum(hwy.ScalableByteTag(), src.Data(), src.Stride(), src.Width(), src.Height(),
				mask.Data(), mask.Stride(), value, compare)
		},
	},
	{
		name:     "squaresum",
		maxWidth: conditional.MaxSquareSumWidth,
		run:      conditional.SquareSumImage,
		scalar: func(src, mask *image.Image[uint8], value uint8, compare conditional.CompareType) uint64 {
			return conditional.ScalarSquareSum(hwy.ScalableByteTag(), src.Data(), src.Stride(), src.Width(), src.Height(),
				mask.Data(), mask.Stride(), value, compare)
		},
	},
	{
		name:     "gradient",
		gradient: true,
		maxWidth: conditional.MaxGradientWidth,
		run:      conditional.SquareGradientSumImage,
		scalar: func(src, mask *image.Image[uint8], value uint8, compare conditional.CompareType) uint64 {
			return conditional.ScalarSquareGradientSum(hwy.ScalableByteTag(), src.Data(), src.Stride(), src.Width(), src.Height(),
				mask.Data(), mask.Stride(), value, compare)
		},
	},
}

func kernelNames() []string {
	return lo.Map(kernels, func(k kernel, _ int) string { return k.name })
}
