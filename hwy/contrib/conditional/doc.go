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

// Package conditional computes masked statistics over 8-bit images.
//
// For every pixel whose mask sample satisfies a comparison against a
// threshold byte, a kernel accumulates one statistic:
//
//	Count              number of passing mask samples (the image is its own mask)
//	Sum                sum of the source samples under passing mask samples
//	SquareSum          sum of their squares
//	SquareGradientSum  sum of squared central differences, interior pixels only
//
// Buffers are described the way the rest of hwy does it: a byte slice
// starting at pixel (0, 0), a stride in bytes between row starts, a width
// and a height. Each row is scanned in vector-width chunks; when the width
// is not a multiple of the vector width one final chunk ending at the last
// byte of the row is masked so overlapping bytes are not counted twice.
// Byte lanes are widened to 32-bit row partials and 64-bit totals so large
// images cannot overflow.
//
// # Dispatch
//
// Count, Sum, SquareSum and SquareGradientSum are function variables bound
// at init to the widest target hwy detected. BaseCount and friends take an
// explicit hwy.ByteTag; ScalarCount and friends are the per-pixel reference
// used when HWY_NO_SIMD is set. The comparison kind and the aligned or
// unaligned load path are selected once per call, never inside the loops.
//
// # Contract
//
// Shapes are not validated as recoverable errors. A width narrower than the
// vector width (vector width + 3 for the gradient, in both dimensions), a
// stride smaller than the width, a buffer too short for its geometry, an
// image/mask size mismatch or an unknown CompareType panics with a message
// prefixed "conditional:".
//
// # Usage Example
//
//	src := image.NewImage[uint8](1920, 1080)
//	mask := image.NewImage[uint8](1920, 1080)
//	// ... fill src and mask ...
//	sum := conditional.SumImage(src, mask, 128, conditional.CompareGreaterOrEqual)
package conditional

//go:generate go run ../../../cmd/condgen -output conditional_dispatch.gen.go
