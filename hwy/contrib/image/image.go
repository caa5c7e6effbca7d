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

// Package image provides SIMD-friendly 2D image types with aligned rows.
//
// The Image type stores single-channel 2D data with every row starting on
// a vector boundary, so kernels that require aligned loads can take their
// fast path. Images can also wrap caller-owned buffers with any stride.
//
// Example usage:
//
//	img := image.NewImage[uint8](640, 480)
//	img.Fill(128)
//	n := conditional.CountImage(img, 128, conditional.CompareEqual)
package image

import (
	"fmt"
	"unsafe"

	"github.com/go-hwy/condstat/hwy"
)

// Image is a single-channel 2D array with SIMD-aligned rows.
// Pixel (x, y) is data[y*stride+x]; the bytes between width and stride are
// padding and are never part of the image.
type Image[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
}

// NewImage creates a new image with the specified dimensions.
// The first row starts on a hwy.MaxBytes boundary and the stride is a
// multiple of hwy.MaxBytes, so every row is aligned for every vector width.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	var zero T
	elemsPerVector := hwy.MaxBytes / int(unsafe.Sizeof(zero))
	stride := hwy.AlignHi(width, elemsPerVector)

	return &Image[T]{
		data:   hwy.MakeAligned[T](stride * height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// FromBuffer wraps a caller-owned buffer with the given geometry without
// copying. It panics if stride < width or data is too short to hold height
// rows.
func FromBuffer[T hwy.Lanes](data []T, width, height, stride int) *Image[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("image: negative size %dx%d", width, height))
	}
	if stride < width {
		panic(fmt.Sprintf("image: stride %d smaller than width %d", stride, width))
	}
	if height > 0 && len(data) < (height-1)*stride+width {
		panic(fmt.Sprintf("image: buffer of %d elements too short for %dx%d with stride %d",
			len(data), width, height, stride))
	}
	return &Image[T]{data: data, width: width, height: height, stride: stride}
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// Data returns the backing buffer starting at pixel (0, 0). Together with
// Stride, Width and Height it is the (pointer, stride, width, height)
// quadruple kernels take.
func (img *Image[T]) Data() []T {
	return img.data
}

// Row returns a mutable slice for the specified row.
// The slice includes padding elements beyond the image width when the
// buffer has them.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start:min(start+img.stride, len(img.data))]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y).
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at position (x, y).
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// SameSize returns true if both images have the same dimensions.
func SameSize[T, U hwy.Lanes](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the image with freshly aligned rows.
func (img *Image[T]) Clone() *Image[T] {
	clone := NewImage[T](img.width, img.height)
	for y := range img.height {
		copy(clone.RowSlice(y), img.RowSlice(y))
	}
	return clone
}

// Fill sets all pixels to the specified value. Padding is left untouched.
func (img *Image[T]) Fill(value T) {
	for y := range img.height {
		row := img.RowSlice(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Bounds returns the bounding rectangle of the image.
func (img *Image[T]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// SubImage returns a view of the pixels inside r, clipped to the image
// bounds. The view shares the parent's buffer and stride, so its rows are
// generally not aligned.
func (img *Image[T]) SubImage(r Rect) *Image[T] {
	r = r.Intersect(img.Bounds())
	if r.IsEmpty() {
		return &Image[T]{}
	}
	return &Image[T]{
		data:   img.data[r.Y0*img.stride+r.X0:],
		width:  r.Width(),
		height: r.Height(),
		stride: img.stride,
	}
}
