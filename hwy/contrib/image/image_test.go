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

package image

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-hwy/condstat/hwy"
)

func TestNewImage(t *testing.T) {
	for _, width := range []int{1, 15, 16, 64, 100, 1921} {
		img := NewImage[uint8](width, 7)

		if img.Width() != width {
			t.Errorf("Width: got %d, want %d", img.Width(), width)
		}
		if img.Height() != 7 {
			t.Errorf("Height: got %d, want 7", img.Height())
		}
		if img.Stride() < width {
			t.Errorf("Stride: got %d, want >= %d", img.Stride(), width)
		}
		if img.Stride()%hwy.MaxBytes != 0 {
			t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), hwy.MaxBytes)
		}
		if !hwy.Aligned(img.Data(), hwy.MaxBytes) {
			t.Errorf("width %d: data not aligned to %d bytes", width, hwy.MaxBytes)
		}
		for y := range img.Height() {
			if !hwy.Aligned(img.Row(y), hwy.MaxBytes) {
				t.Errorf("width %d: row %d not aligned", width, y)
			}
		}
	}
}

func TestNewImage_Wide(t *testing.T) {
	img := NewImage[uint16](10, 3)
	if img.Stride()*2%hwy.MaxBytes != 0 {
		t.Errorf("uint16 stride %d not a multiple of %d bytes", img.Stride(), hwy.MaxBytes)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[uint8](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[uint8](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
}

func TestImage_Row(t *testing.T) {
	img := NewImage[uint8](10, 5)

	row0 := img.Row(0)
	for i := range 10 {
		row0[i] = uint8(i)
	}
	for i := range 10 {
		if row0[i] != uint8(i) {
			t.Errorf("Row[0][%d]: got %v, want %v", i, row0[i], i)
		}
	}
	if len(row0) != img.Stride() {
		t.Errorf("Row length: got %d, want stride %d", len(row0), img.Stride())
	}

	row1 := img.Row(1)
	row1[0] = 99
	if row0[0] == 99 {
		t.Error("Rows should be independent")
	}

	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestImage_RowSlice(t *testing.T) {
	img := NewImage[uint8](10, 5)
	if got := len(img.RowSlice(0)); got != 10 {
		t.Errorf("RowSlice length: got %d, want 10", got)
	}
	if img.RowSlice(5) != nil {
		t.Error("RowSlice(5) should return nil")
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewImage[uint8](10, 5)
	img.Set(3, 2, 42)
	if got := img.At(3, 2); got != 42 {
		t.Errorf("At(3, 2): got %v, want 42", got)
	}
	if got := img.Data()[2*img.Stride()+3]; got != 42 {
		t.Errorf("data[2*stride+3]: got %v, want 42", got)
	}

	// Out of bounds reads are zero and writes are dropped.
	img.Set(10, 0, 7)
	img.Set(-1, 0, 7)
	if got := img.At(10, 0); got != 0 {
		t.Errorf("At(10, 0): got %v, want 0", got)
	}
	if got := img.At(0, -1); got != 0 {
		t.Errorf("At(0, -1): got %v, want 0", got)
	}
}

func TestImage_Fill(t *testing.T) {
	img := NewImage[uint8](5, 3)
	img.Fill(9)

	for y := range img.Height() {
		want := []uint8{9, 9, 9, 9, 9}
		if diff := cmp.Diff(want, img.RowSlice(y)); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", y, diff)
		}
		for x, v := range img.Row(y)[img.Width():] {
			if v != 0 {
				t.Errorf("padding (%d, %d): got %v, want 0", img.Width()+x, y, v)
			}
		}
	}
}

func TestImage_Clone(t *testing.T) {
	img := NewImage[uint8](6, 4)
	for y := range 4 {
		for x := range 6 {
			img.Set(x, y, uint8(10*y+x))
		}
	}

	clone := img.Clone()
	if !SameSize(img, clone) {
		t.Fatalf("Clone size: got %dx%d, want %dx%d", clone.Width(), clone.Height(), img.Width(), img.Height())
	}
	for y := range 4 {
		if diff := cmp.Diff(img.RowSlice(y), clone.RowSlice(y)); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", y, diff)
		}
	}

	clone.Set(0, 0, 200)
	if img.At(0, 0) == 200 {
		t.Error("Clone should not share the buffer")
	}
}

func TestFromBuffer(t *testing.T) {
	data := []uint8{
		1, 2, 3, 0,
		4, 5, 6, 0,
		7, 8, 9,
	}
	img := FromBuffer(data, 3, 3, 4)

	var got [][]uint8
	for y := range img.Height() {
		got = append(got, img.RowSlice(y))
	}
	want := [][]uint8{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if got := img.Row(2); len(got) != 3 {
		t.Errorf("last Row length: got %d, want 3", len(got))
	}
}

func TestFromBuffer_Panics(t *testing.T) {
	tests := []struct {
		name                  string
		n                     int
		width, height, stride int
	}{
		{"stride below width", 100, 10, 2, 9},
		{"short buffer", 19, 10, 2, 10},
		{"negative size", 10, -1, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("FromBuffer(%d, %d, %d) did not panic", tt.width, tt.height, tt.stride)
				}
			}()
			FromBuffer(make([]uint8, tt.n), tt.width, tt.height, tt.stride)
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 50, Y1: 80}
	if r.Width() != 40 {
		t.Errorf("Width: got %d, want 40", r.Width())
	}
	if r.Height() != 60 {
		t.Errorf("Height: got %d, want 60", r.Height())
	}
	if r.IsEmpty() {
		t.Error("Rect should not be empty")
	}
	if !(Rect{X0: 5, Y0: 5, X1: 5, Y1: 10}).IsEmpty() {
		t.Error("Zero-width rect should be empty")
	}

	got := r.Intersect(Rect{X0: 30, Y0: 0, X1: 100, Y1: 40})
	want := Rect{X0: 30, Y0: 20, X1: 50, Y1: 40}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
	}
}

func TestSubImage(t *testing.T) {
	img := NewImage[uint8](20, 10)
	for y := range 10 {
		for x := range 20 {
			img.Set(x, y, uint8(y*20+x))
		}
	}

	sub := img.SubImage(Rect{X0: 3, Y0: 2, X1: 8, Y1: 6})
	if sub.Width() != 5 || sub.Height() != 4 {
		t.Fatalf("SubImage size: got %dx%d, want 5x4", sub.Width(), sub.Height())
	}
	if sub.Stride() != img.Stride() {
		t.Errorf("SubImage stride: got %d, want %d", sub.Stride(), img.Stride())
	}
	for y := range 4 {
		for x := range 5 {
			if got, want := sub.At(x, y), img.At(x+3, y+2); got != want {
				t.Errorf("sub.At(%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}

	sub.Set(0, 0, 250)
	if img.At(3, 2) != 250 {
		t.Error("SubImage should share the parent buffer")
	}

	clipped := img.SubImage(Rect{X0: 15, Y0: 8, X1: 40, Y1: 40})
	if clipped.Width() != 5 || clipped.Height() != 2 {
		t.Errorf("clipped SubImage: got %dx%d, want 5x2", clipped.Width(), clipped.Height())
	}
	if empty := img.SubImage(Rect{X0: 30, Y0: 0, X1: 40, Y1: 5}); empty.Width() != 0 {
		t.Errorf("disjoint SubImage width: got %d, want 0", empty.Width())
	}
}
