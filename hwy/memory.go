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

import "unsafe"

// This file provides the alignment helpers that decide between the aligned
// and unaligned load paths.

// AlignLo rounds n down to a multiple of align, which must be a power of two.
func AlignLo(n, align int) int {
	return n &^ (align - 1)
}

// AlignHi rounds n up to a multiple of align, which must be a power of two.
func AlignHi(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// Aligned reports whether the first element of buf sits on an align-byte
// boundary. align must be a power of two.
func Aligned[T Lanes](buf []T, align int) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))&uintptr(align-1) == 0
}

// MakeAligned returns a zeroed slice of n elements whose first element is
// aligned to MaxBytes, so it is aligned for every supported vector width.
func MakeAligned[T Lanes](n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	pad := MaxBytes / size
	raw := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	// Go aligns allocations of T to at least size bytes, so the distance to
	// the next boundary is a whole number of elements.
	off := int((MaxBytes-addr%MaxBytes)%MaxBytes) / size
	return raw[off : off+n : off+n]
}
