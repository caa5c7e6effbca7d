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

import "fmt"

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("128bit", "256bit", etc.)
	Name() string
}

// ByteTag selects the width of byte vector operations, in the spirit of
// Highway's d-tags: every operation takes the tag as its first argument
// and touches only the lanes the tag covers.
//
// The zero ByteTag is invalid; use ScalableByteTag or FixedByteTag.
type ByteTag struct {
	words int
}

var _ Tag = ByteTag{}

// ScalableByteTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases.
func ScalableByteTag() ByteTag {
	return FixedByteTag(currentWidth)
}

// FixedByteTag returns a tag for width-byte vectors. Width must be 16, 32
// or 64; anything else panics.
func FixedByteTag(width int) ByteTag {
	switch width {
	case 16, 32, 64:
		return ByteTag{words: width / 8}
	}
	panic(fmt.Sprintf("hwy: unsupported vector width %d", width))
}

// Width returns the vector width in bytes.
func (d ByteTag) Width() int {
	return d.words * 8
}

// Lanes returns the number of uint8 lanes, which equals Width.
func (d ByteTag) Lanes() int {
	return d.words * 8
}

// Name returns "128bit", "256bit" or "512bit".
func (d ByteTag) Name() string {
	return fmt.Sprintf("%dbit", d.words*64)
}
