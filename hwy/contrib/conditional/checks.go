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

import (
	"fmt"
	"math"

	"github.com/go-hwy/condstat/hwy"
)

// Per-chunk growth of one 32-bit row lane.
const (
	squareLaneGrowth   = 2 * 255 * 255     // two squared samples
	gradientLaneGrowth = 2 * 2 * 255 * 255 // two samples, two differences each
)

func checkBuffer(name string, buf []byte, stride, width, height int) {
	if stride < width {
		panic(fmt.Sprintf("conditional: %s stride %d smaller than width %d", name, stride, width))
	}
	if height > 0 && len(buf) < (height-1)*stride+width {
		panic(fmt.Sprintf("conditional: %s buffer of %d bytes too short for %dx%d with stride %d",
			name, len(buf), width, height, stride))
	}
}

func checkShape(d hwy.ByteTag, width, height int) {
	if width < d.Lanes() {
		panic(fmt.Sprintf("conditional: width %d narrower than the %d-byte vector", width, d.Lanes()))
	}
	if height < 0 {
		panic(fmt.Sprintf("conditional: negative height %d", height))
	}
}

// maxRowWidth returns the widest row whose chunks, plus the tail, keep
// every 32-bit row lane within math.MaxUint32 when each chunk adds growth.
func maxRowWidth(d hwy.ByteTag, growth int) int {
	chunks := math.MaxUint32 / uint64(growth)
	return int(chunks)*d.Lanes() - 1
}

// checkRowLanes rejects rows so wide that a 32-bit row partial could wrap.
func checkRowLanes(d hwy.ByteTag, width, growth int) {
	if width > maxRowWidth(d, growth) {
		panic(fmt.Sprintf("conditional: width %d overflows the 32-bit row accumulator", width))
	}
}

func checkCount(d hwy.ByteTag, src []byte, stride, width, height int) {
	checkShape(d, width, height)
	checkBuffer("src", src, stride, width, height)
}

func checkMasked(d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int) {
	checkShape(d, width, height)
	checkBuffer("src", src, srcStride, width, height)
	checkBuffer("mask", mask, maskStride, width, height)
}

func checkGradient(d hwy.ByteTag, src []byte, srcStride, width, height int, mask []byte, maskStride int) {
	minSize := d.Lanes() + 3
	if width < minSize || height < minSize {
		panic(fmt.Sprintf("conditional: gradient needs at least %dx%d, got %dx%d", minSize, minSize, width, height))
	}
	checkBuffer("src", src, srcStride, width, height)
	checkBuffer("mask", mask, maskStride, width, height)
	checkRowLanes(d, width, gradientLaneGrowth)
}
