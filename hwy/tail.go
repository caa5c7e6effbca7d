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

// FirstN returns a mask with the first n lanes active (0xFF) and the rest
// zero. n is clamped to [0, d.Lanes()].
//
// Together with LastN this builds the boundary masks used when a row is
// processed with a final vector that overlaps already-processed bytes:
//
//	lanes := d.Lanes()
//	aligned := hwy.AlignLo(width, lanes)
//	tail := hwy.LastN(d, width-aligned)
//	v := hwy.And(d, hwy.LoadU(d, row[width-lanes:]), tail)
func FirstN(d ByteTag, n int) Bytes {
	var m Bytes
	for i := range d.words {
		k := min(max(n-8*i, 0), 8)
		switch k {
		case 8:
			m.w[i] = ^uint64(0)
		case 0:
		default:
			m.w[i] = 1<<(8*k) - 1
		}
	}
	return m
}

// LastN returns a mask with the last n lanes active and the rest zero.
// n is clamped to [0, d.Lanes()].
func LastN(d ByteTag, n int) Bytes {
	n = min(max(n, 0), d.Lanes())
	return Not(d, FirstN(d, d.Lanes()-n))
}
