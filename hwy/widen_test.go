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

import (
	"math/rand"
	"testing"
)

func TestSumsOf8(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, d := range testTags {
		for range 100 {
			buf := randomBytes(rng, d.Lanes())
			s := SumsOf8(d, LoadU(d, buf))
			for k := range d.Lanes() / 8 {
				var want uint64
				for _, b := range buf[8*k : 8*k+8] {
					want += uint64(b)
				}
				if got := s.Lane(k); got != want {
					t.Fatalf("%s SumsOf8 lane %d: got %d, want %d", d.Name(), k, got, want)
				}
			}
		}
	}
}

func TestSumsOf8Saturated(t *testing.T) {
	d := FixedByteTag(64)
	s := SumsOf8(d, Set(d, 0xff))
	for k := range 8 {
		if got := s.Lane(k); got != 8*255 {
			t.Errorf("SumsOf8(0xff) lane %d: got %d, want %d", k, got, 8*255)
		}
	}
}

func TestSquaresOf2(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, d := range testTags {
		buf := randomBytes(rng, d.Lanes())
		sq := SquaresOf2(d, LoadU(d, buf))
		for k := range d.Lanes() / 2 {
			a, b := uint32(buf[2*k]), uint32(buf[2*k+1])
			if got, want := sq.Lane(k), a*a+b*b; got != want {
				t.Errorf("%s SquaresOf2 lane %d: got %d, want %d", d.Name(), k, got, want)
			}
		}
	}
	d := FixedByteTag(16)
	if got := SquaresOf2(d, Set(d, 255)).Lane(0); got != 2*255*255 {
		t.Errorf("SquaresOf2(255): got %d, want %d", got, 2*255*255)
	}
}

func TestSumsOf4(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, d := range testTags {
		buf := randomBytes(rng, d.Lanes())
		sq := SquaresOf2(d, LoadU(d, buf))
		acc := AddU32(d, sq, sq)
		wide := SumsOf4(d, acc)
		var want, got uint64
		for _, b := range buf {
			want += 2 * uint64(b) * uint64(b)
		}
		for k := range d.Lanes() / 8 {
			got += wide.Lane(k)
		}
		if got != want {
			t.Errorf("%s SumsOf4: got %d, want %d", d.Name(), got, want)
		}
		if ReduceSum(d, wide) != want {
			t.Errorf("%s ReduceSum: got %d, want %d", d.Name(), ReduceSum(d, wide), want)
		}
	}
}

func TestAddU64(t *testing.T) {
	d := FixedByteTag(32)
	a := SumsOf8(d, Set(d, 1))
	sum := Uint64s{}
	for range 1000 {
		sum = AddU64(d, sum, a)
	}
	if got, want := ReduceSum(d, sum), uint64(1000*32); got != want {
		t.Errorf("ReduceSum: got %d, want %d", got, want)
	}
}

func BenchmarkSquaresOf2(b *testing.B) {
	d := FixedByteTag(32)
	v := Set(d, 200)
	var acc Uint32s
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		acc = AddU32(d, acc, SquaresOf2(d, v))
	}
	_ = acc
}
