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
	"fmt"
	"math/rand"
	"testing"
)

var testTags = []ByteTag{FixedByteTag(16), FixedByteTag(32), FixedByteTag(64)}

// edgeBytes exercises the lane boundaries the SWAR tricks depend on.
var edgeBytes = []uint8{0, 1, 2, 0x7e, 0x7f, 0x80, 0x81, 0xfe, 0xff}

func randomBytes(rng *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		if rng.Intn(3) == 0 {
			buf[i] = edgeBytes[rng.Intn(len(edgeBytes))]
		} else {
			buf[i] = uint8(rng.Intn(256))
		}
	}
	return buf
}

func boolMask(b bool) uint8 {
	if b {
		return 0xff
	}
	return 0
}

func TestLoadU(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, d := range testTags {
		buf := randomBytes(rng, d.Lanes()+7)
		for off := range 8 {
			v := LoadU(d, buf[off:])
			for i := range d.Lanes() {
				if got, want := v.Lane(i), buf[off+i]; got != want {
					t.Errorf("%s LoadU(off=%d): lane %d: got %d, want %d", d.Name(), off, i, got, want)
				}
			}
			for i := d.Lanes(); i < MaxBytes; i++ {
				if v.Lane(i) != 0 {
					t.Errorf("%s LoadU: lane %d beyond width is %d, want 0", d.Name(), i, v.Lane(i))
				}
			}
		}
	}
}

func TestLoadAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, d := range testTags {
		buf := MakeAligned[byte](d.Lanes())
		copy(buf, randomBytes(rng, d.Lanes()))
		if got, want := Load(d, buf), LoadU(d, buf); got != want {
			t.Errorf("%s Load differs from LoadU: got %v, want %v", d.Name(), got, want)
		}
	}
}

func TestLoadShortPanics(t *testing.T) {
	d := FixedByteTag(16)
	defer func() {
		if recover() == nil {
			t.Error("LoadU on a 15-byte slice should panic")
		}
	}()
	LoadU(d, make([]byte, 15))
}

func TestSet(t *testing.T) {
	for _, d := range testTags {
		for _, value := range edgeBytes {
			v := Set(d, value)
			for i := range d.Lanes() {
				if v.Lane(i) != value {
					t.Errorf("%s Set(%d): lane %d: got %d", d.Name(), value, i, v.Lane(i))
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	ops := []struct {
		name   string
		vector func(ByteTag, Bytes, Bytes) Bytes
		scalar func(a, b uint8) bool
	}{
		{"Equal", Equal, func(a, b uint8) bool { return a == b }},
		{"NotEqual", NotEqual, func(a, b uint8) bool { return a != b }},
		{"Greater", Greater, func(a, b uint8) bool { return a > b }},
		{"GreaterEqual", GreaterEqual, func(a, b uint8) bool { return a >= b }},
		{"Less", Less, func(a, b uint8) bool { return a < b }},
		{"LessEqual", LessEqual, func(a, b uint8) bool { return a <= b }},
	}

	rng := rand.New(rand.NewSource(4))
	for _, op := range ops {
		for _, d := range testTags {
			t.Run(fmt.Sprintf("%s/%s", op.name, d.Name()), func(t *testing.T) {
				for range 200 {
					a := randomBytes(rng, d.Lanes())
					b := randomBytes(rng, d.Lanes())
					// Make some lanes equal so == and <= see both outcomes.
					for i := 0; i < len(a); i += 3 {
						b[i] = a[i]
					}
					m := op.vector(d, LoadU(d, a), LoadU(d, b))
					for i := range d.Lanes() {
						if got, want := m.Lane(i), boolMask(op.scalar(a[i], b[i])); got != want {
							t.Fatalf("lane %d (%d vs %d): got %#x, want %#x", i, a[i], b[i], got, want)
						}
					}
					for i := d.Lanes(); i < MaxBytes; i++ {
						if m.Lane(i) != 0 {
							t.Fatalf("lane %d beyond width is %#x, want 0", i, m.Lane(i))
						}
					}
				}
			})
		}
	}
}

func TestCompareExhaustive(t *testing.T) {
	// Every byte pair, packed 16 per vector.
	d := FixedByteTag(16)
	a := make([]byte, 16)
	b := make([]byte, 16)
	for x := range 256 {
		for y := 0; y < 256; y += 16 {
			for i := range 16 {
				a[i] = uint8(x)
				b[i] = uint8(y + i)
			}
			va, vb := LoadU(d, a), LoadU(d, b)
			ge := GreaterEqual(d, va, vb)
			eq := Equal(d, va, vb)
			for i := range 16 {
				if got, want := ge.Lane(i), boolMask(a[i] >= b[i]); got != want {
					t.Fatalf("GreaterEqual(%d, %d): got %#x, want %#x", a[i], b[i], got, want)
				}
				if got, want := eq.Lane(i), boolMask(a[i] == b[i]); got != want {
					t.Fatalf("Equal(%d, %d): got %#x, want %#x", a[i], b[i], got, want)
				}
			}
		}
	}
}

func TestAbsDiff(t *testing.T) {
	d := FixedByteTag(16)
	a := make([]byte, 16)
	b := make([]byte, 16)
	for x := range 256 {
		for y := 0; y < 256; y += 16 {
			for i := range 16 {
				a[i] = uint8(x)
				b[i] = uint8(y + i)
			}
			r := AbsDiff(d, LoadU(d, a), LoadU(d, b))
			for i := range 16 {
				want := int(a[i]) - int(b[i])
				if want < 0 {
					want = -want
				}
				if got := r.Lane(i); int(got) != want {
					t.Fatalf("AbsDiff(%d, %d): got %d, want %d", a[i], b[i], got, want)
				}
			}
		}
	}
}

func TestBitwise(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, d := range testTags {
		a := randomBytes(rng, d.Lanes())
		b := randomBytes(rng, d.Lanes())
		va, vb := LoadU(d, a), LoadU(d, b)
		and, not := And(d, va, vb), Not(d, va)
		for i := range d.Lanes() {
			if and.Lane(i) != a[i]&b[i] {
				t.Errorf("%s And: lane %d: got %#x, want %#x", d.Name(), i, and.Lane(i), a[i]&b[i])
			}
			if not.Lane(i) != ^a[i] {
				t.Errorf("%s Not: lane %d: got %#x, want %#x", d.Name(), i, not.Lane(i), ^a[i])
			}
		}
		if Not(d, Bytes{}).Lane(MaxBytes-1) != 0 && d.Lanes() < MaxBytes {
			t.Errorf("%s Not: set lanes beyond the tag width", d.Name())
		}
	}
}

func BenchmarkGreaterEqual(b *testing.B) {
	d := FixedByteTag(32)
	x := Set(d, 100)
	y := Set(d, 99)
	var sink Bytes
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = GreaterEqual(d, x, y)
	}
	_ = sink
}
