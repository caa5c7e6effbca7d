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
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-hwy/condstat/hwy/contrib/conditional"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, conditional.Target())
	assert.Contains(t, out, "Min gradient size")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--width", "100", "--height", "80", "--pattern", "flat", "--threshold", "7", "--compare", "eq")
	require.NoError(t, err)
	// Every pixel equals the threshold, so count is the pixel count and
	// sum is 7 per pixel.
	assert.Contains(t, out, "8000")
	assert.Contains(t, out, "56000")
	assert.Contains(t, out, "mask == 7")
}

func TestRunSingleKernel(t *testing.T) {
	out, err := execute(t, "run", "--kernel", "Count", "--width", "64", "--height", "2", "--pattern", "ramp", "--threshold", "255", "--compare", ">")
	require.NoError(t, err)
	assert.Contains(t, out, "count")
	assert.NotContains(t, out, "gradient")
}

func TestVerify(t *testing.T) {
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			out, err := execute(t, "verify", "--width", "203", "--height", "77", "--pattern", pattern)
			require.NoError(t, err, out)
			assert.NotContains(t, out, "MISMATCH")
		})
	}
}

func TestVerifyUnalignedStride(t *testing.T) {
	_, err := execute(t, "verify", "--width", "150", "--height", "70", "--stride", "157", "--seed", "9")
	require.NoError(t, err)
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--width", "128", "--height", "72", "--frames", "5", "--workers", "2", "--iterations", "2", "--kernel", "sum")
	require.NoError(t, err)
	assert.Contains(t, out, "sum")
	assert.Contains(t, out, "2 workers")
}

func TestVerbose(t *testing.T) {
	defer conditional.SetLogger(nil)
	out, err := execute(t, "info", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "dispatch target")
}

func TestWidestRowAccepted(t *testing.T) {
	width := conditional.MaxSquareSumWidth()
	out, err := execute(t, "run", "--kernel", "squaresum", "--width", strconv.Itoa(width), "--height", "1", "--pattern", "flat", "--threshold", "255", "--compare", "eq")
	require.NoError(t, err)
	assert.Contains(t, out, strconv.FormatUint(uint64(width)*255*255, 10))
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"threshold", []string{"run", "--threshold", "256"}, "--threshold 256"},
		{"compare", []string{"run", "--compare", "~"}, "unknown compare type"},
		{"kernel", []string{"run", "--kernel", "median"}, "unknown --kernel"},
		{"pattern", []string{"verify", "--pattern", "noise"}, "unknown --pattern"},
		{"stride", []string{"run", "--width", "100", "--stride", "99"}, "smaller than --width"},
		{"narrow", []string{"run", "--kernel", "sum", "--width", "8"}, "sum needs at least"},
		{"gradient", []string{"run", "--kernel", "gradient", "--height", "4"}, "gradient needs at least"},
		{"frames", []string{"bench", "--frames", "0"}, "--frames"},
		{"squaresum wide", []string{"run", "--kernel", "squaresum", "--width", "3000000", "--height", "1"}, "squaresum accepts at most"},
		{"gradient wide", []string{"verify", "--kernel", "gradient", "--width", "3000000", "--height", "80"}, "gradient accepts at most"},
		{"all wide", []string{"run", "--width", "3000000", "--height", "80"}, "accepts at most"},
		{"args", []string{"info", "extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "error %q does not mention %q", err, tt.want)
		})
	}
}
