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

// Command condgen generates the comparison-kind dispatch of the
// conditional kernels.
//
// Every kernel is written once as a generic function over a predicate type.
// condgen emits, for each kernel, an exported vector entry point (BaseX) and
// a scalar entry point (ScalarX) holding the exhaustive switch that
// instantiates the kernel for the requested CompareType, so the comparison
// is chosen once per call.
//
// Usage via go:generate, from hwy/contrib/conditional:
//
//	//go:generate go run ../../../cmd/condgen -output conditional_dispatch.gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

var (
	outputFile = flag.String("output", "conditional_dispatch.gen.go", "Output file")
	packageOut = flag.String("pkg", "conditional", "Output package name")
	hwyImport  = flag.String("hwy", "github.com/go-hwy/condstat/hwy", "Import path of the hwy package")
)

func main() {
	flag.Parse()

	src, err := Generate(*packageOut, *hwyImport)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s\n", filepath.Base(*outputFile))
}

// Kernel describes one conditional statistic.
type Kernel struct {
	Name   string // exported suffix, e.g. "Sum"
	Impl   string // generic vector implementation, e.g. "sum"
	Doc    string // sentence completing "BaseName returns ..."
	Params string // parameters between the tag and the compare type
	Args   string // the same parameters as call arguments
	Result string
}

// Compare pairs a CompareType constant with its predicate type.
type Compare struct {
	Const string
	Pred  string
}

// Kernels lists every kernel in output order.
var Kernels = []Kernel{
	{
		Name:   "Count",
		Impl:   "count",
		Doc:    "the number of pixels of src that pass compare against value. src is its own mask.",
		Params: "src []byte, stride, width, height int, value uint8",
		Args:   "d, src, stride, width, height, value",
		Result: "uint32",
	},
	{
		Name:   "Sum",
		Impl:   "sum",
		Doc:    "the sum of the src samples whose mask sample passes compare against value.",
		Params: "src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8",
		Args:   "d, src, srcStride, width, height, mask, maskStride, value",
		Result: "uint64",
	},
	{
		Name:   "SquareSum",
		Impl:   "squareSum",
		Doc:    "the sum of the squares of the src samples whose mask sample passes compare against value.",
		Params: "src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8",
		Args:   "d, src, srcStride, width, height, mask, maskStride, value",
		Result: "uint64",
	},
	{
		Name:   "SquareGradientSum",
		Impl:   "squareGradientSum",
		Doc:    "the sum of the squared horizontal and vertical central differences of src over the interior pixels whose mask sample passes compare against value.",
		Params: "src []byte, srcStride, width, height int, mask []byte, maskStride int, value uint8",
		Args:   "d, src, srcStride, width, height, mask, maskStride, value",
		Result: "uint64",
	},
}

// Compares lists every CompareType in declaration order.
var Compares = []Compare{
	{"CompareEqual", "equal"},
	{"CompareNotEqual", "notEqual"},
	{"CompareGreater", "greater"},
	{"CompareGreaterOrEqual", "greaterOrEqual"},
	{"CompareLesser", "lesser"},
	{"CompareLesserOrEqual", "lesserOrEqual"},
}

// Generate returns the formatted dispatch source for package pkg.
func Generate(pkg, hwyPath string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by condgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"%s\"\n\n", hwyPath)

	for _, k := range Kernels {
		fmt.Fprintf(&buf, "// Base%s returns %s\n", k.Name, k.Doc)
		fmt.Fprintf(&buf, "func Base%s(d hwy.ByteTag, %s, compare CompareType) %s {\n", k.Name, k.Params, k.Result)
		emitSwitch(&buf, k.Impl, k.Args)
		fmt.Fprintf(&buf, "}\n\n")

		fmt.Fprintf(&buf, "// Scalar%s is the per-pixel equivalent of Base%s.\n", k.Name, k.Name)
		fmt.Fprintf(&buf, "func Scalar%s(d hwy.ByteTag, %s, compare CompareType) %s {\n", k.Name, k.Params, k.Result)
		emitSwitch(&buf, "scalar"+k.Name, k.Args)
		fmt.Fprintf(&buf, "}\n\n")
	}

	// imports.Process formats the file and drops the hwy import if a
	// future kernel list stops referencing it.
	out, err := imports.Process("conditional_dispatch.gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated dispatch: %w", err)
	}
	return out, nil
}

func emitSwitch(buf *bytes.Buffer, impl, args string) {
	fmt.Fprintf(buf, "\tswitch compare {\n")
	for _, c := range Compares {
		fmt.Fprintf(buf, "\tcase %s:\n", c.Const)
		fmt.Fprintf(buf, "\t\treturn %s[%s](%s)\n", impl, c.Pred, args)
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\tpanic(unknownCompare(compare))\n")
}
