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
	"errors"
	"fmt"
	"strings"
)

// CompareType selects the predicate applied between each mask sample and
// the threshold: the pixel passes when "mask OP threshold" holds, with
// unsigned byte semantics.
type CompareType int

const (
	// CompareEqual passes mask == threshold.
	CompareEqual CompareType = iota
	// CompareNotEqual passes mask != threshold.
	CompareNotEqual
	// CompareGreater passes mask > threshold.
	CompareGreater
	// CompareGreaterOrEqual passes mask >= threshold.
	CompareGreaterOrEqual
	// CompareLesser passes mask < threshold.
	CompareLesser
	// CompareLesserOrEqual passes mask <= threshold.
	CompareLesserOrEqual
)

// ErrUnknownCompareType is returned by ParseCompareType for names it does
// not recognize.
var ErrUnknownCompareType = errors.New("conditional: unknown compare type")

var compareNames = [...]string{
	CompareEqual:          "Equal",
	CompareNotEqual:       "NotEqual",
	CompareGreater:        "Greater",
	CompareGreaterOrEqual: "GreaterOrEqual",
	CompareLesser:         "Lesser",
	CompareLesserOrEqual:  "LesserOrEqual",
}

var compareSymbols = [...]string{
	CompareEqual:          "==",
	CompareNotEqual:       "!=",
	CompareGreater:        ">",
	CompareGreaterOrEqual: ">=",
	CompareLesser:         "<",
	CompareLesserOrEqual:  "<=",
}

var compareShort = [...]string{
	CompareEqual:          "eq",
	CompareNotEqual:       "ne",
	CompareGreater:        "gt",
	CompareGreaterOrEqual: "ge",
	CompareLesser:         "lt",
	CompareLesserOrEqual:  "le",
}

// CompareTypes returns every valid CompareType in declaration order.
func CompareTypes() []CompareType {
	return []CompareType{
		CompareEqual, CompareNotEqual,
		CompareGreater, CompareGreaterOrEqual,
		CompareLesser, CompareLesserOrEqual,
	}
}

// Valid reports whether c is one of the declared comparison kinds.
func (c CompareType) Valid() bool {
	return c >= CompareEqual && c <= CompareLesserOrEqual
}

// String returns the name of the comparison, such as "GreaterOrEqual".
func (c CompareType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CompareType(%d)", int(c))
	}
	return compareNames[c]
}

// Symbol returns the operator for the comparison, such as ">=".
func (c CompareType) Symbol() string {
	if !c.Valid() {
		return "?"
	}
	return compareSymbols[c]
}

// Test reports whether value passes the comparison against threshold.
// It panics on an unknown CompareType.
func (c CompareType) Test(value, threshold uint8) bool {
	switch c {
	case CompareEqual:
		return value == threshold
	case CompareNotEqual:
		return value != threshold
	case CompareGreater:
		return value > threshold
	case CompareGreaterOrEqual:
		return value >= threshold
	case CompareLesser:
		return value < threshold
	case CompareLesserOrEqual:
		return value <= threshold
	}
	panic(unknownCompare(c))
}

// ParseCompareType parses a comparison written as a name ("GreaterOrEqual",
// case-insensitive), a short name ("ge") or an operator (">=").
func ParseCompareType(s string) (CompareType, error) {
	key := strings.TrimSpace(s)
	for _, c := range CompareTypes() {
		if strings.EqualFold(key, compareNames[c]) || strings.EqualFold(key, compareShort[c]) || key == compareSymbols[c] {
			return c, nil
		}
	}
	if key == "=" {
		return CompareEqual, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownCompareType, s)
}

func unknownCompare(c CompareType) string {
	return fmt.Sprintf("conditional: unknown compare type %d", int(c))
}
