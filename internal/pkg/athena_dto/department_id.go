package athena_dto

import (
	"athena-relay-service/internal/pkg/constvars"
	"math/big"
	"unicode"

	"github.com/goccy/go-json"
)

// DepartmentID is the integer department of a patient. A nil Value means the
// input had no leading decimal digits; it is still sent upstream as NaN.
type DepartmentID struct {
	Value *big.Int
}

func NewDepartmentID(value int64) DepartmentID {
	return DepartmentID{Value: big.NewInt(value)}
}

// ParseDepartmentID reads a base-10 integer prefix: leading white space is
// skipped, an optional sign is honoured and parsing stops at the first
// non-digit, so "12abc" is 12 and "1.9" is 1. Digit runs of any length are
// kept exactly. Input without digits yields the NaN department.
func ParseDepartmentID(input string) DepartmentID {
	runes := []rune(input)
	i := 0
	for i < len(runes) && (unicode.IsSpace(runes[i]) || runes[i] == '\uFEFF') {
		i++
	}

	start := i
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
		i++
	}

	digitsStart := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return DepartmentID{}
	}

	value, ok := new(big.Int).SetString(string(runes[start:i]), 10)
	if !ok {
		return DepartmentID{}
	}
	return DepartmentID{Value: value}
}

func (d DepartmentID) String() string {
	if d.Value == nil {
		return constvars.DepartmentIDNaN
	}
	return d.Value.String()
}

func (d DepartmentID) IsNaN() bool {
	return d.Value == nil
}

// MarshalJSON writes a number, or the string "NaN" since JSON has no NaN literal.
func (d DepartmentID) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return json.Marshal(constvars.DepartmentIDNaN)
	}
	return []byte(d.Value.String()), nil
}
