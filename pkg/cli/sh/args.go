package sh

import (
	"fmt"
	"strconv"
)

// Args parses positional command arguments. The first failure is kept
// and later calls return zero values.
type Args struct {
	Values []string
	Err    error
}

// NewArgs wraps positional arguments.
func NewArgs(values []string) *Args {
	return &Args{Values: values}
}

func (a *Args) get(n int, name string, required bool) (string, bool) {
	if a.Err != nil {
		return "", false
	}
	if n >= len(a.Values) {
		if required {
			a.Err = fmt.Errorf("%s required", name)
		}
		return "", false
	}
	return a.Values[n], true
}

// Float parses argument n. def is used if the argument is absent and
// not required.
func (a *Args) Float(n int, name string, required bool, def float64) float64 {
	s, ok := a.get(n, name, required)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		a.Err = fmt.Errorf("invalid %s: %v", name, err)
		return def
	}
	return v
}

// Int parses argument n as an integer of bits size.
func (a *Args) Int(n int, name string, required bool, bits int) int64 {
	s, ok := a.get(n, name, required)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		a.Err = fmt.Errorf("invalid %s: %v", name, err)
		return 0
	}
	return v
}

// Uint parses argument n as an unsigned integer of bits size.
func (a *Args) Uint(n int, name string, required bool, bits int) uint64 {
	s, ok := a.get(n, name, required)
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		a.Err = fmt.Errorf("invalid %s: %v", name, err)
		return 0
	}
	return v
}

// Flag tells if any argument from n on equals name.
func (a *Args) Flag(n int, name string) bool {
	for i := n; i < len(a.Values); i++ {
		if a.Values[i] == name {
			return true
		}
	}
	return false
}
