// SPDX-License-Identifier: MIT
// Package wasserstein: the stage trace and its wire naming. Stage names
// are a de facto contract with downstream metric and rendering layers,
// which parse the attribute index back out of "sens_var_<i>"; the names
// must be preserved exactly.

package wasserstein

import (
	"strconv"
	"strings"
)

// BaseStage labels the unadjusted input vector in a trace.
const BaseStage = "Base model"

// stagePrefix precedes the 1-indexed attribute number in stage names.
const stagePrefix = "sens_var_"

// StageName returns the wire name for attribute column position i
// (0-based): "sens_var_1" for i=0, and so on.
func StageName(i int) string {
	return stagePrefix + strconv.Itoa(i+1)
}

// StageIndex parses a "sens_var_<i>" name and returns the 1-indexed
// attribute number. Returns ErrStageName for any other name, including
// BaseStage.
func StageIndex(name string) (int, error) {
	rest, ok := strings.CutPrefix(name, stagePrefix)
	if !ok {
		return 0, ErrStageName
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 1 {
		return 0, ErrStageName
	}
	return i, nil
}

// Stage is one step of a sequential adjustment: the label vector as it
// stood after that step.
type Stage struct {
	Name string
	Y    []float64
}

// Trace is the ordered record of a sequential transform: the base vector
// first, then one stage per attribute in processing order. The vector at
// stage k depends only on the vector at stage k-1 and attribute k's
// calibration state.
type Trace []Stage

// Final returns the last stage's vector, or nil for an empty trace.
func (t Trace) Final() []float64 {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1].Y
}

// Get returns the vector recorded under the given stage name.
func (t Trace) Get(name string) ([]float64, bool) {
	for _, s := range t {
		if s.Name == name {
			return s.Y, true
		}
	}
	return nil, false
}

// Names returns the stage names in trace order.
func (t Trace) Names() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.Name
	}
	return out
}
