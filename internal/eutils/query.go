// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"fmt"
	"time"
)

// DefaultYears is the default lookback window.
const DefaultYears = 5

// Window is an inclusive range of publication years.
type Window struct {
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`
}

// DateWindow returns the window covering now.Year()-years through now.Year().
func DateWindow(now time.Time, years int) Window {
	end := now.Year()
	return Window{StartYear: end - years, EndYear: end}
}

// Range formats the window as an Entrez date range, e.g. "2021/01/01:2026/12/31".
func (w Window) Range() string {
	return fmt.Sprintf("%d/01/01:%d/12/31", w.StartYear, w.EndYear)
}

// BuildTerm combines the search term with a publication date filter.
func BuildTerm(term string, w Window) string {
	return fmt.Sprintf("%s AND (%s[Date - Publication])", term, w.Range())
}
