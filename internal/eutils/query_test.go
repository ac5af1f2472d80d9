// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"testing"
	"time"
)

func TestDateWindow(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		years int
		want  Window
	}{
		{"default five years", 5, Window{StartYear: 2021, EndYear: 2026}},
		{"current year only", 0, Window{StartYear: 2026, EndYear: 2026}},
		{"one year", 1, Window{StartYear: 2025, EndYear: 2026}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateWindow(now, tt.years); got != tt.want {
				t.Errorf("DateWindow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildTerm(t *testing.T) {
	got := BuildTerm("memoria", Window{StartYear: 2021, EndYear: 2026})
	want := "memoria AND (2021/01/01:2026/12/31[Date - Publication])"
	if got != want {
		t.Errorf("BuildTerm() = %q, want %q", got, want)
	}
}
