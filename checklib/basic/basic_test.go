/*
VirtCheck Analyzer - A tool for static analysis of C++ class hierarchies
Copyright (C) 2026  VirtCheck Authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package basic

import (
	"testing"
	"time"
)

func TestFormatTimeDuration(t *testing.T) {
	for _, testCase := range [...]struct {
		d        time.Duration
		expected string
	}{
		{3 * time.Second, "3s"},
		{1500 * time.Millisecond, "1.5s"},
		{2050 * time.Millisecond, "2.5s"},
		{time.Second + 123*time.Millisecond, "1.123s"},
	} {
		if got := FormatTimeDuration(testCase.d); got != testCase.expected {
			t.Errorf("FormatTimeDuration(%v) = %q, expected %q", testCase.d, got, testCase.expected)
		}
	}
}

func TestGetPercentString(t *testing.T) {
	if got := GetPercentString(1, 4); got != "25%" {
		t.Errorf("GetPercentString(1, 4) = %q", got)
	}
	if got := GetPercentString(3, 3); got != "100%" {
		t.Errorf("GetPercentString(3, 3) = %q", got)
	}
}
