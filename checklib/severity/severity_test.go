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

package severity

import (
	"testing"

	"virtcheck.dev/analyzer/analyzer/result"
)

func TestFromString(t *testing.T) {
	for _, testCase := range [...]struct {
		input    string
		expected Level
	}{
		{"highest", Highest},
		{"High", High},
		{"medium", Medium},
		{"warning", Medium},
		{"low", Low},
		{"lowest", Lowest},
		{"nonsense", Unknown},
	} {
		if got := FromString(testCase.input); got != testCase.expected {
			t.Errorf("FromString(%q) = %d, expected %d", testCase.input, got, testCase.expected)
		}
	}
}

func TestAddSeverity(t *testing.T) {
	results := &result.ResultsList{Results: []*result.Result{{Path: "a.h"}}}
	AddSeverity(results, "hiercheck/rule_hide_nonvirtual", "")
	if results.Results[0].Severity != int32(Medium) {
		t.Errorf("default severity not applied: %d", results.Results[0].Severity)
	}
	AddSeverity(results, "hiercheck/rule_hide_nonvirtual", "low")
	if results.Results[0].Severity != int32(Low) {
		t.Errorf("custom severity not applied: %d", results.Results[0].Severity)
	}
	AddSeverity(results, "hiercheck/rule_hide_nonvirtual", "nonsense")
	if results.Results[0].Severity != int32(Medium) {
		t.Errorf("unknown custom severity should fall back to the default: %d", results.Results[0].Severity)
	}
}
