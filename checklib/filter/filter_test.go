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

package filter

import (
	"testing"

	"virtcheck.dev/analyzer/analyzer/result"
)

func TestGetRuleNameFromErrorMessage(t *testing.T) {
	for _, testCase := range [...]struct {
		expectedRule string
		msg          string
	}{
		{
			expectedRule: "hiercheck/rule_hide_nonvirtual",
			msg:          "[VH0001][hiercheck-hide_nonvirtual]: method hides non-virtual method from a base class",
		},
		{
			expectedRule: "hiercheck/rule_repeated_base",
			msg:          "[VH0002][hiercheck-repeated_base]: type lists the same direct base class more than once",
		},
		{
			expectedRule: "hiercheck/rule_hide_nonvirtual",
			msg:          "[-][hiercheck-hide_nonvirtual]: method hides non-virtual method from a base class",
		},
	} {
		t.Run(testCase.expectedRule, func(t *testing.T) {
			rule, err := GetRuleNameFromErrorMessage(testCase.msg)
			if err != nil {
				t.Fatalf("GetRuleNameFromErrorMessage: %v", err)
			}
			if rule != testCase.expectedRule {
				t.Errorf("unexpected result for %v. got: %v. expected: %v.", testCase.msg, rule, testCase.expectedRule)
			}
		})
	}
}

func TestGetRuleNameFromErrorMessageNoPrefix(t *testing.T) {
	if _, err := GetRuleNameFromErrorMessage("plain message"); err == nil {
		t.Fatal("expected an error for a message without a rule prefix")
	}
}

func TestDeleteResultsWithCertainSuffixs(t *testing.T) {
	results := &result.ResultsList{Results: []*result.Result{
		{Path: "keep.cc"},
		{Path: "drop.h"},
	}}
	filtered := DeleteResultsWithCertainSuffixs(results, []string{".h"})
	if len(filtered.Results) != 1 || filtered.Results[0].Path != "keep.cc" {
		t.Errorf("unexpected filter output: %+v", filtered.Results)
	}
}

func TestDeleteResultsWithIgnoredPaths(t *testing.T) {
	results := &result.ResultsList{Results: []*result.Result{
		{Path: "src/widget.cc"},
		{Path: "vendor/third/lib.cc"},
	}}
	filtered := DeleteResultsWithIgnoredPaths(results, []string{"vendor/**"})
	if len(filtered.Results) != 1 || filtered.Results[0].Path != "src/widget.cc" {
		t.Errorf("unexpected filter output: %+v", filtered.Results)
	}
}
