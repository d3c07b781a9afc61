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

package baseline

import (
	"path/filepath"
	"testing"

	git2go "github.com/libgit2/git2go/v33"
	"virtcheck.dev/analyzer/analyzer/result"
)

func TestCompareIssuesThroughHunks(t *testing.T) {
	// three lines inserted before line 10 of the old file
	hunks := []git2go.DiffHunk{
		{OldStart: 9, OldLines: 0, NewStart: 10, NewLines: 3},
	}
	for _, testCase := range [...]struct {
		name     string
		newline  int
		oldline  int
		expected bool
	}{
		{"line above the hunk is unchanged", 5, 5, true},
		{"line below the hunk is shifted by the insertion", 16, 13, true},
		{"line below the hunk without the shift does not match", 13, 13, false},
		{"line inside the hunk never matches", 11, 11, false},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			if got := CompareIssuesThroughHunks(testCase.newline, testCase.oldline, hunks); got != testCase.expected {
				t.Errorf("CompareIssuesThroughHunks(%d, %d) = %v, expected %v",
					testCase.newline, testCase.oldline, got, testCase.expected)
			}
		})
	}
}

func TestCompareIssuesThroughHunksNoChanges(t *testing.T) {
	if !CompareIssuesThroughHunks(7, 7, nil) {
		t.Error("identical files should match equal line numbers")
	}
	if CompareIssuesThroughHunks(7, 8, nil) {
		t.Error("identical files should not match different line numbers")
	}
}

func TestIsSameRule(t *testing.T) {
	a := "[VH0001][hiercheck-hide_nonvirtual]: method hides non-virtual method from a base class"
	b := "[VH0001][hiercheck-hide_nonvirtual]: method hides non-virtual method from a base class"
	c := "[VH0002][hiercheck-repeated_base]: type lists the same direct base class more than once"
	if !IsSameRule(a, b) {
		t.Error("same issue code should compare equal")
	}
	if IsSameRule(a, c) {
		t.Error("different issue codes should not compare equal")
	}
}

func TestCreateAndGetBaseline(t *testing.T) {
	dir := t.TempDir()
	results := &result.ResultsList{Results: []*result.Result{
		{
			Path:         "src/shapes.cc",
			LineNumber:   11,
			ErrorMessage: "[VH0001][hiercheck-hide_nonvirtual]: method hides non-virtual method from a base class",
			Locations:    []*result.ErrorLocation{{Path: "src/shapes.cc", LineNumber: 11}},
		},
	}}
	if err := CreateBaselineFile(results, dir, "0123456789abcdef"); err != nil {
		t.Fatalf("CreateBaselineFile: %v", err)
	}
	baseline, err := GetBaseline(filepath.Join(dir, "baseline.json"))
	if err != nil {
		t.Fatalf("GetBaseline: %v", err)
	}
	if baseline.CommitHash != "0123456789abcdef" {
		t.Errorf("unexpected commit hash: %s", baseline.CommitHash)
	}
	if len(baseline.Results) != 1 || baseline.Results[0].LineNumber != 11 {
		t.Errorf("unexpected baseline results: %+v", baseline.Results)
	}
}
