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

package runner

import (
	"errors"
	"strings"
	"testing"

	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/checklib/options"
	"virtcheck.dev/analyzer/checklib/severity"
)

func oneFinding(path string, line int32) func(string, *options.CheckOptions) (*result.ResultsList, error) {
	return func(srcdir string, opts *options.CheckOptions) (*result.ResultsList, error) {
		return &result.ResultsList{Results: []*result.Result{
			{Path: path, LineNumber: line, ErrorMessage: "method hides non-virtual method from a base class"},
		}}, nil
	}
}

func failing(srcdir string, opts *options.CheckOptions) (*result.ResultsList, error) {
	return nil, errors.New("declaration table not loaded")
}

func panicking(srcdir string, opts *options.CheckOptions) (*result.ResultsList, error) {
	panic("boom")
}

func TestCollectResultsAndErrors(t *testing.T) {
	pt := NewParaTaskRunner(2, 3, false, "en")
	opts := &options.CheckOptions{}
	pt.AddTask(AnalyzerTask{Id: 0, Srcdir: "/src", Opts: opts, Rule: "hiercheck/rule_hide_nonvirtual", Analyze: oneFinding("a.h", 3)})
	pt.AddTask(AnalyzerTask{Id: 1, Srcdir: "/src", Opts: opts, Rule: "hiercheck/rule_repeated_base", Analyze: failing})
	pt.AddTask(AnalyzerTask{Id: 2, Srcdir: "/src", Opts: opts, Rule: "hiercheck/rule_hide_nonvirtual", Analyze: panicking})
	results, errs := pt.CollectResultsAndErrors()

	if len(results.Results) != 1 {
		t.Fatalf("expected 1 collected result, got %d", len(results.Results))
	}
	r := results.Results[0]
	wantPrefix := "[VH0001][hiercheck-hide_nonvirtual]: "
	if !strings.HasPrefix(r.ErrorMessage, wantPrefix) {
		t.Errorf("message %q lacks issue code prefix %q", r.ErrorMessage, wantPrefix)
	}
	if r.Ruleset != "hiercheck" || r.RuleId != "rule_hide_nonvirtual" {
		t.Errorf("ruleset/rule not stamped: %+v", r)
	}
	if r.Severity != int32(severity.Medium) {
		t.Errorf("expected default severity %d, got %d", severity.Medium, r.Severity)
	}

	if errs[0] != nil {
		t.Errorf("task 0 should succeed, got %v", errs[0])
	}
	if errs[1] == nil {
		t.Error("task 1 should report its error")
	}
	if errs[2] == nil {
		t.Error("a panicking rule should surface as an error")
	}
}

func TestCustomSeverityOverridesDefault(t *testing.T) {
	pt := NewParaTaskRunner(1, 1, false, "en")
	high := "high"
	opts := &options.CheckOptions{}
	opts.JsonOption.Severity = &high
	pt.AddTask(AnalyzerTask{Id: 0, Srcdir: "/src", Opts: opts, Rule: "hiercheck/rule_hide_nonvirtual", Analyze: oneFinding("a.h", 3)})
	results, _ := pt.CollectResultsAndErrors()
	if len(results.Results) != 1 || results.Results[0].Severity != int32(severity.High) {
		t.Errorf("custom severity not applied: %+v", results.Results)
	}
}

func TestSortResult(t *testing.T) {
	results := &result.ResultsList{Results: []*result.Result{
		{Path: "b.h", LineNumber: 1, ErrorMessage: "m"},
		{Path: "a.h", LineNumber: 9, ErrorMessage: "m"},
		{Path: "a.h", LineNumber: 2, ErrorMessage: "z"},
		{Path: "a.h", LineNumber: 2, ErrorMessage: "a"},
	}}
	SortResult(results)
	got := results.Results
	if got[0].ErrorMessage != "a" || got[1].ErrorMessage != "z" ||
		got[2].Path != "a.h" || got[2].LineNumber != 9 || got[3].Path != "b.h" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestModifyResultWithoutIssueCode(t *testing.T) {
	res := analyzerResult{
		rule: "hiercheck/rule_unknown",
		resultsList: &result.ResultsList{Results: []*result.Result{
			{Path: "a.h", LineNumber: 1, ErrorMessage: "msg"},
		}},
	}
	modifyResult(&res)
	if !strings.HasPrefix(res.resultsList.Results[0].ErrorMessage, "[-][hiercheck-unknown]: ") {
		t.Errorf("missing placeholder issue code: %q", res.resultsList.Results[0].ErrorMessage)
	}
}
