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

// Package testcase runs one rule against a fixture directory and
// compares the findings with the directory's expected.yaml.
package testcase

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v2"
	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/checklib/options"
	"virtcheck.dev/analyzer/checklib/testlib"
)

type TestCase struct {
	t       *testing.T
	Srcdir  string
	Options *options.CheckOptions
}

func New(t *testing.T, dirname string) TestCase {
	srcdir, err := filepath.Abs(dirname)
	if err != nil {
		t.Fatalf("filepath.Abs(%s): %v", dirname, err)
	}
	options, err := testlib.MakeTestOption(srcdir)
	if err != nil {
		t.Fatalf("failed to init testing env: %v", err)
	}
	return TestCase{t, srcdir, options}
}

func (tc *TestCase) expectedEquals(actual *result.ResultsList) bool {
	path := filepath.Join(tc.Srcdir, "expected.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		tc.t.Fatalf("os.ReadFile(%s): %v", path, err)
	}
	expected := &result.ResultsList{}
	err = yaml.Unmarshal(content, expected)
	if err != nil {
		tc.t.Fatalf("yaml.Unmarshal(%s): %v", path, err)
	}
	// compare location and message only; ids and severities are
	// stamped later in the pipeline
	cleanedActual := &result.ResultsList{}
	for _, r := range actual.Results {
		cleanedActual.Results = append(cleanedActual.Results, &result.Result{
			Path:         r.Path,
			LineNumber:   r.LineNumber,
			ErrorMessage: r.ErrorMessage,
		})
	}
	if len(expected.Results) == 0 && len(cleanedActual.Results) == 0 {
		return true
	}
	return reflect.DeepEqual(expected.Results, cleanedActual.Results)
}

func (tc *TestCase) dumpResults(results *result.ResultsList) {
	content, err := yaml.Marshal(results)
	if err == nil {
		tc.t.Log(string(content))
	} else {
		tc.t.Errorf("yaml.Marshal: %v", err)
	}
}

func (tc *TestCase) ExpectOK(actual *result.ResultsList, err error) {
	if err != nil {
		tc.t.Fatalf("checker returned error: %v", err)
	}
	if !tc.expectedEquals(actual) {
		tc.dumpResults(actual)
		tc.t.Fatal("checker is expected to be OK")
	}
}

func (tc *TestCase) ExpectFailure(actual *result.ResultsList, err error) {
	if err != nil {
		tc.t.Fatalf("checker returned error: %v", err)
	}
	if tc.expectedEquals(actual) {
		tc.dumpResults(actual)
		tc.t.Fatal("checker is expected to fail")
	}
}

func (tc *TestCase) ExpectError(_ *result.ResultsList, err error) {
	if err == nil {
		tc.t.Fatal("checker is expected to return an error")
	}
	tc.t.Logf("checker returned error: %v", err)
}
