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

// Package rule_repeated_base flags a type that lists the same class
// more than once among its direct bases. C++ rejects the direct form,
// but a declaration dump assembled from several translation units can
// still carry it, and it usually points at a merge problem upstream.
package rule_repeated_base

import (
	"fmt"

	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/checklib/options"
	"virtcheck.dev/analyzer/hierarchy"
)

const errorMessage = "type lists the same direct base class more than once"

func hasRepeatedBase(t *hierarchy.TypeDecl) bool {
	seen := make(map[string]bool, len(t.Bases))
	for _, base := range t.Bases {
		if seen[base.Name] {
			return true
		}
		seen[base.Name] = true
	}
	return false
}

func checkTable(table *hierarchy.Table) *result.ResultsList {
	results := result.NewResultsSet()
	for _, t := range table.Types() {
		if !hasRepeatedBase(t) {
			continue
		}
		results.Add(&result.Result{
			Path:         t.File,
			LineNumber:   t.Line,
			ErrorMessage: errorMessage,
			Locations:    []*result.ErrorLocation{{Path: t.File, LineNumber: t.Line}},
		})
	}
	return &results.ResultsList
}

func Analyze(srcdir string, opts *options.CheckOptions) (*result.ResultsList, error) {
	table := opts.EnvOption.Table
	if table == nil {
		return nil, fmt.Errorf("declaration table not loaded for %s", srcdir)
	}
	results := checkTable(table)
	if opts.JsonOption.MaxReportNum != nil && len(results.Results) > *opts.JsonOption.MaxReportNum {
		results.Results = results.Results[:*opts.JsonOption.MaxReportNum]
	}
	return results, nil
}
