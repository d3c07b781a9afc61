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

// Package rule_hide_nonvirtual flags a virtual method that conceals a
// same-named non-virtual method inherited from an ancestor. Such a
// method looks like an override but is not one: calls through the base
// type bypass it, so behavior depends on the static type used.
package rule_hide_nonvirtual

import (
	"fmt"

	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/checklib/options"
	"virtcheck.dev/analyzer/hierarchy"
)

const errorMessage = "method hides non-virtual method from a base class"

// hidesAlongPath walks one ancestor path depth first. The first
// same-named member found in a base settles that path: non-virtual
// means hidden, virtual means a legitimate override, and deeper
// ancestors are not consulted either way. Overloads are matched by
// name only; the first entry in declaration order decides.
func hidesAlongPath(base *hierarchy.TypeDecl, name string) bool {
	if bm := base.FirstMethodNamed(name); bm != nil {
		return !bm.Virtual
	}
	for _, b := range base.Bases {
		if hidesAlongPath(b, name) {
			return true
		}
	}
	return false
}

// HidesNonVirtual decides the verdict for one virtual method. Ancestors
// reachable through several paths are visited once per path; the
// verdict for a given ancestor method is path independent, so this can
// only cost time, never change the outcome.
func HidesNonVirtual(m *hierarchy.MethodDecl) bool {
	for _, base := range m.Owner().Bases {
		if hidesAlongPath(base, m.Name) {
			return true
		}
	}
	return false
}

func checkTable(table *hierarchy.Table) *result.ResultsList {
	// candidates are exactly the virtual methods; each one is decided
	// independently against its own ancestors, never against
	// descendants
	results := result.NewResultsSet()
	for _, m := range table.VirtualMethods() {
		if !HidesNonVirtual(m) {
			continue
		}
		owner := m.Owner()
		results.Add(&result.Result{
			Path:         owner.File,
			LineNumber:   m.Line,
			ErrorMessage: errorMessage,
			Locations:    []*result.ErrorLocation{{Path: owner.File, LineNumber: m.Line}},
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
