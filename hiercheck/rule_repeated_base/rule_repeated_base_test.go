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

package rule_repeated_base

import (
	"testing"

	"virtcheck.dev/analyzer/hierarchy"
)

func table(t *testing.T, wire func(*hierarchy.Table)) *hierarchy.Table {
	t.Helper()
	tbl := hierarchy.NewTable()
	tbl.Add(&hierarchy.TypeDecl{Name: "Base", File: "base.h", Line: 3})
	tbl.Add(&hierarchy.TypeDecl{Name: "Other", File: "other.h", Line: 3})
	tbl.Add(&hierarchy.TypeDecl{Name: "Derived", File: "derived.h", Line: 7})
	wire(tbl)
	if err := tbl.Validate(); err != nil {
		t.Fatalf("test table does not validate: %v", err)
	}
	return tbl
}

func TestRepeatedDirectBase(t *testing.T) {
	tbl := table(t, func(tbl *hierarchy.Table) {
		base := tbl.Lookup("Base")
		tbl.Lookup("Derived").Bases = []*hierarchy.TypeDecl{base, base}
	})
	results := checkTable(tbl)
	if len(results.Results) != 1 {
		t.Fatalf("expected one report, got %d", len(results.Results))
	}
	r := results.Results[0]
	if r.Path != "derived.h" || r.LineNumber != 7 || r.ErrorMessage != errorMessage {
		t.Errorf("unexpected report: %+v", r)
	}
}

func TestDistinctBases(t *testing.T) {
	tbl := table(t, func(tbl *hierarchy.Table) {
		tbl.Lookup("Derived").Bases = []*hierarchy.TypeDecl{tbl.Lookup("Base"), tbl.Lookup("Other")}
	})
	if len(checkTable(tbl).Results) != 0 {
		t.Error("distinct direct bases must not be reported")
	}
}

func TestDiamondIsNotRepeatedDirectBase(t *testing.T) {
	// the same ancestor through two distinct direct bases is a diamond,
	// not a repetition
	tbl := table(t, func(tbl *hierarchy.Table) {
		base := tbl.Lookup("Base")
		tbl.Lookup("Other").Bases = []*hierarchy.TypeDecl{base}
		left := tbl.Lookup("Other")
		tbl.Lookup("Derived").Bases = []*hierarchy.TypeDecl{base, left}
	})
	if len(checkTable(tbl).Results) != 0 {
		t.Error("an indirect repetition must not be reported")
	}
}
