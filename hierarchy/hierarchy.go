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

// Package hierarchy models the resolved class declarations of an
// analyzed C++ program: record types, their member functions and their
// direct base classes. The model is read-only after loading; rules
// share it freely across goroutines.
package hierarchy

import (
	"fmt"
	"strings"
)

// MethodDecl is one member-function declaration. Matching between
// methods is by name only; overloads of the same name are separate
// entries in declaration order.
type MethodDecl struct {
	Name    string
	Virtual bool
	Line    int32

	owner *TypeDecl
}

// Owner returns the type that declares this method. It is fixed when
// the table is resolved and never changes afterwards.
func (m *MethodDecl) Owner() *TypeDecl {
	return m.owner
}

// TypeDecl is one class or struct declaration. Bases holds resolved
// references into the same Table; a TypeDecl does not own its bases.
type TypeDecl struct {
	Name    string
	File    string
	Line    int32
	Methods []*MethodDecl
	Bases   []*TypeDecl
}

// FirstMethodNamed returns the first member with the given name in
// declaration order, or nil. With overload sets only the first entry
// decides; callers rely on that.
func (t *TypeDecl) FirstMethodNamed(name string) *MethodDecl {
	for _, m := range t.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Table is the whole-program declaration store. Iteration order over
// types follows the order in which they were added.
type Table struct {
	types map[string]*TypeDecl
	order []string
}

func NewTable() *Table {
	return &Table{types: make(map[string]*TypeDecl)}
}

// Add registers a type declaration. It returns false if a type of the
// same name is already present; the first definition wins.
func (tbl *Table) Add(t *TypeDecl) bool {
	if _, exists := tbl.types[t.Name]; exists {
		return false
	}
	tbl.types[t.Name] = t
	tbl.order = append(tbl.order, t.Name)
	for _, m := range t.Methods {
		m.owner = t
	}
	return true
}

func (tbl *Table) Lookup(name string) *TypeDecl {
	return tbl.types[name]
}

// Types returns all type declarations in adding order.
func (tbl *Table) Types() []*TypeDecl {
	types := make([]*TypeDecl, 0, len(tbl.order))
	for _, name := range tbl.order {
		types = append(types, tbl.types[name])
	}
	return types
}

// VirtualMethods enumerates every virtual member function in the
// table, in declaration order. Being virtual is the only criterion;
// access level and signature do not participate.
func (tbl *Table) VirtualMethods() []*MethodDecl {
	methods := make([]*MethodDecl, 0)
	for _, t := range tbl.Types() {
		for _, m := range t.Methods {
			if m.Virtual {
				methods = append(methods, m)
			}
		}
	}
	return methods
}

type validateParams struct {
	// 0 unvisited, 1 on the current DFS path, 2 finished
	color map[string]int
	path  []string
}

// Validate checks the preconditions the rules depend on: every base
// reference resolved and no inheritance cycles. A violation is a
// tooling error, reported distinctly from any rule verdict.
func (tbl *Table) Validate() error {
	for _, t := range tbl.Types() {
		for _, base := range t.Bases {
			if base == nil {
				return fmt.Errorf("type %s has an unresolved base reference", t.Name)
			}
			if tbl.types[base.Name] != base {
				return fmt.Errorf("base %s of type %s is not owned by this table", base.Name, t.Name)
			}
		}
	}
	p := validateParams{color: make(map[string]int)}
	for _, t := range tbl.Types() {
		if p.color[t.Name] == 0 {
			if err := validateSubroutine(t, &p); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSubroutine(t *TypeDecl, p *validateParams) error {
	p.color[t.Name] = 1
	p.path = append(p.path, t.Name)
	for _, base := range t.Bases {
		switch p.color[base.Name] {
		case 0:
			if err := validateSubroutine(base, p); err != nil {
				return err
			}
		case 1:
			return fmt.Errorf("inheritance cycle: %s -> %s", strings.Join(p.path, " -> "), base.Name)
		}
	}
	p.path = p.path[:len(p.path)-1]
	p.color[t.Name] = 2
	return nil
}
