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

package hierarchy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"github.com/google/shlex"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// DeclTableYaml is the declaration table dumped by the external
// resolver at the root of the analyzed source tree.
const DeclTableYaml string = "decl_table.yaml"

var sourceExtensions = []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx"}

type methodEntry struct {
	Name    string `yaml:"name"`
	Virtual bool   `yaml:"virtual"`
	Line    int32  `yaml:"line"`
}

type typeEntry struct {
	Name    string        `yaml:"name"`
	File    string        `yaml:"file"`
	Line    int32         `yaml:"line"`
	Bases   []string      `yaml:"bases"`
	Methods []methodEntry `yaml:"methods"`
}

type unitEntry struct {
	Command string      `yaml:"command"`
	Types   []typeEntry `yaml:"types"`
}

type declTable struct {
	Units []unitEntry `yaml:"units"`
}

func GetDeclTablePath(srcdir string) string {
	return filepath.Join(srcdir, DeclTableYaml)
}

// sourceFileOfUnit recovers the translation unit's main source file
// from the recorded dump command. Used for logging only; the per-type
// File field is authoritative for reporting.
func sourceFileOfUnit(command string) string {
	args, err := shlex.Split(command)
	if err != nil {
		glog.Warningf("shlex.Split: %v", command)
		return ""
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if slices.Contains(sourceExtensions, strings.ToLower(filepath.Ext(arg))) {
			return arg
		}
	}
	return ""
}

func matchIgnorePatterns(ignoreDirPatterns []string, path string) (bool, error) {
	for _, pattern := range ignoreDirPatterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("doublestar.Match: %v", err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// LoadTable reads a declaration table dump, merges its translation
// units into a single Table, resolves base references and validates
// the result. Types declared in files matching ignoreDirPatterns are
// skipped. Every malformed input is an error; there is no silent
// fallback to an empty table.
func LoadTable(path string, ignoreDirPatterns []string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s): %v", path, err)
	}
	dump := declTable{}
	err = yaml.Unmarshal(content, &dump)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s): %v", path, err)
	}

	table := NewTable()
	// base names per type, resolved after all units are merged so that
	// a base may live in a different translation unit
	pendingBases := make(map[string][]string)
	for _, unit := range dump.Units {
		if src := sourceFileOfUnit(unit.Command); src != "" {
			glog.Infof("loading declarations dumped from %s", src)
		}
		for _, entry := range unit.Types {
			ignored, err := matchIgnorePatterns(ignoreDirPatterns, entry.File)
			if err != nil {
				return nil, err
			}
			if ignored {
				continue
			}
			if entry.Name == "" {
				return nil, fmt.Errorf("%s: type declaration without a name", path)
			}
			t := &TypeDecl{
				Name: entry.Name,
				File: entry.File,
				Line: entry.Line,
			}
			for _, m := range entry.Methods {
				if m.Name == "" {
					return nil, fmt.Errorf("%s: method without a name in type %s", path, entry.Name)
				}
				t.Methods = append(t.Methods, &MethodDecl{
					Name:    m.Name,
					Virtual: m.Virtual,
					Line:    m.Line,
				})
			}
			if !table.Add(t) {
				// one definition rule: identical redefinitions across
				// translation units are expected, the first one wins
				glog.Warningf("type %s redeclared in %s, keeping the first declaration", entry.Name, entry.File)
				continue
			}
			pendingBases[entry.Name] = entry.Bases
		}
	}

	for _, t := range table.Types() {
		for _, baseName := range pendingBases[t.Name] {
			base := table.Lookup(baseName)
			if base == nil {
				return nil, fmt.Errorf("%s: base %s of type %s is not declared", path, baseName, t.Name)
			}
			t.Bases = append(t.Bases, base)
		}
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return table, nil
}
