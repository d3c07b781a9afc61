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

package testlib

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/checklib/checkrule"
	"virtcheck.dev/analyzer/checklib/options"
)

// NewOption builds CheckOptions for a test source directory holding a
// decl_table.yaml, writing rule output under <srcdir>/output.
func NewOption(srcdir string) (*options.CheckOptions, error) {
	outputPath := filepath.Join(srcdir, "output")
	numWorkers := int32(runtime.NumCPU())

	jsonOptions := &checkrule.JSONOption{}
	// read json options from ${srcdir}/options.json if the file exists
	jsonOptionsPath := filepath.Join(srcdir, "options.json")
	jsonOptionsContent, err := os.ReadFile(jsonOptionsPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		err = json.Unmarshal(jsonOptionsContent, &jsonOptions)
		if err != nil {
			return nil, err
		}
	}

	envOptions, err := options.NewEnvOptions(
		outputPath,
		srcdir,
		/*logDir=*/ "",
		/*ignoreDirPatterns=*/ nil,
		/*checkProgress=*/ false,
		/*debug=*/ true,
		numWorkers,
		/*isDev=*/ true,
		"en",
	)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputPath, os.ModePerm); err != nil {
		return nil, err
	}
	ruleOptions := options.NewRuleSpecificOptions("test_run", outputPath)
	checkOptions := options.MakeCheckOptions(jsonOptions, envOptions, ruleOptions)
	return &checkOptions, nil
}

func MakeTestOption(srcdir string) (*options.CheckOptions, error) {
	return NewOption(srcdir)
}

// ToRelPath rewrites result paths relative to srcdir so fixtures can
// use stable relative paths.
func ToRelPath(srcdir string, results *result.ResultsList) error {
	for _, r := range results.Results {
		rel, err := filepath.Rel(srcdir, r.Path)
		if err != nil {
			return err
		}
		r.Path = rel
	}
	return nil
}
