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

package options

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"virtcheck.dev/analyzer/checklib/checkrule"
	"virtcheck.dev/analyzer/hierarchy"
)

// ArrayFlags is a repeatable string flag.
type ArrayFlags []string

func (i *ArrayFlags) String() string {
	return "array flags"
}

func (i *ArrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

type CheckOptions struct {
	JsonOption         checkrule.JSONOption
	EnvOption          EnvOptions
	RuleSpecificOption RuleSpecificOptions
}

type EnvOptions struct {
	ResultsDir        string
	Table             *hierarchy.Table
	IgnoreDirPatterns ArrayFlags
	CheckProgress     bool
	Debug             bool
	NumWorkers        int32
	IsDev             bool
	Lang              string

	LogDir string
}

type RuleSpecificOptions struct {
	RuleSpecificResultDir string
}

func NewRuleSpecificOptions(ruleName string, generalResultsDir string) *RuleSpecificOptions {
	options := &RuleSpecificOptions{}

	ruleset, rule, found := strings.Cut(ruleName, "/")
	if !found {
		rule = ruleName
		ruleset = ""
	}
	tmpResultsDir := filepath.Join(generalResultsDir, "tmp", ruleset)
	err := os.MkdirAll(tmpResultsDir, os.ModePerm)
	if err != nil {
		glog.Fatalf("failed to create tmp dir: %v", err)
	}
	resultsDir, err := os.MkdirTemp(tmpResultsDir, rule+"-*")
	if err != nil {
		glog.Fatalf("failed to create result dir: %v", err)
	}
	options.RuleSpecificResultDir = resultsDir
	return options
}

// NewEnvOptions loads the declaration table for srcdir and bundles the
// run-wide settings shared by all rules. A table that fails to load or
// validate is an error; callers must not treat it as an empty program.
func NewEnvOptions(
	resultsDir string, srcdir string,
	logDir string,
	ignoreDirPatterns ArrayFlags,
	checkProgress bool,
	debug bool,
	numWorkers int32,
	isDev bool,
	lang string,
) (*EnvOptions, error) {
	envOptions := &EnvOptions{}
	envOptions.ResultsDir = resultsDir
	envOptions.IgnoreDirPatterns = ignoreDirPatterns
	envOptions.CheckProgress = checkProgress
	envOptions.Debug = debug
	envOptions.NumWorkers = numWorkers
	envOptions.IsDev = isDev
	envOptions.Lang = lang
	envOptions.LogDir = logDir

	table, err := hierarchy.LoadTable(GetDeclTablePath(srcdir), ignoreDirPatterns)
	if err != nil {
		return nil, err
	}
	envOptions.Table = table
	return envOptions, nil
}

func MakeCheckOptions(jsonOption *checkrule.JSONOption, envOption *EnvOptions, ruleOption *RuleSpecificOptions) CheckOptions {
	return CheckOptions{
		JsonOption:         *jsonOption,
		EnvOption:          *envOption,
		RuleSpecificOption: *ruleOption,
	}
}

func GetDeclTablePath(srcdir string) string {
	return hierarchy.GetDeclTablePath(srcdir)
}
