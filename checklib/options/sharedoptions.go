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
	"flag"
)

type SharedOptions struct {
	CheckProgress     *bool
	ConfigDir         *string
	DebugMode         *bool
	IgnoreDirPatterns ArrayFlags
	Lang              *string
	NumWorkers        *int64
	ResultsDir        *string
	ShowJsonResults   *bool
	ShowResults       *bool
	ShowResultsCount  *bool
	SrcDir            *string
	UseBaseline       *bool
}

func (s SharedOptions) GetCheckProgress() bool {
	return *s.CheckProgress
}

func (s SharedOptions) GetConfigDir() string {
	return *s.ConfigDir
}

func (s SharedOptions) GetDebugMode() bool {
	return *s.DebugMode
}

func (s SharedOptions) GetIgnoreDirPatterns() ArrayFlags {
	return s.IgnoreDirPatterns
}

func (s SharedOptions) GetLang() string {
	return *s.Lang
}

func (s *SharedOptions) SetLang(lang string) {
	s.Lang = &lang
}

func (s SharedOptions) GetNumWorkers() int64 {
	return *s.NumWorkers
}

func (s SharedOptions) GetResultsDir() string {
	return *s.ResultsDir
}

func (s SharedOptions) GetShowJsonResults() bool {
	return *s.ShowJsonResults
}

func (s SharedOptions) GetShowResults() bool {
	return *s.ShowResults
}

func (s SharedOptions) GetShowResultsCount() bool {
	return *s.ShowResultsCount
}

func (s SharedOptions) GetSrcDir() string {
	return *s.SrcDir
}

func (s SharedOptions) GetUseBaseline() bool {
	return *s.UseBaseline
}

// NewSharedOptions registers the command line surface shared by all
// rulesets. Call flag.Parse after this.
func NewSharedOptions() *SharedOptions {
	s := &SharedOptions{}
	s.CheckProgress = flag.Bool("check_progress", false, "print checking progress")
	s.ConfigDir = flag.String("config_dir", "/config", "absolute path to the directory of check_rules and baseline.json")
	s.DebugMode = flag.Bool("debug", false, "enable debug mode")
	flag.Var(&s.IgnoreDirPatterns, "ignore_dir", "ignore files matching the pattern (repeatable)")
	s.Lang = flag.String("lang", "en", "language of messages (en or zh)")
	s.NumWorkers = flag.Int64("num_workers", 0, "number of parallel rule workers, 0 means NumCPU")
	s.ResultsDir = flag.String("results_dir", "/output", "absolute path to the results directory")
	s.ShowJsonResults = flag.Bool("show_json_results", false, "print results as json")
	s.ShowResults = flag.Bool("show_results", false, "print results")
	s.ShowResultsCount = flag.Bool("show_results_count", true, "print number of results")
	s.SrcDir = flag.String("srcdir", "/src", "absolute path to the source directory with decl_table.yaml")
	s.UseBaseline = flag.Bool("use_baseline", false, "suppress findings recorded in baseline.json")
	return s
}
