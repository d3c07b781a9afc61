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

package result

// ErrorLocation points at one source position involved in a finding.
type ErrorLocation struct {
	Path       string `json:"path" yaml:"path"`
	LineNumber int32  `json:"lineNumber" yaml:"line"`
}

// Result is one diagnostic record produced by a rule. Path and
// LineNumber locate the flagged declaration; Ruleset, RuleId and Id
// are filled by the pipeline, not by the rules themselves.
type Result struct {
	Id           string           `json:"id,omitempty" yaml:"id,omitempty"`
	Path         string           `json:"path" yaml:"path"`
	LineNumber   int32            `json:"lineNumber" yaml:"line"`
	ErrorMessage string           `json:"errorMessage" yaml:"message"`
	Ruleset      string           `json:"ruleset,omitempty" yaml:"ruleset,omitempty"`
	RuleId       string           `json:"ruleId,omitempty" yaml:"rule_id,omitempty"`
	Severity     int32            `json:"severity,omitempty" yaml:"severity,omitempty"`
	Locations    []*ErrorLocation `json:"locations,omitempty" yaml:"locations,omitempty"`
}

type ResultsList struct {
	Results []*Result `json:"results" yaml:"results"`
}
