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

package severity

import (
	"strings"

	"github.com/golang/glog"
	"virtcheck.dev/analyzer/analyzer/result"
)

type Level int32

const (
	Unknown Level = iota
	Highest
	High
	Medium
	Low
	Lowest
)

// Default severity per rule. The hide check ranks above the repeated
// base check: a silently non-overriding method changes behavior, a
// repeated base fails loudly at the call site.
var ruleSeverityMap = map[string]Level{
	"hiercheck/rule_hide_nonvirtual": Medium,
	"hiercheck/rule_repeated_base":   Low,
}

func FromString(s string) Level {
	switch strings.ToLower(s) {
	case "highest":
		return Highest
	case "high":
		return High
	case "medium", "warning":
		return Medium
	case "low":
		return Low
	case "lowest":
		return Lowest
	}
	return Unknown
}

// AddSeverity stamps each result with the rule's severity, or with the
// custom severity from the rule's options when given.
func AddSeverity(results *result.ResultsList, rule, customSeverity string) *result.ResultsList {
	level := ruleSeverityMap[rule]
	if customSeverity != "" {
		parsed := FromString(customSeverity)
		if parsed == Unknown {
			glog.Warningf("unknown custom severity %q for %s", customSeverity, rule)
		} else {
			level = parsed
		}
	}
	for _, r := range results.Results {
		r.Severity = int32(level)
	}
	return results
}
