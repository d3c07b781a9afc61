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

package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"virtcheck.dev/analyzer/analyzer/result"
)

func MatchIgnoreDirPatterns(ignoreDirPatterns []string, path string) (bool, error) {
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

// DeleteResultsWithIgnoredPaths drops findings located in files the
// user asked to ignore. The loader already skips ignored declarations;
// this catches findings whose location is in an ignored header even
// though the declaring unit is not.
func DeleteResultsWithIgnoredPaths(results *result.ResultsList, ignoreDirPatterns []string) *result.ResultsList {
	filtered := &result.ResultsList{}
	for _, r := range results.Results {
		matched, err := MatchIgnoreDirPatterns(ignoreDirPatterns, r.Path)
		if err != nil {
			glog.Error(err)
			continue
		}
		if matched {
			continue
		}
		filtered.Results = append(filtered.Results, r)
	}
	return filtered
}

func DeleteResultsWithCertainSuffixs(results *result.ResultsList, suffixs []string) *result.ResultsList {
	filtered := &result.ResultsList{}
	for _, r := range results.Results {
		deleted := false
		for _, suffix := range suffixs {
			if strings.HasSuffix(r.Path, suffix) {
				deleted = true
				break
			}
		}
		if !deleted {
			filtered.Results = append(filtered.Results, r)
		}
	}
	return filtered
}

// for `[VH0001][hiercheck-hide_nonvirtual]: message`
var messagePrefixRegexp = regexp.MustCompile(`^\[[^\]]*\]\[([a-z_\d]+)-([a-zA-Z_\d]+)\]: `)

// GetRuleNameFromErrorMessage recovers `hiercheck/rule_hide_nonvirtual`
// from a formatted report message.
func GetRuleNameFromErrorMessage(msg string) (string, error) {
	match := messagePrefixRegexp.FindStringSubmatch(msg)
	if match == nil {
		return "", fmt.Errorf("no rule prefix in message: %s", msg)
	}
	return match[1] + "/rule_" + match[2], nil
}
