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

package checkrule

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
)

type CheckRule struct {
	Name        string
	JSONOptions JSONOption
}

type JSONOption struct {
	CaseSensitive *bool   `json:"case-sensitive,omitempty"`
	MaxReportNum  *int    `json:"max-report-num,omitempty"`
	Severity      *string `json:"severity,omitempty"`
}

func MakeCheckRule(name string, jsonOptions string) (*CheckRule, error) {
	checkRule := &CheckRule{}
	checkRule.Name = name
	err := json.Unmarshal([]byte(jsonOptions), &checkRule.JSONOptions)
	if err != nil {
		return nil, err
	}
	return checkRule, nil
}

func MakeCheckRuleWithoutError(name string, jsonOptions string) *CheckRule {
	checkRule, err := MakeCheckRule(name, jsonOptions)
	if err != nil {
		glog.Fatalf("can not make CheckRule without error: error: %v", err)
	}
	return checkRule
}

func (jsonOption *JSONOption) Update(newOption JSONOption) {
	if newOption.CaseSensitive != nil {
		jsonOption.CaseSensitive = newOption.CaseSensitive
	}
	if newOption.MaxReportNum != nil {
		jsonOption.MaxReportNum = newOption.MaxReportNum
	}
	if newOption.Severity != nil {
		jsonOption.Severity = newOption.Severity
	}
}

func (jsonOption JSONOption) ToString() string {
	res, err := json.Marshal(jsonOption)
	if err != nil {
		glog.Errorf("failed to marshal json option: %v", jsonOption)
	}
	return string(res)
}

// ParseCheckRules reads a check_rules file: one rule per line, the
// rule name optionally followed by a JSON options object. Blank lines
// and lines starting with '#' are skipped.
func ParseCheckRules(path string) ([]CheckRule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s): %v", path, err)
	}
	defer file.Close()

	checkRules := []CheckRule{}
	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, jsonOptions, found := strings.Cut(line, " ")
		if !found {
			jsonOptions = "{}"
		}
		jsonOptions = strings.TrimSpace(jsonOptions)
		checkRule, err := MakeCheckRule(name, jsonOptions)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, lineno, err)
		}
		checkRules = append(checkRules, *checkRule)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bufio.Scanner: %v", err)
	}
	return checkRules, nil
}
