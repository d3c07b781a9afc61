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

package issuecode

// Stable issue codes per ruleset and rule. Codes never change once
// published; new rules append.
var issueCodeMap = map[string]map[string]string{
	"hiercheck": {
		"rule_hide_nonvirtual": "VH0001",
		"rule_repeated_base":   "VH0002",
	},
}

func GetIssueCode(edition, ruleName string) string {
	rules, ok := issueCodeMap[edition]
	if !ok {
		return ""
	}
	return rules[ruleName]
}
