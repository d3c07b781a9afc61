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

// Package analyzer dispatches the rules of the hiercheck ruleset.
package analyzer

import (
	"strings"

	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/checklib/checkrule"
	"virtcheck.dev/analyzer/checklib/options"
	"virtcheck.dev/analyzer/checklib/runner"
	"virtcheck.dev/analyzer/hiercheck/rule_hide_nonvirtual"
	"virtcheck.dev/analyzer/hiercheck/rule_repeated_base"
)

func Run(rules []checkrule.CheckRule, srcdir string, envOpts *options.EnvOptions) (*result.ResultsList, []error) {
	taskNums := len(rules)
	numWorkers := envOpts.NumWorkers
	paraTaskRunner := runner.NewParaTaskRunner(numWorkers, taskNums, envOpts.CheckProgress, envOpts.Lang)

	for i, rule := range rules {
		exiting_results, exiting_errors := paraTaskRunner.CheckSignalExiting()
		if exiting_results != nil {
			return exiting_results, exiting_errors
		}

		ruleSpecific := options.NewRuleSpecificOptions(rule.Name, envOpts.ResultsDir)
		ruleOptions := options.MakeCheckOptions(&rule.JSONOptions, envOpts, ruleSpecific)
		x := func(analyze func(srcdir string, opts *options.CheckOptions) (*result.ResultsList, error)) {
			paraTaskRunner.AddTask(runner.AnalyzerTask{Id: i, Srcdir: srcdir, Opts: &ruleOptions, Rule: rule.Name, Analyze: analyze})
		}
		ruleName := rule.Name
		ruleName = strings.TrimPrefix(ruleName, "hiercheck/")
		switch ruleName {
		case "rule_hide_nonvirtual":
			x(rule_hide_nonvirtual.Analyze)
		case "rule_repeated_base":
			x(rule_repeated_base.Analyze)
		}
	}
	return paraTaskRunner.CollectResultsAndErrors()
}
