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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/atomic"
	"virtcheck.dev/analyzer/checklib/baseline"
	"virtcheck.dev/analyzer/checklib/basic"
	"virtcheck.dev/analyzer/checklib/checkrule"
	"virtcheck.dev/analyzer/checklib/filter"
	"virtcheck.dev/analyzer/checklib/i18n"
	"virtcheck.dev/analyzer/checklib/options"
	"virtcheck.dev/analyzer/checklib/runner"
	"virtcheck.dev/analyzer/checklib/stats"
	hiercheck "virtcheck.dev/analyzer/hiercheck/analyzer"
)

// languages counted for the loc metadata
var countLangs = []string{"C", "C Header", "C++", "C++ Header"}

// checkrulesOrDefault reads the check_rules file, falling back to the
// whole hiercheck ruleset when no file is present.
func checkrulesOrDefault(path string) ([]checkrule.CheckRule, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		glog.Warningf("%s not found, enabling all rules", path)
		return []checkrule.CheckRule{
			{Name: "hiercheck/rule_hide_nonvirtual"},
			{Name: "hiercheck/rule_repeated_base"},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return checkrule.ParseCheckRules(path)
}

func writeResults(allResults *result.ResultsList, resultsDir string) {
	content, err := yaml.Marshal(allResults)
	if err != nil {
		glog.Errorf("failed to marshal results: %v", err)
		return
	}
	path := filepath.Join(resultsDir, "results.yaml")
	if err := atomic.Write(path, content); err != nil {
		glog.Errorf("failed to write %s: %v", path, err)
	}

	jsonContent, err := json.MarshalIndent(allResults, "", "\t")
	if err != nil {
		glog.Errorf("failed to marshal results: %v", err)
		return
	}
	path = filepath.Join(resultsDir, "results.json")
	if err := atomic.Write(path, jsonContent); err != nil {
		glog.Errorf("failed to write %s: %v", path, err)
	}
}

func main() {
	sharedOptions := options.NewSharedOptions()
	flag.Parse()
	defer glog.Flush()

	// Do not call any logging functions of glog before this part.
	printer := i18n.GetPrinter(sharedOptions.GetLang())

	logDir := flag.Lookup("log_dir")
	if logDir.Value.String() == "" {
		err := flag.Set("log_dir", filepath.Join(sharedOptions.GetResultsDir(), "logs"))
		if err != nil {
			glog.Fatalf("failed to set default log_dir: %v", err)
		}
	}
	if err := os.MkdirAll(logDir.Value.String(), os.ModePerm); err != nil {
		glog.Fatalf("failed to create log dir: %v", err)
	}

	if !sharedOptions.GetDebugMode() {
		err := flag.Set("stderrthreshold", "FATAL")
		if err != nil {
			glog.Fatalf("failed to set default stderrthreshold: %v", err)
		}
	}

	if !filepath.IsAbs(sharedOptions.GetConfigDir()) {
		glog.Fatal("config_dir must be an absolute path")
	}
	if err := os.MkdirAll(sharedOptions.GetResultsDir(), os.ModePerm); err != nil {
		glog.Fatalf("failed to create result dir: %v", err)
	}

	start := time.Now()

	if sharedOptions.GetCheckProgress() {
		basic.PrintfWithTimeStamp(printer.Sprintf("Start loading declaration table"))
		stats.WriteProgress(sharedOptions.GetResultsDir(), stats.LD, "0%", start)
	}

	checkRulesPath := filepath.Join(sharedOptions.GetConfigDir(), "check_rules")
	checkRules, err := checkrulesOrDefault(checkRulesPath)
	if err != nil {
		glog.Fatalf("failed to read check rules: %v", err)
	}

	envOptions, err := options.NewEnvOptions(
		sharedOptions.GetResultsDir(),
		sharedOptions.GetSrcDir(),
		logDir.Value.String(),
		sharedOptions.GetIgnoreDirPatterns(),
		sharedOptions.GetCheckProgress(),
		sharedOptions.GetDebugMode(),
		int32(sharedOptions.GetNumWorkers()),
		/*isDev=*/ false,
		sharedOptions.GetLang(),
	)
	if err != nil {
		glog.Fatalf("failed to load declaration table: %v", err)
	}

	if sharedOptions.GetCheckProgress() {
		basic.PrintfWithTimeStamp(printer.Sprintf("Start analyzing class hierarchies"))
		stats.WriteProgress(sharedOptions.GetResultsDir(), stats.AC, "0%", start)
	}

	allResults, errs := hiercheck.Run(checkRules, sharedOptions.GetSrcDir(), envOptions)
	for i, err := range errs {
		if err != nil {
			glog.Errorf("rule %s: %v", checkRules[i].Name, err)
		}
	}

	allResults = filter.DeleteResultsWithIgnoredPaths(allResults, sharedOptions.GetIgnoreDirPatterns())
	for _, r := range allResults.Results {
		if len(r.Locations) == 0 {
			r.Locations = []*result.ErrorLocation{{Path: r.Path, LineNumber: r.LineNumber}}
		}
	}

	if sharedOptions.GetUseBaseline() {
		allResults = baseline.RemoveDuplicatedResults(
			allResults,
			sharedOptions.GetSrcDir(),
			sharedOptions.GetConfigDir(),
			sharedOptions.GetResultsDir(),
		)
	}

	for _, r := range allResults.Results {
		r.Id = uuid.NewString()
	}
	runner.SortResult(allResults)

	writeResults(allResults, sharedOptions.GetResultsDir())
	stats.CountSeverityAndWrite(allResults, sharedOptions.GetResultsDir())
	if loc, err := stats.CountLinesUnderDir(
		[]string{sharedOptions.GetSrcDir()},
		countLangs,
		sharedOptions.GetIgnoreDirPatterns(),
	); err == nil {
		stats.WriteLOC(sharedOptions.GetResultsDir(), loc)
	}

	if sharedOptions.GetShowResults() {
		for _, r := range allResults.Results {
			fmt.Printf("%s:%d: %s\n", r.Path, r.LineNumber, r.ErrorMessage)
		}
	}
	if sharedOptions.GetShowJsonResults() {
		content, err := json.MarshalIndent(allResults, "", "\t")
		if err != nil {
			glog.Errorf("failed to marshal results: %v", err)
		} else {
			fmt.Println(string(content))
		}
	}
	if sharedOptions.GetShowResultsCount() {
		basic.PrintfWithTimeStamp(printer.Sprintf("Total: %d finding(s)", len(allResults.Results)))
	}

	if sharedOptions.GetCheckProgress() {
		stats.WriteProgress(sharedOptions.GetResultsDir(), stats.END, "100%", start)
		basic.PrintfWithTimeStamp(printer.Sprintf("Analysis completed [%s]", basic.FormatTimeDuration(time.Since(start))))
	}
}
