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

package runner

import (
	"errors"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/golang/glog"
	"golang.org/x/text/message"
	"virtcheck.dev/analyzer/analyzer/result"
	"virtcheck.dev/analyzer/checklib/basic"
	"virtcheck.dev/analyzer/checklib/i18n"
	"virtcheck.dev/analyzer/checklib/issuecode"
	"virtcheck.dev/analyzer/checklib/options"
	"virtcheck.dev/analyzer/checklib/severity"
	"virtcheck.dev/analyzer/checklib/stats"
)

// The task for Runner to run in parallels
type AnalyzerTask struct {
	Id      int
	Srcdir  string
	Opts    *options.CheckOptions
	Analyze func(srcdir string, opts *options.CheckOptions) (*result.ResultsList, error)
	Rule    string
}

type analyzerResult struct {
	id             int
	rule           string
	srcdir         string
	resultsList    *result.ResultsList
	customSeverity string
	err            error
}

// A goroutine workgroup to run analyzers in parallel. Rules are
// independent; running them concurrently cannot change any verdict,
// only the interleaving of progress output.
type ParaTaskRunner struct {
	showProgress   bool
	workerWg       sync.WaitGroup
	collectorWg    sync.WaitGroup
	jobsChan       chan AnalyzerTask
	resultsChan    chan analyzerResult
	sigsExiting    chan bool
	results        *result.ResultsList
	errors         []error
	processPrinter basic.CheckingProcessPrinter
}

// modify the analyzer result.
// eg. add the issue code prefix to the report message.
// hiercheck/rule_hide_nonvirtual -> [VH0001][hiercheck-hide_nonvirtual]
func modifyResult(res *analyzerResult) {
	edition, ruleName, found := strings.Cut(res.rule, "/")
	if !found {
		glog.Warningf("rule name %s has no ruleset prefix", res.rule)
		return
	}
	code := issuecode.GetIssueCode(edition, ruleName)
	if code == "" {
		glog.Warning("There is no available issue code for ", res.rule)
		// mock for the issue code parsing of downstream consumers
		code = "-"
	}
	shortName := strings.TrimPrefix(ruleName, "rule_")
	for _, r := range res.resultsList.Results {
		r.ErrorMessage = "[" + code + "][" + edition + "-" + shortName + "]: " + r.ErrorMessage
		r.Ruleset = edition
		r.RuleId = ruleName
	}
}

func (pt *ParaTaskRunner) worker(jobs <-chan AnalyzerTask, results chan<- analyzerResult, printer *message.Printer) {
	for j := range jobs {
		if pt.showProgress {
			pt.processPrinter.StartAnalyzeTask(j.Rule, printer)
		}
		func() {
			defer func() {
				// recover from possible panic
				if r := recover(); r != nil {
					glog.Error("Recovered in analyze: ", r, string(debug.Stack()))
					results <- analyzerResult{id: j.Id, err: errors.New("panic in analyze rule"), resultsList: nil, rule: j.Rule, srcdir: j.Srcdir}
					if pt.showProgress {
						pt.processPrinter.FinishAnalyzeTask(j.Rule, printer)
					}
				}
			}()
			resultList, err := j.Analyze(j.Srcdir, j.Opts)
			customSeverity := ""
			if j.Opts.JsonOption.Severity != nil {
				customSeverity = *j.Opts.JsonOption.Severity
			}
			results <- analyzerResult{id: j.Id, err: err, resultsList: resultList, rule: j.Rule, srcdir: j.Srcdir, customSeverity: customSeverity}
			if pt.showProgress {
				pt.processPrinter.FinishAnalyzeTask(j.Rule, printer)
				stats.WriteProgress(j.Opts.EnvOption.ResultsDir, stats.AC, pt.processPrinter.GetPercentString(), pt.processPrinter.GetStartedAt())
			}
		}()
	}
	pt.workerWg.Done()
}

// Create a new task runner and results collectors.
func NewParaTaskRunner(numWorkers int32, taskNums int, showProgress bool, lang string) *ParaTaskRunner {
	printer := i18n.GetPrinter(lang)
	if numWorkers == 0 {
		numWorkers = int32(runtime.NumCPU())
		if showProgress {
			basic.PrintfWithTimeStamp(printer.Sprintf("Use %d CPU(s)", numWorkers))
		}
	}
	paraRunner := &ParaTaskRunner{
		showProgress:   showProgress,
		jobsChan:       make(chan AnalyzerTask, numWorkers),
		resultsChan:    make(chan analyzerResult, numWorkers),
		sigsExiting:    make(chan bool, 1),
		results:        &result.ResultsList{},
		errors:         make([]error, taskNums),
		processPrinter: basic.NewCheckingProcessPrinter(taskNums),
	}
	for w := 0; w < int(numWorkers); w++ {
		paraRunner.workerWg.Add(1)
		go paraRunner.worker(paraRunner.jobsChan, paraRunner.resultsChan, printer)
	}

	sigs := make(chan os.Signal, 1)
	// if a signal is received, notify the loop to stop sending new workers
	signal.Notify(sigs, syscall.SIGINT)
	// collect results
	paraRunner.collectorWg.Add(1)
	go func() {
		for jobResult := range paraRunner.resultsChan {
			select {
			case <-sigs:
				if paraRunner.showProgress {
					basic.PrintfWithTimeStamp("Ctrl C Pressed. Stop analysis")
				}
				// notifies the task submission loop to exit
				paraRunner.sigsExiting <- true
				paraRunner.collectorWg.Done()
				return
			default:
			}
			if jobResult.err == nil {
				modifyResult(&jobResult)
				resultsWithSeverity := severity.AddSeverity(jobResult.resultsList, jobResult.rule, jobResult.customSeverity)
				paraRunner.results.Results = append(paraRunner.results.Results, resultsWithSeverity.Results...)
			} else {
				glog.Errorf("Analyze %v got error %v", jobResult.rule, jobResult.err)
			}
			paraRunner.errors[jobResult.id] = jobResult.err
		}
		paraRunner.collectorWg.Done()
	}()
	return paraRunner
}

// check for the SIGINT exiting signal
// If the exiting signal is received, it will return results and errors.
// results will never be nil if the exiting signal is received.
// If the exiting signal is not received, it will return nil for results and nil for errors.
func (pt *ParaTaskRunner) CheckSignalExiting() (results *result.ResultsList, errors []error) {
	select {
	case <-pt.sigsExiting:
		// close the jobs chan to let workers end
		close(pt.jobsChan)
		pt.collectorWg.Wait()
		// return results and errors directly because the collector has stopped
		return pt.results, pt.errors
	default:
		return nil, nil
	}
}

// Add a task to the task runner and start running the task.
// The issue code will be added to the report message.
func (pt *ParaTaskRunner) AddTask(task AnalyzerTask) {
	pt.jobsChan <- task
}

// Wait until all the tasks workers and collectors are finished and all results are collected.
// Return the results and errors.
func (pt *ParaTaskRunner) CollectResultsAndErrors() (results *result.ResultsList, errors []error) {
	go func() {
		pt.workerWg.Wait()
		close(pt.resultsChan)
	}()
	close(pt.jobsChan)
	pt.collectorWg.Wait()
	return pt.results, pt.errors
}

func SortResult(results *result.ResultsList) *result.ResultsList {
	sort.Slice(results.Results, func(i, j int) bool {
		list := results.Results
		if list[i].Path != list[j].Path {
			return list[i].Path < list[j].Path
		}
		if list[i].LineNumber != list[j].LineNumber {
			return list[i].LineNumber < list[j].LineNumber
		}
		return list[i].ErrorMessage < list[j].ErrorMessage
	})
	return results
}
