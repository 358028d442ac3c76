/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/facebook/wintime/cmd/wintimecheck/checker"
	"github.com/facebook/wintime/systime"
)

// flags
var (
	diagSamplesFlag  int
	diagIntervalFlag time.Duration
)

type status int

// possible check results
const (
	OK status = iota
	WARN
	FAIL
)

// diagnoser is function that does checks on TimeCheckResult
type diagnoser func(r *checker.TimeCheckResult) (status, string)

var okString = color.GreenString("[ OK ]")
var warnString = color.YellowString("[WARN]")
var failString = color.RedString("[FAIL]")

var statusToColor = []string{okString, warnString, failString}

func fmtThreshold(warnThreshold any) string {
	return color.BlueString("%v", warnThreshold)
}

// generic function to check value against some thresholds
func checkAgainstThreshold[T constraints.Ordered](name string, value, warnThreshold, failThreshold T, explanation string) (status, string) {
	msgTemplate := "%s is %s, we expect it to be within %s%s"
	thresholdStr := fmtThreshold(warnThreshold)

	if value > failThreshold {
		return FAIL, fmt.Sprintf(
			msgTemplate,
			name,
			color.RedString("%v", value),
			thresholdStr,
			". "+explanation,
		)
	}
	if value > warnThreshold {
		return WARN, fmt.Sprintf(
			msgTemplate,
			name,
			color.YellowString("%v", value),
			thresholdStr,
			". "+explanation,
		)
	}
	return OK, fmt.Sprintf(
		msgTemplate,
		name,
		color.GreenString("%v", value),
		thresholdStr,
		"",
	)
}

func checkAdjustmentEnabled(r *checker.TimeCheckResult) (status, string) {
	if r.Adjustment.Disabled {
		return WARN, "Periodic clock adjustment is disabled, the kernel is not disciplining the clock"
	}
	return OK, "Periodic clock adjustment is enabled"
}

func checkIncrement(r *checker.TimeCheckResult) (status, string) {
	if r.Adjustment.Increment == 0 {
		return FAIL, "Clock interrupt interval is zero, adjustment data is bogus"
	}
	return OK, fmt.Sprintf("Clock interrupt interval is %s", time.Duration(r.Adjustment.Increment)*100*time.Nanosecond)
}

func checkSlew(r *checker.TimeCheckResult) (status, string) {
	// NTP clients routinely slew up to 500 PPM, anything above means trouble
	const warnThreshold = 500.0
	const failThreshold = 1000.0
	return checkAgainstThreshold(
		"Clock slew",
		math.Abs(r.Adjustment.SlewPPM()),
		warnThreshold,
		failThreshold,
		"Slew is how fast the kernel steers the clock away from nominal rate, in PPM.",
	)
}

func checkMonotonic(r *checker.TimeCheckResult) (status, string) {
	if !r.Drift.Monotonic {
		return FAIL, fmt.Sprintf("System time went backwards by %v during sampling, something stepped the clock", -r.Drift.Min)
	}
	return OK, fmt.Sprintf("System time is monotonically non-decreasing over %d readings", r.Drift.Samples)
}

func checkPreciseSupported(r *checker.TimeCheckResult) (status, string) {
	if r.PlatformVersion == "" {
		return WARN, "No host platform info, can't tell if the precise clock query is available"
	}
	if !r.PreciseSupported {
		return WARN, fmt.Sprintf("Platform version %s predates the sub-microsecond clock query (needs 6.2+)", r.PlatformVersion)
	}
	return OK, fmt.Sprintf("Platform version %s supports the sub-microsecond clock query", r.PlatformVersion)
}

var diagnosers = []diagnoser{
	checkAdjustmentEnabled,
	checkIncrement,
	checkSlew,
	checkMonotonic,
	checkPreciseSupported,
}

func runDiagnosers(r *checker.TimeCheckResult, toRun []diagnoser) int {
	failed := 0
	for _, check := range toRun {
		status, msg := check(r)
		if status != OK {
			failed++
		}
		fmt.Printf("%s %s\n", statusToColor[status], msg)
	}
	return failed
}

func init() {
	RootCmd.AddCommand(diagCmd)
	flags := diagCmd.Flags()
	flags.IntVarP(&diagSamplesFlag, "samples", "s", 100, "number of clock readings for the monotonicity check")
	flags.DurationVarP(&diagIntervalFlag, "interval", "i", time.Millisecond, "pause between readings")
}

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Perform basic system clock diagnosis, report in human-readable form.",
	Long: `Perform basic system clock diagnosis, report in human-readable form.
Runs a set of checks against the system clock, and prints the results.
Exit code will be equal to the number of failed checks.
`,
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		result, err := checker.RunCheck(context.Background(), systime.OSSource(), diagSamplesFlag, diagIntervalFlag)
		if err != nil {
			log.Fatal(err)
		}
		exitCode := runDiagnosers(result, diagnosers)
		os.Exit(exitCode)
	},
}
