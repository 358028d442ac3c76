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
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/wintime/drift"
	"github.com/facebook/wintime/systime"
)

// flags
var (
	driftSamplesFlag  int
	driftIntervalFlag time.Duration
	driftPreciseFlag  bool
)

func init() {
	RootCmd.AddCommand(driftCmd)
	flags := driftCmd.Flags()
	flags.IntVarP(&driftSamplesFlag, "samples", "s", 100, "number of clock readings to take")
	flags.DurationVarP(&driftIntervalFlag, "interval", "i", 10*time.Millisecond, "pause between readings")
	flags.BoolVarP(&driftPreciseFlag, "precise", "p", false, "use the sub-microsecond clock query (Windows 8+)")
}

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Sample the system clock repeatedly and report delta statistics",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := runDrift(); err != nil {
			log.Fatal(err)
		}
	},
}

func runDrift() error {
	sampler := &drift.Sampler{
		Source:   systime.OSSource(),
		Count:    driftSamplesFlag,
		Interval: driftIntervalFlag,
		Precise:  driftPreciseFlag,
	}
	res, err := sampler.Run(context.Background())
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"samples", "monotonic", "min", "max", "mean", "stddev"})
	table.Append([]string{
		fmt.Sprintf("%d", res.Samples),
		fmt.Sprintf("%v", res.Monotonic),
		res.Min.String(),
		res.Max.String(),
		res.Mean.String(),
		res.Stddev.String(),
	})
	table.Render()
	return nil
}
