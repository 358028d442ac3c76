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
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/wintime/systime"
)

// flags
var adjustmentPackedFlag bool

func init() {
	RootCmd.AddCommand(adjustmentCmd)
	adjustmentCmd.Flags().BoolVarP(&adjustmentPackedFlag, "packed", "p", false, "also print the legacy packed int64 encoding")
}

var adjustmentCmd = &cobra.Command{
	Use:   "adjustment",
	Short: "Print how the kernel currently slews the system clock",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := printAdjustment(adjustmentPackedFlag); err != nil {
			log.Fatal(err)
		}
	},
}

func printAdjustment(packed bool) error {
	a, err := systime.ReadAdjustment()
	if err != nil {
		return err
	}
	fmt.Printf("Adjustment: %d ticks per interrupt\n", a.Adjustment)
	fmt.Printf("Increment: %d ticks (%s interrupt interval)\n", a.Increment, time.Duration(a.Increment)*100*time.Nanosecond)
	fmt.Printf("Disabled: %v\n", a.Disabled)
	fmt.Printf("Slew: %.3f PPM\n", a.SlewPPM())
	if packed {
		fmt.Printf("Packed: %d\n", a.Pack())
		log.Warning("the packed encoding overlaps bit 63 between the disabled flag and the adjustment word, and -1 doubles as a failure sentinel")
	}
	return nil
}
