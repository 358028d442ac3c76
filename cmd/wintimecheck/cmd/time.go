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
var timePreciseFlag bool

func init() {
	RootCmd.AddCommand(timeCmd)
	timeCmd.Flags().BoolVarP(&timePreciseFlag, "precise", "p", false, "use the sub-microsecond clock query (Windows 8+)")
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Print current system time as FILETIME ticks and wall clock",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := printTime(timePreciseFlag); err != nil {
			log.Fatal(err)
		}
	},
}

func printTime(precise bool) error {
	var ft systime.FileTime
	var err error
	if precise {
		ft, err = systime.NowPrecise()
	} else {
		ft, err = systime.Now()
	}
	if err != nil {
		return err
	}
	fmt.Printf("Raw ticks: %d\n", int64(ft))
	fmt.Printf("UTC time: %s\n", ft.Time().Format(time.RFC3339Nano))
	return nil
}
