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

/*
Package stats collects system clock state snapshots and exports them
as Prometheus metrics.
*/
package stats

import (
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/facebook/wintime/systime"
)

// Stats is a point-in-time snapshot of the system clock state
type Stats struct {
	SystemTimeTicks    int64
	AdjustmentTicks    uint32
	IncrementTicks     uint32
	AdjustmentDisabled bool
	SlewPPM            float64
}

// Collect reads a snapshot from src
func Collect(src systime.Source) (*Stats, error) {
	ft, err := src.SystemTime()
	if err != nil {
		return nil, err
	}
	adj, err := src.TimeAdjustment()
	if err != nil {
		return nil, err
	}
	return &Stats{
		SystemTimeTicks:    int64(ft),
		AdjustmentTicks:    adj.Adjustment,
		IncrementTicks:     adj.Increment,
		AdjustmentDisabled: adj.Disabled,
		SlewPPM:            adj.SlewPPM(),
	}, nil
}

// Counters flattens the snapshot into gauge values keyed by metric name
func (s *Stats) Counters() map[string]float64 {
	disabled := 0.0
	if s.AdjustmentDisabled {
		disabled = 1.0
	}
	return map[string]float64{
		"wintime_system_time_seconds":    float64(systime.FileTime(s.SystemTimeTicks).Time().UnixNano()) / float64(time.Second),
		"wintime_adjustment_ticks":       float64(s.AdjustmentTicks),
		"wintime_adjustment_increment":   float64(s.IncrementTicks),
		"wintime_adjustment_disabled":    disabled,
		"wintime_adjustment_slew_ppm":    s.SlewPPM,
		"wintime_system_time_ticks_high": float64(uint64(s.SystemTimeTicks) >> 32),
		"wintime_system_time_ticks_low":  float64(uint64(s.SystemTimeTicks) & 0xffffffff),
	}
}

// Config controls the exporter daemon
type Config struct {
	ListenAddr string        `yaml:"listenaddr"`
	Interval   time.Duration `yaml:"interval"`
}

// ReadConfig reads config and unmarshals it from yaml into Config
func ReadConfig(path string) (*Config, error) {
	c := &Config{
		ListenAddr: ":6942",
		Interval:   time.Second,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
