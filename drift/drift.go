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
Package drift samples the system clock repeatedly and aggregates the deltas
between consecutive readings. A healthy clock always moves forward; a
negative delta means something stepped it backwards between two reads.
*/
package drift

import (
	"context"
	"fmt"
	"time"

	"github.com/eclesh/welford"

	"github.com/facebook/wintime/systime"
)

// Result summarizes deltas between consecutive system clock readings
type Result struct {
	Samples   int
	Monotonic bool
	Min       time.Duration
	Max       time.Duration
	Mean      time.Duration
	Stddev    time.Duration
}

// Sampler reads the system clock Count times, Interval apart
type Sampler struct {
	Source   systime.Source
	Count    int
	Interval time.Duration
	// Precise selects the sub-microsecond clock query
	Precise bool
}

func (s *Sampler) read() (systime.FileTime, error) {
	if s.Precise {
		return s.Source.PreciseSystemTime()
	}
	return s.Source.SystemTime()
}

// Run samples the clock and aggregates deltas until Count readings were
// taken or ctx is cancelled.
func (s *Sampler) Run(ctx context.Context) (*Result, error) {
	if s.Count < 2 {
		return nil, fmt.Errorf("need at least 2 samples to compute deltas, asked for %d", s.Count)
	}
	prev, err := s.read()
	if err != nil {
		return nil, err
	}
	res := &Result{Samples: s.Count, Monotonic: true}
	stats := welford.New()
	for i := 1; i < s.Count; i++ {
		if s.Interval > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.Interval):
			}
		}
		cur, err := s.read()
		if err != nil {
			return nil, err
		}
		delta := cur.Sub(prev)
		if delta < 0 {
			res.Monotonic = false
		}
		if i == 1 || delta < res.Min {
			res.Min = delta
		}
		if i == 1 || delta > res.Max {
			res.Max = delta
		}
		stats.Add(float64(delta))
		prev = cur
	}
	res.Mean = time.Duration(stats.Mean())
	res.Stddev = time.Duration(stats.Stddev())
	return res, nil
}
