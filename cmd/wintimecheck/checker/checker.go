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

package checker

import (
	"context"
	"fmt"
	"time"

	version "github.com/hashicorp/go-version"
	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"

	"github.com/facebook/wintime/drift"
	"github.com/facebook/wintime/systime"
)

// minPreciseVersion is the first Windows kernel (NT 6.2, Windows 8 /
// Server 2012) that ships GetSystemTimePreciseAsFileTime.
var minPreciseVersion = version.Must(version.NewVersion("6.2"))

// TimeCheckResult is all the data diag needs to assess system clock health
type TimeCheckResult struct {
	SystemTime       systime.FileTime
	Adjustment       systime.Adjustment
	Drift            *drift.Result
	PlatformVersion  string
	PreciseSupported bool
}

// SupportsPrecise reports whether the given Windows platform version ships
// the sub-microsecond time query.
func SupportsPrecise(platformVersion string) bool {
	v, err := version.NewVersion(platformVersion)
	if err != nil {
		return false
	}
	return v.GreaterThanOrEqual(minPreciseVersion)
}

// RunCheck collects current time, adjustment settings, a quick drift sample
// and host platform info.
func RunCheck(ctx context.Context, src systime.Source, samples int, interval time.Duration) (*TimeCheckResult, error) {
	ft, err := src.SystemTime()
	if err != nil {
		return nil, fmt.Errorf("reading system time: %w", err)
	}
	adj, err := src.TimeAdjustment()
	if err != nil {
		return nil, fmt.Errorf("reading time adjustment: %w", err)
	}
	sampler := &drift.Sampler{Source: src, Count: samples, Interval: interval}
	d, err := sampler.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("sampling clock drift: %w", err)
	}
	result := &TimeCheckResult{
		SystemTime: ft,
		Adjustment: adj,
		Drift:      d,
	}
	if info, err := host.Info(); err == nil {
		result.PlatformVersion = info.PlatformVersion
		result.PreciseSupported = SupportsPrecise(info.PlatformVersion)
	} else {
		log.Debugf("no host platform info: %v", err)
	}
	return result, nil
}
