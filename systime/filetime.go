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

package systime

import (
	"fmt"
	"time"
)

// TicksToUnix is the difference between the Windows epoch (1601-01-01)
// and the Unix epoch (1970-01-01) in 100ns ticks
const TicksToUnix = int64(116444736000000000)

// ticksPerSecond is the number of 100ns ticks in one second
const ticksPerSecond = int64(10000000)

// FileTime is the Windows wall clock representation: a 64-bit count of
// 100-nanosecond intervals since 1601-01-01 00:00:00 UTC.
type FileTime int64

// FromTime converts Unix-epoch time.Time to FileTime
func FromTime(t time.Time) FileTime {
	return FileTime(t.Unix()*ticksPerSecond + int64(t.Nanosecond()/100) + TicksToUnix)
}

// Time converts FileTime into Unix-epoch time.Time, truncated to 100ns
func (ft FileTime) Time() time.Time {
	ticks := int64(ft) - TicksToUnix
	sec := ticks / ticksPerSecond
	nsec := (ticks % ticksPerSecond) * 100
	return time.Unix(sec, nsec).UTC()
}

// Sub returns the duration ft-u
func (ft FileTime) Sub(u FileTime) time.Duration {
	return time.Duration(int64(ft)-int64(u)) * 100 * time.Nanosecond
}

// String returns both the raw tick count and the wall clock it decodes to
func (ft FileTime) String() string {
	return fmt.Sprintf("%d (%s)", int64(ft), ft.Time().Format(time.RFC3339Nano))
}
