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

import "errors"

// ErrUnsupported is returned by every query on platforms without the
// Windows system clock APIs.
var ErrUnsupported = errors.New("system clock bridge is only available on windows")

// apiVersion is the fixed compatibility token reported to embedding hosts.
// It only changes when the bridge surface changes incompatibly.
const apiVersion = uint32(0x00010002)

// APIVersion returns the compatibility token hosts verify once at load time.
func APIVersion() uint32 {
	return apiVersion
}

// Source reads raw time values from the operating system.
type Source interface {
	// SystemTime returns the current wall clock as a FILETIME tick count.
	// Fresh on every call, no side effects.
	SystemTime() (FileTime, error)
	// PreciseSystemTime is SystemTime at sub-microsecond resolution.
	// Requires Windows 8 / Server 2012 or newer.
	PreciseSystemTime() (FileTime, error)
	// TimeAdjustment returns the current periodic clock adjustment settings.
	TimeAdjustment() (Adjustment, error)
}

// defaultSource backs the package-level queries. It's a var so tests can
// substitute a mock.
var defaultSource Source = osSource{}

// Now returns the current system time
func Now() (FileTime, error) {
	return defaultSource.SystemTime()
}

// NowPrecise returns the current system time at sub-microsecond resolution
func NowPrecise() (FileTime, error) {
	return defaultSource.PreciseSystemTime()
}

// ReadAdjustment returns the current clock adjustment settings
func ReadAdjustment() (Adjustment, error) {
	return defaultSource.TimeAdjustment()
}

// OSSource returns the source backed by the running OS
func OSSource() Source {
	return osSource{}
}
