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

// Legacy entry points, bit-exact with what embedding hosts historically
// consumed: bare int64 values, no error channel.

// Get returns the raw system time tick count, unconditionally.
// On platforms where the clock bridge is unsupported it returns 0;
// prefer Now, which reports that case explicitly.
func Get() int64 {
	return legacyGet(defaultSource)
}

// GetAdjustment returns the packed clock adjustment encoding, or
// PackedAdjustmentError if the OS query failed. The sentinel collides
// with a valid maximal encoding; prefer ReadAdjustment, which keeps
// failure out of band.
func GetAdjustment() int64 {
	return legacyGetAdjustment(defaultSource)
}

func legacyGet(src Source) int64 {
	ft, err := src.SystemTime()
	if err != nil {
		return 0
	}
	return int64(ft)
}

func legacyGetAdjustment(src Source) int64 {
	a, err := src.TimeAdjustment()
	if err != nil {
		return PackedAdjustmentError
	}
	return a.Pack()
}
