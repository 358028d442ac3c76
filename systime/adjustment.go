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

import "fmt"

// PackedAdjustmentError is the in-band failure sentinel of the legacy
// GetAdjustment surface. All bits set, which is also a valid (if absurd)
// packed encoding - legacy callers cannot tell the two apart.
const PackedAdjustmentError = int64(-1)

// Adjustment describes how the kernel disciplines the system clock:
// every Increment interval it adds Adjustment ticks to the clock.
// Adjustment == Increment means the clock runs at nominal rate.
type Adjustment struct {
	// Adjustment is the number of 100ns ticks added to the clock per interrupt
	Adjustment uint32
	// Increment is the interval between clock interrupts in 100ns ticks
	Increment uint32
	// Disabled reports whether periodic adjustment is switched off
	Disabled bool
}

// Pack encodes the adjustment into the legacy int64 wire format:
// adjustment in the upper 32 bits, increment in the lower 32 bits, and
// bit 63 set when adjustment is disabled.
//
// Bit 63 is shared between the disabled flag and the top bit of the
// adjustment word, so a disabled clock with adjustment >= 1<<31 does not
// round-trip. The overlap is kept as-is for bit-exact compatibility with
// existing consumers; use the Adjustment struct directly to avoid it.
func (a Adjustment) Pack() int64 {
	v := uint64(a.Adjustment)<<32 | uint64(a.Increment)
	if a.Disabled {
		v |= 1 << 63
	}
	return int64(v)
}

// UnpackAdjustment decodes the legacy int64 wire format. Lossy for the
// same reason Pack is: bit 63 is read as the disabled flag but left in
// the adjustment word untouched.
func UnpackAdjustment(packed int64) Adjustment {
	v := uint64(packed)
	return Adjustment{
		Adjustment: uint32(v >> 32),
		Increment:  uint32(v),
		Disabled:   v&(1<<63) != 0,
	}
}

// SlewPPM returns how far off nominal rate the kernel is steering the
// clock, in parts per million. Zero means no slew (or no increment data).
func (a Adjustment) SlewPPM() float64 {
	if a.Increment == 0 {
		return 0
	}
	return (float64(a.Adjustment)/float64(a.Increment) - 1.0) * 1000000
}

// String returns human-readable adjustment state
func (a Adjustment) String() string {
	state := "enabled"
	if a.Disabled {
		state = "disabled"
	}
	return fmt.Sprintf("adjustment=%d increment=%d (%s, slew %.3f PPM)",
		a.Adjustment, a.Increment, state, a.SlewPPM())
}
