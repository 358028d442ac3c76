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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackLayout(t *testing.T) {
	a := Adjustment{Adjustment: 156250, Increment: 156250}
	packed := a.Pack()
	require.Equal(t, int64(156250)<<32|int64(156250), packed)
	require.Zero(t, uint64(packed)&(1<<63), "bit 63 must be clear when adjustment is enabled")
}

func TestPackDisabledSetsBit63(t *testing.T) {
	a := Adjustment{Adjustment: 1, Increment: 2, Disabled: true}
	packed := uint64(a.Pack())
	require.NotZero(t, packed&(1<<63))
	require.Equal(t, uint64(2), packed&0xffffffff)
}

// The disabled flag shares bit 63 with the top bit of the adjustment word,
// so the two encodings collide. Kept for compatibility, not fixed.
func TestPackDisabledOverlapsAdjustment(t *testing.T) {
	withTopBit := Adjustment{Adjustment: 1 << 31, Increment: 7, Disabled: true}
	withoutTopBit := Adjustment{Adjustment: 0, Increment: 7, Disabled: true}
	require.Equal(t, uint64(1)<<63|uint64(7), uint64(withoutTopBit.Pack()))
	// adjustment's top bit lands on bit 63 and is indistinguishable from the flag
	require.Equal(t, withoutTopBit.Pack(), withTopBit.Pack())
}

func TestUnpackAdjustment(t *testing.T) {
	a := Adjustment{Adjustment: 156300, Increment: 156250}
	require.Equal(t, a, UnpackAdjustment(a.Pack()))

	disabled := UnpackAdjustment(int64(-1))
	require.True(t, disabled.Disabled)
	require.Equal(t, uint32(0xffffffff), disabled.Increment)
}

func TestSlewPPM(t *testing.T) {
	nominal := Adjustment{Adjustment: 156250, Increment: 156250}
	require.InDelta(t, 0.0, nominal.SlewPPM(), 0.0001)

	faster := Adjustment{Adjustment: 100001, Increment: 100000}
	require.InEpsilon(t, 10.0, faster.SlewPPM(), 0.0001)

	slower := Adjustment{Adjustment: 99999, Increment: 100000}
	require.InEpsilon(t, -10.0, slower.SlewPPM(), 0.0001)

	empty := Adjustment{}
	require.InDelta(t, 0.0, empty.SlewPPM(), 0.0001)
}

func TestAdjustmentString(t *testing.T) {
	a := Adjustment{Adjustment: 156250, Increment: 156250}
	require.Equal(t, "adjustment=156250 increment=156250 (enabled, slew 0.000 PPM)", a.String())

	a.Disabled = true
	require.Contains(t, a.String(), "disabled")
}
