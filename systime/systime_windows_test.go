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

//go:build windows

package systime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowMonotonicNonDecreasing(t *testing.T) {
	prev, err := Now()
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		cur, err := Now()
		require.NoError(t, err)
		require.GreaterOrEqual(t, int64(cur), int64(prev))
		prev = cur
	}
}

func TestNowCloseToWallClock(t *testing.T) {
	ft, err := Now()
	require.NoError(t, err)
	diff := time.Since(ft.Time())
	if diff < 0 {
		diff = -diff
	}
	require.Less(t, diff, time.Minute)
}

func TestNowPrecise(t *testing.T) {
	coarse, err := Now()
	require.NoError(t, err)
	precise, err := NowPrecise()
	require.NoError(t, err)
	// both read the same kernel clock
	require.Less(t, precise.Sub(coarse), time.Second)
}

func TestReadAdjustment(t *testing.T) {
	a, err := ReadAdjustment()
	require.NoError(t, err)
	require.NotZero(t, a.Increment, "interrupt interval can't be zero")
}
