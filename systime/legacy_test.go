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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLegacyGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockSource(ctrl)
	src.EXPECT().SystemTime().Return(FileTime(TicksToUnix+42), nil)
	require.Equal(t, TicksToUnix+42, legacyGet(src))
}

func TestLegacyGetUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockSource(ctrl)
	src.EXPECT().SystemTime().Return(FileTime(0), ErrUnsupported)
	require.Equal(t, int64(0), legacyGet(src))
}

func TestLegacyGetAdjustmentPacked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockSource(ctrl)
	src.EXPECT().TimeAdjustment().Return(Adjustment{Adjustment: 156250, Increment: 156001}, nil)
	require.Equal(t, int64(156250)<<32|int64(156001), legacyGetAdjustment(src))
}

func TestLegacyGetAdjustmentFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockSource(ctrl)
	src.EXPECT().TimeAdjustment().Return(Adjustment{}, errors.New("kernel said no"))
	require.Equal(t, PackedAdjustmentError, legacyGetAdjustment(src))
}

func TestLegacyEntryPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockSource(ctrl)
	src.EXPECT().SystemTime().Return(FileTime(TicksToUnix), nil)
	src.EXPECT().TimeAdjustment().Return(Adjustment{Adjustment: 1, Increment: 2, Disabled: true}, nil)

	saved := defaultSource
	defaultSource = src
	defer func() { defaultSource = saved }()

	require.Equal(t, TicksToUnix, Get())
	packed := uint64(1)<<63 | uint64(1)<<32 | uint64(2)
	require.Equal(t, int64(packed), GetAdjustment())
}
