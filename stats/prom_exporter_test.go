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

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/facebook/wintime/systime"
)

func TestExporterScrape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := systime.NewMockSource(ctrl)
	src.EXPECT().SystemTime().Return(systime.FileTime(systime.TicksToUnix), nil).Times(2)
	src.EXPECT().TimeAdjustment().Return(systime.Adjustment{Adjustment: 156250, Increment: 156250}, nil)
	src.EXPECT().TimeAdjustment().Return(systime.Adjustment{Adjustment: 156250, Increment: 156250, Disabled: true}, nil)

	e := NewPrometheusExporter(src, ":0", time.Second)
	require.NoError(t, e.scrape())

	families, err := e.registry.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		values[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
	}
	require.Equal(t, 156250.0, values["wintime_adjustment_ticks"])
	require.Equal(t, 0.0, values["wintime_adjustment_disabled"])

	// second scrape reuses registered collectors and updates values
	require.NoError(t, e.scrape())
	families, err = e.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		values[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
	}
	require.Equal(t, 1.0, values["wintime_adjustment_disabled"])
}

func TestExporterScrapeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := systime.NewMockSource(ctrl)
	src.EXPECT().SystemTime().Return(systime.FileTime(0), systime.ErrUnsupported)

	e := NewPrometheusExporter(src, ":0", time.Second)
	require.ErrorIs(t, e.scrape(), systime.ErrUnsupported)
}
