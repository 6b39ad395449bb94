/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dram

import (
	"github.com/YongxingMou/qualcomm-linux/pkg/util/bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLayoutSizes(t *testing.T) {
	sizes := map[Version]int{
		V3:             200,
		V3With14Freqs:  208,
		V4:             224,
		V5:             424,
		V5With6Regions: 504,
	}
	for v, size := range sizes {
		l, ok := LayoutOf(v)
		require.True(t, ok, v.String())
		assert.Equal(t, size, l.Len(), v.String())
	}

	_, ok := LayoutOf(Unknown)
	assert.False(t, ok)
	_, ok = LayoutOf(TooSmall)
	assert.False(t, ok)
}

// TestLayoutOffsets derives the offsets from the natural alignment rules.
func TestLayoutOffsets(t *testing.T) {
	assert.Equal(t, bytes.Align(offPartDetails+MaxChannels*partDetailsSize, 8), offFreqTable)

	assert.Equal(t, bytes.Align(offNumFreqsV3+1, 8), offClkPeriodV3)
	assert.Equal(t, offClkPeriodV3+8, offNumChannelsV3)
	assert.Equal(t, bytes.Align(offNumChannelsV3+1, 8), sizeV3)

	assert.Equal(t, bytes.Align(offNumFreqsV3Ext+1, 8), offClkPeriodV3Ext)
	assert.Equal(t, offClkPeriodV3Ext+8, offNumChannelsV3Ext)
	assert.Equal(t, bytes.Align(offNumChannelsV3Ext+1, 8), sizeV3Ext)

	assert.Equal(t, 201, offHBBV4)
	assert.Equal(t, bytes.Align(offHBBV4+MaxChannels*MaxRanks, 8), sizeV4)

	assert.Equal(t, bytes.Align(offNumFreqsV5+1, 8), offClkPeriodV5)
	assert.Equal(t, offClkPeriodV5+8, offMaxNomFreqV5)
	assert.Equal(t, bytes.Align(offMaxNomFreqV5+4, 8), offNumChannelsV5)
	assert.Equal(t, bytes.Align(offNumChannelsV5+1, 8), offRegionsV5)
	assert.Equal(t, 256, offHBBV5)
	assert.Equal(t, bytes.Align(offHBBV5+4, 8), offRegionTableV5)
	assert.Equal(t, 264, sizeV5)
}

func TestLayoutsOrder(t *testing.T) {
	layouts := Layouts()
	require.Len(t, layouts, 5)
	assert.Equal(t, V3, layouts[0].Version)
	assert.Equal(t, V5With6Regions, layouts[4].Version)

	layouts[0].Size = 1
	assert.Equal(t, sizeV3, Layouts()[0].Size)

	assert.Equal(t, "v5 (4 regions): 424 bytes, 14 frequencies, 4 regions", catalog[3].String())
}

func TestInferVersion(t *testing.T) {
	known := map[int]Version{
		200: V3,
		208: V3With14Freqs,
		224: V4,
		424: V5,
		504: V5With6Regions,
	}
	for size := 0; size < 1024; size++ {
		v := InferVersion(size)
		switch {
		case size < 200:
			assert.Equal(t, TooSmall, v, "size %d", size)
		case known[size] != Unknown:
			assert.Equal(t, known[size], v, "size %d", size)
		default:
			assert.Equal(t, Unknown, v, "size %d", size)
		}
	}
	assert.Equal(t, Unknown, InferVersion(1<<20))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "v3", V3.String())
	assert.Equal(t, "v3 (14 freqs)", V3With14Freqs.String())
	assert.Equal(t, "v4", V4.String())
	assert.Equal(t, "v5 (6 regions)", V5With6Regions.String())
	assert.Equal(t, "too small", TooSmall.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.True(t, V4.IsKnown())
	assert.False(t, TooSmall.IsKnown())
	assert.False(t, Unknown.IsKnown())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "NODDR", NoDDR.String())
	assert.Equal(t, "LPDDR4X", LPDDR4X.String())
	assert.Equal(t, "LPDDR5X", Type(9).String())
	assert.Equal(t, "UNKNOWN(42)", Type(42).String())
}
