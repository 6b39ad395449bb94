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

package app

import (
	"bytes"
	"testing"

	"github.com/YongxingMou/qualcomm-linux/pkg/dram"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

func TestRenderDetails(t *testing.T) {
	d := &dram.Details{
		Version:  dram.V5,
		Type:     dram.LPDDR5,
		Channels: 2,
		NumFreqs: 2,
		Freqs: []dram.FreqEntry{
			{KHz: 547200, Enabled: true},
			{KHz: 3196800, Enabled: false},
		},
		Regions: &dram.Regions{
			Count: 1,
			HBB:   16,
			Regions: []dram.Region{
				{Start: 0x80000000, Size: 4 << 30, GranuleSize: 128, Ranks: bitset.New(dram.MaxRanks).Set(0)},
			},
		},
	}
	var buf bytes.Buffer
	renderDetails(&buf, d, 424)

	out := buf.String()
	assert.Contains(t, out, "v5 (4 regions)")
	assert.Contains(t, out, "LPDDR5")
	assert.Contains(t, out, "2 advertised, 1 enabled")
	assert.Contains(t, out, "424 B")
	assert.Contains(t, out, "4.0 GiB")
	assert.Contains(t, out, "HBB 16")
}

func TestRenderDetailsV4(t *testing.T) {
	d := &dram.Details{
		Version:  dram.V4,
		Type:     dram.LPDDR4X,
		Channels: 1,
		Freqs:    []dram.FreqEntry{{KHz: 1555200, Enabled: true}},
	}
	d.Ranks[0] = 2
	d.HBB[0][0] = 15
	var buf bytes.Buffer
	renderDetails(&buf, d, 224)

	out := buf.String()
	assert.Contains(t, out, "HBB (RANK 0)")
	assert.NotContains(t, out, "Regions")
}
