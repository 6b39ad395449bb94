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

// Package dram decodes the DRAM info record firmware publishes in SMEM. The
// record carries no version tag, so its layout is inferred from the byte length.
package dram

import (
	"fmt"
	"github.com/YongxingMou/qualcomm-linux/pkg/smem"
)

// ItemID is the SMEM item holding the DRAM info record.
const ItemID smem.Item = 603

const (
	// MaxFreqsV3 is the number of frequency table entries in V3 and V4 layouts.
	MaxFreqsV3 = 13
	// MaxFreqsV5 is the number of frequency table entries in V5 layouts.
	MaxFreqsV5 = 14
	// MaxChannels is the number of DDR channels described by the record.
	MaxChannels = 8
	// MaxRanks is the number of chip-select ranks per channel.
	MaxRanks = 2
	// MaxRegions is the largest number of region descriptors in V5 layouts.
	MaxRegions = 6
)

// The record structures are naturally aligned and little-endian. The
// frequency plan contains the 64-bit clock period address, so it starts on
// an 8-byte boundary after the per-channel part details.
const (
	freqEntrySize   = 8
	partDetailsSize = 8
	regionSize      = 40
	regionsHdrSize  = 48

	offManufacturer = 0
	offDeviceType   = 1
	offPartDetails  = 2
	offFreqTable    = 72

	offNumFreqsV3    = offFreqTable + MaxFreqsV3*freqEntrySize
	offClkPeriodV3   = 184
	offNumChannelsV3 = 192
	sizeV3           = 200

	offNumFreqsV3Ext    = offFreqTable + MaxFreqsV5*freqEntrySize
	offClkPeriodV3Ext   = 192
	offNumChannelsV3Ext = 200
	sizeV3Ext           = sizeV3 + freqEntrySize

	offNumRanksV4 = offNumChannelsV3 + 1
	offHBBV4      = offNumRanksV4 + MaxChannels
	sizeV4        = 224

	offNumFreqsV5    = offFreqTable + MaxFreqsV5*freqEntrySize
	offClkPeriodV5   = 192
	offMaxNomFreqV5  = 200
	offNumChannelsV5 = 208
	offRegionsV5     = 216
	offRank0SizeV5   = offRegionsV5 + 8
	offRank1SizeV5   = offRegionsV5 + 16
	offCS0StartV5    = offRegionsV5 + 24
	offCS1StartV5    = offRegionsV5 + 32
	offHBBV5         = offRegionsV5 + 40
	offRegionTableV5 = offRegionsV5 + regionsHdrSize
	sizeV5           = offRegionTableV5
)

// Layout describes one physical shape of the DRAM info record.
type Layout struct {
	// Version is the layout tag.
	Version Version
	// Size is the size of the fixed part of the record.
	Size int
	// Freqs is the number of frequency table entries.
	Freqs int
	// Regions is the number of region descriptors trailing the fixed part.
	Regions int
}

// Len returns the total byte size of the record.
func (l Layout) Len() int { return l.Size + l.Regions*regionSize }

// String returns the layout summary.
func (l Layout) String() string {
	return fmt.Sprintf("%s: %d bytes, %d frequencies, %d regions", l.Version, l.Len(), l.Freqs, l.Regions)
}

// catalog is ordered. Classification picks the first layout whose length matches.
var catalog = []Layout{
	{Version: V3, Size: sizeV3, Freqs: MaxFreqsV3},
	{Version: V3With14Freqs, Size: sizeV3Ext, Freqs: MaxFreqsV5},
	{Version: V4, Size: sizeV4, Freqs: MaxFreqsV3},
	{Version: V5, Size: sizeV5, Freqs: MaxFreqsV5, Regions: 4},
	{Version: V5With6Regions, Size: sizeV5, Freqs: MaxFreqsV5, Regions: MaxRegions},
}

// minLen is the length of the smallest known layout.
var minLen int

func init() {
	sizes := make(map[int]Version)
	minLen = catalog[0].Len()
	for _, l := range catalog {
		if v, ok := sizes[l.Len()]; ok {
			panic(fmt.Sprintf("DRAM info layouts %s and %s share the size of %d bytes", v, l.Version, l.Len()))
		}
		sizes[l.Len()] = l.Version
		if l.Len() < minLen {
			minLen = l.Len()
		}
	}
}

// Layouts returns the known record layouts in classification order.
func Layouts() []Layout {
	return append([]Layout(nil), catalog...)
}

// LayoutOf returns the layout described by the version tag.
func LayoutOf(v Version) (Layout, bool) {
	for _, l := range catalog {
		if l.Version == v {
			return l, true
		}
	}
	return Layout{}, false
}
