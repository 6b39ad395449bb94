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
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/YongxingMou/qualcomm-linux/pkg/util/bytes"
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// PartDetails describes the DDR part attached to a channel.
type PartDetails struct {
	RevisionID1 uint16
	RevisionID2 uint16
	Width       uint16
	Density     uint16
}

// FreqEntry is the raw frequency table entry.
type FreqEntry struct {
	KHz     uint32
	Enabled bool
}

// Region is the V5 DDR region descriptor.
type Region struct {
	Start             uint64
	Size              uint64
	MemControllerAddr uint64
	// GranuleSize is expressed in MiB.
	GranuleSize uint32
	// Ranks holds the chip-select ranks the region spans.
	Ranks             *bitset.BitSet
	SegmentStartIndex uint8
	SegmentStartOff   uint64
}

// Regions is the V5 region table.
type Regions struct {
	// Count is the number of regions advertised by firmware.
	Count     uint32
	Rank0Size uint64
	Rank1Size uint64
	CS0Start  uint64
	CS1Start  uint64
	HBB       uint32
	Regions   []Region
}

// Details is the full view of the DRAM info record.
type Details struct {
	Version        Version
	ManufacturerID uint8
	Type           Type
	Parts          [MaxChannels]PartDetails
	Channels       uint8
	// NumFreqs is the frequency count advertised by firmware. It may
	// disagree with the number of populated table entries.
	NumFreqs      uint8
	ClkPeriodAddr uint64
	Freqs         []FreqEntry
	// Ranks and HBB are populated for V4 records.
	Ranks [MaxChannels]uint8
	HBB   [MaxChannels][MaxRanks]uint8
	// MaxNomFreq is the maximum nominal frequency in kHz of V5 records.
	MaxNomFreq uint32
	Regions    *Regions
}

// Inspect decodes every field of the record. Unlike Decode, it also exposes
// the values the query API doesn't publish.
func Inspect(b []byte) (*Details, error) {
	v := InferVersion(len(b))
	switch v {
	case TooSmall:
		return nil, errors.Wrapf(kerrors.ErrNoData, "DRAM info struct too small (size = %d)", len(b))
	case Unknown:
		return nil, kerrors.ErrUnknownLayout{Size: len(b)}
	}
	l, _ := LayoutOf(v)
	d := &Details{
		Version:        v,
		ManufacturerID: bytes.ReadUint8(b, offManufacturer),
		Type:           Type(bytes.ReadUint8(b, offDeviceType)),
		Freqs:          make([]FreqEntry, l.Freqs),
	}
	for i := range d.Parts {
		off := offPartDetails + i*partDetailsSize
		d.Parts[i] = PartDetails{
			RevisionID1: bytes.ReadUint16(b, off),
			RevisionID2: bytes.ReadUint16(b, off+2),
			Width:       bytes.ReadUint16(b, off+4),
			Density:     bytes.ReadUint16(b, off+6),
		}
	}
	for i := range d.Freqs {
		off := offFreqTable + i*freqEntrySize
		d.Freqs[i] = FreqEntry{KHz: bytes.ReadUint32(b, off), Enabled: bytes.ReadUint8(b, off+4) != 0}
	}

	switch v {
	case V3:
		d.NumFreqs = bytes.ReadUint8(b, offNumFreqsV3)
		d.ClkPeriodAddr = bytes.ReadUint64(b, offClkPeriodV3)
		d.Channels = bytes.ReadUint8(b, offNumChannelsV3)
	case V3With14Freqs:
		d.NumFreqs = bytes.ReadUint8(b, offNumFreqsV3Ext)
		d.ClkPeriodAddr = bytes.ReadUint64(b, offClkPeriodV3Ext)
		d.Channels = bytes.ReadUint8(b, offNumChannelsV3Ext)
	case V4:
		d.NumFreqs = bytes.ReadUint8(b, offNumFreqsV3)
		d.ClkPeriodAddr = bytes.ReadUint64(b, offClkPeriodV3)
		d.Channels = bytes.ReadUint8(b, offNumChannelsV3)
		for ch := 0; ch < MaxChannels; ch++ {
			d.Ranks[ch] = bytes.ReadUint8(b, offNumRanksV4+ch)
			for rank := 0; rank < MaxRanks; rank++ {
				d.HBB[ch][rank] = bytes.ReadUint8(b, offHBBV4+ch*MaxRanks+rank)
			}
		}
	case V5, V5With6Regions:
		d.NumFreqs = bytes.ReadUint8(b, offNumFreqsV5)
		d.ClkPeriodAddr = bytes.ReadUint64(b, offClkPeriodV5)
		d.MaxNomFreq = bytes.ReadUint32(b, offMaxNomFreqV5)
		d.Channels = bytes.ReadUint8(b, offNumChannelsV5)
		d.Regions = readRegions(b, l.Regions)
	}
	return d, nil
}

// readRegions decodes the region table. The descriptor count is taken
// from the record size, not from the count firmware advertises.
func readRegions(b []byte, n int) *Regions {
	r := &Regions{
		Count:     bytes.ReadUint32(b, offRegionsV5),
		Rank0Size: bytes.ReadUint64(b, offRank0SizeV5),
		Rank1Size: bytes.ReadUint64(b, offRank1SizeV5),
		CS0Start:  bytes.ReadUint64(b, offCS0StartV5),
		CS1Start:  bytes.ReadUint64(b, offCS1StartV5),
		HBB:       bytes.ReadUint32(b, offHBBV5),
		Regions:   make([]Region, n),
	}
	for i := range r.Regions {
		off := offRegionTableV5 + i*regionSize
		ranks := bitset.New(MaxRanks)
		mask := bytes.ReadUint8(b, off+28)
		for rank := uint(0); rank < MaxRanks; rank++ {
			if mask&(1<<rank) != 0 {
				ranks.Set(rank)
			}
		}
		r.Regions[i] = Region{
			Start:             bytes.ReadUint64(b, off),
			Size:              bytes.ReadUint64(b, off+8),
			MemControllerAddr: bytes.ReadUint64(b, off+16),
			GranuleSize:       bytes.ReadUint32(b, off+24),
			Ranks:             ranks,
			SegmentStartIndex: bytes.ReadUint8(b, off+29),
			SegmentStartOff:   bytes.ReadUint64(b, off+32),
		}
	}
	return r
}

// EnabledFreqs returns the number of table entries contributing a frequency.
func (d *Details) EnabledFreqs() int {
	var n int
	for _, f := range d.Freqs {
		if f.KHz != 0 && f.Enabled {
			n++
		}
	}
	return n
}

// TotalSize returns the combined size of the V5 regions in bytes.
func (r *Regions) TotalSize() uint64 {
	var size uint64
	for _, region := range r.Regions {
		size += region.Size
	}
	return size
}
