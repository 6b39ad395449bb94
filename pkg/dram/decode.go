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
)

// decoder fills the DRAM info from the record. The record length must
// have been checked against the layout before the decoder is called.
type decoder func(b []byte, l Layout) *Info

var decoders = map[Version]decoder{
	V3:             decodeV3,
	V3With14Freqs:  decodeV3,
	V4:             decodeV4,
	V5:             decodeV5,
	V5With6Regions: decodeV5,
}

// readFreqs appends the enabled, non-zero table entries in Hz.
func readFreqs(info *Info, b []byte, n int) {
	for i := 0; i < n; i++ {
		off := offFreqTable + i*freqEntrySize
		khz := bytes.ReadUint32(b, off)
		enabled := bytes.ReadUint8(b, off+4)
		if khz == 0 || enabled == 0 {
			continue
		}
		info.freqs = append(info.freqs, uint64(khz)*1000)
	}
}

// decodeV3 has no HBB to offer.
func decodeV3(b []byte, l Layout) *Info {
	info := newInfo(l.Version)
	readFreqs(info, b, l.Freqs)
	return info
}

// decodeV4 reads the HBB of channel 0, rank 0. The other cells aren't
// reliably populated by firmware.
func decodeV4(b []byte, l Layout) *Info {
	info := newInfo(l.Version)
	readFreqs(info, b, l.Freqs)
	info.hbb = bytes.ReadUint8(b, offHBBV4)
	return info
}

// decodeV5 reads the HBB word stored ahead of region descriptor 0.
// Region descriptors don't carry their own copy.
func decodeV5(b []byte, l Layout) *Info {
	info := newInfo(l.Version)
	readFreqs(info, b, l.Freqs)
	info.hbb = uint8(bytes.ReadUint32(b, offHBBV5))
	return info
}
