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

// record builds the zeroed record of the layout.
func record(v Version) []byte {
	l, ok := LayoutOf(v)
	if !ok {
		panic("no layout for " + v.String())
	}
	return make([]byte, l.Len())
}

func setFreq(b []byte, i int, khz uint32, enabled bool) {
	off := offFreqTable + i*freqEntrySize
	bytes.PutUint32(b, off, khz)
	if enabled {
		b[off+4] = 1
	} else {
		b[off+4] = 0
	}
}

func setHBBV4(b []byte, ch, rank int, hbb uint8) {
	b[offHBBV4+ch*MaxRanks+rank] = hbb
}

func setHBBV5(b []byte, hbb uint32) {
	bytes.PutUint32(b, offHBBV5, hbb)
}

func setRegion(b []byte, i int, start, size uint64, ranks uint8) {
	off := offRegionTableV5 + i*regionSize
	bytes.PutUint64(b, off, start)
	bytes.PutUint64(b, off+8, size)
	bytes.PutUint64(b, off+16, 0x1000*uint64(i))
	bytes.PutUint32(b, off+24, 128)
	b[off+28] = ranks
	b[off+29] = uint8(i)
	bytes.PutUint64(b, off+32, 0x40*uint64(i))
}
