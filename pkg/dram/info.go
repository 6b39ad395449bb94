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
	"encoding/json"
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/valyala/bytebufferpool"
	"io"
	"strconv"
	"sync/atomic"
)

// Info is the decoded DRAM info. It is never mutated after decoding.
type Info struct {
	version Version
	freqs   []uint64
	hbb     uint8
}

func newInfo(v Version) *Info {
	return &Info{version: v, freqs: make([]uint64, 0, MaxFreqsV5)}
}

// Version returns the layout the info was decoded from.
func (i *Info) Version() Version { return i.version }

// Frequencies returns the enabled DRAM frequencies in Hz, in table order.
func (i *Info) Frequencies() []uint64 {
	return append(make([]uint64, 0, len(i.freqs)), i.freqs...)
}

// HighestBankBit returns the highest bank address bit. V3 records don't
// carry it, in which case it is zero.
func (i *Info) HighestBankBit() uint8 { return i.hbb }

// WriteTo writes the frequency listing with one Hz value per line.
func (i *Info) WriteTo(w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, f := range i.freqs {
		buf.B = strconv.AppendUint(buf.B, f, 10)
		buf.B = append(buf.B, '\n')
	}
	return buf.WriteTo(w)
}

// MarshalJSON encodes the info for the inspection API.
func (i *Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version     string   `json:"version"`
		HBB         uint8    `json:"hbb"`
		Frequencies []uint64 `json:"frequencies"`
	}{
		Version:     i.version.String(),
		HBB:         i.hbb,
		Frequencies: i.Frequencies(),
	})
}

// published is the process-wide DRAM info. Readers never observe a
// partially decoded value.
var published atomic.Pointer[Info]

// Publish makes the info visible to the query functions. It can only succeed once
// until Teardown is called.
func Publish(info *Info) error {
	if info == nil {
		return kerrors.ErrNoData
	}
	if !published.CompareAndSwap(nil, info) {
		return kerrors.ErrAlreadyPublished
	}
	return nil
}

// Published returns the published info, if any.
func Published() (*Info, bool) {
	info := published.Load()
	return info, info != nil
}

// Available reports whether the DRAM info was published.
func Available() bool { return published.Load() != nil }

// HighestBankBit returns the highest bank address bit of the published info.
// ErrNoData is returned when nothing was published.
func HighestBankBit() (uint8, error) {
	info := published.Load()
	if info == nil {
		return 0, kerrors.ErrNoData
	}
	return info.hbb, nil
}

// Frequencies returns the frequencies of the published info in Hz, or nil
// when nothing was published.
func Frequencies() []uint64 {
	info := published.Load()
	if info == nil {
		return nil
	}
	return info.Frequencies()
}

// Teardown invalidates the published info.
func Teardown() { published.Store(nil) }
