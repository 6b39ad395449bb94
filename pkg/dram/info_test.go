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
	"bytes"
	"encoding/json"
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestInfoWriteTo(t *testing.T) {
	b := record(V4)
	setFreq(b, 0, 200000, true)
	setFreq(b, 1, 1555200, true)
	setFreq(b, 2, 2092800, true)
	info, err := Decode(b)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := info.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "200000000\n1555200000\n2092800000\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)

	buf.Reset()
	empty, err := Decode(record(V3))
	require.NoError(t, err)
	_, err = empty.WriteTo(&buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestInfoMarshalJSON(t *testing.T) {
	b := record(V5)
	setFreq(b, 0, 547200, true)
	setHBBV5(b, 16)
	info, err := Decode(b)
	require.NoError(t, err)

	out, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"v5 (4 regions)","hbb":16,"frequencies":[547200000]}`, string(out))

	empty, err := Decode(record(V3))
	require.NoError(t, err)
	out, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"v3","hbb":0,"frequencies":[]}`, string(out))
}

func TestPublish(t *testing.T) {
	t.Cleanup(Teardown)

	assert.False(t, Available())
	_, err := HighestBankBit()
	require.ErrorIs(t, err, kerrors.ErrNoData)
	assert.Empty(t, Frequencies())
	_, ok := Published()
	assert.False(t, ok)

	require.ErrorIs(t, Publish(nil), kerrors.ErrNoData)
	assert.False(t, Available())

	b := record(V4)
	setFreq(b, 0, 800000, true)
	setHBBV4(b, 0, 0, 0)
	info, err := Decode(b)
	require.NoError(t, err)
	require.NoError(t, Publish(info))

	assert.True(t, Available())
	hbb, err := HighestBankBit()
	require.NoError(t, err)
	// a published zero HBB is a value, not absence
	assert.Equal(t, uint8(0), hbb)
	assert.Equal(t, []uint64{800000000}, Frequencies())

	other, err := Decode(record(V3))
	require.NoError(t, err)
	require.ErrorIs(t, Publish(other), kerrors.ErrAlreadyPublished)
	p, ok := Published()
	require.True(t, ok)
	assert.Same(t, info, p)

	Teardown()
	assert.False(t, Available())
	_, err = HighestBankBit()
	require.ErrorIs(t, err, kerrors.ErrNoData)
	assert.Nil(t, Frequencies())
}

func TestConcurrentReaders(t *testing.T) {
	t.Cleanup(Teardown)

	b := record(V5With6Regions)
	for i := 0; i < MaxFreqsV5; i++ {
		setFreq(b, i, uint32(200000+i), true)
	}
	setHBBV5(b, 17)
	info, err := Decode(b)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !Available() {
					continue
				}
				hbb, err := HighestBankBit()
				if err == nil {
					assert.Equal(t, uint8(17), hbb)
				}
				if freqs := Frequencies(); freqs != nil {
					assert.Len(t, freqs, MaxFreqsV5)
				}
			}
		}()
	}
	require.NoError(t, Publish(info))
	wg.Wait()
}
