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

package bytes

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestReadWrite(t *testing.T) {
	b := make([]byte, 16)
	PutUint16(b, 0, 0xa5a5)
	PutUint32(b, 2, 603)
	PutUint64(b, 8, 0x1_0000_0000)

	assert.Equal(t, uint16(0xa5a5), ReadUint16(b, 0))
	assert.Equal(t, uint32(603), ReadUint32(b, 2))
	assert.Equal(t, uint64(0x1_0000_0000), ReadUint64(b, 8))
	// little-endian on the wire
	assert.Equal(t, uint8(0x5b), ReadUint8(b, 2))
	assert.Equal(t, uint8(0x02), ReadUint8(b, 3))

	require.Panics(t, func() { ReadUint32(b, 14) })
}

func TestAlign(t *testing.T) {
	assert.Equal(t, 72, Align(66, 8))
	assert.Equal(t, 72, Align(72, 8))
	assert.Equal(t, 224, Align(217, 8))
	assert.Equal(t, 0, Align(0, 8))
	assert.Equal(t, 4, Align(3, 4))
}
