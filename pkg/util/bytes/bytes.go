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
	"encoding/binary"
)

// ByteOrder is the byte order of shared memory structures. Qualcomm
// firmware publishes SMEM items in little-endian layout regardless of
// the host reading them.
var ByteOrder binary.ByteOrder = binary.LittleEndian

// ReadUint8 reads the byte at the given offset.
func ReadUint8(b []byte, off int) uint8 {
	return b[off]
}

// ReadUint16 reads the uint16 value at the given offset of the byte slice.
func ReadUint16(b []byte, off int) uint16 {
	return ByteOrder.Uint16(b[off:])
}

// ReadUint32 reads the uint32 value at the given offset of the byte slice.
func ReadUint32(b []byte, off int) uint32 {
	return ByteOrder.Uint32(b[off:])
}

// ReadUint64 reads the uint64 value at the given offset of the byte slice.
func ReadUint64(b []byte, off int) uint64 {
	return ByteOrder.Uint64(b[off:])
}

// PutUint16 writes the uint16 value at the given offset of the byte slice.
func PutUint16(b []byte, off int, v uint16) {
	ByteOrder.PutUint16(b[off:], v)
}

// PutUint32 writes the uint32 value at the given offset of the byte slice.
func PutUint32(b []byte, off int, v uint32) {
	ByteOrder.PutUint32(b[off:], v)
}

// PutUint64 writes the uint64 value at the given offset of the byte slice.
func PutUint64(b []byte, off int, v uint64) {
	ByteOrder.PutUint64(b[off:], v)
}

// Align rounds off up to the next multiple of n. n must be a power of two.
func Align(off, n int) int {
	return (off + n - 1) &^ (n - 1)
}
