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

// Version is the DRAM info layout tag inferred from the record size.
type Version uint8

const (
	// Unknown designates a record whose size matches no known layout.
	Unknown Version = iota
	// V3 is the original layout with 13 frequency entries.
	V3
	// V3With14Freqs is the V3 layout carrying an additional frequency entry.
	V3With14Freqs
	// V4 adds per-channel rank counts and the highest bank address bit table.
	V4
	// V5 describes DDR regions. This variant has four region descriptors.
	V5
	// V5With6Regions is the V5 layout with six region descriptors.
	V5With6Regions
	// TooSmall designates a record shorter than any known layout.
	TooSmall
)

// String returns the human-readable version name.
func (v Version) String() string {
	switch v {
	case V3:
		return "v3"
	case V3With14Freqs:
		return "v3 (14 freqs)"
	case V4:
		return "v4"
	case V5:
		return "v5 (4 regions)"
	case V5With6Regions:
		return "v5 (6 regions)"
	case TooSmall:
		return "too small"
	default:
		return "unknown"
	}
}

// IsKnown determines if the version designates a decodable layout.
func (v Version) IsKnown() bool { return v != Unknown && v != TooSmall }

// InferVersion classifies the record solely by its byte length.
func InferVersion(size int) Version {
	if size < minLen {
		return TooSmall
	}
	for _, l := range catalog {
		if size == l.Len() {
			return l.Version
		}
	}
	return Unknown
}
