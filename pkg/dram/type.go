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

import "fmt"

// Type is the DDR device type reported by firmware.
type Type uint8

const (
	NoDDR Type = iota
	LPDDR1
	LPDDR2
	PCDDR2
	PCDDR3
	LPDDR3
	LPDDR4
	LPDDR4X
	LPDDR5
	LPDDR5X
)

var types = map[Type]string{
	NoDDR:   "NODDR",
	LPDDR1:  "LPDDR1",
	LPDDR2:  "LPDDR2",
	PCDDR2:  "PCDDR2",
	PCDDR3:  "PCDDR3",
	LPDDR3:  "LPDDR3",
	LPDDR4:  "LPDDR4",
	LPDDR4X: "LPDDR4X",
	LPDDR5:  "LPDDR5",
	LPDDR5X: "LPDDR5X",
}

// String returns the DDR type name.
func (t Type) String() string {
	if s, ok := types[t]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}
