//go:build !linux
// +build !linux

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

package smem

import (
	"github.com/pkg/errors"
)

const (
	// DefaultDevMem is the character device exposing the physical memory.
	DefaultDevMem = "/dev/mem"
	// DefaultDeviceTree is the root of the flattened device tree.
	DefaultDeviceTree = "/proc/device-tree"
)

// OpenDevMem is only supported on Linux.
func OpenDevMem(path string, base int64, size int) (*Image, error) {
	return nil, errors.New("mapping the smem region requires Linux")
}

// DiscoverRegion is only supported on Linux.
func DiscoverRegion(root string) (int64, int, error) {
	return 0, 0, errors.New("device tree discovery requires Linux")
}
