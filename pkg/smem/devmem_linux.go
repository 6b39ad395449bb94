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
	"encoding/binary"
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"os"
	"path/filepath"
)

const (
	// DefaultDevMem is the character device exposing the physical memory.
	DefaultDevMem = "/dev/mem"
	// DefaultDeviceTree is where the kernel exposes the flattened device tree.
	DefaultDeviceTree = "/proc/device-tree"
)

// DiscoverRegion locates the SMEM region in the reserved-memory node of the
// device tree rooted at root. The reg property holds big-endian cells with
// either one or two cells per address and size.
func DiscoverRegion(root string) (int64, int, error) {
	if root == "" {
		root = DefaultDeviceTree
	}
	matches, err := filepath.Glob(filepath.Join(root, "reserved-memory", "smem*", "reg"))
	if err != nil {
		return 0, 0, err
	}
	if len(matches) == 0 {
		return 0, 0, errors.Errorf("no smem node under %s/reserved-memory", root)
	}
	reg, err := os.ReadFile(matches[0])
	if err != nil {
		return 0, 0, err
	}
	switch len(reg) {
	case 16:
		return int64(binary.BigEndian.Uint64(reg)), int(binary.BigEndian.Uint64(reg[8:])), nil
	case 8:
		return int64(binary.BigEndian.Uint32(reg)), int(binary.BigEndian.Uint32(reg[4:])), nil
	default:
		return 0, 0, errors.Errorf("unexpected reg property length %d in %s", len(reg), matches[0])
	}
}

// OpenDevMem maps the physical SMEM region located at base read-only and parses it.
// The base address must be page aligned.
func OpenDevMem(path string, base int64, size int) (*Image, error) {
	if path == "" {
		path = DefaultDevMem
	}
	if base%int64(unix.Getpagesize()) != 0 {
		return nil, errors.Errorf("smem base address 0x%x is not page aligned", base)
	}
	if size <= 0 {
		return nil, errors.Errorf("invalid smem region size %d", size)
	}
	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	// the mapping outlives the descriptor
	defer f.Close()
	b, err := unix.Mmap(int(f.Fd()), base, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		if err == unix.ENOMEM {
			return nil, errors.Wrapf(kerrors.ErrAllocation, "unable to map %d bytes of smem region", size)
		}
		return nil, errors.Wrapf(err, "unable to map smem region at 0x%x", base)
	}
	img, err := NewImage(b)
	if err != nil {
		if err := unix.Munmap(b); err != nil {
			log.Warnf("unable to unmap smem region: %v", err)
		}
		return nil, err
	}
	img.closer = func() error { return unix.Munmap(b) }
	log.Infof("mapped %d bytes of smem region at 0x%x (version %d)", size, base, img.version)
	return img, nil
}
