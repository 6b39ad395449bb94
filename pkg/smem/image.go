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
	"github.com/YongxingMou/qualcomm-linux/pkg/util/bytes"
	"github.com/pkg/errors"
	"os"
)

const (
	// the last version index is written by the secondary bootloader
	sblVersionIndex     = 7
	globalHeapVersion   = 11
	globalPartVersion   = 12
	procCommSize        = 16
	versionOffset       = 4 * procCommSize
	tocOffset           = versionOffset + 32*4 + 4*4
	tocEntrySize        = 16
	itemCount           = 512
	headerSize          = tocOffset + itemCount*tocEntrySize
	ptableSize          = 4096
	ptableHeaderSize    = 32
	ptableEntrySize     = 48
	partitionHeaderSize = 32
	privateEntrySize    = 16
	privateCanary       = 0xa5a5
	supportedPtableVer  = 1
	heapAuxBaseMask     = 0xfffffffc
)

const (
	ptableMagic    = "$TOC"
	partitionMagic = "$PRT"
)

// partition is the slice of the SMEM region shared by two hosts.
type partition struct {
	b            []byte
	host0, host1 uint16
}

// Image decodes SMEM items from the in-memory copy of the whole SMEM region.
type Image struct {
	b       []byte
	version uint32
	global  *partition
	private map[Host]*partition
	closer  func() error
}

// NewImage parses the SMEM header and the partition table of the region. The
// byte slice must stay valid and unmodified during the lifetime of the image.
func NewImage(b []byte) (*Image, error) {
	if len(b) < headerSize {
		return nil, errors.Wrapf(ErrInvalidImage, "region too small (%d bytes)", len(b))
	}
	img := &Image{
		b:       b,
		version: bytes.ReadUint32(b, versionOffset+sblVersionIndex*4) >> 16,
		private: make(map[Host]*partition),
	}
	if err := img.enumeratePartitions(); err != nil {
		return nil, err
	}
	switch img.version {
	case globalPartVersion:
		if img.global == nil {
			return nil, errors.Wrap(ErrInvalidImage, "global partition not found")
		}
	case globalHeapVersion:
	default:
		return nil, errors.Wrapf(ErrInvalidImage, "unsupported SMEM version 0x%x", img.version)
	}
	return img, nil
}

// OpenImageFile reads the SMEM region dump from the file.
func OpenImageFile(path string) (*Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewImage(b)
}

// Version returns the SMEM layout version advertised by the bootloader.
func (img *Image) Version() uint32 { return img.version }

// Get returns a copy of the item. HostAny and hosts without a private
// partition resolve to the global partition or the global heap.
func (img *Image) Get(host Host, item Item) ([]byte, error) {
	if host >= 0 {
		if p, ok := img.private[host]; ok {
			return p.item(item)
		}
	}
	if img.global != nil {
		return img.global.item(item)
	}
	return img.heapItem(item)
}

// Close releases the region backing the image.
func (img *Image) Close() error {
	if img.closer != nil {
		return img.closer()
	}
	return nil
}

func (img *Image) enumeratePartitions() error {
	off := len(img.b) - ptableSize
	if off < headerSize || string(img.b[off:off+4]) != ptableMagic {
		return nil
	}
	if ver := bytes.ReadUint32(img.b, off+4); ver != supportedPtableVer {
		return errors.Wrapf(ErrInvalidImage, "unsupported partition table version %d", ver)
	}
	n := int(bytes.ReadUint32(img.b, off+8))
	if ptableHeaderSize+n*ptableEntrySize > ptableSize {
		return errors.Wrapf(ErrInvalidImage, "partition table holds too many entries (%d)", n)
	}
	for i := 0; i < n; i++ {
		e := off + ptableHeaderSize + i*ptableEntrySize
		var (
			poff  = int(bytes.ReadUint32(img.b, e))
			psize = int(bytes.ReadUint32(img.b, e+4))
			host0 = bytes.ReadUint16(img.b, e+12)
			host1 = bytes.ReadUint16(img.b, e+14)
		)
		if poff == 0 || psize == 0 {
			continue
		}
		p, err := img.partition(poff, psize, host0, host1)
		if err != nil {
			return err
		}
		switch {
		case host0 == GlobalHost && host1 == GlobalHost:
			if img.global != nil {
				return errors.Wrap(ErrInvalidImage, "multiple global partitions")
			}
			img.global = p
		case host0 == uint16(HostApps):
			img.private[Host(host1)] = p
		case host1 == uint16(HostApps):
			img.private[Host(host0)] = p
		}
	}
	return nil
}

func (img *Image) partition(off, size int, host0, host1 uint16) (*partition, error) {
	if off+size > len(img.b) || size < partitionHeaderSize {
		return nil, errors.Wrapf(ErrInvalidImage, "partition %d:%d out of bounds", host0, host1)
	}
	b := img.b[off : off+size]
	if string(b[:4]) != partitionMagic {
		return nil, errors.Wrapf(ErrInvalidImage, "bad magic in partition %d:%d", host0, host1)
	}
	if bytes.ReadUint16(b, 4) != host0 || bytes.ReadUint16(b, 6) != host1 {
		return nil, errors.Wrapf(ErrInvalidImage, "partition %d:%d hosts mismatch", host0, host1)
	}
	if int(bytes.ReadUint32(b, 8)) != size {
		return nil, errors.Wrapf(ErrInvalidImage, "partition %d:%d size mismatch", host0, host1)
	}
	if int(bytes.ReadUint32(b, 12)) > size {
		return nil, errors.Wrapf(ErrInvalidImage, "partition %d:%d has invalid free offset", host0, host1)
	}
	return &partition{b: b, host0: host0, host1: host1}, nil
}

// item walks the uncached entries of the partition.
func (p *partition) item(item Item) ([]byte, error) {
	end := int(bytes.ReadUint32(p.b, 12))
	e := partitionHeaderSize
	for e+privateEntrySize <= end {
		if bytes.ReadUint16(p.b, e) != privateCanary {
			return nil, errors.Wrapf(ErrInvalidImage, "found invalid canary in hosts %d:%d partition", p.host0, p.host1)
		}
		var (
			id      = Item(bytes.ReadUint16(p.b, e+2))
			size    = int(bytes.ReadUint32(p.b, e+4))
			padData = int(bytes.ReadUint16(p.b, e+8))
			padHdr  = int(bytes.ReadUint16(p.b, e+10))
			data    = e + privateEntrySize + padHdr
		)
		if size > len(p.b) || padData > size || data+size > len(p.b) {
			return nil, errors.Wrapf(ErrInvalidImage, "item %d overflows hosts %d:%d partition", id, p.host0, p.host1)
		}
		if id == item {
			return copyItem(p.b[data : data+size-padData])
		}
		e = data + size
	}
	return nil, ErrItemNotFound
}

func (img *Image) heapItem(item Item) ([]byte, error) {
	if item >= itemCount {
		return nil, ErrItemNotFound
	}
	toc := tocOffset + int(item)*tocEntrySize
	if bytes.ReadUint32(img.b, toc) == 0 {
		return nil, ErrItemNotFound
	}
	var (
		off     = int(bytes.ReadUint32(img.b, toc+4))
		size    = int(bytes.ReadUint32(img.b, toc+8))
		auxBase = bytes.ReadUint32(img.b, toc+12) & heapAuxBaseMask
	)
	// items living in auxiliary regions aren't part of the image
	if auxBase != 0 {
		return nil, errors.Wrapf(ErrItemNotFound, "item %d resides in auxiliary region 0x%x", item, auxBase)
	}
	if off+size > len(img.b) {
		return nil, errors.Wrapf(ErrInvalidImage, "item %d overflows the global heap", item)
	}
	return copyItem(img.b[off : off+size])
}
