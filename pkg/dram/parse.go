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
	"expvar"
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/YongxingMou/qualcomm-linux/pkg/smem"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// decodeFailures counts DRAM info retrieval failures per reason
	decodeFailures = expvar.NewMap("dram.decode.failures")
	// decodedVersions counts successfully decoded records per layout
	decodedVersions = expvar.NewMap("dram.decode.versions")
)

// Decode classifies the record by its length and decodes it. ErrNoData is
// returned for records shorter than any known layout and ErrUnknownLayout
// for sizes no layout matches.
func Decode(b []byte) (*Info, error) {
	v := InferVersion(len(b))
	switch v {
	case TooSmall:
		return nil, errors.Wrapf(kerrors.ErrNoData, "DRAM info struct too small (size = %d)", len(b))
	case Unknown:
		return nil, kerrors.ErrUnknownLayout{Size: len(b)}
	}
	l, _ := LayoutOf(v)
	return decoders[v](b, l), nil
}

// Parse retrieves the DRAM info record from SMEM and decodes it.
func Parse(p smem.Provider) (*Info, error) {
	b, err := p.Get(smem.HostAny, ItemID)
	if err != nil {
		if kerrors.IsAllocation(err) {
			decodeFailures.Add("allocation", 1)
			return nil, err
		}
		decodeFailures.Add("nodata", 1)
		log.Debugf("DRAM info unavailable: %v", err)
		return nil, errors.Wrapf(kerrors.ErrNoData, "smem item %d: %v", ItemID, err)
	}
	info, err := Decode(b)
	if err != nil {
		switch {
		case kerrors.IsUnsupportedFormat(err):
			decodeFailures.Add("unsupported", 1)
			log.Error(err)
		default:
			decodeFailures.Add("nodata", 1)
			log.Debug(err)
		}
		return nil, err
	}
	decodedVersions.Add(info.version.String(), 1)
	log.Infof("decoded %s DRAM info: %d frequencies, hbb %d", info.version, len(info.freqs), info.hbb)
	return info, nil
}

// Init parses the DRAM info and publishes it. Nothing is published on failure.
func Init(p smem.Provider) (*Info, error) {
	info, err := Parse(p)
	if err != nil {
		return nil, err
	}
	if err := Publish(info); err != nil {
		return nil, err
	}
	return info, nil
}
