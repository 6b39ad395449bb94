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

package config

import (
	"fmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strconv"
)

const (
	smemSource = "smem.source"
	smemPath   = "smem.path"
	smemBase   = "smem.base"
	smemSize   = "smem.size"
)

// Source designates the origin of SMEM items.
type Source string

const (
	// DevMem maps the physical SMEM region through the memory device.
	DevMem Source = "devmem"
	// Image reads the dump of the whole SMEM region.
	Image Source = "image"
	// Dir reads items exported as individual files.
	Dir Source = "dir"
)

// SMEMConfig contains the settings for locating the SMEM region.
type SMEMConfig struct {
	// Source is the kind of SMEM source (devmem|image|dir).
	Source Source `json:"smem.source" yaml:"smem.source"`
	// Path is the memory device, the region dump file or the item directory
	// depending on the source.
	Path string `json:"smem.path" yaml:"smem.path"`
	// Base is the physical address of the SMEM region. Zero means the address
	// is discovered from the device tree.
	Base uint64 `json:"smem.base" yaml:"smem.base"`
	// Size is the size of the SMEM region in bytes.
	Size int `json:"smem.size" yaml:"smem.size"`
}

func (c *SMEMConfig) initFromViper(v *viper.Viper) error {
	c.Source = Source(v.GetString(smemSource))
	c.Path = v.GetString(smemPath)
	c.Size = v.GetInt(smemSize)
	base, err := strconv.ParseUint(v.GetString(smemBase), 0, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value: %v", smemBase, err)
	}
	c.Base = base

	switch c.Source {
	case DevMem:
	case Image, Dir:
		if c.Path == "" {
			return fmt.Errorf("%s is required for the %s source", smemPath, c.Source)
		}
	default:
		return fmt.Errorf("unknown smem source %q", c.Source)
	}
	if c.Size < 0 {
		return fmt.Errorf("%s can't be negative", smemSize)
	}
	return nil
}

func (c *SMEMConfig) addFlags(flags *pflag.FlagSet) {
	flags.String(smemSource, string(DevMem), "Specifies where SMEM items are read from (devmem|image|dir)")
	flags.String(smemPath, "", "Represents the memory device, SMEM region dump or the directory with exported items")
	flags.String(smemBase, "0", "Physical address of the SMEM region. Discovered from the device tree when zero")
	flags.Int(smemSize, 0, "Size of the SMEM region in bytes. Discovered from the device tree when zero")
}
