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

package bootstrap

import (
	"fmt"

	"github.com/YongxingMou/qualcomm-linux/internal/procfs"
	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	"github.com/YongxingMou/qualcomm-linux/pkg/smem"
	log "github.com/sirupsen/logrus"
)

// OpenProvider opens the SMEM provider designated by the configuration. The
// physical location of the region is looked up in the device tree unless
// configured explicitly.
func OpenProvider(c config.SMEMConfig) (smem.Provider, error) {
	switch c.Source {
	case config.Image:
		return smem.OpenImageFile(c.Path)
	case config.Dir:
		return smem.OpenDir(c.Path)
	case config.DevMem:
		base, size := int64(c.Base), c.Size
		if base == 0 || size == 0 {
			dtBase, dtSize, err := smem.DiscoverRegion(procfs.DeviceTree())
			if err != nil {
				return nil, err
			}
			if base == 0 {
				base = dtBase
			}
			if size == 0 {
				size = dtSize
			}
			log.Infof("discovered smem region at 0x%x (%d bytes)", base, size)
		}
		return smem.OpenDevMem(c.Path, base, size)
	default:
		return nil, fmt.Errorf("unknown smem source %q", c.Source)
	}
}
