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

package procfs

import (
	"os"
	"path/filepath"
)

// Path returns the path to the procfs. Containers bind-mount the host procfs
// elsewhere, in which case the location is given by the `PROCFS` environment
// variable. Defaults to `/proc`.
func Path() string {
	if path := os.Getenv("PROCFS"); path != "" {
		return path
	}
	return "/proc"
}

// DeviceTree returns the directory where the kernel exposes the flattened
// device tree describing the reserved memory regions.
func DeviceTree() string {
	return filepath.Join(Path(), "device-tree")
}
