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
	"bytes"
	"text/template"
)

var schema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"api": {
			"type": "object",
			"properties": {
				"transport": 		{"type": "string", "minLength": 3},
				"timeout":			{"type": "string", "minLength": 2, "pattern": "[0-9]+s"}
			},
			"additionalProperties": false
		},
		"config-file": 	{"type": "string"},
		"env-file": 	{"type": "string"},
		"record-file": 	{"type": "string"},
		"smem": {
			"type": "object",
			"properties": {
				"source": 	{"type": "string", "enum": ["devmem", "image", "dir"]},
				"path": 	{"type": "string"},
				"base": 	{"type": ["string", "integer"]},
				"size": 	{"type": "integer", "minimum": 0, "maximum": {{ .MaxRegionSize }}}
			},
			"additionalProperties": false
		},
		"logging": {
			"type": "object",
			"properties": {
				"level": 			{"type": "string", "enum": ["panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"]},
				"max-age":			{"type": "integer"},
				"max-backups":		{"type": "integer", "minimum": 1},
				"max-size":			{"type": "integer", "minimum": 1},
				"formatter":		{"type": "string", "enum": ["json", "text"]},
				"path":				{"type": "string"},
				"log-stdout":		{"type": "boolean"}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}
`

// MaxRegionSize bounds the size of the SMEM region.
const MaxRegionSize = 64 << 20

func interpolateSchema() string {
	var b bytes.Buffer
	tmpl, err := template.New("schema").Parse(schema)
	if err != nil {
		panic(err)
	}
	if err := tmpl.Execute(&b, map[string]interface{}{"MaxRegionSize": MaxRegionSize}); err != nil {
		panic(err)
	}
	return b.String()
}
