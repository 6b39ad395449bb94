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

package rotate

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config is the configuration for the rotate file hook.
type Config struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Level      logrus.Level
	Formatter  logrus.Formatter
}

// Hook writes log entries to the file rotated by lumberjack.
type Hook struct {
	config       Config
	w            io.WriteCloser
	depth        int
	skip         int
	skipPrefixes []string
}

// NewHook builds a new rotate file hook. The log file is probed for writing
// so the caller can fall back on another hook when it isn't writable.
func NewHook(config Config) (*Hook, error) {
	if config.Filename == "" {
		return nil, fmt.Errorf("empty log file name")
	}
	if config.MaxSize < 0 || config.MaxBackups < 0 || config.MaxAge < 0 {
		return nil, fmt.Errorf("negative rotation limits for %s", filepath.Base(config.Filename))
	}
	f, err := os.OpenFile(config.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	_ = f.Close()
	hook := &Hook{
		config:       config,
		depth:        20,
		skip:         5,
		skipPrefixes: []string{"logrus/", "logrus@"},
	}
	hook.w = &lumberjack.Logger{
		Filename:   config.Filename,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
	}
	return hook, nil
}

// Levels determines log levels for which the logs are written.
func (hook *Hook) Levels() []logrus.Level {
	return logrus.AllLevels[:hook.config.Level+1]
}

// Fire is called by logrus when it is about to write the log entry.
func (hook *Hook) Fire(entry *logrus.Entry) error {
	file, line := hook.findCaller()
	modified := entry.WithField("source", fmt.Sprintf("%s:%d", file, line))
	modified.Level = entry.Level
	modified.Message = entry.Message
	modified.Time = entry.Time
	b, err := hook.config.Formatter.Format(modified)
	if err != nil {
		return err
	}
	_, err = hook.w.Write(b)
	return err
}

// Close closes the underlying log file.
func (hook *Hook) Close() error { return hook.w.Close() }

func (hook *Hook) findCaller() (string, int) {
	var (
		file string
		line int
	)
	for i := 0; i < hook.depth; i++ {
		file, line = caller(hook.skip + i)
		if !hook.skipFile(file) {
			break
		}
	}
	return file, line
}

func (hook *Hook) skipFile(file string) bool {
	for _, prefix := range hook.skipPrefixes {
		if strings.HasPrefix(file, prefix) {
			return true
		}
	}
	return false
}

// caller returns the file trimmed to its parent directory and the line.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	dir, base := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), base), line
}
