// Copyright (C) 2018  MediBloc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>

package logging

import (
	"io/ioutil"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var (
	mu   sync.RWMutex
	clog *logrus.Logger
	vlog *logrus.Logger
)

// Console returns console logger.
func Console() *logrus.Logger {
	mu.RLock()
	l := clog
	mu.RUnlock()
	if l == nil {
		initDefault()
		return Console()
	}
	return l
}

func vLog() *logrus.Logger {
	mu.RLock()
	l := vlog
	mu.RUnlock()
	if l == nil {
		initDefault()
		return vLog()
	}
	return l
}

// initDefault sets up loggers without a file hook. Library callers that never
// call Init get a silent verbose logger and an info-level console.
func initDefault() {
	mu.Lock()
	defer mu.Unlock()
	if clog != nil && vlog != nil {
		return
	}
	clog = newLogger(os.Stdout, logrus.InfoLevel)
	vlog = newLogger(ioutil.Discard, logrus.InfoLevel)
}

func newLogger(out interface{ Write([]byte) (int, error) }, level logrus.Level, hooks ...logrus.Hook) *logrus.Logger {
	l := logrus.New()
	for _, h := range hooks {
		l.Hooks.Add(h)
	}
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = level
	return l
}

// Init loggers.
func Init(path string, level string, age uint32) error {
	levelNo, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	hooks := []logrus.Hook{NewFunctionHooker()}
	if path != "" {
		fileHooker, err := NewFileRotateHooker(path, age)
		if err != nil {
			return err
		}
		hooks = append(hooks, fileHooker)
	}

	mu.Lock()
	clog = newLogger(os.Stdout, logrus.DebugLevel, hooks...)
	vlog = newLogger(ioutil.Discard, levelNo, hooks...)
	mu.Unlock()

	vLog().WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
	return nil
}

// TestHook returns hook for testing log entry.
func TestHook() *test.Hook {
	logger, hook := test.NewNullLogger()
	logger.Level = logrus.DebugLevel
	mu.Lock()
	clog = logger
	vlog = logger
	mu.Unlock()
	return hook
}
