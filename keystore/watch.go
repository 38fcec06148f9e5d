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

package keystore

import (
	"time"

	"github.com/icon-project/ICONKit/util/logging"
	"github.com/rjeczalik/notify"
	"github.com/sirupsen/logrus"
)

const debounceDuration = 500 * time.Millisecond

type watcher struct {
	dir      *Dir
	starting bool
	running  bool
	ev       chan notify.EventInfo
	quit     chan struct{}
}

func newWatcher(dir *Dir) *watcher {
	return &watcher{
		dir:  dir,
		ev:   make(chan notify.EventInfo, 10),
		quit: make(chan struct{}),
	}
}

// start must be called with dir.mu held.
func (w *watcher) start() {
	if w.starting || w.running {
		return
	}
	w.starting = true
	go w.loop()
}

func (w *watcher) close() {
	close(w.quit)
}

func (w *watcher) loop() {
	defer func() {
		w.dir.mu.Lock()
		w.running = false
		w.starting = false
		w.dir.mu.Unlock()
	}()

	logger := logging.WithFields(logrus.Fields{"path": w.dir.keydir})
	if err := notify.Watch(w.dir.keydir, w.ev, notify.All); err != nil {
		logger.WithError(err).Warn("Failed to watch keystore folder.")
		return
	}
	defer notify.Stop(w.ev)
	logger.Debug("Started watching keystore folder.")
	defer logger.Debug("Stopped watching keystore folder.")

	w.dir.mu.Lock()
	w.running = true
	w.dir.mu.Unlock()

	// Events arriving within the debounce window cause a single rescan.
	var (
		rescanTriggered = false
		debounce        = time.NewTimer(0)
	)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()
	for {
		select {
		case <-w.quit:
			return
		case <-w.ev:
			if !rescanTriggered {
				debounce.Reset(debounceDuration)
				rescanTriggered = true
			}
		case <-debounce.C:
			if err := w.dir.scanAccounts(); err != nil {
				logger.WithError(err).Warn("Failed to rescan keystore folder.")
			}
			rescanTriggered = false
		}
	}
}
