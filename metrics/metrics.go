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

// Package metrics records KDF, signing and RPC timings. Collection is off
// until EnableMetrics is called or the process runs with --metrics.
package metrics

import (
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/icon-project/ICONKit/util/logging"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/rcrowley/go-metrics/exp"
	"github.com/sirupsen/logrus"
)

// MetricsEnabledFlag turns collection on when present on the command line.
const MetricsEnabledFlag = "metrics"

// Metric names.
const (
	ScryptTimer        = "keystore.kdf.scrypt"
	PBKDF2Timer        = "keystore.kdf.pbkdf2"
	DecryptFailCounter = "keystore.decrypt.failed"
	SignTimer          = "crypto.sign"
	RPCTimerPrefix     = "rpc."
	RPCErrorCounter    = "rpc.errors"
	CommandCounter     = "iconkit.commands"
)

var enable int32

func init() {
	for _, arg := range os.Args {
		if strings.TrimLeft(arg, "-") == MetricsEnabledFlag {
			EnableMetrics()
			return
		}
	}
}

// EnableMetrics turns collection on and publishes the registry through expvar.
func EnableMetrics() {
	if !atomic.CompareAndSwapInt32(&enable, 0, 1) {
		return
	}
	exp.Exp(metrics.DefaultRegistry)
	logging.Info("Metrics enabled.")
}

// Enabled reports whether metrics are collected.
func Enabled() bool {
	return atomic.LoadInt32(&enable) == 1
}

// NewCounter returns the counter registered as name, or a no-op counter.
func NewCounter(name string) metrics.Counter {
	if !Enabled() {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewMeter returns the meter registered as name, or a no-op meter.
func NewMeter(name string) metrics.Meter {
	if !Enabled() {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

// NewTimer returns the timer registered as name, or a no-op timer.
func NewTimer(name string) metrics.Timer {
	if !Enabled() {
		return new(metrics.NilTimer)
	}
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// Since records the time elapsed from start on timer name.
//
//	defer metrics.Since(metrics.SignTimer, time.Now())
func Since(name string, start time.Time) {
	NewTimer(name).UpdateSince(start)
}

// Inc adds one to counter name.
func Inc(name string) {
	NewCounter(name).Inc(1)
}

// Snapshot returns the current values of every registered metric.
func Snapshot() map[string]map[string]interface{} {
	return metrics.DefaultRegistry.GetAll()
}

// Log writes the current values to the verbose logger.
func Log() {
	if !Enabled() {
		return
	}
	for name, values := range Snapshot() {
		logging.WithFields(logrus.Fields(values)).WithField("metric", name).Info("Metric.")
	}
}
