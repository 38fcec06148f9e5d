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

// Package retry repeats test assertions that become true eventually.
package retry

import (
	"testing"
	"time"
)

// T is the subset of testing.T an assertion needs.
type T interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// Retry runs an assertion up to count times, interval apart.
type Retry struct {
	t        *testing.T
	count    int
	interval time.Duration
}

// New returns a Retry reporting the last failure to t.
func New(t *testing.T, count int, interval time.Duration) *Retry {
	return &Retry{
		t:        t,
		count:    count,
		interval: interval,
	}
}

// Try runs fn until it passes. Only the last attempt reports to t.
func (r *Retry) Try(fn func(t T)) {
	wrapT := &wrapTestingT{}
	for i := 0; i < r.count-1; i++ {
		wrapT.failed = false
		fn(wrapT)
		if !wrapT.failed {
			return
		}
		time.Sleep(r.interval)
	}
	fn(r.t)
}

// Until polls cond and reports whether it became true.
func (r *Retry) Until(cond func() bool) bool {
	for i := 0; i < r.count-1; i++ {
		if cond() {
			return true
		}
		time.Sleep(r.interval)
	}
	return cond()
}

type wrapTestingT struct {
	failed bool
}

func (w *wrapTestingT) Errorf(format string, args ...interface{}) {
	w.failed = true
}

func (w *wrapTestingT) FailNow() {
	w.failed = true
}
