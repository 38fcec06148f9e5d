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

import "github.com/sirupsen/logrus"

// WithField adds a field to the verbose logger.
func WithField(key string, value interface{}) *logrus.Entry {
	return vLog().WithField(key, value)
}

// WithFields adds fields to the verbose logger.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return vLog().WithFields(fields)
}

// WithError adds an error field to the verbose logger.
func WithError(err error) *logrus.Entry {
	return vLog().WithError(err)
}

func Debugf(format string, args ...interface{}) {
	vLog().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	vLog().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	vLog().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	vLog().Errorf(format, args...)
}

func Debug(args ...interface{}) {
	vLog().Debug(args...)
}

func Info(args ...interface{}) {
	vLog().Info(args...)
}

func Warn(args ...interface{}) {
	vLog().Warn(args...)
}

func Error(args ...interface{}) {
	vLog().Error(args...)
}
