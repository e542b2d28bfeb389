// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

// Package log is a thin key/value wrapper around logrus, in the style used
// throughout the N42 codebase: callers pass a message plus an even-length
// list of key/value pairs rather than a format string.
package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	terminal = logrus.New()
	root     = &logger{}
)

func init() {
	formatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	terminal.SetFormatter(formatter)
	terminal.SetLevel(logrus.InfoLevel)
	terminal.SetOutput(os.Stderr)
}

type Lvl int

const (
	LvlCrit Lvl = iota
	LvlFatal
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

var lvlToLogrus = map[Lvl]logrus.Level{
	LvlCrit:  logrus.FatalLevel,
	LvlFatal: logrus.FatalLevel,
	LvlError: logrus.ErrorLevel,
	LvlWarn:  logrus.WarnLevel,
	LvlInfo:  logrus.InfoLevel,
	LvlDebug: logrus.DebugLevel,
	LvlTrace: logrus.TraceLevel,
}

// Ctx is a list of key/value pairs attached to a logger or a single line.
type Ctx map[string]interface{}

func (c Ctx) toArray() []interface{} {
	arr := make([]interface{}, 0, 2*len(c))
	for k, v := range c {
		arr = append(arr, k, v)
	}
	return arr
}

// normalize pads an odd-length key/value list with a trailing nil value, so
// a caller that forgot a value never panics the formatter.
func normalize(ctx []interface{}) []interface{} {
	if len(ctx)%2 != 0 {
		ctx = append(ctx, nil)
	}
	return ctx
}

// Init sets the root logger's minimum level. Accepts logrus level names
// ("trace", "debug", "info", "warn", "error"); an unrecognized name leaves
// the level unchanged.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	terminal.SetLevel(lvl)
}

// SetOutput redirects where log lines are written; tests use this to
// capture output without touching package-level state races.
func SetOutput(w interface{ Write([]byte) (int, error) }) {
	terminal.SetOutput(w)
}

type logger struct {
	ctx []interface{}
	mu  sync.Mutex
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}, _ int) {
	fields := logrus.Fields{}
	all := normalize(append(append([]interface{}{}, l.ctx...), ctx...))
	for i := 0; i < len(all); i += 2 {
		key := fmt.Sprintf("%v", all[i])
		fields[key] = all[i+1]
	}
	l.mu.Lock()
	entry := terminal.WithFields(fields)
	l.mu.Unlock()
	level := lvlToLogrus[lvl]
	entry.Log(level, msg)
}

func (l *logger) New(ctx ...interface{}) Logger {
	return &logger{ctx: append(append([]interface{}{}, l.ctx...), normalize(ctx)...)}
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx, 0) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx, 0) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx, 0) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx, 0) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx, 0) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx, 0)
	os.Exit(1)
}

// New returns a new logger with the given context. New is a convenient
// alias for Root().New.
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

// Root returns the root logger.
func Root() Logger {
	return root
}

func Trace(msg string, ctx ...interface{}) { root.write(msg, LvlTrace, ctx, 0) }
func Debug(msg string, ctx ...interface{}) { root.write(msg, LvlDebug, ctx, 0) }
func Info(msg string, ctx ...interface{})  { root.write(msg, LvlInfo, ctx, 0) }
func Warn(msg string, ctx ...interface{})  { root.write(msg, LvlWarn, ctx, 0) }
func Error(msg string, ctx ...interface{}) { root.write(msg, LvlError, ctx, 0) }
func Crit(msg string, ctx ...interface{}) {
	root.write(msg, LvlCrit, ctx, 0)
	os.Exit(1)
}

func Tracef(msg string, args ...interface{}) { root.write(fmt.Sprintf(msg, args...), LvlTrace, nil, 0) }
func Debugf(msg string, args ...interface{}) { root.write(fmt.Sprintf(msg, args...), LvlDebug, nil, 0) }
func Infof(msg string, args ...interface{})  { root.write(fmt.Sprintf(msg, args...), LvlInfo, nil, 0) }
func Warnf(msg string, args ...interface{})  { root.write(fmt.Sprintf(msg, args...), LvlWarn, nil, 0) }
func Errorf(msg string, args ...interface{}) { root.write(fmt.Sprintf(msg, args...), LvlError, nil, 0) }

// A Logger writes a message plus key/value pairs through the package's
// logrus output.
type Logger interface {
	// New returns a new Logger that has this logger's context plus the given context.
	New(ctx ...interface{}) Logger

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}
