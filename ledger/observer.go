// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/logger"
)

// Observer - notified at the start and end of every operation
//
// End receives the same arguments as Begin since calls may overlap
type Observer interface {
	Begin(operation string, arguments []string)
	End(operation string, arguments []string, err error)
}

type logObserver struct {
	log *logger.L
}

// NewLogObserver - an observer that writes each operation to the log
func NewLogObserver(log *logger.L) Observer {
	return &logObserver{
		log: log,
	}
}

func (o *logObserver) Begin(operation string, arguments []string) {
	o.log.Infof("start: %s(%s)", operation, strings.Join(arguments, ", "))
}

func (o *logObserver) End(operation string, arguments []string, err error) {
	if nil != err {
		o.log.Errorf("end: %s  error: %s", operation, err)
		return
	}
	o.log.Infof("end: %s", operation)
}

// Statistics - per operation counts
type Statistics struct {
	entries map[string]*statisticsEntry
}

type statisticsEntry struct {
	calls    counter.Counter
	failures counter.Counter
}

// Counts - snapshot of one operation's counts
type Counts struct {
	Calls    uint64 `json:"calls"`
	Failures uint64 `json:"failures"`
}

// NewStatistics - counters for all known operations
func NewStatistics() *Statistics {
	s := &Statistics{
		entries: make(map[string]*statisticsEntry, len(Operations)),
	}
	for _, operation := range Operations {
		s.entries[operation] = &statisticsEntry{}
	}
	return s
}

// Begin - count a call
func (s *Statistics) Begin(operation string, arguments []string) {
	if e, ok := s.entries[operation]; ok {
		e.calls.Increment()
	}
}

// End - count a failure
func (s *Statistics) End(operation string, arguments []string, err error) {
	if nil == err {
		return
	}
	if e, ok := s.entries[operation]; ok {
		e.failures.Increment()
	}
}

// Snapshot - current counts keyed by operation name
func (s *Statistics) Snapshot() map[string]Counts {
	result := make(map[string]Counts, len(s.entries))
	for operation, e := range s.entries {
		result[operation] = Counts{
			Calls:    e.calls.Uint64(),
			Failures: e.failures.Uint64(),
		}
	}
	return result
}
