// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	reloaderLoggerPrefix = "reloader"
	reloadDelay          = 2 * time.Second
)

// reloader - background process applying configuration changes
//
// only log levels can change while running
type reloader struct {
	log      *logger.L
	fileName string
	channels WatcherChannel
	delay    time.Duration
	read     func(string) (*Configuration, error)
	apply    func(map[string]string)
}

func newReloader(log *logger.L, fileName string, channels WatcherChannel) *reloader {
	return &reloader{
		log:      log,
		fileName: fileName,
		channels: channels,
		delay:    reloadDelay,
		read:     getConfiguration,
		apply: func(levels map[string]string) {
			logger.LoadLevels(levels)
		},
	}
}

// Run - background loop, stops when shutdown is closed
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channels.change:
			// editors may write a file in several steps
			select {
			case <-shutdown:
				break loop
			case <-time.After(r.delay):
			}
			r.reload()

		case <-r.channels.remove:
			r.log.Warnf("configuration file: %q removed, keeping current settings", r.fileName)
		}
	}

	r.log.Info("stopped")
}

func (r *reloader) reload() {
	configuration, err := r.read(r.fileName)
	if nil != err {
		r.log.Errorf("failed to read configuration from: %q  error: %s", r.fileName, err)
		return
	}
	r.apply(configuration.Logging.Levels)
	r.log.Infof("log levels reloaded: %v", configuration.Logging.Levels)
}
