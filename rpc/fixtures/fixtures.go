// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"io/ioutil"
	"os"
	"path"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"

	certificateFile = "test.crt"
	keyFile         = "test.key"
)

// SetupTestLogger - start a logger writing into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// Certificate - PEM text of the test certificate
func Certificate(fixtureDir string) string {
	return readFile(path.Join(fixtureDir, certificateFile))
}

// Key - PEM text of the test private key
func Key(fixtureDir string) string {
	return readFile(path.Join(fixtureDir, keyFile))
}

func readFile(name string) string {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		panic("fixture: " + err.Error())
	}
	return string(data)
}
