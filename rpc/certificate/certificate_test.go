// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/rpc/certificate"
	"github.com/bitmark-inc/ledgerd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func fixtureDir() string {
	wd, _ := os.Getwd()
	return path.Join(filepath.Dir(wd), "fixtures")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer := fixtures.Certificate(fixtureDir())
	key := fixtures.Key(fixtureDir())

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		"not a certificate",
		fixtures.Key(fixtureDir()),
	)
	assert.NotNil(t, err, "invalid certificate accepted")
}

func TestGetFiles(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, fingerprint, err := certificate.GetFiles(
		logger.New(fixtures.LogCategory),
		"test",
		path.Join(fixtureDir(), "test.crt"),
		path.Join(fixtureDir(), "test.key"),
	)
	assert.Nil(t, err, "wrong GetFiles")
	assert.NotEqual(t, [32]byte{}, fingerprint, "empty fingerprint")

	_, _, err = certificate.GetFiles(
		logger.New(fixtures.LogCategory),
		"test",
		path.Join(fixtureDir(), "missing.crt"),
		path.Join(fixtureDir(), "test.key"),
	)
	assert.NotNil(t, err, "missing file accepted")
}
