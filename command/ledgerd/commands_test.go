// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger/mocks"
	"github.com/bitmark-inc/logger"
)

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, filepath.Join(".", "rpc.crt"), getFilenameWithDirectory(nil, "rpc.crt"), "wrong default directory")
	assert.Equal(t, filepath.Join("/tmp/keys", "rpc.key"), getFilenameWithDirectory([]string{"/tmp/keys", "127.0.0.1"}, "rpc.key"), "wrong directory")
}

func TestProcessSetupCommandContinues(t *testing.T) {
	for _, command := range []string{"start", "run", "init-ledger", "init", "config-test", "cfg"} {
		assert.False(t, processSetupCommand("ledgerd", []string{command}), "wrong handling of: %s", command)
	}
}

func TestGenerateRPCCertificate(t *testing.T) {
	dir, err := ioutil.TempDir("", "ledgerd-cert")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	assert.True(t, processSetupCommand("ledgerd", []string{"gen-rpc-cert", dir, "127.0.0.1"}), "wrong gen-rpc-cert")

	certificateFile := filepath.Join(dir, rpcCertificateKeyFilename)
	keyFile := filepath.Join(dir, rpcPrivateKeyFilename)

	_, err = tls.LoadX509KeyPair(certificateFile, keyFile)
	assert.Nil(t, err, "wrong certificate pair")

	info, err := os.Stat(keyFile)
	assert.Nil(t, err, "wrong key file")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "wrong key permissions")
}

func TestMakeSelfSignedCertificateRefusesOverwrite(t *testing.T) {
	dir, err := ioutil.TempDir("", "ledgerd-cert")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "test.crt")
	keyFile := filepath.Join(dir, "test.key")

	err = ioutil.WriteFile(certificateFile, []byte("existing"), 0600)
	assert.Nil(t, err, "wrong write")

	err = makeSelfSignedCertificate("test", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.CertificateFileExists, err, "wrong certificate error")

	_ = os.Remove(certificateFile)
	err = ioutil.WriteFile(keyFile, []byte("existing"), 0600)
	assert.Nil(t, err, "wrong write")

	err = makeSelfSignedCertificate("test", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.KeyFileExists, err, "wrong key error")
}

func TestProcessDataCommandInitLedger(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().InitLedger().Return(nil).Times(1)

	log := logger.New("testing")
	assert.True(t, processDataCommand(log, []string{"init-ledger"}, l), "wrong init-ledger")
	assert.False(t, processDataCommand(log, []string{"start"}, l), "wrong start")
}

func TestProcessConfigCommandPassesDataCommands(t *testing.T) {
	assert.False(t, processConfigCommand([]string{"init-ledger"}, &Configuration{}), "wrong init-ledger")
	assert.False(t, processConfigCommand(nil, &Configuration{}), "wrong empty arguments")
}
