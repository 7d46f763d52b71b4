// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/zmqutil"
)

func TestParseKey(t *testing.T) {
	public := "PUBLIC:" + "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"
	key, private, err := zmqutil.ParseKey("  " + public + "\n")
	assert.Nil(t, err, "public key")
	assert.False(t, private, "public key reported as private")
	assert.Equal(t, 32, len(key), "wrong key length")
	assert.Equal(t, byte(0x01), key[0], "wrong first byte")

	_, private, err = zmqutil.ParseKey("PRIVATE:" + "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")
	assert.Nil(t, err, "private key")
	assert.True(t, private, "private key reported as public")

	_, _, err = zmqutil.ParseKey("PUBLIC:0102")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short public key")

	_, _, err = zmqutil.ParseKey("PRIVATE:0102")
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "short private key")

	_, _, err = zmqutil.ParseKey("SECRET:0102")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged key")
}

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "publish.public")
	privateFile := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err, "make key pair")

	publicKey, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(publicKey), "wrong public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(privateKey), "wrong private length")

	_, err = zmqutil.ReadPublicKeyFile(privateFile)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private read as public")

	_, err = zmqutil.ReadPrivateKeyFile(publicFile)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public read as private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.KeyFileExists, err, "overwrote existing keys")
}
