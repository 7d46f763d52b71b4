// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/messagebus"
	"github.com/bitmark-inc/ledgerd/publish"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	if err := logger.Initialise(logging); nil != err {
		panic("logger setup failed: " + err.Error())
	}
}

func teardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestObserverCreate(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	q := messagebus.NewQueue(10)
	o := publish.NewObserver(logger.New("testing"), q)

	o.Begin(ledger.CreateTransferRecordOperation, []string{"李四", "赵五", "10", "1548737871"})
	o.End(ledger.CreateTransferRecordOperation, []string{"李四", "赵五", "10", "1548737871"}, nil)

	m := <-q.Chan()
	assert.Equal(t, ledger.CreateTransferRecordOperation, m.Command, "wrong command")
	assert.Equal(t, 1, len(m.Parameters), "wrong parameter count")
	assert.Equal(t, `{"docType":"ledger","from_pos":"李四","to_pos":"赵五","amount":"10","transfer_time":"1548737871"}`, string(m.Parameters[0]), "wrong record")
}

func TestObserverInit(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	q := messagebus.NewQueue(10)
	o := publish.NewObserver(logger.New("testing"), q)

	o.End(ledger.InitLedgerOperation, nil, nil)

	for _, r := range ledger.SeedRecords() {
		m := <-q.Chan()
		assert.Equal(t, ledger.InitLedgerOperation, m.Command, "wrong command")
		assert.Equal(t, r.String(), string(m.Parameters[0]), "wrong record")
	}
}

func TestObserverIgnored(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	q := messagebus.NewQueue(10)
	o := publish.NewObserver(logger.New("testing"), q)

	o.End(ledger.CreateTransferRecordOperation, []string{"a", "b", "1", "2"}, errors.New("failed"))
	o.End(ledger.QueryTransferRecordByFromOperation, []string{"a"}, nil)
	o.End(ledger.CreateTransferRecordOperation, []string{"short"}, nil)

	select {
	case m := <-q.Chan():
		t.Errorf("unexpected message: %v", m)
	default:
	}
}

func TestObserverQueueFull(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	q := messagebus.NewQueue(1)
	o := publish.NewObserver(logger.New("testing"), q)

	// second seed record is dropped
	o.End(ledger.InitLedgerOperation, nil, nil)

	m := <-q.Chan()
	assert.Equal(t, ledger.SeedRecords()[0].String(), string(m.Parameters[0]), "wrong record")
}

func TestFinaliseNotInitialised(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	assert.Equal(t, fault.NotInitialised, publish.Finalise(), "wrong error")
}

func TestConfigurationEnabled(t *testing.T) {
	c := publish.Configuration{}
	assert.False(t, c.Enabled(), "empty configuration enabled")

	c.Broadcast = []string{"127.0.0.1:2140"}
	assert.True(t, c.Enabled(), "configuration not enabled")
}
