// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transfer_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger/mocks"
	"github.com/bitmark-inc/ledgerd/rpc/fixtures"
	"github.com/bitmark-inc/ledgerd/rpc/transfer"
	"github.com/bitmark-inc/logger"
)

const (
	record = `{"docType":"ledger","from_pos":"李四","to_pos":"赵五","amount":"10","transfer_time":"1548737871"}`
)

func TestLedgerInit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().InitLedger().Return(nil).Times(1)

	l := transfer.New(logger.New(fixtures.LogCategory), m)

	var reply transfer.InitReply
	err := l.Init(&transfer.InitArguments{}, &reply)
	assert.Nil(t, err, "wrong Init")
	assert.Equal(t, 2, reply.Records, "wrong record count")
}

func TestLedgerInitWhenStoreError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().InitLedger().Return(fault.NotInitialised).Times(1)

	l := transfer.New(logger.New(fixtures.LogCategory), m)

	var reply transfer.InitReply
	err := l.Init(&transfer.InitArguments{}, &reply)
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}

func TestLedgerCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().CreateTransferRecord("李四", "赵五", "10", "1548737871").Return(nil).Times(1)

	l := transfer.New(logger.New(fixtures.LogCategory), m)

	arg := transfer.CreateArguments{
		FromPos:      "李四",
		ToPos:        "赵五",
		Amount:       "10",
		TransferTime: "1548737871",
	}

	var reply transfer.CreateReply
	err := l.Create(&arg, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, "李四", reply.Key, "wrong key")
}

func TestLedgerQueryByFrom(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().QueryTransferRecordByFrom("李四").Return(record, nil).Times(1)

	l := transfer.New(logger.New(fixtures.LogCategory), m)

	var reply transfer.QueryReply
	err := l.QueryByFrom(&transfer.QueryArguments{Key: "李四"}, &reply)
	assert.Nil(t, err, "wrong QueryByFrom")
	assert.Equal(t, record, reply.Record, "wrong record")
}

func TestLedgerQueryByToWhenNotFound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().QueryTransferRecordByTo("unknown_party").Return("", fault.KeyDoesNotExist("unknown_party")).Times(1)

	l := transfer.New(logger.New(fixtures.LogCategory), m)

	var reply transfer.QueryReply
	err := l.QueryByTo(&transfer.QueryArguments{Key: "unknown_party"}, &reply)
	assert.True(t, fault.IsErrNotFound(err), "wrong error class")
	assert.Contains(t, err.Error(), "unknown_party", "missing key in message")
	assert.Equal(t, "", reply.Record, "unexpected record")
}

func TestLedgerInvoke(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	m.EXPECT().QueryTransferRecordByTo("赵五").Return(record, nil).Times(1)

	l := transfer.New(logger.New(fixtures.LogCategory), m)

	arg := transfer.InvokeArguments{
		Function:  "queryTransferRecordByTo",
		Arguments: []string{"赵五"},
	}

	var reply transfer.InvokeReply
	err := l.Invoke(&arg, &reply)
	assert.Nil(t, err, "wrong Invoke")
	assert.Equal(t, record, reply.Result, "wrong result")
}

func TestLedgerInvokeWhenUnknownFunction(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)

	l := transfer.New(logger.New(fixtures.LogCategory), m)

	arg := transfer.InvokeArguments{
		Function: "deleteTransferRecord",
	}

	var reply transfer.InvokeReply
	err := l.Invoke(&arg, &reply)
	assert.Equal(t, fault.InvalidFunctionName, err, "wrong error")
}

func TestLedgerWhenMissingLedger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l := transfer.New(logger.New(fixtures.LogCategory), nil)

	err := l.Init(&transfer.InitArguments{}, &transfer.InitReply{})
	assert.Equal(t, fault.MissingLedger, err, "wrong Init error")

	err = l.Create(&transfer.CreateArguments{}, &transfer.CreateReply{})
	assert.Equal(t, fault.MissingLedger, err, "wrong Create error")

	err = l.QueryByFrom(&transfer.QueryArguments{}, &transfer.QueryReply{})
	assert.Equal(t, fault.MissingLedger, err, "wrong QueryByFrom error")

	err = l.Invoke(&transfer.InvokeArguments{Function: "initLedger"}, &transfer.InvokeReply{})
	assert.Equal(t, fault.MissingLedger, err, "wrong Invoke error")
}
