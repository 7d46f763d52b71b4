// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc/transfer"
)

// TransferData - fields of a new transfer record
type TransferData struct {
	FromPos      string
	ToPos        string
	Amount       string
	TransferTime string
}

// InitLedger - write the seed records
func (client *Client) InitLedger() (*transfer.InitReply, error) {
	var reply transfer.InitReply
	if err := client.call("Ledger.Init", &transfer.InitArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateTransferRecord - store one transfer record
func (client *Client) CreateTransferRecord(data *TransferData) (*transfer.CreateReply, error) {

	if nil == data {
		return nil, fault.MissingParameters
	}

	args := transfer.CreateArguments{
		FromPos:      data.FromPos,
		ToPos:        data.ToPos,
		Amount:       data.Amount,
		TransferTime: data.TransferTime,
	}

	var reply transfer.CreateReply
	if err := client.call("Ledger.Create", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// QueryByFrom - fetch the record stored under a sending party
func (client *Client) QueryByFrom(fromPos string) (*transfer.QueryReply, error) {
	return client.query("Ledger.QueryByFrom", fromPos)
}

// QueryByTo - fetch a record through the server key policy's to-query
func (client *Client) QueryByTo(toPos string) (*transfer.QueryReply, error) {
	return client.query("Ledger.QueryByTo", toPos)
}

func (client *Client) query(method string, key string) (*transfer.QueryReply, error) {
	var reply transfer.QueryReply
	if err := client.call(method, &transfer.QueryArguments{Key: key}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Invoke - run a ledger operation by name
func (client *Client) Invoke(function string, arguments []string) (*transfer.InvokeReply, error) {

	args := transfer.InvokeArguments{
		Function:  function,
		Arguments: arguments,
	}

	var reply transfer.InvokeReply
	if err := client.call("Ledger.Invoke", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
