// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transfer

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Ledger
// ------

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Ledger - type for RPC
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the ledger RPC handler
func New(log *logger.L, l ledger.Ledger) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: ratelimit.New(rateLimitLedger, rateBurstLedger),
		Ledger:  l,
	}
}

// Write the seed records
// ----------------------

// InitArguments - empty arguments for init
type InitArguments struct{}

// InitReply - result of init
type InitReply struct {
	Records int `json:"records"`
}

// Init - write the seed records
func (l *Ledger) Init(_ *InitArguments, reply *InitReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == l.Ledger {
		return fault.MissingLedger
	}

	l.Log.Info("Ledger.Init")

	err := l.Ledger.InitLedger()
	if nil != err {
		return err
	}

	reply.Records = len(ledger.SeedRecords())
	return nil
}

// Store one transfer
// ------------------

// CreateArguments - a single transfer record
type CreateArguments struct {
	FromPos      string `json:"from_pos"`
	ToPos        string `json:"to_pos"`
	Amount       string `json:"amount"`
	TransferTime string `json:"transfer_time"`
}

// CreateReply - result of create
type CreateReply struct {
	Key string `json:"key"`
}

// Create - store a transfer record
func (l *Ledger) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == l.Ledger {
		return fault.MissingLedger
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	l.Log.Infof("Ledger.Create: %+v", arguments)

	err := l.Ledger.CreateTransferRecord(arguments.FromPos, arguments.ToPos, arguments.Amount, arguments.TransferTime)
	if nil != err {
		return err
	}

	reply.Key = arguments.FromPos
	return nil
}

// Query by party
// --------------

// QueryArguments - the party to look up
type QueryArguments struct {
	Key string `json:"key"`
}

// QueryReply - the stored record as JSON text
type QueryReply struct {
	Record string `json:"record"`
}

// QueryByFrom - fetch the record for a sending party
func (l *Ledger) QueryByFrom(arguments *QueryArguments, reply *QueryReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == l.Ledger {
		return fault.MissingLedger
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	l.Log.Debugf("Ledger.QueryByFrom: %q", arguments.Key)

	record, err := l.Ledger.QueryTransferRecordByFrom(arguments.Key)
	if nil != err {
		return err
	}

	reply.Record = record
	return nil
}

// QueryByTo - fetch a record through the key policy's to-query
func (l *Ledger) QueryByTo(arguments *QueryArguments, reply *QueryReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == l.Ledger {
		return fault.MissingLedger
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	l.Log.Debugf("Ledger.QueryByTo: %q", arguments.Key)

	record, err := l.Ledger.QueryTransferRecordByTo(arguments.Key)
	if nil != err {
		return err
	}

	reply.Record = record
	return nil
}

// Run by name
// -----------

// InvokeArguments - operation name and positional arguments
type InvokeArguments struct {
	Function  string   `json:"function"`
	Arguments []string `json:"arguments"`
}

// InvokeReply - operation result, empty for writes
type InvokeReply struct {
	Result string `json:"result"`
}

// Invoke - run a ledger operation by name
func (l *Ledger) Invoke(arguments *InvokeArguments, reply *InvokeReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	l.Log.Infof("Ledger.Invoke: %s  arguments: %q", arguments.Function, arguments.Arguments)

	result, err := ledger.Invoke(l.Ledger, arguments.Function, arguments.Arguments)
	if nil != err {
		return err
	}

	reply.Result = result
	return nil
}
