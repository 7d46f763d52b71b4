// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transferrecord"
)

// operation names as seen by callers of Invoke
const (
	InitLedgerOperation                = "initLedger"
	CreateTransferRecordOperation      = "createTransferRecord"
	QueryTransferRecordByFromOperation = "queryTransferRecordByFrom"
	QueryTransferRecordByToOperation   = "queryTransferRecordByTo"
)

// Operations - all operation names in dispatch order
var Operations = []string{
	InitLedgerOperation,
	CreateTransferRecordOperation,
	QueryTransferRecordByFromOperation,
	QueryTransferRecordByToOperation,
}

// WorldState - key/value store underneath the ledger
//
// Get must return nil, nil for an absent key
type WorldState interface {
	Put(key []byte, value []byte) error
	Get(key []byte) ([]byte, error)
}

// Handles - the world state pools used by the ledger
type Handles struct {
	Sender    WorldState
	Recipient WorldState
}

// Ledger - the transfer record operations
type Ledger interface {
	InitLedger() error
	CreateTransferRecord(fromPos string, toPos string, amount string, transferTime string) error
	QueryTransferRecordByFrom(fromPos string) (string, error)
	QueryTransferRecordByTo(toPos string) (string, error)
}

type ledger struct {
	sender    WorldState
	recipient WorldState
	policy    KeyPolicy
	observers []Observer
}

// New - create a ledger over the given world state
func New(handles Handles, policy KeyPolicy, observers ...Observer) (Ledger, error) {
	if nil == handles.Sender {
		return nil, fault.MissingWorldState
	}
	switch policy {
	case Shared:
	case Indexed:
		if nil == handles.Recipient {
			return nil, fault.MissingWorldState
		}
	default:
		return nil, fault.InvalidKeyPolicy
	}

	return &ledger{
		sender:    handles.Sender,
		recipient: handles.Recipient,
		policy:    policy,
		observers: observers,
	}, nil
}

// InitLedger - write the seed records
//
// calling again overwrites the same keys
func (l *ledger) InitLedger() (err error) {
	l.begin(InitLedgerOperation, nil)
	defer func() { l.end(InitLedgerOperation, nil, err) }()

	for _, r := range SeedRecords() {
		err = l.store(r)
		if nil != err {
			return err
		}
	}
	return nil
}

// CreateTransferRecord - store a single record
//
// no validation is performed on the amount or the time
func (l *ledger) CreateTransferRecord(fromPos string, toPos string, amount string, transferTime string) (err error) {
	arguments := []string{fromPos, toPos, amount, transferTime}
	l.begin(CreateTransferRecordOperation, arguments)
	defer func() { l.end(CreateTransferRecordOperation, arguments, err) }()

	return l.store(transferrecord.New(fromPos, toPos, amount, transferTime))
}

// QueryTransferRecordByFrom - fetch the record keyed by the sending party
func (l *ledger) QueryTransferRecordByFrom(fromPos string) (result string, err error) {
	arguments := []string{fromPos}
	l.begin(QueryTransferRecordByFromOperation, arguments)
	defer func() { l.end(QueryTransferRecordByFromOperation, arguments, err) }()

	return query(l.sender, fromPos)
}

// QueryTransferRecordByTo - fetch a record by party key
//
// With the Indexed policy the key is looked up in the recipient pool and
// the result is the latest record received by toPos.  With the Shared
// policy both queries read the sender pool, so the result is the latest
// record sent by toPos and a party that has only received gets a
// not found error.
func (l *ledger) QueryTransferRecordByTo(toPos string) (result string, err error) {
	arguments := []string{toPos}
	l.begin(QueryTransferRecordByToOperation, arguments)
	defer func() { l.end(QueryTransferRecordByToOperation, arguments, err) }()

	pool := l.sender
	if Indexed == l.policy {
		pool = l.recipient
	}
	return query(pool, toPos)
}

func (l *ledger) store(r *transferrecord.TransferRecord) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}

	err = l.sender.Put([]byte(r.FromPos), packed)
	if nil != err {
		return err
	}

	if Indexed == l.policy {
		return l.recipient.Put([]byte(r.ToPos), packed)
	}
	return nil
}

func query(pool WorldState, party string) (string, error) {
	packed, err := pool.Get([]byte(party))
	if nil != err {
		return "", err
	}
	if 0 == len(packed) {
		return "", fault.KeyDoesNotExist(party)
	}

	r, err := transferrecord.Packed(packed).Unpack()
	if nil != err {
		return "", err
	}
	return r.String(), nil
}

func (l *ledger) begin(operation string, arguments []string) {
	for _, o := range l.observers {
		o.Begin(operation, arguments)
	}
}

func (l *ledger) end(operation string, arguments []string, err error) {
	for _, o := range l.observers {
		o.End(operation, arguments, err)
	}
}
