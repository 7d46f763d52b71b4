// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/messagebus"
	"github.com/bitmark-inc/ledgerd/transferrecord"
	"github.com/bitmark-inc/logger"
)

// Observer - queue successful ledger writes for broadcasting
type Observer struct {
	log   *logger.L
	queue *messagebus.Queue
}

// NewObserver - create an observer feeding the given queue
func NewObserver(log *logger.L, queue *messagebus.Queue) *Observer {
	return &Observer{
		log:   log,
		queue: queue,
	}
}

// Begin - nothing to do until the outcome is known
func (o *Observer) Begin(operation string, arguments []string) {
}

// End - queue the records written by a successful operation
func (o *Observer) End(operation string, arguments []string, err error) {
	if nil != err {
		return
	}

	switch operation {
	case ledger.InitLedgerOperation:
		for _, r := range ledger.SeedRecords() {
			o.send(operation, r)
		}

	case ledger.CreateTransferRecordOperation:
		if 4 != len(arguments) {
			return
		}
		o.send(operation, transferrecord.New(arguments[0], arguments[1], arguments[2], arguments[3]))

	default:
		// queries change nothing
	}
}

func (o *Observer) send(operation string, r *transferrecord.TransferRecord) {
	if !o.queue.Send(operation, []byte(r.String())) {
		o.log.Warnf("queue full, dropped: %s  record: %s", operation, r)
	}
}
