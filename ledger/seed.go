// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/ledgerd/transferrecord"
)

// SeedRecords - the records written by InitLedger
//
// a fresh copy is returned on every call
func SeedRecords() []*transferrecord.TransferRecord {
	return []*transferrecord.TransferRecord{
		transferrecord.New("李四", "赵五", "10", "1548737871"),
		transferrecord.New("赵五", "李四", "30", "1548757871"),
	}
}
