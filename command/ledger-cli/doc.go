// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for ledgerd
//
// e.g. store a transfer and read it back:
//      (add -v flag to see JSON requests and responses)
//
//   ledger-cli -c 127.0.0.1:2130 create -f 李四 -t 赵五 -a 10
//   ledger-cli from 李四
//   ledger-cli invoke queryTransferRecordByTo 赵五
package main
