// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/ledgerd/fault"
)

// Invoke - run an operation by name with positional arguments
//
// write operations return an empty string
func Invoke(l Ledger, function string, arguments []string) (string, error) {
	if nil == l {
		return "", fault.MissingLedger
	}

	switch function {

	case InitLedgerOperation:
		if err := checkArguments(arguments, 0); nil != err {
			return "", err
		}
		return "", l.InitLedger()

	case CreateTransferRecordOperation:
		if err := checkArguments(arguments, 4); nil != err {
			return "", err
		}
		return "", l.CreateTransferRecord(arguments[0], arguments[1], arguments[2], arguments[3])

	case QueryTransferRecordByFromOperation:
		if err := checkArguments(arguments, 1); nil != err {
			return "", err
		}
		return l.QueryTransferRecordByFrom(arguments[0])

	case QueryTransferRecordByToOperation:
		if err := checkArguments(arguments, 1); nil != err {
			return "", err
		}
		return l.QueryTransferRecordByTo(arguments[0])

	default:
		return "", fault.InvalidFunctionName
	}
}

func checkArguments(arguments []string, expected int) error {
	if expected != len(arguments) {
		return fault.ExpectedArguments(expected, len(arguments))
	}
	return nil
}
