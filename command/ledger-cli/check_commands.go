// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/ledgerd/fault"
)

var (
	ErrRequiredAmount    = fault.InvalidError("amount is required")
	ErrRequiredConnect   = fault.InvalidError("connect is required")
	ErrRequiredFrom      = fault.InvalidError("from is required")
	ErrRequiredFunction  = fault.InvalidError("function name is required")
	ErrRequiredKey       = fault.InvalidError("party key is required")
	ErrRequiredTo        = fault.InvalidError("to is required")
	ErrInvalidConnect    = fault.InvalidError("connect must be HOST:PORT")
	ErrInvalidTimeFormat = fault.InvalidError("time must be seconds since epoch")
)

// connection must have a port
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	_, port, err := net.SplitHostPort(connect)
	if nil != err || "" == port {
		return "", ErrInvalidConnect
	}

	return connect, nil
}

// party names are not validated beyond being present
func checkParty(party string, missing error) (string, error) {
	if "" == party {
		return "", missing
	}
	return party, nil
}

// amount is opaque text
func checkAmount(amount string) (string, error) {
	if "" == amount {
		return "", ErrRequiredAmount
	}
	return amount, nil
}

// blank time means now, otherwise must be whole seconds
func checkTransferTime(transferTime string, now time.Time) (string, error) {
	if "" == transferTime {
		return strconv.FormatInt(now.Unix(), 10), nil
	}

	if _, err := strconv.ParseInt(transferTime, 10, 64); nil != err {
		return "", ErrInvalidTimeFormat
	}
	return transferTime, nil
}
