// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/command/ledger-cli/rpccalls"
)

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.InitLedger()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := checkParty(c.String("from"), ErrRequiredFrom)
	if nil != err {
		return err
	}

	to, err := checkParty(c.String("to"), ErrRequiredTo)
	if nil != err {
		return err
	}

	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	transferTime, err := checkTransferTime(c.String("time"), time.Now())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %s\n", amount)
		fmt.Fprintf(m.e, "time: %s\n", transferTime)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateTransferRecord(&rpccalls.TransferData{
		FromPos:      from,
		ToPos:        to,
		Amount:       amount,
		TransferTime: transferTime,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runQueryByFrom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkParty(c.Args().First(), ErrRequiredKey)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.QueryByFrom(key)
	if nil != err {
		return err
	}

	return printRecord(m.w, queryFrom, key, response.Record)
}

func runQueryByTo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkParty(c.Args().First(), ErrRequiredKey)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.QueryByTo(key)
	if nil != err {
		return err
	}

	return printRecord(m.w, queryTo, key, response.Record)
}

func runInvoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrRequiredFunction
	}
	function := c.Args().First()
	arguments := []string(c.Args().Tail())

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Invoke(function, arguments)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Connection string      `json:"_connection"`
		Info       interface{} `json:"info"`
	}{
		Connection: m.connect,
		Info:       response,
	})
}
