// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "client for the ledgerd transfer-record service"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " ledgerd RPC `HOST:PORT`",
			EnvVar: "LEDGER_CLI_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "init",
			Usage:     "write the seed transfer records",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runInit,
		},
		{
			Name:      "create",
			Usage:     "store a transfer record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sending party `FROM`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving party `TO`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*transfer `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "time, s",
					Value: "",
					Usage: " transfer time `SECONDS` since epoch [now]",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "from",
			Usage:     "query the record stored for a sending party",
			ArgsUsage: "FROM",
			Flags:     []cli.Flag{},
			Action:    runQueryByFrom,
		},
		{
			Name:      "to",
			Usage:     "query by party using the server key policy (indexed: received, shared: sent)",
			ArgsUsage: "TO",
			Flags:     []cli.Flag{},
			Action:    runQueryByTo,
		},
		{
			Name:      "invoke",
			Usage:     "run a ledger operation by name",
			ArgsUsage: "FUNCTION [ARGUMENTS...]",
			Flags:     []cli.Flag{},
			Action:    runInvoke,
		},
		{
			Name:      "info",
			Usage:     "display ledgerd status",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display ledger-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
