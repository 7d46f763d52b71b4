// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// trace directions
const (
	traceRequest = "->"
	traceReply   = "<-"
)

// write a request or reply to the verbose handle
func (client *Client) trace(direction string, method string, message interface{}) {
	if !client.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s %s: cannot encode: %s\n", direction, method, err)
		return
	}
	fmt.Fprintf(client.handle, "%s %s\n%s\n", direction, method, b)
}

// call a method with tracing of both directions
func (client *Client) call(method string, args interface{}, reply interface{}) error {
	client.trace(traceRequest, method, args)

	if err := client.client.Call(method, args, reply); nil != err {
		if client.verbose {
			fmt.Fprintf(client.handle, "%s %s: error: %s\n", traceReply, method, err)
		}
		return err
	}

	client.trace(traceReply, method, reply)
	return nil
}
