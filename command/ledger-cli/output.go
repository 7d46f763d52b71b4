// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
)

// the query direction shown in output
const (
	queryFrom = "from"
	queryTo   = "to"
)

// a query result as printed; record text that is not JSON is
// shown as a string instead of being dropped
type queryOutput struct {
	Query  string          `json:"_query"`
	Key    string          `json:"key"`
	Record json.RawMessage `json:"record,omitempty"`
	Text   string          `json:"text,omitempty"`
}

// party names are printed as given, so no HTML escaping
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}

func printRecord(handle io.Writer, query string, key string, record string) error {
	output := queryOutput{
		Query: query,
		Key:   key,
	}
	if json.Valid([]byte(record)) {
		output.Record = json.RawMessage(record)
	} else {
		output.Text = record
	}
	return printJson(handle, output)
}
