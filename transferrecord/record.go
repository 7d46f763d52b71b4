// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transferrecord

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

// DocType - discriminator carried by every record written here
const DocType = "ledger"

// TagType - type code for packed records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	LedgerTransferTag = TagType(iota) // JSON encoded transfer record

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// TransferRecord - a single directional transfer
type TransferRecord struct {
	DocType      string `json:"docType"`       // always "ledger"
	FromPos      string `json:"from_pos"`      // utf-8
	ToPos        string `json:"to_pos"`        // utf-8
	Amount       string `json:"amount"`        // decimal number as string
	TransferTime string `json:"transfer_time"` // epoch seconds as string
}

// New - create a transfer record with the document type set
func New(fromPos string, toPos string, amount string, transferTime string) *TransferRecord {
	return &TransferRecord{
		DocType:      DocType,
		FromPos:      fromPos,
		ToPos:        toPos,
		Amount:       amount,
		TransferTime: transferTime,
	}
}

// Pack - Varint64(tag) followed by the JSON body
//
// every text field must be valid UTF-8 since JSON cannot carry
// arbitrary bytes without altering them
func (record *TransferRecord) Pack() (Packed, error) {
	if DocType != record.DocType {
		return nil, fault.WrongDocType
	}

	fields := []struct {
		name  string
		value string
	}{
		{"from_pos", record.FromPos},
		{"to_pos", record.ToPos},
		{"amount", record.Amount},
		{"transfer_time", record.TransferTime},
	}
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return nil, fault.FieldIsNotUTF8(f.name)
		}
	}

	body, err := json.Marshal(record)
	if nil != err {
		return nil, err
	}

	packed := util.ToVarint64(uint64(LedgerTransferTag))
	return append(packed, body...), nil
}

// String - canonical text form returned to query callers
func (record *TransferRecord) String() string {
	body, err := json.Marshal(record)
	if nil != err {
		return ""
	}
	return string(body)
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	tag, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(tag)
}

// all fields are pointers so that absence can be detected
type body struct {
	DocType      *string `json:"docType"`
	FromPos      *string `json:"from_pos"`
	ToPos        *string `json:"to_pos"`
	Amount       *string `json:"amount"`
	TransferTime *string `json:"transfer_time"`
	Time         *string `json:"time"`
}

// Unpack - turn a byte slice into a record
func (record Packed) Unpack() (*TransferRecord, error) {
	if 0 == len(record) {
		return nil, fault.RecordIsEmpty
	}

	tag, n := util.FromVarint64(record)
	if 0 == n {
		return nil, fault.RecordIsTruncated
	}

	switch TagType(tag) {
	case LedgerTransferTag:
		return unpackTransfer(record[n:])

	default:
		return nil, fault.RecordTypeIsUnknown
	}
}

func unpackTransfer(data []byte) (*TransferRecord, error) {
	var b body
	if err := json.Unmarshal(data, &b); nil != err {
		return nil, fault.RecordIsNotJSON
	}

	// older records used "time" for the timestamp
	if nil == b.TransferTime {
		b.TransferTime = b.Time
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"docType", b.DocType},
		{"from_pos", b.FromPos},
		{"to_pos", b.ToPos},
		{"amount", b.Amount},
		{"transfer_time", b.TransferTime},
	}
	for _, f := range fields {
		if nil == f.value {
			return nil, fault.MissingField(f.name)
		}
	}

	if DocType != *b.DocType {
		return nil, fault.WrongDocType
	}

	r := &TransferRecord{
		DocType:      *b.DocType,
		FromPos:      *b.FromPos,
		ToPos:        *b.ToPos,
		Amount:       *b.Amount,
		TransferTime: *b.TransferTime,
	}
	return r, nil
}
