// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transferrecord_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transferrecord"
)

// test the packing/unpacking of a transfer record
func TestPackTransfer(t *testing.T) {

	r := transferrecord.New("李四", "赵五", "10", "1548737871")

	expected := append([]byte{0x01}, []byte(`{"docType":"ledger","from_pos":"李四","to_pos":"赵五","amount":"10","transfer_time":"1548737871"}`)...)

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %q  expected: %q", packed, expected)
	}

	if transferrecord.LedgerTransferTag != packed.Type() {
		t.Errorf("record type: %d  expected: %d", packed.Type(), transferrecord.LedgerTransferTag)
	}

	unpacked, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	if !reflect.DeepEqual(r, unpacked) {
		t.Errorf("different, original: %#v  recovered: %#v", r, unpacked)
	}
}

// pack must be deterministic
func TestPackIsDeterministic(t *testing.T) {
	r := transferrecord.New("a", "b", "1.000000000000000001", "0")

	p1, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	p2, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(p1, p2) {
		t.Errorf("pack differs: %q  and: %q", p1, p2)
	}
}

func TestRoundTrip(t *testing.T) {
	records := []*transferrecord.TransferRecord{
		transferrecord.New("", "", "", ""),
		transferrecord.New("李四", "赵五", "10", "1548737871"),
		transferrecord.New("赵五", "李四", "30", "1548757871"),
		transferrecord.New("a\"b", "<c&d>", "123456789012345678901234567890.000001", "-1"),
		transferrecord.New("tab\there", "new\nline", "0x10", "not a time"),
		transferrecord.New("\u00e9\U0001f600", "\u2028\u2029", "\x7f", "\ufffd"),
	}

	for i, r := range records {
		packed, err := r.Pack()
		if nil != err {
			t.Fatalf("%d: pack error: %s", i, err)
		}
		unpacked, err := packed.Unpack()
		if nil != err {
			t.Fatalf("%d: unpack error: %s", i, err)
		}
		if !reflect.DeepEqual(r, unpacked) {
			t.Errorf("%d: original: %#v  recovered: %#v", i, r, unpacked)
		}
	}
}

func TestPackWrongDocType(t *testing.T) {
	r := transferrecord.New("a", "b", "1", "2")
	r.DocType = "car"

	_, err := r.Pack()
	if fault.WrongDocType != err {
		t.Errorf("error: %v  expected: %v", err, fault.WrongDocType)
	}
}

// bytes that JSON would silently replace are refused
func TestPackInvalidUTF8(t *testing.T) {
	items := []struct {
		record *transferrecord.TransferRecord
		field  string
	}{
		{transferrecord.New("\xff\xfeparty", "b", "1", "2"), "from_pos"},
		{transferrecord.New("a", "party\xc3", "1", "2"), "to_pos"},
		{transferrecord.New("a", "b", "\x80", "2"), "amount"},
		{transferrecord.New("a", "b", "1", "\xed\xa0\x80"), "transfer_time"},
	}

	for i, item := range items {
		packed, err := item.record.Pack()
		if nil != packed {
			t.Errorf("%d: unexpected packed record: %q", i, packed)
		}
		if fault.FieldIsNotUTF8(item.field) != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, fault.FieldIsNotUTF8(item.field))
		}
		if !fault.IsErrRecord(err) {
			t.Errorf("%d: error: %v is not a record error", i, err)
		}
	}
}

func TestString(t *testing.T) {
	r := transferrecord.New("李四", "赵五", "10", "1548737871")
	expected := `{"docType":"ledger","from_pos":"李四","to_pos":"赵五","amount":"10","transfer_time":"1548737871"}`

	if expected != r.String() {
		t.Errorf("string: %s  expected: %s", r, expected)
	}
}

// records written with the "time" field still decode
func TestUnpackLegacyTime(t *testing.T) {
	packed := transferrecord.Packed(append([]byte{0x01}, []byte(`{"from_pos":"李四","to_pos":"赵五","amount":"10","time":"1548737871","docType":"ledger"}`)...))

	r, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	expected := transferrecord.New("李四", "赵五", "10", "1548737871")
	if !reflect.DeepEqual(expected, r) {
		t.Errorf("record: %#v  expected: %#v", r, expected)
	}
}

// unknown fields are ignored so newer writers do not break this reader
func TestUnpackExtraField(t *testing.T) {
	packed := transferrecord.Packed(append([]byte{0x01}, []byte(`{"docType":"ledger","from_pos":"a","to_pos":"b","amount":"1","transfer_time":"2","memo":"x"}`)...))

	r, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if "a" != r.FromPos || "2" != r.TransferTime {
		t.Errorf("unexpected record: %#v", r)
	}
}

func TestUnpackInvalid(t *testing.T) {
	body := func(s string) transferrecord.Packed {
		return transferrecord.Packed(append([]byte{0x01}, []byte(s)...))
	}

	items := []struct {
		packed   transferrecord.Packed
		expected error
	}{
		{transferrecord.Packed{}, fault.RecordIsEmpty},
		{transferrecord.Packed{0x81}, fault.RecordIsTruncated},
		{transferrecord.Packed{0x00, '{', '}'}, fault.RecordTypeIsUnknown},
		{transferrecord.Packed{0x02, '{', '}'}, fault.RecordTypeIsUnknown},
		{transferrecord.Packed{0x01}, fault.RecordIsNotJSON},
		{body(`{"docType":"ledger"`), fault.RecordIsNotJSON},
		{body(`[]`), fault.RecordIsNotJSON},
		{body(`{"docType":"ledger","from_pos":1,"to_pos":"b","amount":"1","transfer_time":"2"}`), fault.RecordIsNotJSON},
		{body(`{"from_pos":"a","to_pos":"b","amount":"1","transfer_time":"2"}`), fault.MissingField("docType")},
		{body(`{"docType":"ledger","to_pos":"b","amount":"1","transfer_time":"2"}`), fault.MissingField("from_pos")},
		{body(`{"docType":"ledger","from_pos":"a","amount":"1","transfer_time":"2"}`), fault.MissingField("to_pos")},
		{body(`{"docType":"ledger","from_pos":"a","to_pos":"b","transfer_time":"2"}`), fault.MissingField("amount")},
		{body(`{"docType":"ledger","from_pos":"a","to_pos":"b","amount":"1"}`), fault.MissingField("transfer_time")},
		{body(`{"docType":"ledger","from_pos":null,"to_pos":"b","amount":"1","transfer_time":"2"}`), fault.MissingField("from_pos")},
		{body(`{"docType":"car","from_pos":"a","to_pos":"b","amount":"1","transfer_time":"2"}`), fault.WrongDocType},
	}

	for i, item := range items {
		r, err := item.packed.Unpack()
		if nil != r {
			t.Errorf("%d: unexpected record: %#v", i, r)
		}
		if item.expected != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, item.expected)
		}
		if !fault.IsErrRecord(err) {
			t.Errorf("%d: error: %v is not a record error", i, err)
		}
	}
}

func TestLargeTag(t *testing.T) {
	// tag 300 = 0xac 0x02
	packed := transferrecord.Packed{0xac, 0x02, '{', '}'}
	if transferrecord.TagType(300) != packed.Type() {
		t.Errorf("type: %d  expected: 300", packed.Type())
	}
	truncated := transferrecord.Packed{0x80}
	if transferrecord.NullTag != truncated.Type() {
		t.Errorf("truncated tag did not give null tag")
	}
}
