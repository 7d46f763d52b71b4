// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - longest possible Varint64 encoding
const Varint64MaximumBytes = 9

// ToVarint64 - encode an unsigned value as a Varint64
//
// seven bits per byte, least significant group first, the high bit
// marks a following byte; a ninth byte carries the top eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)

	for i := 0; i < Varint64MaximumBytes-1; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// also returns the number of bytes consumed
// returns 0, 0 if the buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer); count += 1 {
		b := uint64(buffer[count])
		if Varint64MaximumBytes-1 == count {
			return value | b<<shift, count + 1
		}
		value |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return value, count + 1
		}
		shift += 7
	}
	return 0, 0
}
