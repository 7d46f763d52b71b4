// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ConfigurationIsNotATable = InvalidError("configuration did not return a table")
	DatabaseIsNewer          = InvalidError("database version is newer than this program")
	IncompatibleDatabase     = InvalidError("incompatible database version")
	InvalidFunctionName      = InvalidError("invalid ledger function name")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidKeyPolicy         = InvalidError("invalid key policy")
	InvalidPoolPrefix        = InvalidError("invalid pool prefix")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidPrivateKeyFile    = InvalidError("invalid private key file")
	InvalidPublicKeyFile     = InvalidError("invalid public key file")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	KeyFileExists            = ExistsError("key file already exists")
	MissingLedger            = InvalidError("missing ledger")
	MissingParameters        = InvalidError("missing parameters")
	MissingWorldState        = InvalidError("missing world state")
	NotInitialised           = ProcessError("not initialised")
	RateLimiting             = InvalidError("rate limiting")
	RecordIsEmpty            = RecordError("record is empty")
	RecordIsNotJSON          = RecordError("record body is not valid JSON")
	RecordIsTruncated        = RecordError("record is truncated")
	RecordTypeIsUnknown      = RecordError("record type is unknown")
	WrongDocType             = RecordError("wrong document type")
	WrongNumberOfArguments   = InvalidError("incorrect number of arguments")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// KeyDoesNotExist - not found error naming the missing key
func KeyDoesNotExist(key string) error {
	return NotFoundError(fmt.Sprintf("%s does not exist", key))
}

// MissingField - record error naming a field absent from an encoded record
func MissingField(name string) error {
	return RecordError(fmt.Sprintf("record field: %q is missing", name))
}

// FieldIsNotUTF8 - record error naming a text field that cannot be encoded
func FieldIsNotUTF8(name string) error {
	return RecordError(fmt.Sprintf("record field: %q is not valid UTF-8", name))
}

// ExpectedArguments - invalid error for a call with the wrong argument count
func ExpectedArguments(expected int, actual int) error {
	return InvalidError(fmt.Sprintf("%s: expecting %d, received %d", WrongNumberOfArguments, expected, actual))
}
