// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - ledger error values grouped by class
//
// Each error belongs to one class, so callers test the class with
// IsErrX instead of matching message text:
//
//   Exists    - something to be created is already present
//   Invalid   - bad arguments, configuration or policy
//   NotFound  - no record stored under a party key
//   Process   - a subsystem used before Initialise or after Finalise
//   Record    - a transfer record that cannot be packed or unpacked
//
// Fixed errors are package variables; KeyDoesNotExist, MissingField
// and FieldIsNotUTF8 build errors that name the key or field involved.
package fault
