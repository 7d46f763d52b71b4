// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// KeyPolicy - how records are keyed in the world state
type KeyPolicy int

// the key policies
const (
	Shared  KeyPolicy = iota
	Indexed KeyPolicy = iota
)

// PolicyFromString - convert a configuration string to a policy
//
// the empty string selects the default
func PolicyFromString(s string) (KeyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shared":
		return Shared, nil
	case "indexed":
		return Indexed, nil
	default:
		return Shared, fault.InvalidKeyPolicy
	}
}

// String - name of the policy
func (p KeyPolicy) String() string {
	switch p {
	case Shared:
		return "shared"
	case Indexed:
		return "indexed"
	default:
		return "*unknown*"
	}
}
