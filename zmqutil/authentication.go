// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
)

// ZAP handler state, shared by every curve socket in the process
var authentication struct {
	sync.Mutex
	running bool
	domains map[string]struct{}
}

// StartAuthentication - run the ZAP handler and accept any curve client
// on each of the domains
//
// may be called more than once; the handler is started on first use
// and domains accumulate until StopAuthentication
func StartAuthentication(log *logger.L, domains ...string) error {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.running {
		zmq.AuthSetVerbose(false)
		if err := zmq.AuthStart(); nil != err {
			return err
		}
		authentication.running = true
		authentication.domains = make(map[string]struct{})
		log.Info("zap handler started")
	}

	for _, domain := range domains {
		if _, ok := authentication.domains[domain]; ok {
			continue
		}
		zmq.AuthCurveAdd(domain, zmq.CURVE_ALLOW_ANY)
		authentication.domains[domain] = struct{}{}
		log.Infof("zap domain: %q  accepts any curve client", domain)
	}
	return nil
}

// StopAuthentication - stop the ZAP handler so a later start begins afresh
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.running {
		return
	}
	for domain := range authentication.domains {
		zmq.AuthCurveRemoveAll(domain)
	}
	zmq.AuthStop()
	authentication.running = false
	authentication.domains = nil
}
