// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc/handler"
	"github.com/bitmark-inc/logger"
)

const (
	httpsLogName       = "https_rpc"
	minConnectionCount = 1
	readWriteTimeout   = 10 * time.Second
	keepAlivePeriod    = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	log       *logger.L
	addresses []string
	tlsConfig *tls.Config
	mux       *http.ServeMux
}

// NewHTTPS - prepare the HTTPS listener
//
// an empty listen list disables the server and returns a nil listener
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	addresses, err := canonicalAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", httpsLogName, err)
		return nil, err
	}

	// access control per path
	allow := make(map[string][]*net.IPNet)
	for path, networks := range configuration.Allow {
		set := make([]*net.IPNet, len(networks))
		for i, network := range networks {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(network))
			if nil != err {
				log.Errorf("%s allow: %q  error: %s", httpsLogName, network, err)
				return nil, err
			}
			set[i] = cidr
		}
		allow[path] = set
	}
	hdlr.SetAllow(allow)

	mux := http.NewServeMux()
	mux.HandleFunc("/ledgerd/rpc", hdlr.RPC)
	mux.HandleFunc("/ledgerd/details", hdlr.Details)
	mux.HandleFunc("/", hdlr.Root)

	h := &httpsListener{
		log:       log,
		addresses: addresses,
		tlsConfig: tlsConfig,
		mux:       mux,
	}
	return h, nil
}

// Serve - open every listen address and serve in background
func (h *httpsListener) Serve() error {
	h.tlsConfig.NextProtos = []string{"http/1.1"}

	for _, address := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, address)

		listener, err := net.Listen("tcp", address)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		tlsListener := tls.NewListener(tcpKeepAliveListener{listener.(*net.TCPListener)}, h.tlsConfig)

		go func() {
			err := s.Serve(tlsListener)
			h.log.Errorf("%s terminated: %s", httpsLogName, err)
		}()
	}

	return nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}
