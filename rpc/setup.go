// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/counter"
	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/ledger"
	"github.com/artledger/galleryd/market"
	"github.com/artledger/galleryd/registry"
)

// RPCConfiguration - configuration file data for JSON RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// HTTPSConfiguration - configuration file data for the HTTPS bridge
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// Handles - the state the services operate on
type Handles struct {
	Registry *registry.Registry
	Market   *market.Market
	Ledger   *ledger.Pool
}

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listeners []net.Listener

	// set once during initialise
	initialised bool
}

var globalData rpcData

// open connections
var connectionCount counter.Counter

// Initialise - start up the rpc listeners
func Initialise(rpcConfiguration *RPCConfiguration, httpsConfiguration *HTTPSConfiguration, version string, handles Handles) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if rpcConfiguration.MaximumConnections < 1 {
		log.Errorf("invalid client_rpc maximum connection limit: %d", rpcConfiguration.MaximumConnections)
		return fault.ErrMissingParameters
	}
	if 0 == len(rpcConfiguration.Listen) {
		log.Error("missing client_rpc listen")
		return fault.ErrMissingParameters
	}

	tlsConfiguration, fin, err := getCertificate(log, "client_rpc", rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("client_rpc: SHA3-256 fingerprint: %x", fin)

	server := createServer(log, version, handles)

	for _, listen := range rpcConfiguration.Listen {
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + ":" + strings.Split(listen, ":")[1]
		}
		log.Infof("starting RPC server: %s", listen)

		listener, err := tls.Listen("tcp", listen, tlsConfiguration)
		if nil != err {
			log.Errorf("rpc server listen error: %s", err)
			return err
		}
		globalData.listeners = append(globalData.listeners, listener)

		go doServeRPC(listener, server, rpcConfiguration.MaximumConnections, log)
	}

	err = initialiseHTTPS(httpsConfiguration, server, version)
	if nil != err {
		return err
	}

	globalData.initialised = true

	return nil
}

// Finalise - stop the rpc listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, listener := range globalData.listeners {
		_ = listener.Close()
	}
	globalData.listeners = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// serve one listener, limiting concurrent connections
func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Errorf("rpc server terminated: accept error: %s", err)
			break
		}
		if connectionCount.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				connectionCount.Decrement()
			}()
		} else {
			connectionCount.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
	log.Error("RPC accept terminated")
}
