// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/urfave/cli"

	"github.com/artledger/galleryd/identity"
)

// Client - to hold the RPC connection stream
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// NewClient - create an RPC connection to a galleryd
//
// the node uses a self-signed certificate so verification is skipped
func NewClient(connect string) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:   conn,
		client: jsonrpc.NewClient(conn),
	}
	return r, nil
}

// Call - perform one RPC
func (c *Client) Call(method string, arguments interface{}, reply interface{}) error {
	return c.client.Call(method, arguments, reply)
}

// Close - shutdown the galleryd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// connect to the node from a command context
func dial(c *cli.Context) (*Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)
	client, err := NewClient(m.connect)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

// the caller identity from the global flag
func callerIdentity(m *metadata) (identity.Identity, error) {
	return identity.FromBase58(m.caller)
}
