// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/rpc"
)

func runInfo(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply rpc.InfoReply
	err = client.Call("Node.Info", rpc.InfoArguments{}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	account, err := accountOrCaller(c, m)
	if nil != err {
		return err
	}

	var reply rpc.BalanceReply
	err = client.Call("Ledger.Balance", rpc.BalanceArguments{
		Account: account,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runDeposit(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	account, err := accountOrCaller(c, m)
	if nil != err {
		return err
	}

	var reply rpc.DepositReply
	err = client.Call("Ledger.Deposit", rpc.DepositArguments{
		Account: account,
		Amount:  c.Uint64("amount"),
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runGenerateIdentity(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if nil != err {
		return err
	}

	id, err := identity.FromBytes(publicKey)
	if nil != err {
		return err
	}

	type result struct {
		Identity   identity.Identity `json:"identity"`
		PrivateKey string            `json:"privateKey"`
	}
	return printJson(m.w, result{
		Identity:   id,
		PrivateKey: hex.EncodeToString(privateKey),
	})
}

// the account flag, falling back to the calling identity
func accountOrCaller(c *cli.Context, m *metadata) (identity.Identity, error) {
	s := c.String("account")
	if "" == s {
		if "" == m.caller {
			return identity.Zero, fmt.Errorf("account: no account or identity was given")
		}
		s = m.caller
	}
	return identity.FromBase58(s)
}
