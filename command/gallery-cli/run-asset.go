// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/artledger/galleryd/rpc"
)

func runMint(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	var reply rpc.MintReply
	err = client.Call("Asset.Mint", rpc.MintArguments{
		Uri:     c.String("uri"),
		Creator: caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runEditions(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	var reply rpc.MintEditionsReply
	err = client.Call("Asset.MintEditions", rpc.MintEditionsArguments{
		Uri:              c.String("uri"),
		EditionCount:     c.Uint64("count"),
		EditionSalePrice: c.Uint64("price"),
		Creator:          caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runShow(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply rpc.GetReply
	err = client.Call("Asset.Get", rpc.GetArguments{
		AssetId: c.Uint64("asset"),
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runProvenance(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply rpc.ProvenanceReply
	err = client.Call("Asset.Provenance", rpc.ProvenanceArguments{
		AssetId: c.Uint64("asset"),
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
