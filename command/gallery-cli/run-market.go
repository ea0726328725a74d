// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/rpc"
)

func runBid(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	var reply rpc.BidReply
	err = client.Call("Market.Bid", rpc.BidArguments{
		AssetId: c.Uint64("asset"),
		Amount:  c.Uint64("amount"),
		Caller:  caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runCancelBid(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	var reply rpc.CancelBidReply
	err = client.Call("Market.CancelBid", rpc.CancelBidArguments{
		AssetId: c.Uint64("asset"),
		Caller:  caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAcceptBid(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	var reply rpc.AcceptBidReply
	err = client.Call("Market.AcceptBid", rpc.AcceptBidArguments{
		AssetId: c.Uint64("asset"),
		Caller:  caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSetPrice(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	var reply rpc.SetPriceReply
	err = client.Call("Market.SetPrice", rpc.SetPriceArguments{
		AssetId: c.Uint64("asset"),
		Price:   c.Uint64("price"),
		Caller:  caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runBuy(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	var reply rpc.BuyReply
	err = client.Call("Market.Buy", rpc.BuyArguments{
		AssetId: c.Uint64("asset"),
		Payment: c.Uint64("payment"),
		Caller:  caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runApprove(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	delegate, err := identity.FromBase58(c.String("delegate"))
	if nil != err {
		return err
	}

	var reply rpc.ApproveReply
	err = client.Call("Market.Approve", rpc.ApproveArguments{
		AssetId:  c.Uint64("asset"),
		Delegate: delegate,
		Caller:   caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runTransfer(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	newOwner, err := identity.FromBase58(c.String("owner"))
	if nil != err {
		return err
	}

	var reply rpc.TransferReply
	err = client.Call("Market.Transfer", rpc.TransferArguments{
		AssetId:  c.Uint64("asset"),
		NewOwner: newOwner,
		Caller:   caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
