// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/rpc"
)

func runWhitelist(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	creator, err := identity.FromBase58(c.String("creator"))
	if nil != err {
		return err
	}

	var reply rpc.WhitelistReply
	err = client.Call("Admin.Whitelist", rpc.WhitelistArguments{
		Creator: creator,
		Caller:  caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runPercentages(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply rpc.PercentagesReply
	err = client.Call("Admin.Percentages", rpc.PercentagesArguments{}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSetPercentage(c *cli.Context) error {
	client, m, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	method := ""
	switch c.String("which") {
	case "maintainer":
		method = "Admin.SetMaintainerPercentage"
	case "creator":
		method = "Admin.SetCreatorPercentage"
	default:
		return fmt.Errorf("which: %q is not maintainer or creator", c.String("which"))
	}

	var reply rpc.PercentagesReply
	err = client.Call(method, rpc.SetPercentageArguments{
		Percentage: c.Uint64("value"),
		Caller:     caller,
	}, &reply)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
