// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"
)

// the data passed to every command
type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "gallery-cli"
	app.Usage = "command line access to a galleryd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " galleryd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " calling identity `IDENTITY` (base58)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate-identity",
			Usage:     "create a new identity, printing it with its private key",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerateIdentity,
		},
		{
			Name:      "info",
			Usage:     "display node status",
			Action:    runInfo,
		},
		{
			Name:      "balance",
			Usage:     "display an account balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " account `IDENTITY` [default: calling identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "deposit",
			Usage:     "credit an account (test mode nodes only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " account `IDENTITY` [default: calling identity]",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*amount `VALUE`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "mint",
			Usage:     "create a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*asset `URI`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "editions",
			Usage:     "create an original plus a run of editions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*asset `URI`",
				},
				cli.Uint64Flag{
					Name:  "count, n",
					Usage: "*number of editions `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*edition sale price `VALUE`",
				},
			},
			Action: runEditions,
		},
		{
			Name:      "show",
			Usage:     "display one asset record",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetIdFlag,
			Action:    runShow,
		},
		{
			Name:      "provenance",
			Usage:     "display the ownership history of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetIdFlag,
			Action:    runProvenance,
		},
		{
			Name:      "bid",
			Usage:     "make or raise the offer on an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetIdFlag,
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*bid amount `VALUE`",
				}),
			Action: runBid,
		},
		{
			Name:      "cancel-bid",
			Usage:     "withdraw the outstanding bid",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetIdFlag,
			Action:    runCancelBid,
		},
		{
			Name:      "accept-bid",
			Usage:     "accept the outstanding bid (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     assetIdFlag,
			Action:    runAcceptBid,
		},
		{
			Name:      "set-price",
			Usage:     "list an asset for sale, zero delists (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetIdFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*sale price `VALUE`",
				}),
			Action: runSetPrice,
		},
		{
			Name:      "buy",
			Usage:     "direct purchase at the listed price",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetIdFlag,
				cli.Uint64Flag{
					Name:  "payment, m",
					Usage: "*payment `VALUE`",
				}),
			Action: runBuy,
		},
		{
			Name:      "transfer",
			Usage:     "give an asset away (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetIdFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*new owner `IDENTITY`",
				}),
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "delegate transfer authority (always refused by the node)",
			ArgsUsage: "\n   (* = required)",
			Flags: append(assetIdFlag,
				cli.StringFlag{
					Name:  "delegate, d",
					Value: "",
					Usage: "*delegate `IDENTITY`",
				}),
			Action: runApprove,
		},
		{
			Name:      "whitelist",
			Usage:     "allow an identity to mint (registry owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, r",
					Value: "",
					Usage: "*creator `IDENTITY`",
				},
			},
			Action: runWhitelist,
		},
		{
			Name:   "percentages",
			Usage:  "display the resale revenue split",
			Action: runPercentages,
		},
		{
			Name:      "set-percentage",
			Usage:     "set a resale cut in per-mille (registry owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "which, w",
					Value: "",
					Usage: "*which cut [maintainer|creator]",
				},
				cli.Uint64Flag{
					Name:  "value, m",
					Usage: "*per-mille `VALUE`",
				},
			},
			Action: runSetPercentage,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			caller:  c.GlobalString("identity"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		os.Exit(1)
	}
}

// shared flag for every asset-scoped command
var assetIdFlag = []cli.Flag{
	cli.Uint64Flag{
		Name:  "asset, a",
		Usage: "*asset `ID`",
	},
}
