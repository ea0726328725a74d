// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/artledger/galleryd/identity"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files; these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFileName := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFileName := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFileName, privateKeyFileName, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFileName, certificateFileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFileName, certificateFileName)

	case "gen-identity", "identity":
		publicKey, privateKey, err := ed25519.GenerateKey(nil)
		if nil != err {
			fmt.Printf("generate identity error: %s\n", err)
			exitwithstatus.Exit(1)
		}

		id, err := identity.FromBytes(publicKey)
		if nil != err {
			fmt.Printf("generate identity error: %s\n", err)
			exitwithstatus.Exit(1)
		}

		fmt.Printf("identity:    %s\n", id)
		fmt.Printf("private key: %s\n", hex.EncodeToString(privateKey))

	case "version", "v":
		fmt.Println(version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [command]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                            (h)      - display this message\n\n")
		fmt.Printf("  version                         (v)      - display the version\n\n")

		fmt.Printf("  gen-rpc-cert                    (rpc)    - create default: %q and %q\n", rpcCertificateFilename, rpcPrivateKeyFilename)
		fmt.Printf("  gen-rpc-cert DIR [ADDRESSES…]            - create: %q and %q in directory DIR\n", rpcCertificateFilename, rpcPrivateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-identity                    (identity) - create a new identity and print it with its private key\n")
		fmt.Printf("\n")

	default:
		fmt.Printf("unknown command: %q, run: %s help  for the full list\n", command, program)
		exitwithstatus.Exit(1)
	}
	return true
}

// get a file name (relative to a directory if given as the first
// argument)
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 && "" != arguments[0] {
		dir = arguments[0]
	}
	return filepath.Join(dir, name)
}
