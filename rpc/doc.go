// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC services over TLS
//
// The services are registered with the net/rpc server and served over
// TLS listeners using the JSON codec, plus an HTTPS bridge carrying
// the same requests for callers that cannot hold a raw connection.
package rpc
