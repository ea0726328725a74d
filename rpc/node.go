// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/mode"
	"github.com/artledger/galleryd/registry"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - information about this node
type Node struct {
	log      *logger.L
	limiter  *rate.Limiter
	start    time.Time
	version  string
	registry *registry.Registry
}

// ---

// InfoArguments - no arguments
type InfoArguments struct{}

// InfoReply - result of Node.Info
type InfoReply struct {
	Mode    string            `json:"mode"`
	Testing bool              `json:"testing"`
	Assets  uint64            `json:"assets,string"`
	Owner   identity.Identity `json:"owner"`
	RPCs    uint64            `json:"rpcs"`
	Version string            `json:"version"`
	Uptime  string            `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := rateLimit(node.limiter); nil != err {
		return err
	}

	reply.Mode = mode.String()
	reply.Testing = mode.IsTesting()
	reply.Assets = node.registry.AssetCount()
	reply.Owner = node.registry.Owner()
	reply.RPCs = connectionCount.Uint64()
	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	return nil
}
