// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
)

// create the server and register all services
func createServer(log *logger.L, version string, handles Handles) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(&Asset{
		log:      log,
		limiter:  rate.NewLimiter(rateLimitAsset, rateBurstAsset),
		registry: handles.Registry,
	})
	_ = server.Register(&Market{
		log:     log,
		limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		market:  handles.Market,
	})
	_ = server.Register(&Admin{
		log:      log,
		limiter:  rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		registry: handles.Registry,
		market:   handles.Market,
	})
	_ = server.Register(&Ledger{
		log:     log,
		limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		pool:    handles.Ledger,
	})
	_ = server.Register(&Node{
		log:      log,
		limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		start:    start,
		version:  version,
		registry: handles.Registry,
	})

	return server
}
