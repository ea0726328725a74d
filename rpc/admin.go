// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/market"
	"github.com/artledger/galleryd/mode"
	"github.com/artledger/galleryd/registry"
)

const (
	rateLimitAdmin = 100
	rateBurstAdmin = 50
)

// Admin - registry owner operations
//
// every call carries the caller identity; authorisation is enforced
// by the registry and marketplace, not here
type Admin struct {
	log      *logger.L
	limiter  *rate.Limiter
	registry *registry.Registry
	market   *market.Market
}

// ---

// WhitelistArguments - arguments for Admin.Whitelist
type WhitelistArguments struct {
	Creator identity.Identity `json:"creator"`
	Caller  identity.Identity `json:"caller"`
}

// WhitelistReply - result of Admin.Whitelist
type WhitelistReply struct {
	Creator identity.Identity `json:"creator"`
}

// Whitelist - allow an identity to mint
func (admin *Admin) Whitelist(arguments *WhitelistArguments, reply *WhitelistReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(admin.limiter); nil != err {
		return err
	}
	admin.log.Infof("Admin.Whitelist: %s by %s", arguments.Creator, arguments.Caller)

	err := admin.registry.WhitelistCreator(arguments.Creator, arguments.Caller)
	if nil != err {
		return err
	}
	reply.Creator = arguments.Creator
	return nil
}

// ---

// SetPercentageArguments - arguments for the percentage setters
type SetPercentageArguments struct {
	Percentage uint64            `json:"percentage"`
	Caller     identity.Identity `json:"caller"`
}

// PercentagesReply - the current revenue split configuration
type PercentagesReply struct {
	Maintainer uint64 `json:"maintainer"`
	Creator    uint64 `json:"creator"`
	Scale      uint64 `json:"scale"`
}

// SetMaintainerPercentage - set the maintainer's resale cut
func (admin *Admin) SetMaintainerPercentage(arguments *SetPercentageArguments, reply *PercentagesReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(admin.limiter); nil != err {
		return err
	}

	err := admin.market.SetMaintainerPercentage(arguments.Percentage, arguments.Caller)
	if nil != err {
		return err
	}
	admin.fillPercentages(reply)
	return nil
}

// SetCreatorPercentage - set the creator's resale cut
func (admin *Admin) SetCreatorPercentage(arguments *SetPercentageArguments, reply *PercentagesReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(admin.limiter); nil != err {
		return err
	}

	err := admin.market.SetCreatorPercentage(arguments.Percentage, arguments.Caller)
	if nil != err {
		return err
	}
	admin.fillPercentages(reply)
	return nil
}

// PercentagesArguments - no arguments
type PercentagesArguments struct{}

// Percentages - read the current revenue split configuration
func (admin *Admin) Percentages(arguments *PercentagesArguments, reply *PercentagesReply) error {
	if err := rateLimit(admin.limiter); nil != err {
		return err
	}
	admin.fillPercentages(reply)
	return nil
}

func (admin *Admin) fillPercentages(reply *PercentagesReply) {
	reply.Maintainer = admin.market.MaintainerPercentage()
	reply.Creator = admin.market.CreatorPercentage()
	reply.Scale = market.PercentageScale
}
