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
)

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

// Market - RPC access to bids, listings and settlement
type Market struct {
	log     *logger.L
	limiter *rate.Limiter
	market  *market.Market
}

// ---

// BidArguments - arguments for Market.Bid
type BidArguments struct {
	AssetId uint64            `json:"assetId,string"`
	Amount  uint64            `json:"amount,string"`
	Caller  identity.Identity `json:"caller"`
}

// BidReply - result of Market.Bid
type BidReply struct {
	AssetId uint64 `json:"assetId,string"`
	Amount  uint64 `json:"amount,string"`
}

// Bid - make or raise the offer on an asset
func (m *Market) Bid(arguments *BidArguments, reply *BidReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	m.log.Infof("Market.Bid: %d  amount: %d by %s", arguments.AssetId, arguments.Amount, arguments.Caller)

	err := m.market.PlaceBid(arguments.AssetId, arguments.Amount, arguments.Caller)
	if nil != err {
		return err
	}
	reply.AssetId = arguments.AssetId
	reply.Amount = arguments.Amount
	return nil
}

// ---

// CancelBidArguments - arguments for Market.CancelBid
type CancelBidArguments struct {
	AssetId uint64            `json:"assetId,string"`
	Caller  identity.Identity `json:"caller"`
}

// CancelBidReply - result of Market.CancelBid
type CancelBidReply struct {
	Refunded uint64 `json:"refunded,string"`
}

// CancelBid - withdraw the outstanding bid
func (m *Market) CancelBid(arguments *CancelBidArguments, reply *CancelBidReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(m.limiter); nil != err {
		return err
	}

	bid, hasBid := m.market.CurrentBid(arguments.AssetId)
	err := m.market.CancelBid(arguments.AssetId, arguments.Caller)
	if nil != err {
		return err
	}
	if hasBid {
		reply.Refunded = bid.Amount
	}
	return nil
}

// ---

// CurrentBidArguments - arguments for Market.CurrentBid
type CurrentBidArguments struct {
	AssetId uint64 `json:"assetId,string"`
}

// CurrentBidReply - the outstanding bid, if any
type CurrentBidReply struct {
	HasBid bool              `json:"hasBid"`
	Amount uint64            `json:"amount,string"`
	Bidder identity.Identity `json:"bidder"`
}

// CurrentBid - inspect the bid slot on an asset
func (m *Market) CurrentBid(arguments *CurrentBidArguments, reply *CurrentBidReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}

	bid, hasBid := m.market.CurrentBid(arguments.AssetId)
	reply.HasBid = hasBid
	if hasBid {
		reply.Amount = bid.Amount
		reply.Bidder = bid.Bidder
	}
	return nil
}

// ---

// AcceptBidArguments - arguments for Market.AcceptBid
type AcceptBidArguments struct {
	AssetId uint64            `json:"assetId,string"`
	Caller  identity.Identity `json:"caller"`
}

// AcceptBidReply - result of Market.AcceptBid
type AcceptBidReply struct {
	NewOwner identity.Identity `json:"newOwner"`
	Price    uint64            `json:"price,string"`
}

// AcceptBid - the owner takes the outstanding offer
func (m *Market) AcceptBid(arguments *AcceptBidArguments, reply *AcceptBidReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	m.log.Infof("Market.AcceptBid: %d by %s", arguments.AssetId, arguments.Caller)

	bid, _ := m.market.CurrentBid(arguments.AssetId)
	err := m.market.AcceptBid(arguments.AssetId, arguments.Caller)
	if nil != err {
		return err
	}
	reply.NewOwner = bid.Bidder
	reply.Price = bid.Amount
	return nil
}

// ---

// SetPriceArguments - arguments for Market.SetPrice
type SetPriceArguments struct {
	AssetId uint64            `json:"assetId,string"`
	Price   uint64            `json:"price,string"`
	Caller  identity.Identity `json:"caller"`
}

// SetPriceReply - result of Market.SetPrice
type SetPriceReply struct {
	AssetId uint64 `json:"assetId,string"`
	Price   uint64 `json:"price,string"`
}

// SetPrice - list an asset for sale, zero delists
func (m *Market) SetPrice(arguments *SetPriceArguments, reply *SetPriceReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(m.limiter); nil != err {
		return err
	}

	err := m.market.SetSalePrice(arguments.AssetId, arguments.Price, arguments.Caller)
	if nil != err {
		return err
	}
	reply.AssetId = arguments.AssetId
	reply.Price = arguments.Price
	return nil
}

// ---

// BuyArguments - arguments for Market.Buy
type BuyArguments struct {
	AssetId uint64            `json:"assetId,string"`
	Payment uint64            `json:"payment,string"`
	Caller  identity.Identity `json:"caller"`
}

// BuyReply - result of Market.Buy
type BuyReply struct {
	AssetId uint64 `json:"assetId,string"`
	Price   uint64 `json:"price,string"`
}

// Buy - direct purchase at the listed price
func (m *Market) Buy(arguments *BuyArguments, reply *BuyReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	m.log.Infof("Market.Buy: %d by %s", arguments.AssetId, arguments.Caller)

	// record the price before settlement clears it
	price, err := m.market.Registry().SalePriceOf(arguments.AssetId)
	if nil != err {
		return err
	}

	err = m.market.Buy(arguments.AssetId, arguments.Payment, arguments.Caller)
	if nil != err {
		return err
	}
	reply.AssetId = arguments.AssetId
	reply.Price = price
	return nil
}

// ---

// TransferArguments - arguments for Market.Transfer
type TransferArguments struct {
	AssetId  uint64            `json:"assetId,string"`
	NewOwner identity.Identity `json:"newOwner"`
	Caller   identity.Identity `json:"caller"`
}

// TransferReply - result of Market.Transfer
type TransferReply struct {
	AssetId  uint64            `json:"assetId,string"`
	NewOwner identity.Identity `json:"newOwner"`
}

// Transfer - give an asset away without payment
func (m *Market) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(m.limiter); nil != err {
		return err
	}

	err := m.market.Transfer(arguments.AssetId, arguments.NewOwner, arguments.Caller)
	if nil != err {
		return err
	}
	reply.AssetId = arguments.AssetId
	reply.NewOwner = arguments.NewOwner
	return nil
}

// ---

// ApproveArguments - arguments for Market.Approve
type ApproveArguments struct {
	AssetId  uint64            `json:"assetId,string"`
	Delegate identity.Identity `json:"delegate"`
	Caller   identity.Identity `json:"caller"`
}

// ApproveReply - never filled in, the operation always refuses
type ApproveReply struct{}

// Approve - delegated transfer authority, always refused
func (m *Market) Approve(arguments *ApproveArguments, reply *ApproveReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	return m.market.Approve(arguments.AssetId, arguments.Delegate, arguments.Caller)
}
