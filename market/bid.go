// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/registry"
	"github.com/artledger/galleryd/storage"
)

// Bid - the single outstanding offer on an asset
type Bid struct {
	Amount uint64            `json:"amount"`
	Bidder identity.Identity `json:"bidder"`
}

// packed layout: amount(8) + bidder(32)
const packedBidLength = 8 + identity.Size

func packBid(bid Bid) []byte {
	buffer := make([]byte, 8, packedBidLength)
	binary.BigEndian.PutUint64(buffer, bid.Amount)
	return append(buffer, bid.Bidder.Bytes()...)
}

func unpackBid(buffer []byte) (Bid, bool) {
	if packedBidLength != len(buffer) {
		return Bid{}, false
	}
	bidder, err := identity.FromBytes(buffer[8:])
	if nil != err {
		return Bid{}, false
	}
	return Bid{
		Amount: binary.BigEndian.Uint64(buffer[:8]),
		Bidder: bidder,
	}, true
}

// CurrentBid - the outstanding bid on an asset, if any
func (m *Market) CurrentBid(assetId uint64) (Bid, bool) {
	return unpackBid(m.store.Pool.Bids.Get(registry.AssetKey(assetId)))
}

// PlaceBid - make or raise the offer on an asset
//
// the amount must strictly exceed any standing bid; the superseded
// bid is refunded in full before the new bid's value is escrowed
func (m *Market) PlaceBid(assetId uint64, amount uint64, caller identity.Identity) error {

	// hold the store across validate, stage and commit so two bids
	// cannot both pass the balance check against the same funds
	m.store.Lock()
	defer m.store.Unlock()

	record, err := m.reg.Asset(assetId)
	if nil != err {
		return err
	}
	if caller == record.Owner {
		return fault.ErrCallerIsOwner
	}

	previous, hasBid := m.CurrentBid(assetId)
	if 0 == amount || (hasBid && amount <= previous.Amount) {
		return fault.ErrBidTooLow
	}

	trx := m.store.NewTransaction()

	if hasBid {
		err = m.pay.Transfer(trx, Escrow, previous.Bidder, previous.Amount)
		if nil != err {
			trx.Abort()
			return err
		}
	}

	err = m.pay.Transfer(trx, caller, Escrow, amount)
	if nil != err {
		trx.Abort()
		return err
	}

	trx.Put(m.store.Pool.Bids, registry.AssetKey(assetId), packBid(Bid{
		Amount: amount,
		Bidder: caller,
	}))

	err = trx.Commit()
	if nil != err {
		return err
	}

	m.log.Infof("bid: %d  amount: %d  bidder: %s", assetId, amount, caller)
	return nil
}

// CancelBid - withdraw the outstanding bid and refund its value
func (m *Market) CancelBid(assetId uint64, caller identity.Identity) error {

	m.store.Lock()
	defer m.store.Unlock()

	bid, hasBid := m.CurrentBid(assetId)
	if !hasBid || caller != bid.Bidder {
		return fault.ErrNotCurrentBidder
	}

	trx := m.store.NewTransaction()

	trx.Delete(m.store.Pool.Bids, registry.AssetKey(assetId))
	err := m.pay.Transfer(trx, Escrow, bid.Bidder, bid.Amount)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	m.log.Infof("bid cancelled: %d  refund: %d  bidder: %s", assetId, bid.Amount, caller)
	return nil
}

// stage the refund and removal of a standing bid, if one exists
//
// used by Transfer and Buy where an outstanding bid survives to the
// point of an ownership change and must be returned to its bidder
func (m *Market) refundBid(trx *storage.Transaction, assetId uint64) error {
	bid, hasBid := m.CurrentBid(assetId)
	if !hasBid {
		return nil
	}
	trx.Delete(m.store.Pool.Bids, registry.AssetKey(assetId))
	return m.pay.Transfer(trx, Escrow, bid.Bidder, bid.Amount)
}
