// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/messagebus"
	"github.com/artledger/galleryd/registry"
	"github.com/artledger/galleryd/storage"
)

// AcceptBid - the owner takes the outstanding offer
//
// the escrowed bid value is split and paid out, the bid slot is
// consumed and ownership passes to the bidder, all in one commit
func (m *Market) AcceptBid(assetId uint64, caller identity.Identity) error {

	m.store.Lock()
	defer m.store.Unlock()

	record, err := m.reg.Asset(assetId)
	if nil != err {
		return err
	}
	if caller != record.Owner {
		return fault.ErrNotOwner
	}

	bid, hasBid := m.CurrentBid(assetId)
	if !hasBid {
		return fault.ErrNoCurrentBid
	}

	trx := m.store.NewTransaction()
	trx.Delete(m.store.Pool.Bids, registry.AssetKey(assetId))

	event, err := m.settle(trx, assetId, record, bid.Bidder, Escrow, bid.Amount)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Bus.Transfers.Send(event)
	m.log.Infof("bid accepted: %d  price: %d  buyer: %s", assetId, bid.Amount, bid.Bidder)
	return nil
}

// Buy - direct purchase at the listed sale price
//
// payment is the value the buyer is prepared to spend; only the sale
// price is ever debited, any excess simply stays with the buyer.  A
// standing bid is refunded in full as part of the same settlement.
func (m *Market) Buy(assetId uint64, payment uint64, caller identity.Identity) error {

	m.store.Lock()
	defer m.store.Unlock()

	record, err := m.reg.Asset(assetId)
	if nil != err {
		return err
	}
	if caller == record.Owner {
		return fault.ErrCallerIsOwner
	}
	if 0 == record.SalePrice {
		return fault.ErrNotForSale
	}
	if payment < record.SalePrice {
		return fault.ErrInsufficientPayment
	}

	trx := m.store.NewTransaction()

	err = m.refundBid(trx, assetId)
	if nil != err {
		trx.Abort()
		return err
	}

	event, err := m.settle(trx, assetId, record, caller, caller, record.SalePrice)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Bus.Transfers.Send(event)
	m.log.Infof("sold: %d  price: %d  buyer: %s", assetId, record.SalePrice, caller)
	return nil
}

// Transfer - give an asset away without payment
//
// any standing bid is refunded: the new owner must not inherit an
// offer made against the previous owner's listing
func (m *Market) Transfer(assetId uint64, newOwner identity.Identity, caller identity.Identity) error {

	m.store.Lock()
	defer m.store.Unlock()

	record, err := m.reg.Asset(assetId)
	if nil != err {
		return err
	}
	if caller != record.Owner {
		return fault.ErrNotOwner
	}

	trx := m.store.NewTransaction()

	err = m.refundBid(trx, assetId)
	if nil != err {
		trx.Abort()
		return err
	}

	event := m.reg.ApplyTransfer(trx, assetId, record, newOwner, 0)

	err = trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Bus.Transfers.Send(event)
	m.log.Infof("transferred: %d  to: %s", assetId, newOwner)
	return nil
}

// Approve - delegated transfer authority is not supported
//
// the operation exists so callers probing for it get a definite
// refusal rather than a missing-method error
func (m *Market) Approve(assetId uint64, delegate identity.Identity, caller identity.Identity) error {
	return fault.ErrTransferApprovalForbidden
}

// settle - stage the pay-out and ownership change of a sale
//
// a first sale, where the seller is still the creator, pays the
// seller the whole price.  A resale pays the maintainer and creator
// their per-mille cuts, truncated, and the seller the remainder.
// The funds move from source: the buyer on a direct purchase, the
// escrow account on an accepted bid.
func (m *Market) settle(
	trx *storage.Transaction,
	assetId uint64,
	record registry.AssetRecord,
	buyer identity.Identity,
	source identity.Identity,
	price uint64,
) (messagebus.TransferEvent, error) {

	seller := record.Owner

	if seller == record.Creator {
		err := m.pay.Transfer(trx, source, seller, price)
		if nil != err {
			return messagebus.TransferEvent{}, err
		}
	} else {
		maintainerCut := price * m.MaintainerPercentage() / PercentageScale
		creatorCut := price * m.CreatorPercentage() / PercentageScale
		sellerCut := price - maintainerCut - creatorCut

		err := m.pay.Transfer(trx, source, m.reg.Owner(), maintainerCut)
		if nil != err {
			return messagebus.TransferEvent{}, err
		}
		err = m.pay.Transfer(trx, source, record.Creator, creatorCut)
		if nil != err {
			return messagebus.TransferEvent{}, err
		}
		err = m.pay.Transfer(trx, source, seller, sellerCut)
		if nil != err {
			return messagebus.TransferEvent{}, err
		}
	}

	return m.reg.ApplyTransfer(trx, assetId, record, buyer, price), nil
}
