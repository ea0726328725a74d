// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/registry"
)

// SetSalePrice - list an asset for direct purchase, or delist with a
// price of zero
//
// the price must not be below any standing bid, otherwise a buyer
// could take the asset for less than an offer already in escrow
func (m *Market) SetSalePrice(assetId uint64, price uint64, caller identity.Identity) error {

	m.store.Lock()
	defer m.store.Unlock()

	record, err := m.reg.Asset(assetId)
	if nil != err {
		return err
	}
	if caller != record.Owner {
		return fault.ErrNotOwner
	}

	if bid, hasBid := m.CurrentBid(assetId); hasBid && 0 != price && price < bid.Amount {
		return fault.ErrSalePriceBelowCurrentBid
	}

	record.SalePrice = price

	trx := m.store.NewTransaction()
	trx.Put(m.store.Pool.Assets, registry.AssetKey(assetId), record.Pack())
	err = trx.Commit()
	if nil != err {
		return err
	}

	m.log.Infof("sale price: %d  price: %d", assetId, price)
	return nil
}
