// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/messagebus"
	"github.com/artledger/galleryd/storage"
)

// ApplyTransfer - stage an ownership change inside an open transaction
//
// this is the only way an asset changes hands: the marketplace calls
// it from Transfer, AcceptBid and Buy after its own validation.  The
// sale price is cleared; the bid slot belongs to the marketplace and
// must be cleared or consumed by the caller in the same transaction.
// The caller holds the store lock for the life of the transaction.
//
// the returned event must be sent only after the transaction commits
func (r *Registry) ApplyTransfer(
	trx *storage.Transaction,
	assetId uint64,
	record AssetRecord,
	newOwner identity.Identity,
	price uint64,
) messagebus.TransferEvent {

	previousOwner := record.Owner

	record.Owner = newOwner
	record.SalePrice = 0
	trx.Put(r.store.Pool.Assets, AssetKey(assetId), record.Pack())

	r.appendProvenance(trx, assetId, previousOwner, newOwner, price)

	return messagebus.TransferEvent{
		AssetId: assetId,
		From:    previousOwner,
		To:      newOwner,
		Price:   price,
	}
}
