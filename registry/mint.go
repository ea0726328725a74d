// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/messagebus"
	"github.com/artledger/galleryd/storage"
)

// Mint - create a single new asset
//
// the creator must be whitelisted and the uri never used before;
// the new asset is owned by its creator and not listed for sale
func (r *Registry) Mint(uri string, creator identity.Identity) (uint64, error) {

	// hold the store across validate, stage and commit so concurrent
	// mints cannot allocate the same asset id
	r.store.Lock()
	defer r.store.Unlock()

	if !r.IsWhitelisted(creator) {
		return 0, fault.ErrNotWhitelisted
	}

	trx := r.store.NewTransaction()

	assetId, err := r.mintOne(trx, uri, creator, 0)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	messagebus.Bus.Transfers.Send(messagebus.TransferEvent{
		AssetId: assetId,
		From:    identity.Zero,
		To:      creator,
	})

	r.log.Infof("minted: %d  uri: %q  creator: %s", assetId, uri, creator)
	return assetId, nil
}

// MintWithEditions - create an original plus a run of editions
//
// the original is not listed for sale; each edition is an independent
// asset by the same creator, pre-listed at editionSalePrice, with a
// uri derived from the original's.  editionCount zero mints just the
// original.
func (r *Registry) MintWithEditions(
	uri string,
	editionCount uint64,
	editionSalePrice uint64,
	creator identity.Identity,
) (uint64, []uint64, error) {

	r.store.Lock()
	defer r.store.Unlock()

	if !r.IsWhitelisted(creator) {
		return 0, nil, fault.ErrNotWhitelisted
	}

	trx := r.store.NewTransaction()

	originalId, err := r.mintOne(trx, uri, creator, 0)
	if nil != err {
		trx.Abort()
		return 0, nil, err
	}

	editionIds := make([]uint64, 0, editionCount)
	for n := uint64(1); n <= editionCount; n += 1 {
		editionId, err := r.mintOne(trx, editionUri(uri, n), creator, editionSalePrice)
		if nil != err {
			trx.Abort()
			return 0, nil, err
		}
		editionIds = append(editionIds, editionId)
	}

	err = trx.Commit()
	if nil != err {
		return 0, nil, err
	}

	// one event per minted record
	messagebus.Bus.Transfers.Send(messagebus.TransferEvent{
		AssetId: originalId,
		From:    identity.Zero,
		To:      creator,
	})
	for _, editionId := range editionIds {
		messagebus.Bus.Transfers.Send(messagebus.TransferEvent{
			AssetId: editionId,
			From:    identity.Zero,
			To:      creator,
		})
	}

	r.log.Infof("minted: %d +%d editions  uri: %q  creator: %s", originalId, editionCount, uri, creator)
	return originalId, editionIds, nil
}

// stage one new asset record; whitelist is already checked
func (r *Registry) mintOne(trx *storage.Transaction, uri string, creator identity.Identity, salePrice uint64) (uint64, error) {

	uriKey := []byte(uri)
	if trx.Has(r.store.Pool.Uris, uriKey) {
		return 0, fault.ErrUriAlreadyUsed
	}

	assetId, found := trx.GetN(r.store.Pool.State, nextAssetIdKey)
	if !found {
		assetId = 1 // ids start from one, zero is never a valid asset
	}
	trx.PutN(r.store.Pool.State, nextAssetIdKey, assetId+1)

	record := AssetRecord{
		Creator:   creator,
		Owner:     creator,
		SalePrice: salePrice,
		Uri:       uri,
	}
	trx.Put(r.store.Pool.Assets, AssetKey(assetId), record.Pack())
	trx.Put(r.store.Pool.Uris, uriKey, AssetKey(assetId))

	r.appendProvenance(trx, assetId, identity.Zero, creator, 0)

	return assetId, nil
}

// edition uris are derived from the original plus a short digest so
// they cannot collide with each other and are vanishingly unlikely to
// collide with a manually chosen uri; the uri pool check above still
// rejects the pathological case
func editionUri(uri string, n uint64) string {
	digest := sha3.Sum256([]byte(fmt.Sprintf("%s|edition|%d", uri, n)))
	return fmt.Sprintf("%s/%d-%x", uri, n, digest[:4])
}
