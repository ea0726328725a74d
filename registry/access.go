// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/storage"
)

// Asset - fetch a full asset record
func (r *Registry) Asset(assetId uint64) (AssetRecord, error) {
	buffer := r.store.Pool.Assets.Get(AssetKey(assetId))
	if nil == buffer {
		return AssetRecord{}, fault.ErrAssetNotFound
	}
	return UnpackRecord(buffer)
}

// FetchAsset - fetch a record observing an open transaction
func (r *Registry) FetchAsset(trx *storage.Transaction, assetId uint64) (AssetRecord, error) {
	buffer := trx.Get(r.store.Pool.Assets, AssetKey(assetId))
	if nil == buffer {
		return AssetRecord{}, fault.ErrAssetNotFound
	}
	return UnpackRecord(buffer)
}

// OwnerOf - current owner of an asset
func (r *Registry) OwnerOf(assetId uint64) (identity.Identity, error) {
	record, err := r.Asset(assetId)
	if nil != err {
		return identity.Zero, err
	}
	return record.Owner, nil
}

// CreatorOf - original creator of an asset, immutable after mint
func (r *Registry) CreatorOf(assetId uint64) (identity.Identity, error) {
	record, err := r.Asset(assetId)
	if nil != err {
		return identity.Zero, err
	}
	return record.Creator, nil
}

// SalePriceOf - current listing price, zero means not for sale
func (r *Registry) SalePriceOf(assetId uint64) (uint64, error) {
	record, err := r.Asset(assetId)
	if nil != err {
		return 0, err
	}
	return record.SalePrice, nil
}

// UriExists - check whether a uri has ever been used
func (r *Registry) UriExists(uri string) bool {
	return r.store.Pool.Uris.Has([]byte(uri))
}

// AssetCount - number of assets minted so far
func (r *Registry) AssetCount() uint64 {
	nextId, found := r.store.Pool.State.GetN(nextAssetIdKey)
	if !found {
		return 0
	}
	return nextId - 1
}

// OriginalAssetOfUri - reverse lookup from a uri to its asset id
//
// for an edition mint this resolves the original's uri to the
// original asset, not to any edition
func (r *Registry) OriginalAssetOfUri(uri string) (uint64, error) {
	buffer := r.store.Pool.Uris.Get([]byte(uri))
	if len(buffer) < 8 {
		return 0, fault.ErrAssetNotFound
	}
	return binary.BigEndian.Uint64(buffer[:8]), nil
}
