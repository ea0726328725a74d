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

// ProvenanceRecord - one step in an asset's ownership history
type ProvenanceRecord struct {
	From  identity.Identity `json:"from"`
	To    identity.Identity `json:"to"`
	Price uint64            `json:"price"`
}

// provenance pool layout:
//   assetId(8)         → number of history entries
//   assetId(8)+seq(8)  → from(32) + to(32) + price(8)
const packedProvenanceLength = 2*identity.Size + 8

// stage one history entry; called for every ownership change
func (r *Registry) appendProvenance(trx *storage.Transaction, assetId uint64, from identity.Identity, to identity.Identity, price uint64) {

	countKey := AssetKey(assetId)
	count, _ := trx.GetN(r.store.Pool.Provenance, countKey)

	entryKey := make([]byte, 0, 16)
	entryKey = append(entryKey, countKey...)
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, count)
	entryKey = append(entryKey, seq...)

	entry := make([]byte, 0, packedProvenanceLength)
	entry = append(entry, from.Bytes()...)
	entry = append(entry, to.Bytes()...)
	price8 := make([]byte, 8)
	binary.BigEndian.PutUint64(price8, price)
	entry = append(entry, price8...)

	trx.Put(r.store.Pool.Provenance, entryKey, entry)
	trx.PutN(r.store.Pool.Provenance, countKey, count+1)
}

// ProvenanceOf - full ownership history of an asset, oldest first
func (r *Registry) ProvenanceOf(assetId uint64) ([]ProvenanceRecord, error) {

	countKey := AssetKey(assetId)
	count, found := r.store.Pool.Provenance.GetN(countKey)
	if !found {
		return nil, fault.ErrAssetNotFound
	}

	history := make([]ProvenanceRecord, 0, count)
	for seq := uint64(0); seq < count; seq += 1 {

		entryKey := make([]byte, 0, 16)
		entryKey = append(entryKey, countKey...)
		seq8 := make([]byte, 8)
		binary.BigEndian.PutUint64(seq8, seq)
		entryKey = append(entryKey, seq8...)

		buffer := r.store.Pool.Provenance.Get(entryKey)
		if len(buffer) < packedProvenanceLength {
			return nil, fault.ErrInvalidStructure
		}

		from, err := identity.FromBytes(buffer[:identity.Size])
		if nil != err {
			return nil, err
		}
		to, err := identity.FromBytes(buffer[identity.Size : 2*identity.Size])
		if nil != err {
			return nil, err
		}

		history = append(history, ProvenanceRecord{
			From:  from,
			To:    to,
			Price: binary.BigEndian.Uint64(buffer[2*identity.Size : packedProvenanceLength]),
		})
	}
	return history, nil
}
