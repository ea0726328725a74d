// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
)

// AssetRecord - one asset as stored
//
// packed layout:
//   creator    32 bytes
//   owner      32 bytes
//   sale price  8 bytes big endian, zero means not listed
//   uri        remainder
type AssetRecord struct {
	Creator   identity.Identity
	Owner     identity.Identity
	SalePrice uint64
	Uri       string
}

// minimum length of a packed record, the uri may be empty
const packedRecordMinimum = 2*identity.Size + 8

// Pack - binary form for storage
func (record AssetRecord) Pack() []byte {
	buffer := make([]byte, 0, packedRecordMinimum+len(record.Uri))
	buffer = append(buffer, record.Creator.Bytes()...)
	buffer = append(buffer, record.Owner.Bytes()...)

	price := make([]byte, 8)
	binary.BigEndian.PutUint64(price, record.SalePrice)
	buffer = append(buffer, price...)

	return append(buffer, record.Uri...)
}

// UnpackRecord - decode a stored record
func UnpackRecord(buffer []byte) (AssetRecord, error) {
	if len(buffer) < packedRecordMinimum {
		return AssetRecord{}, fault.ErrInvalidStructure
	}

	creator, err := identity.FromBytes(buffer[:identity.Size])
	if nil != err {
		return AssetRecord{}, err
	}
	owner, err := identity.FromBytes(buffer[identity.Size : 2*identity.Size])
	if nil != err {
		return AssetRecord{}, err
	}

	return AssetRecord{
		Creator:   creator,
		Owner:     owner,
		SalePrice: binary.BigEndian.Uint64(buffer[2*identity.Size : packedRecordMinimum]),
		Uri:       string(buffer[packedRecordMinimum:]),
	}, nil
}

// AssetKey - storage key for an asset id
func AssetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}
