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
	"github.com/artledger/galleryd/mode"
	"github.com/artledger/galleryd/registry"
)

const (
	rateLimitAsset  = 200
	rateBurstAsset  = 100
	maximumEditions = 100
)

// Asset - RPC access to the asset registry
type Asset struct {
	log      *logger.L
	limiter  *rate.Limiter
	registry *registry.Registry
}

// ---

// MintArguments - arguments for Asset.Mint
type MintArguments struct {
	Uri     string            `json:"uri"`
	Creator identity.Identity `json:"creator"`
}

// MintReply - result of Asset.Mint
type MintReply struct {
	AssetId uint64 `json:"assetId,string"`
}

// Mint - create a new asset
func (asset *Asset) Mint(arguments *MintArguments, reply *MintReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(asset.limiter); nil != err {
		return err
	}
	asset.log.Infof("Asset.Mint: %q by %s", arguments.Uri, arguments.Creator)

	assetId, err := asset.registry.Mint(arguments.Uri, arguments.Creator)
	if nil != err {
		return err
	}
	reply.AssetId = assetId
	return nil
}

// ---

// MintEditionsArguments - arguments for Asset.MintEditions
type MintEditionsArguments struct {
	Uri              string            `json:"uri"`
	EditionCount     uint64            `json:"editionCount"`
	EditionSalePrice uint64            `json:"editionSalePrice,string"`
	Creator          identity.Identity `json:"creator"`
}

// MintEditionsReply - result of Asset.MintEditions
type MintEditionsReply struct {
	OriginalId uint64   `json:"originalId,string"`
	EditionIds []uint64 `json:"editionIds"`
}

// MintEditions - create an original and a run of editions
func (asset *Asset) MintEditions(arguments *MintEditionsArguments, reply *MintEditionsReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	// bound the count before adding one for the original record, so a
	// huge value cannot wrap around the record total
	if arguments.EditionCount >= maximumEditions {
		if err := rateLimit(asset.limiter); nil != err {
			return err
		}
		return fault.ErrMissingParameters
	}
	if err := rateLimitN(asset.limiter, arguments.EditionCount+1, maximumEditions); nil != err {
		return err
	}
	asset.log.Infof("Asset.MintEditions: %q +%d by %s", arguments.Uri, arguments.EditionCount, arguments.Creator)

	originalId, editionIds, err := asset.registry.MintWithEditions(
		arguments.Uri,
		arguments.EditionCount,
		arguments.EditionSalePrice,
		arguments.Creator,
	)
	if nil != err {
		return err
	}
	reply.OriginalId = originalId
	reply.EditionIds = editionIds
	return nil
}

// ---

// GetArguments - arguments for Asset.Get
type GetArguments struct {
	AssetId uint64 `json:"assetId,string"`
}

// GetReply - the full asset record
type GetReply struct {
	AssetId   uint64            `json:"assetId,string"`
	Creator   identity.Identity `json:"creator"`
	Owner     identity.Identity `json:"owner"`
	SalePrice uint64            `json:"salePrice,string"`
	Uri       string            `json:"uri"`
}

// Get - fetch one asset record
func (asset *Asset) Get(arguments *GetArguments, reply *GetReply) error {
	if err := rateLimit(asset.limiter); nil != err {
		return err
	}

	record, err := asset.registry.Asset(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.AssetId = arguments.AssetId
	reply.Creator = record.Creator
	reply.Owner = record.Owner
	reply.SalePrice = record.SalePrice
	reply.Uri = record.Uri
	return nil
}

// ---

// ProvenanceArguments - arguments for Asset.Provenance
type ProvenanceArguments struct {
	AssetId uint64 `json:"assetId,string"`
}

// ProvenanceReply - ownership history, oldest first
type ProvenanceReply struct {
	History []registry.ProvenanceRecord `json:"history"`
}

// Provenance - fetch the full ownership history of an asset
func (asset *Asset) Provenance(arguments *ProvenanceArguments, reply *ProvenanceReply) error {
	if err := rateLimit(asset.limiter); nil != err {
		return err
	}

	history, err := asset.registry.ProvenanceOf(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.History = history
	return nil
}
