// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - bids and settlement
//
// One bid slot per asset, strictly increasing amounts, value held in
// escrow until the bid is superseded, cancelled or accepted.  Every
// sale, whether a direct purchase or an accepted bid, ends in the
// same settlement: value split between maintainer, creator and
// seller, then the ownership change, all staged into one storage
// transaction so the whole settlement commits or nothing does.
package market

import (
	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/ledger"
	"github.com/artledger/galleryd/registry"
	"github.com/artledger/galleryd/storage"
)

// Escrow - the system account holding pending bid value
var Escrow = identity.Named("galleryd.bid.escrow")

// Market - the marketplace over a registry and a ledger
type Market struct {
	log   *logger.L
	reg   *registry.Registry
	store *storage.Store
	pay   ledger.Ledger
}

// New - open the marketplace
//
// the store must be the registry's own store so that settlement can
// stage asset, bid and balance changes into a single transaction
func New(reg *registry.Registry, pay ledger.Ledger) *Market {
	m := &Market{
		log:   logger.New("market"),
		reg:   reg,
		store: reg.Store(),
		pay:   pay,
	}
	m.log.Info("starting…")
	return m
}

// Registry - the registry this marketplace trades over
func (m *Market) Registry() *registry.Registry {
	return m.reg
}
