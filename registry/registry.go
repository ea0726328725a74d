// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the canonical asset registry
//
// Holds the asset records, the uri pool and the creator whitelist.
// Minting is restricted to whitelisted creators and every uri is
// unique for all time.  The registry owner is a single distinguished
// identity fixed when the registry is opened; it alone can change the
// whitelist.
//
// The registry is an explicit value: every operation goes through a
// *Registry so there is no hidden global state to reach around the
// transactional rules.
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/storage"
)

// Registry - an open asset registry over a store
type Registry struct {
	log   *logger.L
	store *storage.Store
	owner identity.Identity
}

// state pool keys
var (
	nextAssetIdKey = []byte("nextAssetId")
)

// New - open the registry over a store
//
// owner is the registry owner, fixed for the life of the process
func New(store *storage.Store, owner identity.Identity) *Registry {
	r := &Registry{
		log:   logger.New("registry"),
		store: store,
		owner: owner,
	}
	r.log.Info("starting…")
	return r
}

// Owner - the registry owner, also the maintainer paid on resales
func (r *Registry) Owner() identity.Identity {
	return r.owner
}

// Store - the underlying store, shared with the marketplace
func (r *Registry) Store() *storage.Store {
	return r.store
}
