// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
)

// PercentageScale - revenue splits are expressed in per-mille
const PercentageScale = 1000

// default splits applied until the registry owner sets others
const (
	defaultMaintainerPercentage = 100
	defaultCreatorPercentage    = 100
)

var (
	maintainerPctKey = []byte("maintainerPct")
	creatorPctKey    = []byte("creatorPct")
)

// MaintainerPercentage - the per-mille share of every resale paid to
// the registry owner
func (m *Market) MaintainerPercentage() uint64 {
	if pct, ok := m.store.Pool.State.GetN(maintainerPctKey); ok {
		return pct
	}
	return defaultMaintainerPercentage
}

// CreatorPercentage - the per-mille share of every resale paid to the
// asset's creator
func (m *Market) CreatorPercentage() uint64 {
	if pct, ok := m.store.Pool.State.GetN(creatorPctKey); ok {
		return pct
	}
	return defaultCreatorPercentage
}

// SetMaintainerPercentage - registry owner only
func (m *Market) SetMaintainerPercentage(pct uint64, caller identity.Identity) error {
	return m.setPercentage(maintainerPctKey, pct, creatorPctKey, defaultCreatorPercentage, caller)
}

// SetCreatorPercentage - registry owner only
func (m *Market) SetCreatorPercentage(pct uint64, caller identity.Identity) error {
	return m.setPercentage(creatorPctKey, pct, maintainerPctKey, defaultMaintainerPercentage, caller)
}

// the other percentage is read under the lock so two concurrent
// setters cannot both validate against a value the other is changing
func (m *Market) setPercentage(key []byte, pct uint64, otherKey []byte, otherDefault uint64, caller identity.Identity) error {
	if caller != m.reg.Owner() {
		return fault.ErrUnauthorized
	}

	m.store.Lock()
	defer m.store.Unlock()

	other, ok := m.store.Pool.State.GetN(otherKey)
	if !ok {
		other = otherDefault
	}
	if pct > PercentageScale || pct+other > PercentageScale {
		return fault.ErrInvalidPercentage
	}

	trx := m.store.NewTransaction()
	trx.PutN(m.store.Pool.State, key, pct)
	return trx.Commit()
}
