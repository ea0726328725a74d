// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
)

// WhitelistCreator - mark an identity as allowed to mint
//
// registry owner only; whitelisting an identity twice is a no-op
func (r *Registry) WhitelistCreator(addr identity.Identity, caller identity.Identity) error {
	if caller != r.owner {
		return fault.ErrUnauthorized
	}

	r.store.Lock()
	defer r.store.Unlock()

	trx := r.store.NewTransaction()
	trx.Put(r.store.Pool.Whitelist, addr.Bytes(), []byte{1})
	err := trx.Commit()
	if nil != err {
		return err
	}

	r.log.Infof("whitelisted: %s", addr)
	return nil
}

// IsWhitelisted - check mint eligibility
func (r *Registry) IsWhitelisted(addr identity.Identity) bool {
	return r.store.Pool.Whitelist.Has(addr.Bytes())
}
