// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/messagebus"
)

// transferDispatcher - drains ownership change events to the
// transfer log so an external audit trail survives restarts
type transferDispatcher struct {
	log *logger.L
}

// Run - background process loop
func (d *transferDispatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := d.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event := <-messagebus.Bus.Transfers.Chan():
			log.Infof("transfer: asset: %d  from: %s  to: %s  price: %d",
				event.AssetId, event.From, event.To, event.Price)
		}
	}

	log.Info("finished")
}
