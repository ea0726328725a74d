// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process event stream
//
// Successful mutating operations emit exactly one event per record
// whose ownership changed.  Indexers and the provenance dispatcher
// read the stream; a failed or rolled back operation never reaches
// the bus.
package messagebus

import (
	"github.com/artledger/galleryd/identity"
)

// internal constants
const (
	queueSize = 1000
)

// TransferEvent - record of one ownership change
//
// a mint is a transfer from the zero identity
type TransferEvent struct {
	AssetId uint64
	From    identity.Identity
	To      identity.Identity
	Price   uint64
}

// Queue - a buffered queue of transfer events
type Queue struct {
	c chan TransferEvent
}

// busses - the set of available queues
type busses struct {
	Transfers *Queue
}

// Bus - the global event bus
var Bus = busses{
	Transfers: &Queue{
		c: make(chan TransferEvent, queueSize),
	},
}

// Send - queue an event
//
// when no consumer is keeping up the oldest queued event is dropped
// so a mutating operation can never block on its own event
func (queue *Queue) Send(event TransferEvent) {
	select {
	case queue.c <- event:
	default:
		select {
		case <-queue.c:
		default:
		}
		select {
		case queue.c <- event:
		default:
		}
	}
}

// Chan - channel to read events from
func (queue *Queue) Chan() <-chan TransferEvent {
	return queue.c
}
