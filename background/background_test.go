// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/artledger/galleryd/background"
)

type counterProcess struct {
	started uint64
	stopped uint64
}

func (p *counterProcess) Run(args interface{}, shutdown <-chan struct{}) {
	atomic.AddUint64(&p.started, 1)
	<-shutdown
	atomic.AddUint64(&p.stopped, 1)
}

func TestStartStop(t *testing.T) {

	a := &counterProcess{}
	b := &counterProcess{}

	processes := background.Processes{a, b}
	register := background.Start(processes, nil)

	time.Sleep(20 * time.Millisecond)

	if 1 != atomic.LoadUint64(&a.started) || 1 != atomic.LoadUint64(&b.started) {
		t.Fatal("processes did not start")
	}

	register.Stop()

	if 1 != atomic.LoadUint64(&a.stopped) || 1 != atomic.LoadUint64(&b.stopped) {
		t.Fatal("processes did not stop")
	}
}

func TestStopNil(t *testing.T) {
	var register *background.T
	register.Stop() // must not panic
}
