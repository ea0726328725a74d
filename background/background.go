// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - shutdown-coordinated goroutines
package background

// Process - interface for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for stopping a set of background processes
type T struct {
	shutdown []chan struct{}
	finished []chan struct{}
}

// Start - run a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make([]chan struct{}, len(processes)),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.shutdown[i] = shutdown
		register.finished[i] = finished
		go func(p Process, shutdown <-chan struct{}, finished chan<- struct{}) {
			p.Run(args, shutdown)
			close(finished)
		}(p, shutdown, finished)
	}
	return register
}

// Stop - stop all background processes and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	for _, shutdown := range t.shutdown {
		close(shutdown)
	}

	for _, finished := range t.finished {
		<-finished
	}
}
