// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

// Package ring provides a wait-free, single-producer single-consumer
// (SPSC) ring buffer over a caller-owned byte region, plus an
// edge-triggered wake-up wrapper driven by a pair of file descriptors.
//
// # Thread-Safety Guarantees
//
// The ring is lock-free and wait-free for its documented use case:
//   - Exactly one goroutine may hold and call the *Producer
//   - Exactly one goroutine may hold and call the *Consumer
//   - Producer and Consumer may live on different goroutines and may
//     migrate between goroutines, but neither may be shared
//     concurrently by more than one goroutine at a time.
//
// Violating these constraints causes data races and undefined behavior.
//
// # Performance Characteristics
//
//   - O(1) operations: TrySend and TryRecv complete in constant time
//     plus the cost of the caller's fill/drain closure
//   - Zero allocations on the hot path once the region is constructed
//   - No blocking inside the core: callers that need to wait do so on
//     an external descriptor (see SignalProducer/SignalConsumer)
//
// # Usage Example
//
//	buf := make([]byte, BufSize[int](64))
//	p, c, err := NewChannel[int](buf)
//	if err != nil {
//	    panic(err)
//	}
//
//	// Producer goroutine
//	go func() {
//	    for i := 0; i < 10; i++ {
//	        p.TrySend(func(slots []int) int {
//	            if len(slots) == 0 {
//	                return 0
//	            }
//	            slots[0] = i
//	            return 1
//	        })
//	    }
//	}()
//
//	// Consumer goroutine
//	var got []int
//	for len(got) < 10 {
//	    c.TryRecv(func(slice []int) int {
//	        if len(slice) == 0 {
//	            return 0
//	        }
//	        got = append(got, slice[0])
//	        return 1
//	    })
//	}
package ring
