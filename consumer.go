// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package ring

// Consumer is the read-side endpoint of a ring. Exactly one goroutine
// may hold and call a given *Consumer at a time; it is movable between
// goroutines but never safe to share concurrently.
type Consumer[T any] struct {
	readIndex int
	region    *Region[T]
}

// TryRecv invokes drain with a read-only view of the largest
// contiguous live segment starting at the consumer's read index. drain
// must return the number of leading slots it consumed,
// 0 <= n <= len(slice); the view is only valid for the duration of the
// call.
//
// TryRecv returns the live count observed immediately after publishing
// n, and whether the ring transitioned from full to non-full as a
// result of this call.
func (c *Consumer[T]) TryRecv(drain func(slice []T) int) (liveAfter int, wasFullAndRead bool) {
	n := c.region.capacity()
	countBefore := c.region.counter.Load()

	liveCount := n - c.readIndex
	if int(countBefore) < liveCount {
		liveCount = int(countBefore)
	}

	slice := c.region.slots[c.readIndex : c.readIndex+liveCount]
	consumed := drain(slice)
	if consumed < 0 || consumed > liveCount {
		panic("ring: drain callback returned n outside [0, slice_len]")
	}

	c.readIndex = (c.readIndex + consumed) % n
	newCount := c.region.subCount(consumed)

	return int(newCount), countBefore >= uint64(n) && consumed > 0
}

// ReadCount returns the ring's currently live count as a hint. It is
// not synchronized with TryRecv; a caller that observes a non-zero
// value must still re-check via TryRecv before relying on data being
// available.
func (c *Consumer[T]) ReadCount() int {
	return int(c.region.counter.Load())
}
