// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package ring

// Producer is the write-side endpoint of a ring. Exactly one goroutine
// may hold and call a given *Producer at a time; it is movable between
// goroutines but never safe to share concurrently.
type Producer[T any] struct {
	writeIndex int
	region     *Region[T]
}

// TrySend attempts a single contiguous fill pass. fill is invoked with
// the largest free contiguous segment starting at the producer's write
// index — bounded both by the end of the backing array and by the
// ring's remaining free capacity — and must return the number of
// leading slots it initialized, 0 <= n <= len(slots). When the ring is
// full, fill is not called at all and TrySend returns (0, false).
//
// TrySend returns the free capacity observed immediately after
// publishing n, and whether the ring transitioned from empty to
// non-empty as a result of this call.
func (p *Producer[T]) TrySend(fill func(slots []T) int) (freeAfter int, wasEmptyAndWrote bool) {
	n := p.region.capacity()
	countBefore := p.region.counter.Load()
	freeBefore := n - int(countBefore)

	slotCount := n - p.writeIndex
	if freeBefore < slotCount {
		slotCount = freeBefore
	}
	if slotCount <= 0 {
		return freeBefore, false
	}

	slice := p.region.slots[p.writeIndex : p.writeIndex+slotCount]
	written := fill(slice)
	if written < 0 || written > slotCount {
		panic("ring: fill callback returned n outside [0, slot_count]")
	}

	p.writeIndex = (p.writeIndex + written) % n
	newCount := p.region.counter.Add(uint64(written))

	return n - int(newCount), countBefore == 0 && written > 0
}

// SendForeach calls produce(i) for i = 0, 1, ... until it has been
// called min(limit, free) times, where free is the ring's currently
// available capacity across at most two contiguous segments. Each
// return value is written directly into its slot. It performs at most
// two TrySend passes: the second is needed only when the first segment
// was cut short by wrap-around and free capacity remains.
//
// A non-positive limit calls produce zero times.
func (p *Producer[T]) SendForeach(limit int, produce func(i int) T) (freeAfter int, wasEmptyAndWrote bool) {
	freeAfter = p.WriteCount()
	if limit <= 0 {
		return freeAfter, false
	}

	produced := 0
	for pass := 0; pass < 2 && produced < limit; pass++ {
		remaining := limit - produced
		var written int
		fa, wasEmpty := p.TrySend(func(slots []T) int {
			k := remaining
			if k > len(slots) {
				k = len(slots)
			}
			for i := 0; i < k; i++ {
				slots[i] = produce(produced + i)
			}
			written = k
			return k
		})
		freeAfter = fa
		produced += written
		if wasEmpty {
			wasEmptyAndWrote = true
		}
		if written == 0 {
			break
		}
	}
	return freeAfter, wasEmptyAndWrote
}

// WriteCount returns the ring's currently free capacity (N - count) as
// a hint. It is not synchronized with TrySend; a caller that observes
// a non-zero value must still re-check via TrySend before relying on
// room being available.
func (p *Producer[T]) WriteCount() int {
	return p.region.capacity() - int(p.region.counter.Load())
}
