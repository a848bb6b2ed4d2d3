// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

//go:build unix

// The signalling layer wraps one ring endpoint with a pair of file
// descriptors so a blocked peer is reliably woken when the other side
// makes progress, without holding any lock across user code and
// without a wake-storm on every successful operation.
//
// Descriptors are never owned by a SignalProducer/SignalConsumer: the
// caller creates them (a pipe, an eventfd, anything readable and
// writable) and is responsible for closing them once both endpoints
// are done.

package ring

import "golang.org/x/sys/unix"

// SignalProducer wraps a Producer with a signal_fd (written to wake
// the peer Consumer) and a wait_fd (drained by this endpoint's owner
// after being woken).
type SignalProducer[T any] struct {
	ring     *Producer[T]
	signalFD int
	waitFD   int
}

// SignalConsumer wraps a Consumer with a signal_fd (written to wake
// the peer Producer) and a wait_fd (drained by this endpoint's owner
// after being woken).
type SignalConsumer[T any] struct {
	ring     *Consumer[T]
	signalFD int
	waitFD   int
}

// NewSignalPair builds a SignalProducer/SignalConsumer pair over buf,
// wiring them to two descriptor pairs. empty is the (reader, writer)
// pair used to wake the consumer when the ring transitions
// empty->non-empty; full is the (reader, writer) pair used to wake the
// producer when the ring transitions full->non-full. For an eventfd,
// reader and writer are the same descriptor; for a pipe they differ.
// Descriptors are not closed by this call or by either endpoint.
func NewSignalPair[T any](buf []byte, empty, full FDPair) (*SignalProducer[T], *SignalConsumer[T], error) {
	p, c, err := NewChannel[T](buf)
	if err != nil {
		return nil, nil, err
	}
	sp := &SignalProducer[T]{ring: p, signalFD: empty.Writer, waitFD: full.Reader}
	sc := &SignalConsumer[T]{ring: c, signalFD: full.Writer, waitFD: empty.Reader}
	return sp, sc, nil
}

// FDPair is a reader/writer descriptor pair. For an eventfd, Reader
// and Writer carry the same number; for a pipe they are the two ends
// returned by pipe(2).
type FDPair struct {
	Reader int
	Writer int
}

// Send performs the underlying TrySend, looping while fill requests a
// repeat (it returns true as its second value and the ring still has
// free contiguous room after wrap). If any pass wrote data into a ring
// that was empty at the start of that pass, a single wake token is
// written to signal_fd. Send returns the free capacity observed at the
// end of the final pass.
func (sp *SignalProducer[T]) Send(fill func(slots []T) (int, bool)) (int, error) {
	var (
		freeAfter  int
		wroteAny   bool
		wasEmptyOn bool
	)
	for {
		var repeat bool
		fa, wasEmpty := sp.ring.TrySend(func(slots []T) int {
			n, rep := fill(slots)
			repeat = rep
			if n > 0 {
				wroteAny = true
			}
			return n
		})
		freeAfter = fa
		if wasEmpty {
			wasEmptyOn = true
		}
		if !repeat {
			break
		}
	}
	if wroteAny && wasEmptyOn {
		if err := writeToken(sp.signalFD); err != nil {
			return freeAfter, err
		}
	}
	return freeAfter, nil
}

// WaitStatus returns (wait_fd, available) where available is the
// producer's current write-count hint. A caller may only block on
// wait_fd when available == 0; blocking while available > 0 risks
// deadlock, since no token will be written for capacity that already
// existed.
func (sp *SignalProducer[T]) WaitStatus() (int, int) {
	return sp.waitFD, sp.ring.WriteCount()
}

// WaitClear drains wait_fd. Call this exactly once after the
// descriptor has been reported readable, before retrying Send.
func (sp *SignalProducer[T]) WaitClear() error {
	return drainTokens(sp.waitFD)
}

// Recv mirrors Send: it performs the underlying TryRecv, looping while
// drain requests a repeat. If any pass consumed data from a ring that
// was full at the start of that pass, a single wake token is written to
// signal_fd (waking the producer). Recv returns the live count
// observed at the end of the final pass.
func (sc *SignalConsumer[T]) Recv(drain func(slice []T) (int, bool)) (int, error) {
	var (
		liveAfter int
		readAny   bool
		wasFullOn bool
	)
	for {
		var repeat bool
		la, wasFull := sc.ring.TryRecv(func(slice []T) int {
			n, rep := drain(slice)
			repeat = rep
			if n > 0 {
				readAny = true
			}
			return n
		})
		liveAfter = la
		if wasFull {
			wasFullOn = true
		}
		if !repeat {
			break
		}
	}
	if readAny && wasFullOn {
		if err := writeToken(sc.signalFD); err != nil {
			return liveAfter, err
		}
	}
	return liveAfter, nil
}

// WaitStatus returns (wait_fd, available) where available is the
// consumer's current read-count hint. A caller may only block on
// wait_fd when available == 0.
func (sc *SignalConsumer[T]) WaitStatus() (int, int) {
	return sc.waitFD, sc.ring.ReadCount()
}

// WaitClear drains wait_fd. Call this exactly once after the
// descriptor has been reported readable, before retrying Recv.
func (sc *SignalConsumer[T]) WaitClear() error {
	return drainTokens(sc.waitFD)
}

// tokenWords is the number of 8-byte words drainTokens reads in one
// syscall: enough to absorb every token a pipe-backed wait_fd can
// accumulate between two wakes of this endpoint in practice, per the
// single-read contract this package implements.
const tokenWords = 32

func writeToken(fd int) error {
	var buf [8]byte
	buf[0] = 1
	n, err := unix.Write(fd, buf[:])
	if err != nil {
		return err
	}
	if n <= 0 {
		panic("ring: zero-length write to signal_fd")
	}
	return nil
}

func drainTokens(fd int) error {
	var buf [tokenWords * 8]byte
	n, err := unix.Read(fd, buf[:])
	if err != nil {
		return err
	}
	if n <= 0 {
		panic("ring: zero-length read from wait_fd")
	}
	return nil
}
