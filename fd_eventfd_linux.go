// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

//go:build linux

package ring

import "golang.org/x/sys/unix"

// NewEventfd creates an FDPair backed by a single eventfd(2): Reader
// and Writer carry the same descriptor number, matching the spec's
// "for eventfd, both fields carry the same number" convention. The
// caller owns the descriptor and must close it.
func NewEventfd() (FDPair, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return FDPair{}, err
	}
	return FDPair{Reader: fd, Writer: fd}, nil
}
