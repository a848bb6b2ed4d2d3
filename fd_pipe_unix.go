// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

//go:build unix

package ring

import "golang.org/x/sys/unix"

// NewPipe creates an FDPair backed by a pipe(2): Reader and Writer are
// the two distinct ends. The caller owns both descriptors and must
// close them; this package never does.
func NewPipe() (FDPair, error) {
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_CLOEXEC); err != nil {
		return FDPair{}, err
	}
	return FDPair{Reader: fds[0], Writer: fds[1]}, nil
}
