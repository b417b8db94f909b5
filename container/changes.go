// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

// Change describes one committed structural mutation of a container. A
// replacement is reported as a removal/addition pair. Cleared is set when
// the container was emptied wholesale, in which case Removed may be nil.
type Change[T any] struct {
	Added   []T
	Removed []T
	Cleared bool
}

// Observer receives a Change after the mutation that produced it has been
// fully committed and all container invariants restored. Containers invoke
// at most one observer; multi-subscriber dispatch and event filtering are
// provided by the event package.
type Observer[T any] func(Change[T])
