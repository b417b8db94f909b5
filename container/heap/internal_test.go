// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "testing"

func (q *Interval[T]) Verify(t *testing.T) {
	t.Helper()
	if err := q.Check(); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
}

// HandleSlot exposes the slot a handle is bound to, for tests only.
func (q *Interval[T]) HandleSlot(h *Handle) int {
	s, err := q.table.resolve(h)
	if err != nil {
		return retired
	}
	return s
}
