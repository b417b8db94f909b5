// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container_test

import (
	"strings"
	"testing"

	"github.com/lundmikkel/C6/container"
)

func TestComparators(t *testing.T) {
	cmp := container.Ordered[int]()
	if got, want := cmp(1, 2), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cmp(2, 2), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cmp(3, 2), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	rev := container.Reverse(cmp)
	if got, want := rev(1, 2), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rev(3, 2), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rev(2, 2), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Custom comparator over a struct key.
	type pair struct{ key string }
	byKey := func(a, b pair) int { return strings.Compare(a.key, b.key) }
	if got := byKey(pair{"a"}, pair{"b"}); got >= 0 {
		t.Errorf("got %v, want < 0", got)
	}
}

func TestEquality(t *testing.T) {
	eq := container.Equal[string]()
	if !eq("a", "a") || eq("a", "b") {
		t.Errorf("unexpected equality results")
	}
	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }
	if !caseless("Go", "gO") {
		t.Errorf("expected fold equality")
	}
}
