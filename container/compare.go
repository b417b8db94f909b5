// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import "cmp"

// Comparator is an injected total order over T. It returns a negative
// number when a orders before b, zero when they are equivalent and a
// positive number when a orders after b. A comparator must stay consistent
// for as long as any container holds items compared by it; mutating a
// stored item's ordering key is undefined behavior.
type Comparator[T any] func(a, b T) int

// Ordered returns a Comparator for any natively ordered type.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a Comparator with the opposite order to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Equality reports whether two items are equal, independently of any
// Comparator order. It is used by containers that support searching or
// duplicate counting.
type Equality[T any] func(a, b T) bool

// Equal returns an Equality for any comparable type.
func Equal[T comparable]() Equality[T] {
	return func(a, b T) bool {
		return a == b
	}
}
