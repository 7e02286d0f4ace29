// optval/optval.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package optval provides a tri-state numeric value: present or missing.
// Missing observations are the normal case in meteorological data, so
// absence is carried as data rather than as a sentinel (-9999, NaN) or an
// error. All operations are total; anything involving a missing operand
// yields missing.
package optval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number covers the numeric types a Value may wrap.
type Number interface {
	constraints.Integer | constraints.Float
}

// Value is an optional number. The zero value is missing.
type Value[T Number] struct {
	v  T
	ok bool
}

// Some returns a present Value holding v.
func Some[T Number](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// None returns a missing Value.
func None[T Number]() Value[T] {
	return Value[T]{}
}

// FromPtr returns Some(*p), or missing if p is nil.
func FromPtr[T Number](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the value is present.
func (v Value[T]) IsSome() bool { return v.ok }

// IsNone reports whether the value is missing.
func (v Value[T]) IsNone() bool { return !v.ok }

// Get returns the wrapped number and whether it is present.
func (v Value[T]) Get() (T, bool) { return v.v, v.ok }

// Or returns the wrapped number, or def if missing.
func (v Value[T]) Or(def T) T {
	if !v.ok {
		return def
	}
	return v.v
}

// Map applies f to a present value; missing passes through.
func (v Value[T]) Map(f func(T) T) Value[T] {
	if !v.ok {
		return v
	}
	return Some(f(v.v))
}

// AndThen chains a computation that may itself come up missing.
func (v Value[T]) AndThen(f func(T) Value[T]) Value[T] {
	if !v.ok {
		return v
	}
	return f(v.v)
}

// Add returns v+o, or missing if either operand is missing.
func (v Value[T]) Add(o Value[T]) Value[T] {
	if !v.ok || !o.ok {
		return None[T]()
	}
	return Some(v.v + o.v)
}

// Sub returns v-o, or missing if either operand is missing.
func (v Value[T]) Sub(o Value[T]) Value[T] {
	if !v.ok || !o.ok {
		return None[T]()
	}
	return Some(v.v - o.v)
}

// Mul returns v*o, or missing if either operand is missing.
func (v Value[T]) Mul(o Value[T]) Value[T] {
	if !v.ok || !o.ok {
		return None[T]()
	}
	return Some(v.v * o.v)
}

// Div returns v/o. Division by a present zero is missing, not a fault.
func (v Value[T]) Div(o Value[T]) Value[T] {
	if !v.ok || !o.ok || o.v == 0 {
		return None[T]()
	}
	return Some(v.v / o.v)
}

// Equal reports structural equality: two missing values are equal, a
// missing and a present value are not.
func (v Value[T]) Equal(o Value[T]) bool {
	if v.ok != o.ok {
		return false
	}
	return !v.ok || v.v == o.v
}

// Less reports whether a < b; ok is false when either side is missing,
// in which case the comparison carries no information.
func Less[T Number](a, b Value[T]) (less, ok bool) {
	if !a.ok || !b.ok {
		return false, false
	}
	return a.v < b.v, true
}

func (v Value[T]) String() string {
	if !v.ok {
		return "missing"
	}
	return fmt.Sprintf("%v", v.v)
}
