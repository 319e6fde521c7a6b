// Package types provides value types shared by the resource models.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MoneyPtr returns a pointer to a copy of m.
func MoneyPtr(m Money) *Money {
	return &m
}

// EqualMoney compares nullable amounts numerically, so 1.5 equals 1.50.
func EqualMoney(a, b *Money) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// EqualPtr compares nullable comparable values by content.
func EqualPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// ClonePtr returns a pointer to a copy of *p, or nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
