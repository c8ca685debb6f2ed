// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "math/big"

// Int128 and [Uint128] wrap [math/big.Int] with a distinct Go type so
// that a value's signedness-and-width classification survives a trip
// through a [slog.Attr] of kind [slog.KindAny]: [Hub.Handle]'s field
// visitor type-switches on these wrappers to bucket a field as I128 or
// U128 (spec §9, "Retaining typed field values"). No third-party 128-bit
// integer type appears anywhere in the retrieval pack, and math/big is
// the standard library's answer for arbitrary-precision integers, so it
// is used here directly rather than introducing a bespoke bit-pair type.
type Int128 struct {
	big.Int
}

// NewInt128 wraps v as an [Int128].
func NewInt128(v *big.Int) Int128 {
	var out Int128
	out.Int.Set(v)
	return out
}

// Int128FromInt64 wraps the int64 v as an [Int128].
func Int128FromInt64(v int64) Int128 {
	var out Int128
	out.Int.SetInt64(v)
	return out
}

// String implements [fmt.Stringer].
func (i Int128) String() string {
	return i.Int.String()
}

// Uint128 is the unsigned counterpart of [Int128]. See its docs for why
// this wraps [math/big.Int] rather than a fixed-width pair of uint64s.
type Uint128 struct {
	big.Int
}

// NewUint128 wraps v as a [Uint128].
func NewUint128(v *big.Int) Uint128 {
	var out Uint128
	out.Int.Set(v)
	return out
}

// Uint128FromUint64 wraps the uint64 v as a [Uint128].
func Uint128FromUint64(v uint64) Uint128 {
	var out Uint128
	out.Int.SetUint64(v)
	return out
}

// String implements [fmt.Stringer].
func (u Uint128) String() string {
	return u.Int.String()
}
