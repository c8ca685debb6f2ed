// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "fmt"

// TruncateOnBoundary shortens s to the smallest length m such that
// m >= n and m is a UTF-8 character boundary of s (position 0 and
// position len(s) both count as boundaries). If n >= len(s), s is
// returned unchanged.
//
// This is a direct byte-budget, not a rune count: the result's length in
// bytes is always >= min(n, len(s)) and <= len(s), and it is always valid
// UTF-8 (spec §4.1, P1). The function is idempotent for any n >= len(s)
// (P2).
func TruncateOnBoundary(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if n >= len(s) {
		return s
	}
	m := n
	for m < len(s) && !isUTF8Boundary(s, m) {
		m++
	}
	return s[:m]
}

// isUTF8Boundary reports whether byte offset i in s lies on a UTF-8
// character boundary. Continuation bytes have the high bits 10xxxxxx
// (0x80-0xBF); any other leading byte (including the first byte of a
// multi-byte sequence) starts a new character.
func isUTF8Boundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	return s[i]&0xC0 != 0x80
}

// SerializeDocument renders doc as canonical extended JSON and truncates
// it to n bytes on a UTF-8 boundary (spec §4.1). If serialization fails,
// it returns the [Document] kind's failure fallback string instead,
// never an error: emission is always best-effort (spec §7).
func SerializeDocument(doc *Document, n int) string {
	text, err := doc.MarshalCanonicalExtJSON()
	if err != nil {
		return fmt.Sprintf("Failed to serialize document: %s", err)
	}
	return TruncateOnBoundary(text, n)
}
