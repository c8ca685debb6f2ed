// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTruncateOnBoundaryEmoji mirrors the original source's prose
// truncation table exactly: 🤔🤔 is 8 bytes, each emoji 4 bytes.
func TestTruncateOnBoundaryEmoji(t *testing.T) {
	const singleEmoji = "🤔"
	const twoEmoji = "🤔🤔"
	assert.Equal(t, 8, len(twoEmoji))

	// start of string is a boundary, so we should truncate there
	assert.Equal(t, "", TruncateOnBoundary(twoEmoji, 0))

	// we should round up to the end of the first emoji
	assert.Equal(t, singleEmoji, TruncateOnBoundary(twoEmoji, 1))

	// 4 is a boundary, so we should truncate there
	assert.Equal(t, singleEmoji, TruncateOnBoundary(twoEmoji, 4))

	// we should round up to the full string
	assert.Equal(t, twoEmoji, TruncateOnBoundary(twoEmoji, 5))

	// end of string is a boundary, so we should truncate there
	assert.Equal(t, twoEmoji, TruncateOnBoundary(twoEmoji, 8))

	// longer than the original n should return the full string unchanged
	assert.Equal(t, twoEmoji, TruncateOnBoundary(twoEmoji, 10))
}

func TestTruncateOnBoundaryNegative(t *testing.T) {
	assert.Equal(t, "", TruncateOnBoundary("hello", -1))
}

func TestTruncateOnBoundaryIdempotent(t *testing.T) {
	s := "🤔🤔"
	once := TruncateOnBoundary(s, 10)
	twice := TruncateOnBoundary(once, 10)
	assert.Equal(t, once, twice)
}

func TestSerializeDocumentTruncates(t *testing.T) {
	doc := NewDocument().Append("x", StringValue("y"))
	text := SerializeDocument(doc, 5)
	assert.Equal(t, `{"x":`, text) // all-ASCII, so cut at exactly 5 bytes
	assert.True(t, len(text) <= len(`{"x":"y"}`))
}

func TestSerializeDocumentNoTruncationNeeded(t *testing.T) {
	doc := NewDocument().Append("x", Int32Value(1))
	full, err := doc.MarshalCanonicalExtJSON()
	assert.NoError(t, err)
	assert.Equal(t, full, SerializeDocument(doc, len(full)+100))
}
