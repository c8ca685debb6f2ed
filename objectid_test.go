// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectIDUniqueAndWellFormed(t *testing.T) {
	a := NewObjectID()
	b := NewObjectID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a.Hex(), 24)
}

func TestObjectIDFromHexRoundTrip(t *testing.T) {
	id := NewObjectID()
	parsed, err := ObjectIDFromHex(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestObjectIDFromHexInvalid(t *testing.T) {
	_, err := ObjectIDFromHex("too-short")
	assert.Error(t, err)

	_, err = ObjectIDFromHex("zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.Error(t, err)
}

func TestObjectIDStringMatchesHex(t *testing.T) {
	id := NewObjectID()
	assert.Equal(t, id.Hex(), id.String())
}
