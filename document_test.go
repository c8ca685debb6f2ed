// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMarshalCanonicalExtJSONScalars(t *testing.T) {
	doc := NewDocument().
		Append("d", DoubleValue(1.5)).
		Append("s", StringValue("hi")).
		Append("i32", Int32Value(42)).
		Append("i64", Int64Value(9000000000)).
		Append("b", BooleanValue(true)).
		Append("n", NullValue())

	text, err := doc.MarshalCanonicalExtJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"d":{"$numberDouble":"1.5"},"s":"hi","i32":{"$numberInt":"42"},`+
			`"i64":{"$numberLong":"9000000000"},"b":true,"n":null}`,
		text,
	)
}

func TestDocumentMarshalCanonicalExtJSONObjectID(t *testing.T) {
	id, err := ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	doc := NewDocument().Append("_id", ObjectIDValue(id))
	text, err := doc.MarshalCanonicalExtJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"_id":{"$oid":"507f1f77bcf86cd799439011"}}`, text)
}

func TestDocumentMarshalCanonicalExtJSONDateTime(t *testing.T) {
	ts := time.UnixMilli(1700000000000).UTC()
	doc := NewDocument().Append("at", DateTimeValue(ts))
	text, err := doc.MarshalCanonicalExtJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"at":{"$date":{"$numberLong":"1700000000000"}}}`, text)
}

func TestDocumentMarshalCanonicalExtJSONNestedDocumentAndArray(t *testing.T) {
	inner := NewDocument().Append("y", Int32Value(1))
	doc := NewDocument().
		Append("nested", DocumentValue(inner)).
		Append("list", ArrayValue([]Value{Int32Value(1), StringValue("two")}))
	text, err := doc.MarshalCanonicalExtJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"nested":{"y":{"$numberInt":"1"}},"list":[{"$numberInt":"1"},"two"]}`, text)
}

func TestDocumentMarshalCanonicalExtJSONEscaping(t *testing.T) {
	doc := NewDocument().Append("s", StringValue("a\"b\nc"))
	text, err := doc.MarshalCanonicalExtJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"s":"a\"b\nc"}`, text)
}

func TestDocumentLen(t *testing.T) {
	var nilDoc *Document
	assert.Equal(t, 0, nilDoc.Len())

	doc := NewDocument().Append("a", Int32Value(1)).Append("b", Int32Value(2))
	assert.Equal(t, 2, doc.Len())
}

func TestFormatCanonicalDoubleSpecialValues(t *testing.T) {
	doc := NewDocument().Append("nan", DoubleValue(0.0 / zero())).
		Append("pinf", DoubleValue(1 / zero())).
		Append("ninf", DoubleValue(-1 / zero()))
	text, err := doc.MarshalCanonicalExtJSON()
	require.NoError(t, err)
	assert.Contains(t, text, `"$numberDouble":"NaN"`)
	assert.Contains(t, text, `"$numberDouble":"Infinity"`)
	assert.Contains(t, text, `"$numberDouble":"-Infinity"`)
}

// zero returns 0.0 without the compiler folding the division by it into
// a constant-evaluation error.
func zero() float64 { return 0.0 }
