package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(`["x","y"]`))
	assert.Equal(t, StringList{"x", "y"}, l)

	require.NoError(t, l.Scan([]byte(`["z"]`)))
	assert.Equal(t, StringList{"z"}, l)

	// nil and empty column text scan as an empty list
	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)
	require.NoError(t, l.Scan(""))
	assert.Empty(t, l)

	// malformed JSON degrades to empty instead of failing the row
	require.NoError(t, l.Scan("not json"))
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))
}

func TestInquiryTypeNormalize(t *testing.T) {
	assert.Equal(t, InquiryTestDrive, InquiryTestDrive.Normalize())
	assert.Equal(t, InquiryGeneral, InquiryType("spam").Normalize())
	assert.Equal(t, InquiryGeneral, InquiryType("").Normalize())
}
