package crypt_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/crypt"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := crypt.Encrypt("D1234567")
	require.NoError(t, err)
	assert.NotEqual(t, "D1234567", enc)

	plain, err := crypt.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "D1234567", plain)
}

func TestEncryptIsRandomised(t *testing.T) {
	first, err := crypt.Encrypt("same-value")
	require.NoError(t, err)
	second, err := crypt.Encrypt("same-value")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	p1, err := crypt.Decrypt(first)
	require.NoError(t, err)
	p2, err := crypt.Decrypt(second)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	enc, err := crypt.Encrypt("D1234567")
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(enc)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.URLEncoding.EncodeToString(raw)

	_, err = crypt.Decrypt(tampered)
	assert.ErrorIs(t, err, crypt.ErrDecrypt)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	_, err := crypt.Decrypt("%%% not base64 %%%")
	assert.ErrorIs(t, err, crypt.ErrDecrypt)

	// valid base64 but shorter than a nonce
	_, err = crypt.Decrypt(base64.URLEncoding.EncodeToString([]byte("tiny")))
	assert.ErrorIs(t, err, crypt.ErrDecrypt)
}

func TestEncryptEmptyString(t *testing.T) {
	enc, err := crypt.Encrypt("")
	require.NoError(t, err)

	plain, err := crypt.Decrypt(enc)
	require.NoError(t, err)
	assert.Empty(t, plain)
}
