package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/bind"
)

type testPayload struct {
	Name string `json:"name" validate:"required"`
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestJSONDecodesAndValidates(t *testing.T) {
	var in testPayload
	errs, err := bind.JSON(jsonRequest(`{"name":"Prince"}`), &in)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, "Prince", in.Name)
}

func TestJSONReturnsFieldErrors(t *testing.T) {
	var in testPayload
	errs, err := bind.JSON(jsonRequest(`{}`), &in)
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "name")
}

func TestJSONRejectsEmptyBody(t *testing.T) {
	var in testPayload
	_, err := bind.JSON(jsonRequest(""), &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestJSONRejectsTrailingData(t *testing.T) {
	var in testPayload
	_, err := bind.JSON(jsonRequest(`{"name":"a"}{"name":"b"}`), &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected data")
}

func TestJSONRejectsMalformedBody(t *testing.T) {
	var in testPayload
	_, err := bind.JSON(jsonRequest(`{"name":`), &in)
	assert.Error(t, err)
}
