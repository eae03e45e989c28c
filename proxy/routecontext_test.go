package proxy

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteContext_Body(t *testing.T) {
	request := newRequest("POST", "/items")
	request.Body = "some content"

	ctx := &RouteContext{Request: request}

	actual, err := ctx.Body()

	assert.NoError(t, err)
	assert.Equal(t, "some content", actual)
}

func TestRouteContext_Body_encoded(t *testing.T) {
	request := newRequest("POST", "/items")
	request.Body = base64.StdEncoding.EncodeToString([]byte(`{"id": "1"}`))
	request.IsBase64Encoded = true

	ctx := &RouteContext{Request: request}

	actual, err := ctx.Body()

	assert.NoError(t, err)
	assert.Equal(t, `{"id": "1"}`, actual)
}

func TestRouteContext_Body_error(t *testing.T) {
	request := newRequest("POST", "/items")
	request.Body = "sefdfxsdf.d.dsd"
	request.IsBase64Encoded = true

	ctx := &RouteContext{Request: request}

	_, err := ctx.Body()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to decode request body")
}

func TestRouteContext_Query(t *testing.T) {
	request := newRequest("GET", "/items")
	request.QueryStringParameters["TableName"] = "MyTable"

	ctx := &RouteContext{Request: request}

	assert.Equal(t, "MyTable", ctx.Query("TableName"))
	assert.Equal(t, "", ctx.Query("Missing"))
}

func TestRouteContext_Query_nilParameters(t *testing.T) {
	request := newRequest("GET", "/items")
	request.QueryStringParameters = nil

	ctx := &RouteContext{Request: request}

	assert.Equal(t, "", ctx.Query("TableName"))
}
