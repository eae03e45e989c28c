package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONResponse(t *testing.T) {
	response, err := JSONResponse(200, "some content", nil)

	assert.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
	assert.Equal(t, `"some content"`, response.Body)
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, response.Headers)
}

func TestJSONResponse_extraHeaders(t *testing.T) {
	body := map[string]string{"message": "nope"}
	response, err := JSONResponse(405, body, map[string]string{"Allow": "GET, POST"})

	expected := map[string]string{
		"Content-Type": "application/json",
		"Allow":        "GET, POST",
	}

	assert.NoError(t, err)
	assert.Equal(t, 405, response.StatusCode)
	assert.Equal(t, `{"message":"nope"}`, response.Body)
	assert.Equal(t, expected, response.Headers)
}

func TestJSONResponse_extraHeadersOverride(t *testing.T) {
	response, err := JSONResponse(200, nil, map[string]string{"Content-Type": "application/problem+json"})

	assert.NoError(t, err)
	assert.Equal(t, "null", response.Body)
	assert.Equal(t, "application/problem+json", response.Headers["Content-Type"])
}

func TestJSONResponse_error(t *testing.T) {
	_, err := JSONResponse(200, make(chan int), nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed encoding response body")
}
