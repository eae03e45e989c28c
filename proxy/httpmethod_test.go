package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHttpMethod_String(t *testing.T) {
	cases := []struct {
		method   HttpMethod
		expected string
	}{
		{GET, "GET"},
		{POST, "POST"},
		{DELETE, "DELETE"},
		{PATCH, "PATCH"},
		{HttpMethod(-1), "HttpMethod(-1)"},
		{HttpMethod(42), "HttpMethod(42)"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.method.String())
	}
}
