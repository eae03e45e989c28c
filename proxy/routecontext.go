package proxy

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// RouteContext contains all the request information for a route when matched.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayProxyRequest
}

// Body returns a string representation of the request body
func (ctx *RouteContext) Body() (string, error) {
	if ctx.Request.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(ctx.Request.Body)
		if err != nil {
			return "", errors.Wrap(err, "unable to decode request body")
		}

		return string(b), nil
	}

	return ctx.Request.Body, nil
}

// Query returns the named query string parameter, or "" when the request
// carries no such parameter.
func (ctx *RouteContext) Query(name string) string {
	return ctx.Request.QueryStringParameters[name]
}
