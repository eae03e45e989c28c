package proxy

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// RouteHandler defines the function interface the route uses to execute a
// request when the route is matched.
type RouteHandler func(*RouteContext) (events.APIGatewayProxyResponse, error)

// Route pairs a HttpMethod with a path Regex. A request matching both is
// handed to Handler.
type Route struct {
	Method  HttpMethod
	Regex   *regexp.Regexp
	Handler RouteHandler
}

// NewRoute returns a Route for the specified method, pattern and handler. The
// pattern is anchored and tolerates a trailing slash.
func NewRoute(method HttpMethod, pattern string, handler RouteHandler) (*Route, error) {
	rx, err := regexp.Compile("^" + pattern + "/?$")
	if err != nil {
		return nil, errors.Wrapf(err, "failed compiling regex pattern '%s'", pattern)
	}

	return &Route{
		Method:  method,
		Regex:   rx,
		Handler: handler,
	}, nil
}

// String returns a string representation of this route.
func (route *Route) String() string {
	return fmt.Sprintf("%s %s", route.Method, route.Regex)
}

// MatchesPath reports whether the request path satisfies the route pattern,
// regardless of method.
func (route *Route) MatchesPath(request events.APIGatewayProxyRequest) bool {
	return route.Regex.MatchString(request.Path)
}

// IsMatch reports whether both method and path of request match the route.
// Method comparison is case sensitive.
func (route *Route) IsMatch(request events.APIGatewayProxyRequest) bool {
	return route.Method.String() == request.HTTPMethod && route.MatchesPath(request)
}

// Follow executes the route's handler for request.
func (route *Route) Follow(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return route.Handler(&RouteContext{
		Context: ctx,
		Request: request,
	})
}
