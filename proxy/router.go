package proxy

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// ErrorHandler defines the function interface the router uses to handle any
// error that occurs while processing routes.
type ErrorHandler func(context.Context, events.APIGatewayProxyRequest, error) (events.APIGatewayProxyResponse, error)

// CatchAllHandler handles a request no route matched. allowed holds the
// methods of the routes whose pattern does match the request path, and is
// empty when the path itself is unknown.
type CatchAllHandler func(ctx context.Context, request events.APIGatewayProxyRequest, allowed []string) (events.APIGatewayProxyResponse, error)

// Router dispatches an incoming events.APIGatewayProxyRequest to the first
// route whose method and path pattern both match.
//
// A request no route matches goes to CatchAll, which is told the methods the
// request path does support so it can answer 405 with an Allow header. Any
// error a route or CatchAll returns is passed to CatchError.
//
// Example:
//
//	router := &proxy.Router{}
//	router.GET(".*", scan)
//	router.POST(".*", put)
//	router.AddCatchAllHandler(methodNotAllowed)
//
//	if !router.Valid() {
//		return router.BuildErrors()
//	}
//
//	lambda.Start(router.Route)
type Router struct {
	Routes     []*Route
	CatchAll   CatchAllHandler
	CatchError ErrorHandler

	errors []error
}

// Valid returns true if the routers' routes have all been built successfully.
// Otherwise false.
func (router *Router) Valid() bool {
	return len(router.errors) == 0
}

// BuildErrors returns a single error that encapsulates all the route errors
// found during router construction.
func (router *Router) BuildErrors() error {
	topError := errors.New("failed building router")

	for _, err := range router.errors {
		topError = errors.Wrap(topError, err.Error())
	}

	return topError
}

func (router *Router) add(method HttpMethod, pattern string, handler RouteHandler) {
	route, err := NewRoute(method, pattern, handler)
	if err != nil {
		router.errors = append(router.errors, err)
		return
	}

	router.Routes = append(router.Routes, route)
}

// GET adds a new GET route with the specified pattern match and handler.
func (router *Router) GET(pattern string, handler RouteHandler) {
	router.add(GET, pattern, handler)
}

// POST adds a new POST route with the specified pattern match and handler.
func (router *Router) POST(pattern string, handler RouteHandler) {
	router.add(POST, pattern, handler)
}

// AddCatchAllHandler attaches a catchall handler to the router.
func (router *Router) AddCatchAllHandler(handler CatchAllHandler) {
	router.CatchAll = handler
}

// AddErrorHandler attaches a error handler to the router.
func (router *Router) AddErrorHandler(handler ErrorHandler) {
	router.CatchError = handler
}

// AllowedMethods returns the distinct methods of the routes whose pattern
// matches request's path, in the order they were added.
func (router *Router) AllowedMethods(request events.APIGatewayProxyRequest) []string {
	seen := make(map[HttpMethod]bool)
	methods := []string{}

	for _, route := range router.Routes {
		if seen[route.Method] || !route.MatchesPath(request) {
			continue
		}

		seen[route.Method] = true
		methods = append(methods, route.Method.String())
	}

	return methods
}

func (router *Router) routeInternal(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	for _, route := range router.Routes {
		if route.IsMatch(request) {
			return route.Follow(ctx, request)
		}
	}

	if router.CatchAll != nil {
		return router.CatchAll(ctx, request, router.AllowedMethods(request))
	}

	return events.APIGatewayProxyResponse{}, fmt.Errorf("'%s %s' not found", request.HTTPMethod, request.Path)
}

// Route executes the first matching route, falling back to CatchAll and then
// to a not found error. When CatchError is set any error is passed to it and
// its result returned instead.
func (router *Router) Route(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	response, err := router.routeInternal(ctx, request)

	if err != nil && router.CatchError != nil {
		return router.CatchError(ctx, request, err)
	}

	return response, err
}
