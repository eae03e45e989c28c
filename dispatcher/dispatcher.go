// Package dispatcher turns api gateway proxy requests into table store calls.
//
// GET scans the table named by the TableName query parameter and POST puts the
// json body as a single item. Any other method is answered with 405. Failures
// are logged once and returned as a json {"message": ...} body.
package dispatcher

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/tableproxy/lambdautils"
	"github.com/prognoshealth/tableproxy/proxy"
	"github.com/prognoshealth/tableproxy/tablestore"
)

// TableNameParameter is the query parameter naming the table to scan.
const TableNameParameter = "TableName"

// anyPath matches every request path; dispatch is by method only.
const anyPath = ".*"

// TableStore is the table capability the Dispatcher drives. Results and items
// are opaque json values.
type TableStore interface {
	Scan(ctx context.Context, input tablestore.ScanInput) (interface{}, error)
	PutItem(ctx context.Context, item interface{}) (interface{}, error)
}

// Message is the body of every failure response.
type Message struct {
	Message string `json:"message"`
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger failures are reported to.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithStatusMapper sets how failures map to response statuses. The default is
// CollapsedStatus.
func WithStatusMapper(mapper StatusMapper) Option {
	return func(d *Dispatcher) {
		d.status = mapper
	}
}

// Dispatcher handles proxy requests against a TableStore. It holds no per
// request state and may serve concurrent invocations.
type Dispatcher struct {
	store  TableStore
	logger logrus.FieldLogger
	status StatusMapper
	router *proxy.Router
}

// New returns a Dispatcher for store.
func New(store TableStore, opts ...Option) (*Dispatcher, error) {
	if store == nil {
		return nil, errors.New("table store is required")
	}

	d := &Dispatcher{
		store:  store,
		logger: logrus.StandardLogger(),
		status: CollapsedStatus,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logrus.StandardLogger()
	}

	if d.status == nil {
		d.status = CollapsedStatus
	}

	router := &proxy.Router{}
	router.GET(anyPath, d.scan)
	router.POST(anyPath, d.put)
	router.AddCatchAllHandler(d.unsupported)
	router.AddErrorHandler(d.failed)

	if !router.Valid() {
		return nil, router.BuildErrors()
	}

	d.router = router
	return d, nil
}

// Handle dispatches request and always returns a nil error; failures are
// expressed in the response.
func (d *Dispatcher) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return d.router.Route(ctx, request)
}

func (d *Dispatcher) scan(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	input := tablestore.ScanInput{TableName: rctx.Query(TableNameParameter)}

	result, err := d.store.Scan(rctx.Context, input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, storeFailure(err)
	}

	return respond(http.StatusOK, result)
}

func (d *Dispatcher) put(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	body, err := rctx.Body()
	if err != nil {
		return events.APIGatewayProxyResponse{}, badRequest(err)
	}

	item, err := decodeItem(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, badRequest(err)
	}

	ack, err := d.store.PutItem(rctx.Context, item)
	if err != nil {
		return events.APIGatewayProxyResponse{}, storeFailure(err)
	}

	return respond(http.StatusNoContent, ack)
}

func (d *Dispatcher) unsupported(ctx context.Context, request events.APIGatewayProxyRequest, allowed []string) (events.APIGatewayProxyResponse, error) {
	headers := map[string]string{
		"Allow": strings.Join(allowed, ", "),
	}

	body := Message{Message: "Unsupported method: " + request.HTTPMethod}
	return proxy.JSONResponse(http.StatusMethodNotAllowed, body, headers)
}

func (d *Dispatcher) failed(ctx context.Context, request events.APIGatewayProxyRequest, err error) (events.APIGatewayProxyResponse, error) {
	fields := lambdautils.GetLambdaMetaData(ctx).Fields()
	fields["method"] = request.HTTPMethod
	fields["path"] = request.Path
	fields["kind"] = KindOf(err).String()

	d.logger.WithFields(fields).WithError(err).Error("request failed")

	return proxy.JSONResponse(d.status(err), Message{Message: err.Error()}, nil)
}

// decodeItem parses body as exactly one json value. Numbers are kept as
// json.Number so integers beyond 2^53 reach the store intact.
func decodeItem(body string) (interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(body))
	decoder.UseNumber()

	var item interface{}
	if err := decoder.Decode(&item); err != nil {
		if err == io.EOF {
			return nil, errors.New("unexpected end of JSON input")
		}

		return nil, err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("invalid character after top-level value")
	}

	return item, nil
}

// storeFailure tags a table store error: rejected input is a bad request,
// anything else a backend failure.
func storeFailure(err error) error {
	if errors.Is(err, tablestore.ErrInvalidRequest) {
		return badRequest(err)
	}

	return backendFailure(err)
}

// respond encodes a table store result. A result that can't be encoded is a
// backend failure.
func respond(status int, result interface{}) (events.APIGatewayProxyResponse, error) {
	response, err := proxy.JSONResponse(status, result, nil)
	if err != nil {
		return events.APIGatewayProxyResponse{}, backendFailure(err)
	}

	return response, nil
}
