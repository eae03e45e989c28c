package proxy

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// ContentTypeJSON is the Content-Type carried by every JSONResponse.
const ContentTypeJSON = "application/json"

// JSONResponse encodes body as json and wraps it in a proxy response with the
// given status. extra headers are merged over the Content-Type header.
func JSONResponse(status int, body interface{}, extra map[string]string) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed encoding response body")
	}

	headers := map[string]string{
		"Content-Type": ContentTypeJSON,
	}

	for k, v := range extra {
		headers[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(b),
	}, nil
}
