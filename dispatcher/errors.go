package dispatcher

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies a failed request.
type Kind int

const (
	// KindUnknown is any error not raised by the dispatcher itself.
	KindUnknown Kind = iota
	// KindBadRequest covers bodies that can't be decoded or parsed.
	KindBadRequest
	// KindBackend covers table store rejections.
	KindBackend
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// Error tags a failure with its Kind. The message is the message of Err,
// unchanged.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Cause returns the underlying error.
func (e *Error) Cause() error {
	return e.Err
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func badRequest(err error) error {
	return &Error{Kind: KindBadRequest, Err: err}
}

func backendFailure(err error) error {
	return &Error{Kind: KindBackend, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// StatusMapper picks the response status for a failed request.
type StatusMapper func(error) int

// CollapsedStatus maps every failure to 400.
func CollapsedStatus(err error) int {
	return http.StatusBadRequest
}

// ClassifiedStatus maps bad requests to 400, table store failures to 502 and
// anything else to 500.
func ClassifiedStatus(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindBackend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Status mapping names accepted by ParseStatusMapping.
const (
	StatusMappingCollapsed  = "collapsed"
	StatusMappingClassified = "classified"
)

// ParseStatusMapping returns the StatusMapper registered under name.
func ParseStatusMapping(name string) (StatusMapper, error) {
	switch name {
	case StatusMappingCollapsed:
		return CollapsedStatus, nil
	case StatusMappingClassified:
		return ClassifiedStatus, nil
	default:
		return nil, fmt.Errorf("unknown status mapping '%s'", name)
	}
}
