package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"media-uploader/pkg/formdata"

	"github.com/gofiber/fiber/v2"
)

// TransportError is any failed exchange with the provider: network error,
// timeout, non-2xx status or an undecodable body. Body keeps the raw
// response for diagnostics.
type TransportError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Transport posts encoded bodies to the provider with fiber's HTTP client.
type Transport struct{}

func NewTransport() *Transport {
	return &Transport{}
}

// Post streams body to url and decodes a 2xx JSON response into out. The
// request is bounded by timeout and by the context deadline, whichever is
// sooner.
func (t *Transport) Post(ctx context.Context, url string, body *formdata.Body, timeout time.Duration, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return &TransportError{Err: err}
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return &TransportError{Err: context.DeadlineExceeded}
	}

	agent := fiber.Post(url)
	agent.ContentType(body.ContentType)
	agent.BodyStream(body.Reader(), int(body.Size))
	agent.Timeout(timeout)
	if err := agent.Parse(); err != nil {
		return &TransportError{Err: fmt.Errorf("prepare request: %w", err)}
	}

	code, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return &TransportError{StatusCode: code, Body: respBody, Err: errors.Join(errs...)}
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return &TransportError{StatusCode: code, Body: respBody, Err: fmt.Errorf("unexpected status %d", code)}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &TransportError{StatusCode: code, Body: respBody, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
