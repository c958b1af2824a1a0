// Package host provides a standalone execution context for running the node
// outside a full workflow engine, used by the web API and the CLI.
package host

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// Context carries the inputs of a single node execution: one parameter map
// per input item, the saved credentials, and the HTTP transport.
type Context struct {
	ExecutionID string
	Items       []map[string]any
	Creds       map[string]*models.Credentials
	Doer        protocol.Doer
	ContinueOn  bool
}

// Option configures a Context.
type Option func(*Context)

// WithCredentials registers a named credential entry.
func WithCredentials(name string, creds *models.Credentials) Option {
	return func(c *Context) { c.Creds[name] = creds }
}

// WithDoer overrides the HTTP transport, used by tests.
func WithDoer(doer protocol.Doer) Option {
	return func(c *Context) {
		if doer != nil {
			c.Doer = doer
		}
	}
}

// WithContinueOnFail makes failed items produce error items instead of
// aborting the execution.
func WithContinueOnFail(continueOnFail bool) Option {
	return func(c *Context) { c.ContinueOn = continueOnFail }
}

// NewContext builds an execution context over the given input items.
func NewContext(items []map[string]any, opts ...Option) *Context {
	c := &Context{
		ExecutionID: uuid.New().String(),
		Items:       items,
		Creds:       make(map[string]*models.Credentials),
		Doer:        &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Parameter returns the named parameter of an item, or fallback when the
// item has no value for it.
func (c *Context) Parameter(name string, itemIndex int, fallback any) any {
	if itemIndex < 0 || itemIndex >= len(c.Items) {
		return fallback
	}

	value, ok := c.Items[itemIndex][name]
	if !ok || value == nil {
		return fallback
	}

	return value
}

// Credentials returns the saved credential entry with the given name.
func (c *Context) Credentials(_ context.Context, name string) (*models.Credentials, error) {
	creds, ok := c.Creds[name]
	if !ok {
		return nil, fmt.Errorf("credentials '%s' not configured", name)
	}

	return creds, nil
}

func (c *Context) HTTPDoer() protocol.Doer {
	return c.Doer
}

func (c *Context) InputCount() int {
	return len(c.Items)
}

func (c *Context) ContinueOnFail() bool {
	return c.ContinueOn
}

var _ protocol.ExecutionContext = (*Context)(nil)
