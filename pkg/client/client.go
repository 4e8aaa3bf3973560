package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirosfoundation/go-httpcodec/pkg/authorization"
)

// Sentinel errors for client dispatch.
var (
	// ErrUnauthorizedRoute indicates a scoped client call was attempted
	// with no current authorization set. The dispatch function is never
	// invoked in that case.
	ErrUnauthorizedRoute = errors.New("unauthorized route")

	// ErrNoResponder indicates a route reached the bottom of the
	// override stack on a client with no real dispatch function.
	ErrNoResponder = errors.New("no responder configured for route")
)

// Response is the result of dispatching a route.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Responder produces a canned response in place of real dispatch.
type Responder func(ctx context.Context) (Response, error)

// Dispatch maps a fully-qualified route value to a response. The dispatch
// boundary is where a call suspends; everything around it is synchronous.
type Dispatch[Route any] func(ctx context.Context, route Route) (Response, error)

// authGetter reports the current authorization, if any.
type authGetter = func() (authorization.Authorization, bool)

// dispatchFunc is the internal dispatch shape. It receives the calling
// client's authorization getter so wrapping stages resolve the current
// authorization per call rather than at construction time; replacing a
// derived client's getter then governs its whole dispatch chain.
type dispatchFunc[Route any] func(ctx context.Context, route Route, getAuth authGetter) (Response, error)

// AuthStore holds the current ambient authorization. It is not guarded
// internally; callers sharing a store across goroutines must synchronize
// access themselves, or use Client.OverrideAuthorization instead.
type AuthStore struct {
	auth *authorization.Authorization
}

// NewAuthStore returns an empty authorization store.
func NewAuthStore() *AuthStore {
	return &AuthStore{}
}

// Get returns the current authorization, reporting whether one is set.
func (s *AuthStore) Get() (authorization.Authorization, bool) {
	if s.auth == nil {
		return authorization.Authorization{}, false
	}
	return *s.auth, true
}

// Set replaces the current authorization.
func (s *AuthStore) Set(auth authorization.Authorization) {
	s.auth = &auth
}

// Clear removes the current authorization.
func (s *AuthStore) Clear() {
	s.auth = nil
}

// Client dispatches route values. The zero value is not usable; construct
// clients with New. Clients are immutable: every Override* method returns
// a new client.
type Client[Route any] struct {
	dispatch dispatchFunc[Route]
	getAuth  authGetter
	setAuth  func(authorization.Authorization)
}

// Option configures a new client.
type Option[Route any] func(*Client[Route])

// WithAuthStore wires the client's authorization getter and setter to the
// given store. Scoped clients derived from this client share the store.
func WithAuthStore[Route any](store *AuthStore) Option[Route] {
	return func(c *Client[Route]) {
		c.getAuth = store.Get
		c.setAuth = store.Set
	}
}

// New creates a client over the given dispatch function. A nil dispatch is
// allowed for test clients built entirely from overrides; any route that
// falls through every override then fails with ErrNoResponder.
func New[Route any](dispatch Dispatch[Route], opts ...Option[Route]) *Client[Route] {
	c := &Client[Route]{}
	if dispatch != nil {
		c.dispatch = func(ctx context.Context, route Route, _ authGetter) (Response, error) {
			return dispatch(ctx, route)
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.getAuth == nil {
		store := NewAuthStore()
		c.getAuth = store.Get
		c.setAuth = store.Set
	}
	return c
}

// Request dispatches a route value.
func (c *Client[Route]) Request(ctx context.Context, route Route) (Response, error) {
	if c.dispatch == nil {
		return Response{}, fmt.Errorf("%w: %+v", ErrNoResponder, route)
	}
	return c.dispatch(ctx, route, c.getAuth)
}

// CurrentAuthorization returns the ambient authorization, reporting
// whether one is set.
func (c *Client[Route]) CurrentAuthorization() (authorization.Authorization, bool) {
	return c.getAuth()
}

// SetAuthorization replaces the ambient authorization. On a client whose
// authorization was overridden with OverrideAuthorization this is a no-op.
func (c *Client[Route]) SetAuthorization(auth authorization.Authorization) {
	if c.setAuth != nil {
		c.setAuth(auth)
	}
}

// Decode unmarshals a JSON response body into T.
func Decode[T any](resp Response) (T, error) {
	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}
