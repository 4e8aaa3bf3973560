package client

import (
	"context"
	"fmt"
	"reflect"

	"github.com/sirosfoundation/go-httpcodec/pkg/authorization"
)

// Override returns a new client that answers the given route value with
// the responder and defers every other route to the receiver. Equality is
// structural (reflect.DeepEqual), so another value of the same route case
// with a different payload still falls through. Overrides layer: a later
// Override is checked first, so the most recently added wins on exact
// match.
func (c *Client[Route]) Override(route Route, respond Responder) *Client[Route] {
	prev := c.dispatch
	return &Client[Route]{
		dispatch: func(ctx context.Context, r Route, getAuth authGetter) (Response, error) {
			if reflect.DeepEqual(r, route) {
				return respond(ctx)
			}
			if prev == nil {
				return Response{}, fmt.Errorf("%w: %+v", ErrNoResponder, r)
			}
			return prev(ctx, r, getAuth)
		},
		getAuth: c.getAuth,
		setAuth: c.setAuth,
	}
}

// OverrideAuthorization returns a new client whose current authorization
// always comes from the supplier, ignoring the receiver's own getter and
// setter. The whole dispatch chain reads the supplier, so applying it to a
// scoped client injects the supplied authorization into the wrapped routes.
// Use it for deterministic authorization in tests without mutating shared
// state.
func (c *Client[Route]) OverrideAuthorization(supply func() (authorization.Authorization, bool)) *Client[Route] {
	return &Client[Route]{
		dispatch: c.dispatch,
		getAuth:  supply,
		setAuth:  nil,
	}
}
