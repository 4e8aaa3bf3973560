package client

import (
	"context"

	"github.com/sirosfoundation/go-httpcodec/pkg/authorization"
)

// Scoped derives a client over a local, unauthorized route type. Each call
// first reads the calling client's current authorization; with none set the
// call fails immediately with ErrUnauthorizedRoute, without reaching the
// underlying dispatch function. Otherwise the local route is wrapped with
// the current authorization, mapped through toRoute into the outer route
// type, and dispatched through the parent client (so parent overrides still
// apply).
//
// The scoped client starts out sharing the parent's authorization getter
// and setter. The authorization check resolves the getter per call, so
// OverrideAuthorization on the scoped client takes effect.
func Scoped[Local, Route any](parent *Client[Route], toRoute func(authorization.Authorized[Local]) Route) *Client[Local] {
	return &Client[Local]{
		dispatch: func(ctx context.Context, local Local, getAuth authGetter) (Response, error) {
			auth, ok := getAuth()
			if !ok {
				return Response{}, ErrUnauthorizedRoute
			}
			route := toRoute(authorization.Authorized[Local]{
				Authorization: auth,
				Route:         local,
			})
			return parent.Request(ctx, route)
		},
		getAuth: parent.getAuth,
		setAuth: parent.setAuth,
	}
}
