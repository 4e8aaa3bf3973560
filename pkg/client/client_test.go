package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-httpcodec/pkg/authorization"
)

// siteRoute is the outer, fully-qualified route union.
type siteRoute struct {
	API authorization.Authorized[apiRoute]
}

// apiRoute is the local, unauthorized route union.
type apiRoute struct {
	Name string
	ID   int
}

func okResponder(body string) Responder {
	return func(ctx context.Context) (Response, error) {
		return Response{StatusCode: 200, Body: []byte(body)}, nil
	}
}

func TestRequest_DispatchesRoute(t *testing.T) {
	var dispatched []apiRoute
	c := New(func(ctx context.Context, route apiRoute) (Response, error) {
		dispatched = append(dispatched, route)
		return Response{StatusCode: 200}, nil
	})

	resp, err := c.Request(context.Background(), apiRoute{Name: "users", ID: 1})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []apiRoute{{Name: "users", ID: 1}}, dispatched)
}

func TestRequest_NilDispatchFails(t *testing.T) {
	c := New[apiRoute](nil)

	_, err := c.Request(context.Background(), apiRoute{Name: "users"})

	assert.ErrorIs(t, err, ErrNoResponder)
}

func TestScoped_NoAuthorizationFailsFast(t *testing.T) {
	invoked := false
	base := New(func(ctx context.Context, route siteRoute) (Response, error) {
		invoked = true
		return Response{StatusCode: 200}, nil
	})

	scoped := Scoped(base, func(a authorization.Authorized[apiRoute]) siteRoute {
		return siteRoute{API: a}
	})

	_, err := scoped.Request(context.Background(), apiRoute{Name: "users", ID: 1})

	assert.ErrorIs(t, err, ErrUnauthorizedRoute)
	assert.False(t, invoked, "dispatch must never be reached without authorization")
}

func TestScoped_WrapsRouteWithCurrentAuthorization(t *testing.T) {
	var dispatched []siteRoute
	base := New(func(ctx context.Context, route siteRoute) (Response, error) {
		dispatched = append(dispatched, route)
		return Response{StatusCode: 200}, nil
	})

	scoped := Scoped(base, func(a authorization.Authorized[apiRoute]) siteRoute {
		return siteRoute{API: a}
	})
	scoped.SetAuthorization(authorization.Bearer("tok"))

	_, err := scoped.Request(context.Background(), apiRoute{Name: "users", ID: 7})

	require.NoError(t, err)
	require.Len(t, dispatched, 1)
	assert.Equal(t, authorization.Bearer("tok"), dispatched[0].API.Authorization)
	assert.Equal(t, apiRoute{Name: "users", ID: 7}, dispatched[0].API.Route)
}

func TestScoped_SharesAuthStoreWithParent(t *testing.T) {
	base := New(func(ctx context.Context, route siteRoute) (Response, error) {
		return Response{StatusCode: 200}, nil
	})
	scoped := Scoped(base, func(a authorization.Authorized[apiRoute]) siteRoute {
		return siteRoute{API: a}
	})

	base.SetAuthorization(authorization.Custom("key"))

	auth, ok := scoped.CurrentAuthorization()
	require.True(t, ok)
	assert.Equal(t, authorization.Custom("key"), auth)
}

func TestOverride_ExactMatch(t *testing.T) {
	c := New[apiRoute](nil).
		Override(apiRoute{Name: "users", ID: 1}, okResponder(`{"ok":true}`))

	resp, err := c.Request(context.Background(), apiRoute{Name: "users", ID: 1})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
}

func TestOverride_DifferentPayloadFallsThrough(t *testing.T) {
	var fellThrough []apiRoute
	base := New(func(ctx context.Context, route apiRoute) (Response, error) {
		fellThrough = append(fellThrough, route)
		return Response{StatusCode: 404}, nil
	})
	c := base.Override(apiRoute{Name: "users", ID: 1}, okResponder("pinned"))

	resp, err := c.Request(context.Background(), apiRoute{Name: "users", ID: 2})

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, []apiRoute{{Name: "users", ID: 2}}, fellThrough)
}

func TestOverride_MostRecentWins(t *testing.T) {
	route := apiRoute{Name: "users", ID: 1}
	c := New[apiRoute](nil).
		Override(route, okResponder("older")).
		Override(route, okResponder("newer"))

	resp, err := c.Request(context.Background(), route)

	require.NoError(t, err)
	assert.Equal(t, "newer", string(resp.Body))
}

func TestOverride_FallthroughWithoutDispatchFails(t *testing.T) {
	c := New[apiRoute](nil).
		Override(apiRoute{Name: "users", ID: 1}, okResponder("pinned"))

	_, err := c.Request(context.Background(), apiRoute{Name: "posts", ID: 9})

	assert.ErrorIs(t, err, ErrNoResponder)
}

func TestOverride_DoesNotMutateOriginal(t *testing.T) {
	route := apiRoute{Name: "users", ID: 1}
	base := New[apiRoute](nil)
	_ = base.Override(route, okResponder("pinned"))

	_, err := base.Request(context.Background(), route)

	assert.ErrorIs(t, err, ErrNoResponder, "original client unchanged")
}

func TestOverrideAuthorization_IgnoresStore(t *testing.T) {
	var dispatched []siteRoute
	base := New(func(ctx context.Context, route siteRoute) (Response, error) {
		dispatched = append(dispatched, route)
		return Response{StatusCode: 200}, nil
	})
	base.SetAuthorization(authorization.Bearer("from-store"))

	fixed := base.OverrideAuthorization(func() (authorization.Authorization, bool) {
		return authorization.Bearer("from-supplier"), true
	})
	scoped := Scoped(fixed, func(a authorization.Authorized[apiRoute]) siteRoute {
		return siteRoute{API: a}
	})

	_, err := scoped.Request(context.Background(), apiRoute{Name: "users", ID: 1})

	require.NoError(t, err)
	require.Len(t, dispatched, 1)
	assert.Equal(t, authorization.Bearer("from-supplier"), dispatched[0].API.Authorization)

	// The setter is gone on the overridden client.
	fixed.SetAuthorization(authorization.Bearer("mutated"))
	auth, ok := fixed.CurrentAuthorization()
	require.True(t, ok)
	assert.Equal(t, authorization.Bearer("from-supplier"), auth)
}

func TestOverrideAuthorization_AppliesToScopedClient(t *testing.T) {
	var dispatched []siteRoute
	base := New(func(ctx context.Context, route siteRoute) (Response, error) {
		dispatched = append(dispatched, route)
		return Response{StatusCode: 200}, nil
	})
	scoped := Scoped(base, func(a authorization.Authorized[apiRoute]) siteRoute {
		return siteRoute{API: a}
	})

	// No store auth is set: only the supplier authorizes the call.
	injected := scoped.OverrideAuthorization(func() (authorization.Authorization, bool) {
		return authorization.Bearer("from-supplier"), true
	})

	auth, ok := injected.CurrentAuthorization()
	require.True(t, ok)
	assert.Equal(t, authorization.Bearer("from-supplier"), auth)

	resp, err := injected.Request(context.Background(), apiRoute{Name: "users", ID: 1})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, dispatched, 1)
	assert.Equal(t, authorization.Bearer("from-supplier"), dispatched[0].API.Authorization)

	// The original scoped client still has no authorization.
	_, err = scoped.Request(context.Background(), apiRoute{Name: "users", ID: 1})
	assert.ErrorIs(t, err, ErrUnauthorizedRoute)
}

func TestDecode(t *testing.T) {
	type payload struct {
		OK bool `json:"ok"`
	}

	out, err := Decode[payload](Response{Body: []byte(`{"ok":true}`)})

	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestDecode_Malformed(t *testing.T) {
	type payload struct{}

	_, err := Decode[payload](Response{Body: []byte("not json")})

	assert.Error(t, err)
}

func TestWithLogging_PassesThrough(t *testing.T) {
	c := New[apiRoute](nil).
		Override(apiRoute{Name: "users", ID: 1}, okResponder("ok")).
		WithLogging(nil)

	resp, err := c.Request(context.Background(), apiRoute{Name: "users", ID: 1})

	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp.Body))
}

func TestInstrument_PassesThrough(t *testing.T) {
	metrics := NewMetrics("httpcodec_test")
	c := New[apiRoute](nil).
		Override(apiRoute{Name: "users", ID: 1}, okResponder("ok")).
		Instrument(metrics)

	resp, err := c.Request(context.Background(), apiRoute{Name: "users", ID: 1})

	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp.Body))

	_, err = c.Request(context.Background(), apiRoute{Name: "posts", ID: 2})
	assert.ErrorIs(t, err, ErrNoResponder)
}
