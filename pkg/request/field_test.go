package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
)

func TestQuery_ConsumesOnlyMatchedFields(t *testing.T) {
	req := New()
	req.Query.Add("name", "ada")
	req.Query.Add("age", "36")
	req.Query.Add("debug", "1")

	name, err := Query("name", codec.String()).Parse(req)
	require.NoError(t, err)
	age, err := Query("age", codec.Int()).Parse(req)
	require.NoError(t, err)

	assert.Equal(t, "ada", name)
	assert.Equal(t, 36, age)

	// Unmatched remainder is observable untouched.
	assert.False(t, req.Query.Has("name"))
	assert.False(t, req.Query.Has("age"))
	assert.True(t, req.Query.Has("debug"))
}

func TestQuery_Missing(t *testing.T) {
	req := New()

	_, err := Query("name", codec.String()).Parse(req)

	assert.ErrorIs(t, err, ErrMissingField)
}

func TestQuery_Print(t *testing.T) {
	req := New()

	err := Query("age", codec.Int()).Print(36, req)

	require.NoError(t, err)
	v, ok := req.Query.Pull("age")
	require.True(t, ok)
	assert.Equal(t, "36", *v)
}

func TestHeader_RoundTrip(t *testing.T) {
	c := Header("X-Request-Id", codec.String())

	req := New()
	require.NoError(t, c.Print("abc-123", req))

	id, err := c.Parse(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
	assert.False(t, req.Headers.Has("X-Request-Id"))
}

func TestHeader_UnconsumedValue(t *testing.T) {
	req := New()
	req.Headers.Add("Authorization", "Bearer token extra")

	_, err := Header("Authorization", codec.SkipFirst(codec.Literal("Bearer "), codec.UpTo(" "))).Parse(req)

	assert.ErrorIs(t, err, ErrUnconsumedInput)
}

func TestMethod(t *testing.T) {
	req := New()
	req.Method = "POST"

	_, err := Method("POST").Parse(req)
	assert.NoError(t, err)

	_, err = Method("GET").Parse(req)
	assert.ErrorIs(t, err, codec.ErrUnexpectedInput)

	printed := New()
	require.NoError(t, Method("DELETE").Print(codec.Unit{}, printed))
	assert.Equal(t, "DELETE", printed.Method)
}

func TestPath_ConsumesSegments(t *testing.T) {
	req := New()
	req.Path = []string{"users", "42", "posts"}

	_, err := PathLiteral("users").Parse(req)
	require.NoError(t, err)

	id, err := Path(codec.Int()).Parse(req)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, []string{"posts"}, req.Path)
}

func TestPath_Print(t *testing.T) {
	req := New()

	require.NoError(t, PathLiteral("users").Print(codec.Unit{}, req))
	require.NoError(t, Path(codec.Int()).Print(42, req))

	assert.Equal(t, []string{"users", "42"}, req.Path)
}

func TestBody_LeavesRemainder(t *testing.T) {
	req := New()
	req.Body = []byte("12;rest")

	n, err := Body(codec.SkipSecond(codec.UpTo(";"), codec.Literal(";"))).Parse(req)

	require.NoError(t, err)
	assert.Equal(t, "12", string(n))
	assert.Equal(t, "rest", string(req.Body))
}

func TestBody_Missing(t *testing.T) {
	req := New()

	_, err := Body(codec.String()).Parse(req)

	assert.ErrorIs(t, err, ErrMissingField)
}

func TestCookie_ParsedOnDemand(t *testing.T) {
	req := New()
	req.Headers.Add("Cookie", "session=s3cr3t; theme=dark")

	session, err := Cookie("session", codec.String()).Parse(req)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", session)

	// The Cookie header was consumed by the on-demand parse; the theme
	// cookie remains in the cookie fields.
	assert.False(t, req.Headers.Has("Cookie"))
	assert.True(t, req.Cookies().Has("theme"))
}

func TestCookie_Print(t *testing.T) {
	req := New()

	require.NoError(t, Cookie("session", codec.String()).Print("s3cr3t", req))

	v, ok := req.Cookies().Pull("session")
	require.True(t, ok)
	assert.Equal(t, "s3cr3t", *v)
}

func TestOneOf_CommitsFirstMatch(t *testing.T) {
	users := codec.SkipFirst(PathLiteral("users"), Path(codec.Int()))
	posts := codec.SkipFirst(PathLiteral("posts"), Path(codec.Int()))
	route := OneOf(posts, users)

	req := New()
	req.Path = []string{"users", "7"}

	id, err := route.Parse(req)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Empty(t, req.Path)
}

func TestOneOf_FailedCaseLeavesRequestIntact(t *testing.T) {
	route := OneOf(
		codec.SkipFirst(PathLiteral("a"), Path(codec.Int())),
		codec.SkipFirst(PathLiteral("b"), Path(codec.Int())),
	)

	req := New()
	req.Path = []string{"c", "1"}

	_, err := route.Parse(req)
	assert.Error(t, err)
	assert.Equal(t, []string{"c", "1"}, req.Path, "no case committed")
}

func TestWithDefault_MissingFieldYieldsDefault(t *testing.T) {
	page := WithDefault(Query("page", codec.Int()), 1)

	req := New()

	n, err := page.Parse(req)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWithDefault_PresentFieldStillParses(t *testing.T) {
	page := WithDefault(Query("page", codec.Int()), 1)

	req := New()
	req.Query.Add("page", "3")

	n, err := page.Parse(req)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.False(t, req.Query.Has("page"))
}

func TestWithDefault_MalformedValueStillFails(t *testing.T) {
	page := WithDefault(Query("page", codec.Int()), 1)

	req := New()
	req.Query.Add("page", "abc")

	_, err := page.Parse(req)
	assert.Error(t, err)
}

func TestWithDefault_PrintingDefaultEmitsNothing(t *testing.T) {
	page := WithDefault(Query("page", codec.Int()), 1)

	req := New()
	require.NoError(t, page.Print(1, req))
	assert.False(t, req.Query.Has("page"))

	require.NoError(t, page.Print(2, req))
	v, ok := req.Query.Pull("page")
	require.True(t, ok)
	assert.Equal(t, "2", *v)
}
