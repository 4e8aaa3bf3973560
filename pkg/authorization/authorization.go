package authorization

import (
	"errors"
	"fmt"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
	"github.com/sirosfoundation/go-httpcodec/pkg/request"
)

// ErrMissingAuthorization indicates an authorization codec's expected
// field was absent from the request.
var ErrMissingAuthorization = errors.New("missing authorization")

// Kind identifies the proof kind of an Authorization.
type Kind int

const (
	// KindBearer is a token carried in the Authorization header with the
	// "Bearer " prefix.
	KindBearer Kind = iota
	// KindQuery is a token carried in a query parameter.
	KindQuery
	// KindCustom is a token carried in a custom header.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBearer:
		return "bearer"
	case KindQuery:
		return "query"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Authorization is a typed credential attached to a route. Equality is
// structural.
type Authorization struct {
	Kind  Kind
	Token string
}

// Bearer returns a bearer-token proof.
func Bearer(token string) Authorization {
	return Authorization{Kind: KindBearer, Token: token}
}

// Query returns a query-parameter token proof.
func Query(token string) Authorization {
	return Authorization{Kind: KindQuery, Token: token}
}

// Custom returns a custom-header token proof.
func Custom(token string) Authorization {
	return Authorization{Kind: KindCustom, Token: token}
}

type authCodec struct {
	kind  Kind
	field codec.Codec[request.Request, string]
}

// BearerAuth returns the codec for bearer proofs: it parses the
// Authorization header value after the literal "Bearer " prefix, and
// prints the header back with the same prefix.
func BearerAuth() codec.Codec[request.Request, Authorization] {
	return authCodec{
		kind:  KindBearer,
		field: request.Header("Authorization", codec.SkipFirst(codec.Literal("Bearer "), codec.String())),
	}
}

// QueryAuth returns the codec for query-parameter proofs under the given
// parameter name.
func QueryAuth(param string) codec.Codec[request.Request, Authorization] {
	return authCodec{
		kind:  KindQuery,
		field: request.Query(param, codec.String()),
	}
}

// CustomAuth returns the codec for custom-header proofs under the given
// header name.
func CustomAuth(header string) codec.Codec[request.Request, Authorization] {
	return authCodec{
		kind:  KindCustom,
		field: request.Header(header, codec.String()),
	}
}

func (a authCodec) Parse(in *request.Request) (Authorization, error) {
	token, err := a.field.Parse(in)
	if err != nil {
		return Authorization{}, fmt.Errorf("%s: %w", a.kind, ErrMissingAuthorization)
	}
	return Authorization{Kind: a.kind, Token: token}, nil
}

func (a authCodec) Print(out Authorization, in *request.Request) error {
	switch out.Kind {
	case KindBearer, KindQuery, KindCustom:
		if out.Kind != a.kind {
			return fmt.Errorf("cannot print %s authorization with %s codec", out.Kind, a.kind)
		}
		return a.field.Print(out.Token, in)
	}
	return fmt.Errorf("unknown authorization kind %s", out.Kind)
}
