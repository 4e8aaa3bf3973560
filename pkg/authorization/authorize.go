package authorization

import (
	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
	"github.com/sirosfoundation/go-httpcodec/pkg/request"
)

// Authorized pairs an authorization proof with an inner route value. It is
// a transient composite: constructed during parse from proof plus route,
// or by the caller before printing or dispatch. Equality is structural on
// both fields.
type Authorized[Route any] struct {
	Authorization Authorization
	Route         Route
}

// Authorize composes an authorization codec with an inner route codec into
// a codec over Authorized[Route]. Parsing runs the authorization first,
// then the route, against the same request; printing mirrors that order.
// The two codecs must consume disjoint request fields.
func Authorize[Route any](auth codec.Codec[request.Request, Authorization], route codec.Codec[request.Request, Route]) codec.Codec[request.Request, Authorized[Route]] {
	return codec.ConvertFunc(codec.Seq2(auth, route),
		func(pair codec.Pair[Authorization, Route]) (Authorized[Route], error) {
			return Authorized[Route]{Authorization: pair.First, Route: pair.Second}, nil
		},
		func(authorized Authorized[Route]) (codec.Pair[Authorization, Route], error) {
			return codec.Pair[Authorization, Route]{First: authorized.Authorization, Second: authorized.Route}, nil
		},
	)
}
