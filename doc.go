// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gohttpcodec implements bidirectional transformation of structured
HTTP request data: the same declaration both parses a raw request into typed
application values and prints typed values back into an equivalent raw
request, with the composition guaranteed to round-trip.

# Overview

go-httpcodec is built around a single abstraction, codec.Codec[In, Out]: a
value that can parse an Out from a mutable In and print an Out back into an
In. Requests are represented as field-addressable values (method, path
segments, query, headers, cookies, body) that codecs consume destructively
when parsing and add to when printing. On top of that core the library
provides:

  - a multipart/form-data body codec that parses a raw body into an ordered
    sequence of structured parts and serializes parts back into valid
    multipart bytes, including boundary framing
  - token-based authorization codecs (bearer, query parameter, custom
    header) and a combinator that pairs an authorization proof with an
    inner route
  - a dispatch client that can transparently attach ambient authorization,
    deny unauthorized calls before they reach the network, and pin specific
    route values to canned responses for deterministic testing

# Package Structure

	github.com/sirosfoundation/go-httpcodec/pkg/codec         - Bidirectional parse/print engine
	github.com/sirosfoundation/go-httpcodec/pkg/request       - Structured request and field codecs
	github.com/sirosfoundation/go-httpcodec/pkg/multipart     - multipart/form-data codec stack
	github.com/sirosfoundation/go-httpcodec/pkg/authorization - Authorization proofs and routing
	github.com/sirosfoundation/go-httpcodec/pkg/client        - Overridable dispatch client

# Quick Start

To parse a multipart upload:

	import (
	    "github.com/sirosfoundation/go-httpcodec/pkg/multipart"
	)

	form := multipart.FormData(
	    multipart.NextPart(multipart.PartBody(multipart.Text())),
	)

	value, err := form.Parse(&req)

The same form value prints: given the typed output, Print reconstructs the
multipart body and the Content-Type header on the request.

To dispatch authorized routes against a test double:

	api := client.New[Route](dispatch)
	api = api.Override(route, func(ctx context.Context) (client.Response, error) {
	    return client.Response{StatusCode: 200, Body: []byte(`{"ok":true}`)}, nil
	})
	scoped := client.Scoped(api, wrap)
*/
package gohttpcodec
