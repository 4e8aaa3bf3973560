// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package authorization provides typed authorization proofs and the codecs
that attach them to routes.

An Authorization is a tagged union of proof kinds: a bearer token carried
in the Authorization header, a token carried in a query parameter, or a
token carried in a custom header. The parameter or header name for the
query and custom kinds lives at the codec construction site, not in the
value, so the same proof value can be carried under different names by
different APIs.

Authorize pairs an authorization codec with an inner route codec into a
codec over Authorized[Route]: authorization is parsed first, then the
route, against the same request; printing mirrors that order. The two
codecs must consume disjoint fields: consumption is destructive, so on
overlap whichever runs first wins.
*/
package authorization
