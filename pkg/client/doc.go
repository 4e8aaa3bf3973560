// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package client provides the route-dispatch client with scoping and
override support.

A Client[Route] holds three things: a dispatch function mapping a
fully-qualified route value to a response, a getter for the current
ambient authorization, and a setter for it. Clients are immutable values:
Override, OverrideAuthorization and WithLogging all return new clients, so
sharing a client between goroutines is safe by construction.

Scoped derives a client over a local, unauthorized route type. Every call
reads the current authorization first; with none set the call fails with
ErrUnauthorizedRoute before the dispatch function is ever invoked.
Otherwise the local route is wrapped with the authorization, mapped into
the outer route type, and dispatched.

Override pins one route value to a canned responder, falling through to
the prior dispatch behavior for every other value. Overrides layer: the
most recently added wins on exact match. An override mismatch is not an
error, just fallthrough.

The authorization store itself is the one piece of shared mutable state,
and it is deliberately not guarded internally: guard it in the caller, or
use OverrideAuthorization, which replaces the getter with a fixed supplier
and is the race-free choice for tests. Dispatch resolves the getter per
call, so overriding the authorization of a scoped client redirects that
client's authorization checks too.
*/
package client
