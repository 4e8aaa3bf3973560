// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package codec provides the generic bidirectional parse/print engine.

A Codec[In, Out] is a single declaration that runs in both directions:
Parse consumes a value of type Out from a mutable In, and Print writes an
Out back into an In. Composing codecs with Seq2, SkipFirst, ManyTerminated
and Convert yields pipelines whose parse and print directions stay in sync
by construction.

# Consumption model

Parse is destructive: it narrows or removes the portion of the input it
matched, so that subsequent codecs in the same pipeline see only the
remainder. Print is additive: it only appends to the input. A failed Parse
may leave the input partially consumed; callers that need lookahead must
snapshot and restore the input themselves (ManyTerminated does this for its
own element attempts).

# Byte primitives

For In = []byte the package ships Literal, Rest, UpTo, String and Int.
These are the building blocks for wire-format codecs such as the multipart
stack, and double as field value codecs for the request layer:

	token := codec.SkipFirst(codec.Literal("Bearer "), codec.String())
*/
package codec
