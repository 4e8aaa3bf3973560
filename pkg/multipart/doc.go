// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package multipart implements the bidirectional multipart/form-data codec
stack.

The stack is layered leaf-first: a header-line codec ("Name: value"), a
header-block codec (lines terminated by a blank line), a part codec (one
boundary-delimited section) and a parts codec (the full ordered sequence,
terminated by the closing marker). FormData is the facade that extracts the
boundary from a request's Content-Type header, splits the body into parts,
and hands the parts positionally to caller-supplied per-part codecs.

# Wire format

	--<boundary>\n
	<Header-Name>: <value>\n
	...\n
	\n
	<raw body bytes>
	--<boundary>\n
	...
	--<boundary>--

Part bodies are emitted verbatim: no boundary escaping is performed, so a
body must not contain the literal "\n--<boundary>" sequence. That is a
caller obligation, not enforced here.

# Interpreting parts

Splitting into parts and interpreting each part are separate layers. A
per-part codec consumes exactly one part from the front of the sequence:

	form := multipart.FormData(codec.Seq2(
	    multipart.NextPart(multipart.PartBody(multipart.Text())),
	    multipart.NextPart(multipart.PartBody(multipart.JSON[Meta]())),
	))

so the multipart layer never learns payload semantics.
*/
package multipart
