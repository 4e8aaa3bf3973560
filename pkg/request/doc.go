// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package request provides the structured request representation and the
field-level codecs that read from and write to it.

A Request holds the field-addressable parts of an HTTP request: method,
ordered path segments, query multimap, header multimap, cookies (parsed on
demand from the Cookie header) and an optional raw body. Field codecs
consume destructively: once a codec has pulled a query parameter or header
during Parse, later codecs in the same pipeline no longer see it. This is
what lets a pipeline that only asked for "name" and "age" leave a stray
"debug=1" untouched for the caller to observe afterwards.

Print is the mirror image: codecs only add fields, never remove them, so
printing a typed value populates a Request ready for transport.

Field names are opaque: no case folding is applied to query, header or
cookie names in either direction.
*/
package request
