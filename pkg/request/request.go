package request

import (
	"strings"
)

// Request is the field-addressable representation of an HTTP request.
//
// A Request must not be shared between concurrent parse or print calls:
// codecs thread it through by exclusive, temporary ownership.
type Request struct {
	Method  string
	Path    []string
	Query   *Fields
	Headers *Fields

	// Body is the raw request body; nil means no body is present. An
	// empty non-nil slice is a present, empty body.
	Body []byte

	cookies *Fields
}

// New returns an empty request with initialized field maps.
func New() *Request {
	return &Request{
		Query:   NewFields(),
		Headers: NewFields(),
	}
}

// Cookies returns the request's cookie fields, parsing the Cookie header on
// first access. The Cookie header is consumed by that parse; afterwards the
// returned Fields is the single source of truth for cookies in both
// directions.
func (r *Request) Cookies() *Fields {
	if r.cookies != nil {
		return r.cookies
	}
	r.cookies = NewFields()
	header, ok := r.Headers.Pull("Cookie")
	if !ok || header == nil {
		return r.cookies
	}
	for _, pair := range strings.Split(*header, "; ") {
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, "=")
		if !found {
			r.cookies.AddOptional(name, nil)
			continue
		}
		r.cookies.Add(name, value)
	}
	return r.cookies
}

// SealCookies folds the materialized cookie fields back into a single
// Cookie header and clears the cookie view, making the header the source of
// truth again. Placeholder values render as the bare cookie name. Call it
// after printing cookie fields to hand the request off with a real Cookie
// header; a request whose cookies were never touched is left unchanged.
func (r *Request) SealCookies() {
	if r.cookies == nil {
		return
	}
	var pairs []string
	r.cookies.Each(func(name string, value *string) {
		if value == nil {
			pairs = append(pairs, name)
			return
		}
		pairs = append(pairs, name+"="+*value)
	})
	r.cookies = nil
	if len(pairs) == 0 {
		return
	}
	r.Headers.Add("Cookie", strings.Join(pairs, "; "))
}

// TakeBody removes and returns the body. The second return is false when no
// body is present.
func (r *Request) TakeBody() ([]byte, bool) {
	if r.Body == nil {
		return nil, false
	}
	body := r.Body
	r.Body = nil
	return body, true
}

// Clone returns a deep copy of the request.
func (r *Request) Clone() *Request {
	c := &Request{
		Method:  r.Method,
		Path:    append([]string(nil), r.Path...),
		Query:   r.Query.Clone(),
		Headers: r.Headers.Clone(),
	}
	if r.Body != nil {
		c.Body = append([]byte(nil), r.Body...)
	}
	if r.cookies != nil {
		c.cookies = r.cookies.Clone()
	}
	return c
}
