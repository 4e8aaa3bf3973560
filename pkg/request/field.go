package request

import (
	"errors"
	"fmt"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
)

// Sentinel errors for field codecs.
var (
	// ErrMissingField indicates a required query, header, cookie, path
	// segment or body was absent from the request.
	ErrMissingField = errors.New("missing field")

	// ErrUnconsumedInput indicates a field's value codec succeeded without
	// consuming the whole field value.
	ErrUnconsumedInput = errors.New("field value not fully consumed")
)

// parseValue runs a value codec over one field value, requiring the whole
// value to be consumed.
func parseValue[Out any](value codec.Codec[[]byte, Out], raw string, kind, name string) (Out, error) {
	in := []byte(raw)
	out, err := value.Parse(&in)
	if err != nil {
		var zero Out
		return zero, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	if len(in) > 0 {
		var zero Out
		return zero, fmt.Errorf("%s %q: %w", kind, name, ErrUnconsumedInput)
	}
	return out, nil
}

func printValue[Out any](value codec.Codec[[]byte, Out], out Out) (string, error) {
	var buf []byte
	if err := value.Print(out, &buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

type methodCodec struct {
	method string
}

// Method matches the request method exactly when parsing and sets it when
// printing.
func Method(method string) codec.Codec[Request, codec.Unit] {
	return methodCodec{method: method}
}

func (m methodCodec) Parse(in *Request) (codec.Unit, error) {
	if in.Method != m.method {
		return codec.Unit{}, fmt.Errorf("method %q, want %q: %w", in.Method, m.method, codec.ErrUnexpectedInput)
	}
	return codec.Unit{}, nil
}

func (m methodCodec) Print(_ codec.Unit, in *Request) error {
	in.Method = m.method
	return nil
}

type pathLiteral struct {
	segment string
}

// PathLiteral consumes one path segment matching segment exactly.
func PathLiteral(segment string) codec.Codec[Request, codec.Unit] {
	return pathLiteral{segment: segment}
}

func (p pathLiteral) Parse(in *Request) (codec.Unit, error) {
	if len(in.Path) == 0 {
		return codec.Unit{}, fmt.Errorf("path segment %q: %w", p.segment, ErrMissingField)
	}
	if in.Path[0] != p.segment {
		return codec.Unit{}, fmt.Errorf("path segment %q, want %q: %w", in.Path[0], p.segment, codec.ErrUnexpectedInput)
	}
	in.Path = in.Path[1:]
	return codec.Unit{}, nil
}

func (p pathLiteral) Print(_ codec.Unit, in *Request) error {
	in.Path = append(in.Path, p.segment)
	return nil
}

type pathValue[Out any] struct {
	value codec.Codec[[]byte, Out]
}

// Path consumes one path segment through a value codec.
func Path[Out any](value codec.Codec[[]byte, Out]) codec.Codec[Request, Out] {
	return pathValue[Out]{value: value}
}

func (p pathValue[Out]) Parse(in *Request) (Out, error) {
	if len(in.Path) == 0 {
		var zero Out
		return zero, fmt.Errorf("path segment: %w", ErrMissingField)
	}
	out, err := parseValue(p.value, in.Path[0], "path segment", in.Path[0])
	if err != nil {
		return out, err
	}
	in.Path = in.Path[1:]
	return out, nil
}

func (p pathValue[Out]) Print(out Out, in *Request) error {
	s, err := printValue(p.value, out)
	if err != nil {
		return err
	}
	in.Path = append(in.Path, s)
	return nil
}

type fieldCodec[Out any] struct {
	kind   string
	name   string
	fields func(*Request) *Fields
	value  codec.Codec[[]byte, Out]
}

// Query consumes the first value of the named query parameter through a
// value codec when parsing, and adds the printed value when printing.
func Query[Out any](name string, value codec.Codec[[]byte, Out]) codec.Codec[Request, Out] {
	return fieldCodec[Out]{
		kind:   "query parameter",
		name:   name,
		fields: func(r *Request) *Fields { return r.Query },
		value:  value,
	}
}

// Header consumes the first value of the named header through a value
// codec when parsing, and adds the printed value when printing.
func Header[Out any](name string, value codec.Codec[[]byte, Out]) codec.Codec[Request, Out] {
	return fieldCodec[Out]{
		kind:   "header",
		name:   name,
		fields: func(r *Request) *Fields { return r.Headers },
		value:  value,
	}
}

// Cookie consumes the named cookie through a value codec when parsing, and
// adds the printed value when printing. The request's Cookie header is
// parsed on first access in either direction. Printed cookies live in the
// request's cookie fields, not the Cookie header; use Request.SealCookies
// to fold them back into the header before handing the request off.
func Cookie[Out any](name string, value codec.Codec[[]byte, Out]) codec.Codec[Request, Out] {
	return fieldCodec[Out]{
		kind:   "cookie",
		name:   name,
		fields: func(r *Request) *Fields { return r.Cookies() },
		value:  value,
	}
}

func (f fieldCodec[Out]) Parse(in *Request) (Out, error) {
	var zero Out
	raw, ok := f.fields(in).Pull(f.name)
	if !ok || raw == nil {
		return zero, fmt.Errorf("%s %q: %w", f.kind, f.name, ErrMissingField)
	}
	return parseValue(f.value, *raw, f.kind, f.name)
}

func (f fieldCodec[Out]) Print(out Out, in *Request) error {
	s, err := printValue(f.value, out)
	if err != nil {
		return err
	}
	f.fields(in).Add(f.name, s)
	return nil
}

type bodyCodec[Out any] struct {
	value codec.Codec[[]byte, Out]
}

// Body consumes the request body through a value codec when parsing, and
// writes the printed bytes as the body when printing.
func Body[Out any](value codec.Codec[[]byte, Out]) codec.Codec[Request, Out] {
	return bodyCodec[Out]{value: value}
}

func (b bodyCodec[Out]) Parse(in *Request) (Out, error) {
	var zero Out
	body, ok := in.TakeBody()
	if !ok {
		return zero, fmt.Errorf("body: %w", ErrMissingField)
	}
	out, err := b.value.Parse(&body)
	if err != nil {
		return zero, err
	}
	// Whatever the value codec did not consume stays on the request.
	in.Body = body
	return out, nil
}

func (b bodyCodec[Out]) Print(out Out, in *Request) error {
	var buf []byte
	if err := b.value.Print(out, &buf); err != nil {
		return err
	}
	in.Body = buf
	return nil
}

type withDefault[Out comparable] struct {
	c   codec.Codec[Request, Out]
	def Out
}

// WithDefault wraps a field codec so that a missing field parses as def
// instead of failing. Malformed values still fail. Printing the default
// value emits nothing, keeping print the inverse of parse.
func WithDefault[Out comparable](c codec.Codec[Request, Out], def Out) codec.Codec[Request, Out] {
	return withDefault[Out]{c: c, def: def}
}

func (w withDefault[Out]) Parse(in *Request) (Out, error) {
	attempt := in.Clone()
	out, err := w.c.Parse(attempt)
	if err == nil {
		*in = *attempt
		return out, nil
	}
	if errors.Is(err, ErrMissingField) {
		return w.def, nil
	}
	return out, err
}

func (w withDefault[Out]) Print(out Out, in *Request) error {
	if out == w.def {
		return nil
	}
	return w.c.Print(out, in)
}

type oneOf[Out any] struct {
	cases []codec.Codec[Request, Out]
}

// OneOf tries each case in order against a snapshot of the request,
// committing the first that succeeds. Printing likewise commits the first
// case whose Print succeeds.
func OneOf[Out any](cases ...codec.Codec[Request, Out]) codec.Codec[Request, Out] {
	return oneOf[Out]{cases: cases}
}

func (o oneOf[Out]) Parse(in *Request) (Out, error) {
	var zero Out
	var errs []error
	for _, c := range o.cases {
		attempt := in.Clone()
		out, err := c.Parse(attempt)
		if err == nil {
			*in = *attempt
			return out, nil
		}
		errs = append(errs, err)
	}
	return zero, fmt.Errorf("no route matched: %w", errors.Join(errs...))
}

func (o oneOf[Out]) Print(out Out, in *Request) error {
	var errs []error
	for _, c := range o.cases {
		attempt := in.Clone()
		err := c.Print(out, attempt)
		if err == nil {
			*in = *attempt
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("no route printed: %w", errors.Join(errs...))
}
