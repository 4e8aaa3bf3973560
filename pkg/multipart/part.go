package multipart

import (
	"errors"
	"fmt"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
	"github.com/sirosfoundation/go-httpcodec/pkg/request"
)

// Sentinel errors for the multipart codec stack.
var (
	// ErrMalformedHeaderLine indicates a header line lacked the ": "
	// separator.
	ErrMalformedHeaderLine = errors.New("malformed header line")

	// ErrMissingBody indicates a multipart parse was attempted on a
	// request with no body.
	ErrMissingBody = errors.New("missing request body")

	// ErrMissingBoundary indicates the request carried no Content-Type
	// header to extract a boundary from.
	ErrMissingBoundary = errors.New("missing multipart boundary")

	// ErrMalformedContentType indicates the Content-Type header did not
	// match the expected multipart/form-data prefix.
	ErrMalformedContentType = errors.New("malformed content type")

	// ErrMissingClosingBoundary indicates the input was exhausted before
	// the closing --<boundary>-- marker.
	ErrMissingClosingBoundary = errors.New("missing closing boundary")

	// ErrMissingPart indicates a per-part codec tried to consume past the
	// end of the parsed part sequence.
	ErrMissingPart = errors.New("missing part")
)

// Part is one delimited section of a multipart body: an ordered header
// multimap plus optional raw body bytes (nil means no body).
//
// Parts are plain values: equality is structural, and a Part copied into a
// sequence is owned by that sequence.
type Part struct {
	Headers *request.Fields
	Body    []byte
}

// NewPart returns an empty part with an initialized header multimap.
func NewPart() Part {
	return Part{Headers: request.NewFields()}
}

// Equal reports structural equality of headers and body. A nil body and an
// empty body compare equal: both serialize to the same wire form, and a
// reparse always yields a non-nil body.
func (p Part) Equal(other Part) bool {
	if string(p.Body) != string(other.Body) {
		return false
	}
	return p.Headers.Equal(other.Headers)
}

type nextPart[Out any] struct {
	part codec.Codec[Part, Out]
}

// NextPart consumes exactly one part from the front of a part sequence
// through the given part codec. Parsing past the end of the sequence fails
// with ErrMissingPart. Print appends one freshly printed part to the
// sequence.
func NextPart[Out any](part codec.Codec[Part, Out]) codec.Codec[[]Part, Out] {
	return nextPart[Out]{part: part}
}

func (n nextPart[Out]) Parse(in *[]Part) (Out, error) {
	var zero Out
	if len(*in) == 0 {
		return zero, ErrMissingPart
	}
	part := (*in)[0]
	out, err := n.part.Parse(&part)
	if err != nil {
		return zero, err
	}
	*in = (*in)[1:]
	return out, nil
}

func (n nextPart[Out]) Print(out Out, in *[]Part) error {
	part := NewPart()
	if err := n.part.Print(out, &part); err != nil {
		return err
	}
	*in = append(*in, part)
	return nil
}

type partHeaders[Out any] struct {
	field codec.Codec[request.Request, Out]
}

// PartHeaders consumes the named header of one part through a value codec.
// It delegates to the same field vocabulary used for whole-request headers,
// scoped to the part's header multimap.
func PartHeaders[Out any](name string, value codec.Codec[[]byte, Out]) codec.Codec[Part, Out] {
	return partHeaders[Out]{field: request.Header(name, value)}
}

func (p partHeaders[Out]) Parse(in *Part) (Out, error) {
	scope := request.Request{Headers: in.Headers}
	return p.field.Parse(&scope)
}

func (p partHeaders[Out]) Print(out Out, in *Part) error {
	scope := request.Request{Headers: in.Headers}
	return p.field.Print(out, &scope)
}

type partBody[Out any] struct {
	value codec.Codec[[]byte, Out]
}

// PartBody consumes one part's body through a value codec. The part keeps
// whatever the value codec did not consume.
func PartBody[Out any](value codec.Codec[[]byte, Out]) codec.Codec[Part, Out] {
	return partBody[Out]{value: value}
}

func (p partBody[Out]) Parse(in *Part) (Out, error) {
	var zero Out
	if in.Body == nil {
		return zero, fmt.Errorf("part body: %w", ErrMissingBody)
	}
	body := in.Body
	out, err := p.value.Parse(&body)
	if err != nil {
		return zero, err
	}
	in.Body = body
	return out, nil
}

func (p partBody[Out]) Print(out Out, in *Part) error {
	var buf []byte
	if err := p.value.Print(out, &buf); err != nil {
		return err
	}
	in.Body = buf
	return nil
}
