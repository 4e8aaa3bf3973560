package multipart

import (
	"bytes"
	"fmt"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
	"github.com/sirosfoundation/go-httpcodec/pkg/request"
)

type partCodec struct {
	open    codec.Codec[[]byte, codec.Unit]
	headers codec.Codec[[]byte, *request.Fields]
	body    codec.Codec[[]byte, []byte]
}

// PartCodec returns the codec for one boundary-delimited section: the
// --<boundary> marker, a line terminator, a header block, then a body
// running up to (not including) the next "\n--<boundary>" occurrence, or
// the rest of the input when none exists.
func PartCodec(boundary string) codec.Codec[[]byte, Part] {
	return partCodec{
		open:    codec.Literal("--" + boundary + "\n"),
		headers: HeaderBlock(),
		body:    codec.UpTo("\n--" + boundary),
	}
}

func (p partCodec) Parse(in *[]byte) (Part, error) {
	if _, err := p.open.Parse(in); err != nil {
		return Part{}, err
	}
	headers, err := p.headers.Parse(in)
	if err != nil {
		return Part{}, err
	}
	body, err := p.body.Parse(in)
	if err != nil {
		return Part{}, err
	}
	return Part{Headers: headers, Body: body}, nil
}

func (p partCodec) Print(out Part, in *[]byte) error {
	if err := p.open.Print(codec.Unit{}, in); err != nil {
		return err
	}
	headers := out.Headers
	if headers == nil {
		headers = request.NewFields()
	}
	if err := p.headers.Print(headers, in); err != nil {
		return err
	}
	return p.body.Print(out.Body, in)
}

type partsCodec struct {
	part    codec.Codec[[]byte, Part]
	closing []byte
}

// PartsCodec returns the codec for the full ordered part sequence: parts
// separated by a single line terminator and terminated by the
// --<boundary>-- closing marker preceded by one line terminator. Whatever
// follows the closing marker is left unconsumed.
func PartsCodec(boundary string) codec.Codec[[]byte, []Part] {
	return partsCodec{
		part:    PartCodec(boundary),
		closing: []byte("--" + boundary + "--"),
	}
}

func (p partsCodec) Parse(in *[]byte) ([]Part, error) {
	if bytes.HasPrefix(*in, p.closing) {
		*in = (*in)[len(p.closing):]
		return nil, nil
	}
	var parts []Part
	for {
		part, err := p.part.Parse(in)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if !bytes.HasPrefix(*in, []byte("\n")) {
			return nil, fmt.Errorf("after part %d: %w", len(parts)-1, ErrMissingClosingBoundary)
		}
		rest := (*in)[1:]
		if bytes.HasPrefix(rest, p.closing) {
			*in = rest[len(p.closing):]
			return parts, nil
		}
		*in = rest
	}
}

func (p partsCodec) Print(outs []Part, in *[]byte) error {
	for i, part := range outs {
		if i > 0 {
			*in = append(*in, '\n')
		}
		if err := p.part.Print(part, in); err != nil {
			return err
		}
	}
	if len(outs) > 0 {
		*in = append(*in, '\n')
	}
	*in = append(*in, p.closing...)
	return nil
}
