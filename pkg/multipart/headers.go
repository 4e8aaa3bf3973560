package multipart

import (
	"bytes"
	"fmt"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
	"github.com/sirosfoundation/go-httpcodec/pkg/request"
)

// headerLine is one parsed "Name: value" line. Name and value are opaque:
// no case folding, no trimming beyond the protocol-mandated single space
// after the colon.
type headerLine struct {
	name  string
	value string
}

type headerLineCodec struct{}

// Parse consumes one header line up to, not including, the line
// terminator. A blank line is rejected: it signals end-of-headers and is
// the caller's to handle.
func (headerLineCodec) Parse(in *[]byte) (headerLine, error) {
	line := *in
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if len(line) == 0 {
		return headerLine{}, fmt.Errorf("blank header line: %w", codec.ErrUnexpectedInput)
	}
	name, value, found := bytes.Cut(line, []byte(": "))
	if !found {
		return headerLine{}, fmt.Errorf("%q: %w", line, ErrMalformedHeaderLine)
	}
	*in = (*in)[len(line):]
	return headerLine{name: string(name), value: string(value)}, nil
}

func (headerLineCodec) Print(out headerLine, in *[]byte) error {
	*in = append(*in, out.name...)
	*in = append(*in, ": "...)
	*in = append(*in, out.value...)
	return nil
}

// HeaderBlock returns the codec for a blank-line-terminated block of header
// lines. Parsing accumulates repeated names in insertion order; printing
// flattens the multimap back into one line per value, in multimap order,
// followed by the blank-line terminator.
//
// Printing a multimap holding placeholder (nil) values fails: a placeholder
// has no line representation.
func HeaderBlock() codec.Codec[[]byte, *request.Fields] {
	lines := codec.ManyTerminated(
		codec.SkipSecond[[]byte, headerLine](headerLineCodec{}, codec.Literal("\n")),
		codec.Literal("\n"),
	)
	return codec.ConvertFunc(lines, linesToFields, fieldsToLines)
}

func linesToFields(lines []headerLine) (*request.Fields, error) {
	fields := request.NewFields()
	for _, line := range lines {
		fields.Add(line.name, line.value)
	}
	return fields, nil
}

func fieldsToLines(fields *request.Fields) ([]headerLine, error) {
	if fields == nil {
		return nil, nil
	}
	var lines []headerLine
	var placeholder *string
	fields.Each(func(name string, value *string) {
		if value == nil {
			n := name
			placeholder = &n
			return
		}
		lines = append(lines, headerLine{name: name, value: *value})
	})
	if placeholder != nil {
		return nil, fmt.Errorf("header %q: placeholder value has no line representation", *placeholder)
	}
	return lines, nil
}
