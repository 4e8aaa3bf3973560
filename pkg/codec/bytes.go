package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrUnexpectedInput indicates the input did not match an expected literal.
var ErrUnexpectedInput = errors.New("unexpected input")

type literal struct {
	s []byte
}

// Literal matches and consumes the exact byte sequence s when parsing, and
// emits it when printing.
func Literal(s string) Codec[[]byte, Unit] {
	return literal{s: []byte(s)}
}

func (l literal) Parse(in *[]byte) (Unit, error) {
	if !bytes.HasPrefix(*in, l.s) {
		return Unit{}, fmt.Errorf("expected %q: %w", l.s, ErrUnexpectedInput)
	}
	*in = (*in)[len(l.s):]
	return Unit{}, nil
}

func (l literal) Print(_ Unit, in *[]byte) error {
	*in = append(*in, l.s...)
	return nil
}

type rest struct{}

// Rest consumes the remainder of the input when parsing and emits its
// output verbatim when printing.
func Rest() Codec[[]byte, []byte] {
	return rest{}
}

func (rest) Parse(in *[]byte) ([]byte, error) {
	out := *in
	*in = (*in)[len(*in):]
	return out, nil
}

func (rest) Print(out []byte, in *[]byte) error {
	*in = append(*in, out...)
	return nil
}

type upTo struct {
	marker []byte
}

// UpTo consumes everything before the first occurrence of marker, leaving
// the marker itself unconsumed. If the marker is absent the remainder of
// the input is consumed. Print emits the output verbatim; it is the
// caller's obligation that the output not contain the marker.
func UpTo(marker string) Codec[[]byte, []byte] {
	return upTo{marker: []byte(marker)}
}

func (u upTo) Parse(in *[]byte) ([]byte, error) {
	i := bytes.Index(*in, u.marker)
	if i < 0 {
		out := *in
		*in = (*in)[len(*in):]
		return out, nil
	}
	out := (*in)[:i]
	*in = (*in)[i:]
	return out, nil
}

func (u upTo) Print(out []byte, in *[]byte) error {
	*in = append(*in, out...)
	return nil
}

// String consumes the remainder of the input as a string.
func String() Codec[[]byte, string] {
	return ConvertFunc(Rest(),
		func(b []byte) (string, error) { return string(b), nil },
		func(s string) ([]byte, error) { return []byte(s), nil },
	)
}

// Int consumes the remainder of the input as a base-10 integer.
func Int() Codec[[]byte, int] {
	return ConvertFunc(Rest(),
		func(b []byte) (int, error) { return strconv.Atoi(string(b)) },
		func(i int) ([]byte, error) { return strconv.AppendInt(nil, int64(i), 10), nil },
	)
}
