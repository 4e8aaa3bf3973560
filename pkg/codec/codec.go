package codec

// Codec is a bidirectional transformation between a mutable input and a
// typed value. Parse consumes the matched portion of *in; Print appends the
// printed representation of out to *in.
//
// A failed Parse makes no guarantee about how much of the input was
// consumed.
type Codec[In, Out any] interface {
	Parse(in *In) (Out, error)
	Print(out Out, in *In) error
}

// Unit is the output type of codecs that match structure without producing
// a value, such as Literal.
type Unit = struct{}

// Pair holds the outputs of two sequenced codecs.
type Pair[A, B any] struct {
	First  A
	Second B
}

type seq2[In, A, B any] struct {
	a Codec[In, A]
	b Codec[In, B]
}

// Seq2 sequences two codecs: parse runs a then b against the same input,
// print runs a then b in the same order.
func Seq2[In, A, B any](a Codec[In, A], b Codec[In, B]) Codec[In, Pair[A, B]] {
	return seq2[In, A, B]{a: a, b: b}
}

func (c seq2[In, A, B]) Parse(in *In) (Pair[A, B], error) {
	var out Pair[A, B]
	first, err := c.a.Parse(in)
	if err != nil {
		return out, err
	}
	second, err := c.b.Parse(in)
	if err != nil {
		return out, err
	}
	out.First = first
	out.Second = second
	return out, nil
}

func (c seq2[In, A, B]) Print(out Pair[A, B], in *In) error {
	if err := c.a.Print(out.First, in); err != nil {
		return err
	}
	return c.b.Print(out.Second, in)
}

type skipFirst[In, Out any] struct {
	skipped Codec[In, Unit]
	c       Codec[In, Out]
}

// SkipFirst sequences a unit-valued codec before c, discarding the unit.
func SkipFirst[In, Out any](skipped Codec[In, Unit], c Codec[In, Out]) Codec[In, Out] {
	return skipFirst[In, Out]{skipped: skipped, c: c}
}

func (s skipFirst[In, Out]) Parse(in *In) (Out, error) {
	var out Out
	if _, err := s.skipped.Parse(in); err != nil {
		return out, err
	}
	return s.c.Parse(in)
}

func (s skipFirst[In, Out]) Print(out Out, in *In) error {
	if err := s.skipped.Print(Unit{}, in); err != nil {
		return err
	}
	return s.c.Print(out, in)
}

type skipSecond[In, Out any] struct {
	c       Codec[In, Out]
	skipped Codec[In, Unit]
}

// SkipSecond sequences a unit-valued codec after c, discarding the unit.
func SkipSecond[In, Out any](c Codec[In, Out], skipped Codec[In, Unit]) Codec[In, Out] {
	return skipSecond[In, Out]{c: c, skipped: skipped}
}

func (s skipSecond[In, Out]) Parse(in *In) (Out, error) {
	out, err := s.c.Parse(in)
	if err != nil {
		return out, err
	}
	if _, err := s.skipped.Parse(in); err != nil {
		return out, err
	}
	return out, nil
}

func (s skipSecond[In, Out]) Print(out Out, in *In) error {
	if err := s.c.Print(out, in); err != nil {
		return err
	}
	return s.skipped.Print(Unit{}, in)
}

type optionally[In, Out any] struct {
	c Codec[In, Out]
}

// Optionally wraps c so that a failed parse yields nil instead of an error.
// The input is restored to its pre-attempt value on failure, so Optionally
// is only suitable for inputs whose Parse narrows a value copied by
// assignment (byte slices, part slices). Print emits nothing for nil.
func Optionally[In, Out any](c Codec[In, Out]) Codec[In, *Out] {
	return optionally[In, Out]{c: c}
}

func (o optionally[In, Out]) Parse(in *In) (*Out, error) {
	save := *in
	out, err := o.c.Parse(in)
	if err != nil {
		*in = save
		return nil, nil
	}
	return &out, nil
}

func (o optionally[In, Out]) Print(out *Out, in *In) error {
	if out == nil {
		return nil
	}
	return o.c.Print(*out, in)
}

type manyTerminated[In, Out any] struct {
	element    Codec[In, Out]
	terminator Codec[In, Unit]
}

// ManyTerminated parses zero or more elements until the terminator matches,
// consuming the terminator. Each iteration first attempts the terminator
// against a snapshot of the input; if it fails the snapshot is restored and
// an element is required. Print emits every element followed by the
// terminator.
func ManyTerminated[In, Out any](element Codec[In, Out], terminator Codec[In, Unit]) Codec[In, []Out] {
	return manyTerminated[In, Out]{element: element, terminator: terminator}
}

func (m manyTerminated[In, Out]) Parse(in *In) ([]Out, error) {
	var outs []Out
	for {
		save := *in
		if _, err := m.terminator.Parse(in); err == nil {
			return outs, nil
		}
		*in = save
		out, err := m.element.Parse(in)
		if err != nil {
			return nil, err
		}
		outs = append(outs, out)
	}
}

func (m manyTerminated[In, Out]) Print(outs []Out, in *In) error {
	for _, out := range outs {
		if err := m.element.Print(out, in); err != nil {
			return err
		}
	}
	return m.terminator.Print(Unit{}, in)
}
