package codec

// Conversion is an invertible transform between two value types. Apply runs
// in the parse direction, Unapply in the print direction.
type Conversion[A, B any] interface {
	Apply(A) (B, error)
	Unapply(B) (A, error)
}

// ConversionFuncs adapts a pair of functions into a Conversion.
type ConversionFuncs[A, B any] struct {
	ApplyFunc   func(A) (B, error)
	UnapplyFunc func(B) (A, error)
}

func (c ConversionFuncs[A, B]) Apply(a A) (B, error)   { return c.ApplyFunc(a) }
func (c ConversionFuncs[A, B]) Unapply(b B) (A, error) { return c.UnapplyFunc(b) }

type converted[In, A, B any] struct {
	c    Codec[In, A]
	conv Conversion[A, B]
}

// Convert maps a codec's output through an invertible conversion.
func Convert[In, A, B any](c Codec[In, A], conv Conversion[A, B]) Codec[In, B] {
	return converted[In, A, B]{c: c, conv: conv}
}

// ConvertFunc is Convert with the conversion given as a function pair.
func ConvertFunc[In, A, B any](c Codec[In, A], apply func(A) (B, error), unapply func(B) (A, error)) Codec[In, B] {
	return Convert(c, ConversionFuncs[A, B]{ApplyFunc: apply, UnapplyFunc: unapply})
}

func (c converted[In, A, B]) Parse(in *In) (B, error) {
	var out B
	a, err := c.c.Parse(in)
	if err != nil {
		return out, err
	}
	return c.conv.Apply(a)
}

func (c converted[In, A, B]) Print(out B, in *In) error {
	a, err := c.conv.Unapply(out)
	if err != nil {
		return err
	}
	return c.c.Print(a, in)
}
