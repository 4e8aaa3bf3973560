package request

// Fields is an ordered multimap from field name to the ordered sequence of
// values seen for that name. Repeated names accumulate; insertion order of
// names (first appearance) and of values per name is preserved. A nil value
// is a placeholder for a field that appeared without a value, such as a
// bare query key.
type Fields struct {
	names  []string
	values map[string][]*string
}

// NewFields returns an empty field multimap.
func NewFields() *Fields {
	return &Fields{values: make(map[string][]*string)}
}

// Add appends a value for name.
func (f *Fields) Add(name, value string) {
	f.AddOptional(name, &value)
}

// AddOptional appends an optional value for name. A nil value records a
// placeholder.
func (f *Fields) AddOptional(name string, value *string) {
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	if value != nil {
		v := *value
		value = &v
	}
	f.values[name] = append(f.values[name], value)
}

// Pull removes and returns the first value recorded for name. The second
// return is false when no value remains for name. A true return with a nil
// value means a placeholder was pulled.
func (f *Fields) Pull(name string) (*string, bool) {
	vs, ok := f.values[name]
	if !ok || len(vs) == 0 {
		return nil, false
	}
	v := vs[0]
	if len(vs) == 1 {
		f.remove(name)
	} else {
		f.values[name] = vs[1:]
	}
	return v, true
}

// PullAll removes and returns every value recorded for name.
func (f *Fields) PullAll(name string) ([]*string, bool) {
	vs, ok := f.values[name]
	if !ok {
		return nil, false
	}
	f.remove(name)
	return vs, true
}

func (f *Fields) remove(name string) {
	delete(f.values, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
}

// Has reports whether at least one value remains for name.
func (f *Fields) Has(name string) bool {
	return len(f.values[name]) > 0
}

// Len returns the number of distinct names present.
func (f *Fields) Len() int {
	return len(f.names)
}

// Names returns the field names in first-appearance order.
func (f *Fields) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Values returns the values recorded for name, in insertion order.
func (f *Fields) Values(name string) []*string {
	vs := f.values[name]
	out := make([]*string, len(vs))
	copy(out, vs)
	return out
}

// Each calls fn for every (name, value) pair in name order, then value
// order within each name.
func (f *Fields) Each(fn func(name string, value *string)) {
	if f == nil {
		return
	}
	for _, name := range f.names {
		for _, v := range f.values[name] {
			fn(name, v)
		}
	}
}

// Clone returns a deep copy. Cloning a nil multimap returns nil.
func (f *Fields) Clone() *Fields {
	if f == nil {
		return nil
	}
	c := NewFields()
	f.Each(func(name string, value *string) {
		c.AddOptional(name, value)
	})
	return c
}

// Equal reports structural equality: same names in the same order, same
// value sequences per name.
func (f *Fields) Equal(other *Fields) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.names) != len(other.names) {
		return false
	}
	for i, name := range f.names {
		if other.names[i] != name {
			return false
		}
		a, b := f.values[name], other.values[name]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			switch {
			case a[j] == nil && b[j] == nil:
			case a[j] == nil || b[j] == nil:
				return false
			case *a[j] != *b[j]:
				return false
			}
		}
	}
	return true
}
