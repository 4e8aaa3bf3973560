package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_PullRemovesFirstValue(t *testing.T) {
	f := NewFields()
	f.Add("Accept", "text/plain")
	f.Add("Accept", "application/json")

	v, ok := f.Pull("Accept")
	require.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, "text/plain", *v)

	v, ok = f.Pull("Accept")
	require.True(t, ok)
	assert.Equal(t, "application/json", *v)

	_, ok = f.Pull("Accept")
	assert.False(t, ok)
	assert.False(t, f.Has("Accept"))
}

func TestFields_NameOrderPreserved(t *testing.T) {
	f := NewFields()
	f.Add("b", "1")
	f.Add("a", "2")
	f.Add("b", "3")

	assert.Equal(t, []string{"b", "a"}, f.Names())

	var seen []string
	f.Each(func(name string, value *string) {
		seen = append(seen, name+"="+*value)
	})
	assert.Equal(t, []string{"b=1", "b=3", "a=2"}, seen)
}

func TestFields_Placeholder(t *testing.T) {
	f := NewFields()
	f.AddOptional("flag", nil)

	v, ok := f.Pull("flag")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestFields_EqualAndClone(t *testing.T) {
	f := NewFields()
	f.Add("x", "1")
	f.AddOptional("y", nil)
	f.Add("x", "2")

	clone := f.Clone()
	assert.True(t, f.Equal(clone))

	clone.Add("x", "3")
	assert.False(t, f.Equal(clone))

	// Order matters.
	g := NewFields()
	g.AddOptional("y", nil)
	g.Add("x", "1")
	g.Add("x", "2")
	assert.False(t, f.Equal(g))
}

func TestFields_PullAll(t *testing.T) {
	f := NewFields()
	f.Add("tag", "a")
	f.Add("tag", "b")
	f.Add("other", "c")

	vs, ok := f.PullAll("tag")
	require.True(t, ok)
	assert.Len(t, vs, 2)
	assert.False(t, f.Has("tag"))
	assert.True(t, f.Has("other"))
}
