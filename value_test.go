package yamlite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	yamlite "github.com/lfdmn/go-yamlite"
)

func TestValueKinds(t *testing.T) {
	require.True(t, yamlite.NewNull().IsNull())
	require.True(t, yamlite.NewBool(true).IsBool())
	require.True(t, yamlite.NewNumber(1.5).IsNumber())
	require.True(t, yamlite.NewInt(7).IsNumber())
	require.True(t, yamlite.NewString("x").IsString())
	require.True(t, yamlite.NewSequence().IsSequence())
	require.True(t, yamlite.NewMapping().IsMapping())

	var nilVal *yamlite.Value
	require.Equal(t, yamlite.KindNull, nilVal.Kind())
}

func TestValueAccessors(t *testing.T) {
	v := yamlite.NewNumber(3.9)

	f, err := v.AsNumber()
	require.NoError(t, err)
	require.Equal(t, 3.9, f)

	n, err := v.AsInt()
	require.NoError(t, err)
	require.Equal(t, 3, n) // truncates toward zero

	_, err = v.AsString()
	require.Error(t, err)

	var terr *yamlite.TypeError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, yamlite.KindString, terr.Want)
	require.Equal(t, yamlite.KindNumber, terr.Got)
}

func TestValueGetAndAt(t *testing.T) {
	v, err := yamlite.ParseString("a: [10, 20]\n")
	require.NoError(t, err)

	seq, err := v.Get("a")
	require.NoError(t, err)

	el, err := seq.At(1)
	require.NoError(t, err)
	n, err := el.AsInt()
	require.NoError(t, err)
	require.Equal(t, 20, n)

	_, err = v.Get("missing")
	var kerr *yamlite.KeyError
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, "missing", kerr.Key)

	_, err = seq.At(5)
	var ierr *yamlite.IndexError
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, 5, ierr.Index)
	require.Equal(t, 2, ierr.Len)

	_, err = seq.Get("a")
	require.Error(t, err)
}

func TestEntryVivifiesMapping(t *testing.T) {
	root := yamlite.NewNull()

	e, err := root.Entry("debug")
	require.NoError(t, err)
	require.True(t, root.IsMapping())
	require.True(t, e.IsNull())

	e.SetBool(true)
	got, err := root.Get("debug")
	require.NoError(t, err)
	b, err := got.AsBool()
	require.NoError(t, err)
	require.True(t, b)

	// Entry on an existing key returns the same node.
	again, err := root.Entry("debug")
	require.NoError(t, err)
	require.Same(t, got, again)

	_, err = yamlite.NewInt(1).Entry("x")
	require.Error(t, err)
}

func TestElementVivifiesSequence(t *testing.T) {
	root := yamlite.NewNull()

	e, err := root.Element(2)
	require.NoError(t, err)
	require.True(t, root.IsSequence())
	require.Equal(t, 3, root.Len())
	e.SetString("third")

	first, err := root.At(0)
	require.NoError(t, err)
	require.True(t, first.IsNull())

	third, err := root.At(2)
	require.NoError(t, err)
	s, err := third.AsString()
	require.NoError(t, err)
	require.Equal(t, "third", s)

	_, err = root.Element(-1)
	require.Error(t, err)

	// A negative index must not promote a null value.
	fresh := yamlite.NewNull()
	_, err = fresh.Element(-1)
	require.Error(t, err)
	require.True(t, fresh.IsNull())
}

func TestAppend(t *testing.T) {
	v := yamlite.NewNull()
	require.NoError(t, v.Append(yamlite.NewInt(1)))
	require.NoError(t, v.Append(yamlite.NewString("two")))
	require.Equal(t, 2, v.Len())

	require.Error(t, yamlite.NewBool(true).Append(yamlite.NewInt(1)))
}

func TestKeysSortedAndHas(t *testing.T) {
	v, err := yamlite.ParseString("b: 1\na: 2\nc: 3\n")
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, v.Keys())
	require.True(t, v.Has("b"))
	require.False(t, v.Has("z"))
	require.Equal(t, 3, v.Len())
}

func TestEqual(t *testing.T) {
	a, err := yamlite.ParseString("x: [1, {y: true}]\n")
	require.NoError(t, err)
	b, err := yamlite.ParseString("x: [1, {y: true}]\n")
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := yamlite.ParseString("x: [1, {y: false}]\n")
	require.NoError(t, err)
	require.False(t, a.Equal(c))

	require.False(t, yamlite.NewInt(1).Equal(yamlite.NewString("1")))
	require.True(t, yamlite.NewNull().Equal(nil))
}

func TestCloneIsDeep(t *testing.T) {
	orig, err := yamlite.ParseString("a:\n  b: 1\n")
	require.NoError(t, err)

	cp := orig.Clone()
	require.True(t, orig.Equal(cp))

	inner, err := cp.Get("a")
	require.NoError(t, err)
	e, err := inner.Entry("b")
	require.NoError(t, err)
	e.SetInt(99)

	require.False(t, orig.Equal(cp))
}

func TestTakeAndClear(t *testing.T) {
	v, err := yamlite.ParseString("a: 1\n")
	require.NoError(t, err)

	moved := v.Take()
	require.True(t, v.IsNull())
	require.True(t, moved.IsMapping())
	require.True(t, moved.Has("a"))

	moved.Clear()
	require.True(t, moved.IsNull())
	require.Equal(t, 0, moved.Len())
}

func TestFromAndInterface(t *testing.T) {
	in := map[string]any{
		"name":  "app",
		"count": 3,
		"ratio": 0.5,
		"on":    true,
		"none":  nil,
		"tags":  []any{"a", "b"},
	}

	v, err := yamlite.From(in)
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"name":  "app",
		"count": float64(3),
		"ratio": 0.5,
		"on":    true,
		"none":  nil,
		"tags":  []any{"a", "b"},
	}, v.Interface())

	_, err = yamlite.From(struct{}{})
	require.Error(t, err)
}
