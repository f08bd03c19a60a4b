package omenu_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmenu/omenu"
)

func TestValueUnmarshalSniffsShape(t *testing.T) {
	cases := []struct {
		input string
		want  omenu.Value
	}{
		{`"large"`, omenu.StringValue("large")},
		{`["egg","feta"]`, omenu.StringListValue("egg", "feta")},
		{`3`, omenu.NumberValue(3)},
		{`2.5`, omenu.NumberValue(2.5)},
		{`true`, omenu.BoolValue(true)},
		{`false`, omenu.BoolValue(false)},
		{`null`, omenu.Value{}},
	}
	for _, tc := range cases {
		var v omenu.Value
		require.NoError(t, json.Unmarshal([]byte(tc.input), &v), tc.input)
		assert.True(t, v.Equal(tc.want), "input %s decoded as %s", tc.input, v.GoString())
	}
}

func TestValueUnmarshalRejectsObjects(t *testing.T) {
	var v omenu.Value
	assert.Error(t, json.Unmarshal([]byte(`{"id":"x"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &v))
}

func TestValueMarshalNaturalShape(t *testing.T) {
	cases := []struct {
		value omenu.Value
		want  string
	}{
		{omenu.StringValue("large"), `"large"`},
		{omenu.StringListValue("a", "b"), `["a","b"]`},
		{omenu.StringListValue(), `[]`},
		{omenu.NumberValue(2), `2`},
		{omenu.BoolValue(false), `false`},
		{omenu.Value{}, `null`},
	}
	for _, tc := range cases {
		out, err := json.Marshal(tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(out))
	}
}

func TestValueAccessors(t *testing.T) {
	s, ok := omenu.StringValue("x").String()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = omenu.StringValue("x").Number()
	assert.False(t, ok)

	n, ok := omenu.NumberValue(4).Number()
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	list, ok := omenu.StringListValue("a").StringList()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, list)

	b, ok := omenu.BoolValue(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.True(t, omenu.Value{}.IsAbsent())
	assert.False(t, omenu.NumberValue(0).IsAbsent())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, omenu.StringValue("a").Equal(omenu.StringValue("a")))
	assert.False(t, omenu.StringValue("a").Equal(omenu.StringValue("b")))
	assert.False(t, omenu.StringValue("1").Equal(omenu.NumberValue(1)))
	assert.True(t, omenu.StringListValue("a", "b").Equal(omenu.StringListValue("a", "b")))
	assert.False(t, omenu.StringListValue("a", "b").Equal(omenu.StringListValue("b", "a")))
}
