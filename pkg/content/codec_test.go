package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name: "kind tagged tree",
			doc: `{"kind":"root","children":[
				{"kind":"text","value":"Hello"},
				{"kind":"break"},
				"World",
				{"kind":"list","children":[
					{"kind":"item","children":["Item 1"]},
					{"kind":"item","children":["Item 2"]}
				]}
			]}`,
			expected: "Hello\nWorld\n- Item 1\n- Item 2",
		},
		{
			name:     "array is read as root children",
			doc:      `["Hello", {"kind":"br","spacing":2}, "World"]`,
			expected: "Hello\n\nWorld",
		},
		{
			name:     "tag aliases",
			doc:      `[{"kind":"ul","children":[{"kind":"li","children":["a",{"kind":"ol","children":[{"kind":"li","children":["b"]}]}]}]}]`,
			expected: "- a\n    - b",
		},
		{
			name:     "indent defaults to four spaces",
			doc:      `["a",{"kind":"break"},{"kind":"indent","children":["b"]}]`,
			expected: "a\n    b",
		},
		{
			name:     "explicit zero indent",
			doc:      `["a",{"kind":"break"},{"kind":"indent","spacing":0,"children":["b"]}]`,
			expected: "a\nb",
		},
		{
			name:     "unknown kinds are dropped",
			doc:      `["a",{"kind":"image","value":"x.png"},null,"b"]`,
			expected: "ab",
		},
		{
			name:     "bare string",
			doc:      `"just text"`,
			expected: "just text",
		},
		{
			name:     "unknown top level kind",
			doc:      `{"kind":"table"}`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Decode([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Serialize(n))
		})
	}
}

func TestDecode_OrderedAlias(t *testing.T) {
	n, err := Decode([]byte(`{"kind":"ol","children":[]}`))
	require.NoError(t, err)
	assert.Equal(t, ListBlock{Ordered: true, Items: []Node{}}, n)
}

func TestDecode_Invalid(t *testing.T) {
	for _, doc := range []string{`{"kind":`, `42`, `[1,2]`, ``} {
		t.Run(doc, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidTree)
		})
	}
}

func TestEncode(t *testing.T) {
	tree := NewRoot(
		NewText("Hello"),
		LineBreak{},
		IndentBy(2, NewText("x")),
		OrderedList(ItemText("a"), Item(List(ItemText("b")))),
	)

	data, err := Encode(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"root","children":[
		{"kind":"text","value":"Hello"},
		{"kind":"break","spacing":1},
		{"kind":"indent","spacing":2,"children":[{"kind":"text","value":"x"}]},
		{"kind":"list","ordered":true,"children":[
			{"kind":"item","children":[{"kind":"text","value":"a"}]},
			{"kind":"item","children":[{"kind":"list","children":[
				{"kind":"item","children":[{"kind":"text","value":"b"}]}
			]}]}
		]}
	]}`, string(data))

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Serialize(tree), Serialize(decoded))
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := Encode(nil)
	assert.ErrorIs(t, err, ErrInvalidTree)

	_, err = Encode((*Root)(nil))
	assert.ErrorIs(t, err, ErrInvalidTree)
}
