package arraylist_test

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/katalvlaran/lvcontainers/arraylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarshalJSON verifies only live elements are encoded.
func TestMarshalJSON(t *testing.T) {
	l := arraylist.Of(3, 1, 2)
	_, err := l.Pop()
	require.NoError(t, err)

	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[3, 1]`, string(out))

	out, err = json.Marshal(arraylist.New[int]())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

// TestUnmarshalJSON verifies decoding inside a document and error reporting.
func TestUnmarshalJSON(t *testing.T) {
	var doc struct {
		Names *arraylist.ArrayList[string] `json:"names"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"names":["ada","grace"]}`), &doc))
	require.NotNil(t, doc.Names)
	assert.Equal(t, []string{"ada", "grace"}, doc.Names.Slice())

	l := arraylist.Of(1, 2)
	err := l.UnmarshalJSON([]byte(`{"not":"an array"}`))
	assert.Error(t, err)
	assert.Equal(t, []int{1, 2}, l.Slice(), "failed decode must not mutate")
}
