package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePatch struct {
	Name  Field[string]   `json:"name,omitzero"`
	Price Field[float64]  `json:"price,omitzero"`
	Tags  Field[[]string] `json:"tags,omitzero"`
}

func TestDecode_ThreeStates(t *testing.T) {
	var p samplePatch
	require.NoError(t, Decode([]byte(`{"name": null, "price": 9.5}`), &p))

	assert.True(t, p.Name.IsSet())
	assert.True(t, p.Name.IsNull())

	price, ok := p.Price.Get()
	assert.True(t, ok)
	assert.Equal(t, 9.5, price)

	assert.False(t, p.Tags.IsSet())
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {
	var p samplePatch
	require.NoError(t, Decode([]byte(`{"id": 999, "unknownKey": "x"}`), &p))

	assert.False(t, p.Name.IsSet())
	assert.False(t, p.Price.IsSet())
	assert.False(t, p.Tags.IsSet())
}

func TestDecode_KeysAreCaseSensitive(t *testing.T) {
	var p samplePatch
	require.NoError(t, Decode([]byte(`{"NAME": null, "Price": 1, "tags": ["a"]}`), &p))

	assert.False(t, p.Name.IsSet())
	assert.False(t, p.Price.IsSet())
	tags, ok := p.Tags.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, tags)
}

type line struct {
	Iban *string `json:"iban"`
	Bic  *string `json:"bic"`
}

type embeddedBase struct {
	ID int64 `json:"id"`
}

type request struct {
	embeddedBase
	Name  *string `json:"name"`
	Lines []line  `json:"lines"`
}

func TestUnmarshalExact_Nested(t *testing.T) {
	var r request
	require.NoError(t, UnmarshalExact([]byte(`{"id":3,"Name":"x","lines":[{"IBAN":"a","bic":"b"},{"iban":"c"}]}`), &r))

	assert.Equal(t, int64(3), r.ID)
	assert.Nil(t, r.Name)
	require.Len(t, r.Lines, 2)
	assert.Nil(t, r.Lines[0].Iban)
	assert.Equal(t, "b", *r.Lines[0].Bic)
	assert.Equal(t, "c", *r.Lines[1].Iban)
}

func TestUnmarshalExact_PatchArrayElements(t *testing.T) {
	var p struct {
		Lines Field[[]line] `json:"lines,omitzero"`
	}
	require.NoError(t, Decode([]byte(`{"lines":[{"Iban":"a","bic":"b"}]}`), &p))

	lines, ok := p.Lines.Get()
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].Iban)
	assert.Equal(t, "b", *lines[0].Bic)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty body", doc: ""},
		{name: "array document", doc: `[{"name":"x"}]`},
		{name: "scalar document", doc: `"name"`},
		{name: "malformed", doc: `{"name": `},
		{name: "wrong member type", doc: `{"price": "cheap"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p samplePatch
			assert.Error(t, Decode([]byte(tt.doc), &p))
		})
	}
}

func TestApply(t *testing.T) {
	current := "old"

	assert.Same(t, &current, Apply(Field[string]{}, &current))
	assert.Nil(t, Apply(Null[string](), &current))

	got := Apply(Set("new"), &current)
	require.NotNil(t, got)
	assert.Equal(t, "new", *got)
	assert.Equal(t, "old", current)
}

func TestArrayReplacedWholesale(t *testing.T) {
	var p samplePatch
	require.NoError(t, Decode([]byte(`{"tags": ["b"]}`), &p))

	tags, ok := p.Tags.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, tags)
}

func TestMarshal_OmitsAbsentFields(t *testing.T) {
	p := samplePatch{Name: Null[string](), Price: Set(2.0)}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": null, "price": 2}`, string(data))
}
