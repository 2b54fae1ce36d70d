package jsonpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Years int     `json:"years"`
	Rate  float64 `json:"market_rate"`
	Note  string  `json:"note,omitempty"`
}

func TestBetweenIdentical(t *testing.T) {
	p := params{Years: 10, Rate: 7}

	patch, err := Between(p, p)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(patch))
}

func TestBetweenChangedAndAdded(t *testing.T) {
	patch, err := Between(params{Years: 10, Rate: 7}, params{Years: 30, Rate: 7, Note: "x/y"})
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"op":"add","path":"/note","value":"x/y"},
		{"op":"replace","path":"/years","value":30}
	]`, string(patch))
}

func TestDiffRemovedKey(t *testing.T) {
	ops := Diff(map[string]any{"a~b": 1.0, "c": 2.0}, map[string]any{"c": 2.0}, "")

	require.Len(t, ops, 1)
	assert.Equal(t, Operation{Op: "remove", Path: "/a~0b"}, ops[0])
}

func TestDiffArrays(t *testing.T) {
	a := []any{1.0, 2.0, 3.0, 4.0}
	b := []any{1.0, 5.0}

	ops := Diff(a, b, "/v")

	assert.Equal(t, []Operation{
		{Op: "replace", Path: "/v/1", Value: 5.0},
		{Op: "remove", Path: "/v/3"},
		{Op: "remove", Path: "/v/2"},
	}, ops)

	ops = Diff(b, a, "/v")
	assert.Equal(t, []Operation{
		{Op: "replace", Path: "/v/1", Value: 2.0},
		{Op: "add", Path: "/v/2", Value: 3.0},
		{Op: "add", Path: "/v/3", Value: 4.0},
	}, ops)
}

func TestDiffTypeChange(t *testing.T) {
	ops := Diff(map[string]any{"x": []any{1.0}}, map[string]any{"x": "flat"}, "")

	assert.Equal(t, []Operation{{Op: "replace", Path: "/x", Value: "flat"}}, ops)
}
