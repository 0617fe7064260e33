package ipc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizeChange(t *testing.T) {
	tests := []struct {
		input string
		want  SizeChange
	}{
		{"1000", SizeChange{Kind: SetFixed, Fixed: 1000}},
		{"+10", SizeChange{Kind: AdjustFixed, Fixed: 10}},
		{"-10", SizeChange{Kind: AdjustFixed, Fixed: -10}},
		{"50%", SizeChange{Kind: SetProportion, Proportion: 50}},
		{"+5.5%", SizeChange{Kind: AdjustProportion, Proportion: 5.5}},
		{"-5%", SizeChange{Kind: AdjustProportion, Proportion: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSizeChange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseSizeChangeErrors(t *testing.T) {
	tests := map[string]string{
		"50%x": "trailing characters after '%' are not allowed",
		"%":    "value is missing",
		"":     "value is missing",
		"1.5":  "error parsing value",
		"abc%": "error parsing value",
	}
	for input, want := range tests {
		_, err := ParseSizeChange(input)
		assert.EqualError(t, err, want, input)
	}
}

func TestParsePositionChange(t *testing.T) {
	got, err := ParsePositionChange("-12.5")
	require.NoError(t, err)
	assert.Equal(t, PositionChange{Kind: AdjustFixed, Value: -12.5}, got)

	got, err = ParsePositionChange("25%")
	require.NoError(t, err)
	assert.Equal(t, PositionChange{Kind: SetProportion, Value: 25}, got)
}

func TestParseLayoutSwitchTarget(t *testing.T) {
	got, err := ParseLayoutSwitchTarget("next")
	require.NoError(t, err)
	assert.Equal(t, LayoutNext, got)

	got, err = ParseLayoutSwitchTarget("3")
	require.NoError(t, err)
	assert.Equal(t, LayoutIndex(3), got)

	_, err = ParseLayoutSwitchTarget("256")
	assert.EqualError(t, err, `invalid layout action, can be "next", "prev" or a layout index`)
}

func TestParseWorkspaceReferenceArg(t *testing.T) {
	got, err := ParseWorkspaceReferenceArg("2")
	require.NoError(t, err)
	assert.Equal(t, WorkspaceReferenceArg{Kind: WorkspaceByIndex, Index: 2}, got)

	got, err = ParseWorkspaceReferenceArg("browser")
	require.NoError(t, err)
	assert.Equal(t, WorkspaceReferenceArg{Kind: WorkspaceByName, Name: "browser"}, got)

	_, err = ParseWorkspaceReferenceArg("300")
	assert.Error(t, err)
}

func TestValueTypesJSON(t *testing.T) {
	tests := []struct {
		name  string
		value any
		ptr   any
		want  string
	}{
		{"fixed", SizeChange{Kind: SetFixed, Fixed: 100}, &SizeChange{}, `{"SetFixed":100}`},
		{"proportion", SizeChange{Kind: SetProportion, Proportion: 33.5}, &SizeChange{}, `{"SetProportion":33.5}`},
		{"position", PositionChange{Kind: AdjustFixed, Value: -4}, &PositionChange{}, `{"AdjustFixed":-4}`},
		{"prev", LayoutPrev, &LayoutSwitchTarget{}, `"Prev"`},
		{"index", LayoutIndex(1), &LayoutSwitchTarget{}, `{"Index":1}`},
		{"id", WorkspaceReferenceArg{Kind: WorkspaceByID, ID: 9}, &WorkspaceReferenceArg{}, `{"Id":9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			require.NoError(t, json.Unmarshal(data, tt.ptr))
			switch p := tt.ptr.(type) {
			case *SizeChange:
				assert.Equal(t, tt.value, *p)
			case *PositionChange:
				assert.Equal(t, tt.value, *p)
			case *LayoutSwitchTarget:
				assert.Equal(t, tt.value, *p)
			case *WorkspaceReferenceArg:
				assert.Equal(t, tt.value, *p)
			}
		})
	}
}
