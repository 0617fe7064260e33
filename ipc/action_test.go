package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalAction(t *testing.T) {
	id := uint64(7)

	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{"unit variant", FocusColumnLeft{}, `{"FocusColumnLeft":{}}`},
		{"focused window", CloseWindow{}, `{"CloseWindow":{"id":null}}`},
		{"window by id", CloseWindow{ID: &id}, `{"CloseWindow":{"id":7}}`},
		{"size change", SetColumnWidth{Change: SizeChange{Kind: AdjustProportion, Proportion: -10}}, `{"SetColumnWidth":{"change":{"AdjustProportion":-10}}}`},
		{"layout", SwitchLayout{Layout: LayoutNext}, `{"SwitchLayout":{"layout":"Next"}}`},
		{"workspace", FocusWorkspace{Reference: WorkspaceReferenceArg{Kind: WorkspaceByName, Name: "chat"}}, `{"FocusWorkspace":{"reference":{"Name":"chat"}}}`},
		{"spawn", Spawn{Command: []string{"alacritty", "-e", "htop"}}, `{"Spawn":{"command":["alacritty","-e","htop"]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalAction(tt.action)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestUnmarshalAction(t *testing.T) {
	a, err := UnmarshalAction([]byte(`{"MoveWindowToWorkspace":{"window_id":3,"reference":{"Index":2},"focus":false}}`))
	require.NoError(t, err)

	move, ok := a.(MoveWindowToWorkspace)
	require.True(t, ok)
	require.NotNil(t, move.WindowID)
	assert.Equal(t, uint64(3), *move.WindowID)
	assert.Equal(t, WorkspaceReferenceArg{Kind: WorkspaceByIndex, Index: 2}, move.Reference)
	assert.False(t, move.Focus)

	a, err = UnmarshalAction([]byte(`"ToggleOverview"`))
	require.NoError(t, err)
	assert.Equal(t, ToggleOverview{}, a)

	_, err = UnmarshalAction([]byte(`"CloseWindow"`))
	assert.Error(t, err)

	_, err = UnmarshalAction([]byte(`{"NotAnAction":{}}`))
	assert.ErrorContains(t, err, "unknown variant")

	_, err = UnmarshalAction([]byte(`{"Quit":{},"Spawn":{}}`))
	assert.Error(t, err)
}

func TestEveryVariantRoundTrips(t *testing.T) {
	for _, v := range Variants() {
		t.Run(Name(v), func(t *testing.T) {
			data, err := MarshalAction(v)
			require.NoError(t, err)

			back, err := UnmarshalAction(data)
			require.NoError(t, err)
			assert.Equal(t, Name(v), Name(back))
		})
	}
}

func TestRequestEnvelope(t *testing.T) {
	data, err := Request{Action: ToggleOverview{}}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"Action":{"ToggleOverview":{}}}`, string(data))

	var req Request
	require.NoError(t, req.UnmarshalJSON(data))
	assert.Equal(t, ToggleOverview{}, req.Action)
}
