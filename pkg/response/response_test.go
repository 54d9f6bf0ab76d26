package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap_NilPayloadSerializesAsNullData(t *testing.T) {
	b, err := json.Marshal(Wrap(nil))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	require.Equal(t, true, m["success"])
	require.Contains(t, m, "data")
	require.Nil(t, m["data"])
	require.NotEmpty(t, m["timestamp"])
}

func TestNormalize_WrapsPlainPayloadOnce(t *testing.T) {
	out := Normalize(map[string]any{"hello": "world"})
	env, ok := out.(Envelope)
	require.True(t, ok)
	require.True(t, env.Success)
	require.Equal(t, map[string]any{"hello": "world"}, env.Data)

	// a second pass leaves the envelope alone
	require.Equal(t, out, Normalize(out))
}

func TestNormalize_PassesThroughStructurallyEnveloped(t *testing.T) {
	already := map[string]any{
		"success":   true,
		"data":      map[string]any{"x": 1},
		"timestamp": "2024-01-02T03:04:05Z",
	}
	out := Normalize(already)
	require.Equal(t, already, out)
}

func TestNormalize_WrapsPartialShapes(t *testing.T) {
	// success without timestamp is not an envelope
	out := Normalize(map[string]any{"success": true})
	_, ok := out.(Envelope)
	require.True(t, ok)

	// timestamp without success is not an envelope either
	out = Normalize(map[string]any{"timestamp": "2024-01-02T03:04:05Z"})
	_, ok = out.(Envelope)
	require.True(t, ok)
}

func TestIsEnveloped_ErrorBody(t *testing.T) {
	require.True(t, IsEnveloped(ErrorBody{}))
	require.True(t, IsEnveloped(&Envelope{}))
	require.False(t, IsEnveloped("plain"))
	require.False(t, IsEnveloped(nil))
}
