package message

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goterrain/common"
	"goterrain/terrain"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestBrushTextRoundTrip(t *testing.T) {
	brushes := []terrain.Brush{
		terrain.DefaultBrush(),
		{
			Center: common.Vec3{1.5, -2, 10},
			Kind:   terrain.Rectangle{Width: 3, Length: 0.25},
			Mode:   terrain.DrawOnMask{Layer: 4, Alpha: 0.5},
		},
	}
	for _, b := range brushes {
		text, err := MarshalBrushText(b)
		require.NoError(t, err)
		assert.Contains(t, text, BrushTextPrefix)

		got, err := UnmarshalBrushText(text + "\n")
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func TestUnmarshalBrushTextRejects(t *testing.T) {
	_, err := UnmarshalBrushText("hello")
	assert.ErrorIs(t, err, ErrNotBrush)

	_, err = UnmarshalBrushText(BrushTextPrefix + "%%%")
	assert.Error(t, err)

	_, err = UnmarshalBrushText(BrushTextPrefix + base64.StdEncoding.EncodeToString([]byte{0xff, 0xff, 0xff}))
	assert.Error(t, err)
}

func TestBrushFromStructRejectsUnknownVariants(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{
		"center": []any{0.0, 0.0, 0.0},
		"kind":   map[string]any{"type": "triangle"},
		"mode":   map[string]any{"type": modeHeight, "amount": 1.0},
	})
	require.NoError(t, err)
	_, err = BrushFromStruct(s)
	assert.ErrorIs(t, err, ErrNotBrush)

	s, err = structpb.NewStruct(map[string]any{
		"center": []any{0.0, 0.0},
	})
	require.NoError(t, err)
	_, err = BrushFromStruct(s)
	assert.ErrorIs(t, err, ErrNotBrush)

	s, err = structpb.NewStruct(map[string]any{
		"center": []any{0.0, 0.0, 0.0},
		"kind":   map[string]any{"type": kindCircle, "radius": 1.0},
		"mode":   map[string]any{"type": modeMask, "layer": -1.0, "alpha": 1.0},
	})
	require.NoError(t, err)
	_, err = BrushFromStruct(s)
	assert.ErrorIs(t, err, ErrNotBrush)
}

func TestBrushToStructRequiresVariants(t *testing.T) {
	_, err := BrushToStruct(terrain.Brush{})
	assert.ErrorIs(t, err, ErrNotBrush)
}
