package message

import (
	"encoding/base64"
	"errors"
	"fmt"
	"goterrain/common"
	"goterrain/terrain"
	"google.golang.org/protobuf/types/known/structpb"
	"math"
	"strings"
)

// BrushTextPrefix marks clipboard text that carries a brush.
const BrushTextPrefix = "goterrain-brush:"

const (
	kindCircle    = "circle"
	kindRectangle = "rectangle"
	modeHeight    = "modify_height_map"
	modeMask      = "draw_on_mask"
)

var ErrNotBrush = errors.New("not a brush payload")

func BrushToStruct(b terrain.Brush) (*structpb.Struct, error) {
	var kind map[string]any
	switch k := b.Kind.(type) {
	case terrain.Circle:
		kind = map[string]any{"type": kindCircle, "radius": float64(k.Radius)}
	case terrain.Rectangle:
		kind = map[string]any{"type": kindRectangle, "width": float64(k.Width), "length": float64(k.Length)}
	default:
		return nil, fmt.Errorf("brush kind %T: %w", b.Kind, ErrNotBrush)
	}
	var mode map[string]any
	switch m := b.Mode.(type) {
	case terrain.ModifyHeightMap:
		mode = map[string]any{"type": modeHeight, "amount": float64(m.Amount)}
	case terrain.DrawOnMask:
		mode = map[string]any{"type": modeMask, "layer": float64(m.Layer), "alpha": float64(m.Alpha)}
	default:
		return nil, fmt.Errorf("brush mode %T: %w", b.Mode, ErrNotBrush)
	}
	return structpb.NewStruct(map[string]any{
		"center": []any{float64(b.Center.X()), float64(b.Center.Y()), float64(b.Center.Z())},
		"kind":   kind,
		"mode":   mode,
	})
}

func BrushFromStruct(s *structpb.Struct) (terrain.Brush, error) {
	var b terrain.Brush
	fields := s.GetFields()

	center := fields["center"].GetListValue().GetValues()
	if len(center) != 3 {
		return b, fmt.Errorf("center has %d components: %w", len(center), ErrNotBrush)
	}
	for i, v := range center {
		b.Center[i] = float32(v.GetNumberValue())
	}

	kind := fields["kind"].GetStructValue().GetFields()
	switch kind["type"].GetStringValue() {
	case kindCircle:
		b.Kind = terrain.Circle{Radius: number(kind, "radius")}
	case kindRectangle:
		b.Kind = terrain.Rectangle{Width: number(kind, "width"), Length: number(kind, "length")}
	default:
		return b, fmt.Errorf("kind %q: %w", kind["type"].GetStringValue(), ErrNotBrush)
	}

	mode := fields["mode"].GetStructValue().GetFields()
	switch mode["type"].GetStringValue() {
	case modeHeight:
		b.Mode = terrain.ModifyHeightMap{Amount: number(mode, "amount")}
	case modeMask:
		layer := mode["layer"].GetNumberValue()
		if layer < 0 || layer > math.MaxUint32 {
			return b, fmt.Errorf("mask layer %v: %w", layer, ErrNotBrush)
		}
		b.Mode = terrain.DrawOnMask{Layer: uint32(layer), Alpha: number(mode, "alpha")}
	default:
		return b, fmt.Errorf("mode %q: %w", mode["type"].GetStringValue(), ErrNotBrush)
	}
	return b, nil
}

func number(fields map[string]*structpb.Value, key string) float32 {
	v := float32(fields[key].GetNumberValue())
	if !common.IsFinite(v) {
		return 0
	}
	return v
}

// MarshalBrushText encodes a brush as one line of clipboard text.
func MarshalBrushText(b terrain.Brush) (string, error) {
	s, err := BrushToStruct(b)
	if err != nil {
		return "", err
	}
	data, err := Encode(s)
	if err != nil {
		return "", err
	}
	return BrushTextPrefix + base64.StdEncoding.EncodeToString(data), nil
}

func UnmarshalBrushText(text string) (terrain.Brush, error) {
	payload, ok := strings.CutPrefix(strings.TrimSpace(text), BrushTextPrefix)
	if !ok {
		return terrain.Brush{}, ErrNotBrush
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return terrain.Brush{}, fmt.Errorf("brush text: %w", err)
	}
	s := &structpb.Struct{}
	if err := Decode(data, s); err != nil {
		return terrain.Brush{}, err
	}
	return BrushFromStruct(s)
}
