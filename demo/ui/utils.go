package ui

import (
	"github.com/gorustyt/fyne/v2"
	"github.com/gorustyt/fyne/v2/container"
	"github.com/gorustyt/fyne/v2/widget"
	"goterrain/common"
	"strconv"
	"strings"
)

// NumericField is an entry bounded to [min, max] with -/+ buttons moving by step.
// Every change, typed or stepped, goes through the entry text.
type NumericField struct {
	Entry     *widget.Entry
	OnChanged func(v float32)

	min, max, step float32
	value          float32
	c              fyne.CanvasObject
}

func NewNumericField(min, max, step float32) *NumericField {
	n := &NumericField{min: min, max: max, step: step, value: min}
	n.Entry = widget.NewEntry()
	n.Entry.SetText(formatFloat(min))
	n.Entry.Validator = func(s string) error {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		return err
	}
	n.Entry.OnChanged = n.onTextChanged
	dec := widget.NewButton("-", func() { n.Entry.SetText(formatFloat(n.clamp(n.value - n.step))) })
	inc := widget.NewButton("+", func() { n.Entry.SetText(formatFloat(n.clamp(n.value + n.step))) })
	n.c = container.NewBorder(nil, nil, nil, container.NewHBox(dec, inc), n.Entry)
	return n
}

func (n *NumericField) onTextChanged(s string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || !common.IsFinite(v) {
		return
	}
	f := float32(v)
	if c := n.clamp(f); c != f {
		n.Entry.SetText(formatFloat(c))
		return
	}
	n.value = f
	if n.OnChanged != nil {
		n.OnChanged(f)
	}
}

func (n *NumericField) clamp(v float32) float32 {
	return common.Clamp(v, n.min, n.max)
}

// SetValue shows v; it fires OnChanged like any other edit.
func (n *NumericField) SetValue(v float32) {
	n.Entry.SetText(formatFloat(n.clamp(v)))
}

func (n *NumericField) GetRenderObj() fyne.CanvasObject {
	return n.c
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func indexOf(options []string, s string) int {
	for i, v := range options {
		if v == s {
			return i
		}
	}
	return -1
}
