package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
)

// Inspector is the left-panel field editor for the selected element.
// Values are committed with the Apply button rather than per keystroke,
// so a half-typed number never lands in the model.
type Inspector struct {
	ed *Editor

	kindLabel *widget.Label
	name      *widget.TextInput
	x, y      *widget.TextInput
	w, h      *widget.TextInput
	layer     *widget.TextInput
	activeBtn *widget.Button

	current scene.Element
}

func buildInspector(ed *Editor, parent *widget.Container, theme *widget.Theme, fontFace *text.Face) *Inspector {
	ins := &Inspector{ed: ed}

	ins.kindLabel = widget.NewLabel(
		widget.LabelOpts.Text("No selection", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(ins.kindLabel)

	ins.name = addLabeledInput(parent, fontFace, "Name")
	ins.x = addLabeledInput(parent, fontFace, "X")
	ins.y = addLabeledInput(parent, fontFace, "Y")
	ins.w = addLabeledInput(parent, fontFace, "Width")
	ins.h = addLabeledInput(parent, fontFace, "Height")
	ins.layer = addLabeledInput(parent, fontFace, "Layer")

	ins.activeBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Active", fontFace, &widget.ButtonTextColor{Idle: color.Black}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ins.toggleActive()
		}),
	)
	parent.AddChild(ins.activeBtn)

	apply := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Apply", fontFace, &widget.ButtonTextColor{Idle: color.Black}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ins.apply()
		}),
	)
	parent.AddChild(apply)

	return ins
}

func addLabeledInput(parent *widget.Container, fontFace *text.Face, label string) *widget.TextInput {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(190, 26),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
	)
	parent.AddChild(input)
	return input
}

// SetElement refreshes the panel from an element, or blanks it for nil.
func (ins *Inspector) SetElement(el scene.Element) {
	ins.current = el
	if el == nil {
		ins.kindLabel.Label = "No selection"
		for _, in := range ins.inputs() {
			in.SetText("")
		}
		return
	}
	b := el.Common()
	ins.kindLabel.Label = el.Kind().String()
	ins.name.SetText(b.Name)
	ins.x.SetText(scene.FormatFloat(b.X))
	ins.y.SetText(scene.FormatFloat(b.Y))
	ins.w.SetText(scene.FormatFloat(b.Width))
	ins.h.SetText(scene.FormatFloat(b.Height))
	ins.layer.SetText(strconv.Itoa(b.Layer))
}

func (ins *Inspector) inputs() []*widget.TextInput {
	return []*widget.TextInput{ins.name, ins.x, ins.y, ins.w, ins.h, ins.layer}
}

func (ins *Inspector) toggleActive() {
	if ins.current == nil {
		return
	}
	ins.ed.PushUndo()
	b := ins.current.Common()
	b.Active = !b.Active
	ins.ed.dirty = true
	ins.ed.SetStatus(fmt.Sprintf("%s active=%v", b.Name, b.Active))
}

func (ins *Inspector) apply() {
	el := ins.current
	if el == nil {
		return
	}
	ins.ed.PushUndo()
	b := el.Common()

	if name := ins.name.GetText(); name != "" && name != b.Name {
		ins.ed.scn.RenameElement(el, name)
	}
	b.X = parseFloatOr(ins.x.GetText(), b.X)
	b.Y = parseFloatOr(ins.y.GetText(), b.Y)

	// audio and text have no authored size; ignore edits there
	if el.Kind() != scene.KindAudio && el.Kind() != scene.KindText {
		w := parseFloatOr(ins.w.GetText(), b.Width)
		h := parseFloatOr(ins.h.GetText(), b.Height)
		if c, ok := el.(*scene.Clickable); ok {
			if w != b.Width {
				c.ExplicitWidth = &w
			}
			if h != b.Height {
				c.ExplicitHeight = &h
			}
		}
		b.Width = w
		b.Height = h
	}
	if n, err := strconv.Atoi(ins.layer.GetText()); err == nil {
		b.Layer = n
	}

	ins.ed.dirty = true
	ins.ed.SetStatus(fmt.Sprintf("updated %s", b.Name))
	ins.SetElement(el)
}

func parseFloatOr(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
