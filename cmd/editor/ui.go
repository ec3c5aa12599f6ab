package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kisstp2006/FluxionJsSceneEditor/prefabs"
)

func (ed *Editor) buildUI() {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbar := ed.buildToolbar(ui.PrimaryTheme, &fontFace)

	inspectorPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBG)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	ed.inspector = buildInspector(ed, inspectorPanel, ui.PrimaryTheme, &fontFace)

	ed.palette = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBG)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	inspectorPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	ed.palette.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(inspectorPanel)
	root.AddChild(ed.palette)
	root.AddChild(toolbar)

	ui.Container = root
	ed.ui = ui
	ed.fontFace = &fontFace
	ed.rebuildPalette()
}

func (ed *Editor) buildToolbar(theme *widget.Theme, fontFace *text.Face) *widget.Container {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	actions := []struct {
		name string
		fn   func()
	}{
		{"New", func() { ed.New() }},
		{"Save", func() { ed.SaveCurrent() }},
		{"Undo", func() { ed.Undo() }},
		{"Copy", func() { ed.CopySelected() }},
		{"Paste", func() { ed.Paste() }},
		{"Focus", func() { ed.FocusSelected() }},
		{"Delete", func() { ed.DeleteSelected() }},
	}
	for _, a := range actions {
		fn := a.fn
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.name, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				fn()
			}),
		)
		toolbar.AddChild(btn)
	}
	return toolbar
}

// rebuildPalette replaces the template list, picking up templates added or
// edited on disk while the editor is running.
func (ed *Editor) rebuildPalette() {
	ed.palette.RemoveChildren()

	label := widget.NewLabel(
		widget.LabelOpts.Text("Templates", ed.fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	ed.palette.AddChild(label)

	entries := make([]any, 0, len(ed.templates))
	for _, t := range ed.templates {
		entries = append(entries, t)
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if t, ok := e.(prefabs.TemplateSpec); ok {
				return t.Name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if t, ok := args.Entry.(prefabs.TemplateSpec); ok {
				ed.InsertTemplate(t)
			}
		}),
	)
	list.GetWidget().MinHeight = 240
	ed.palette.AddChild(list)
}
