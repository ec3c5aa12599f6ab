package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"

	"github.com/kisstp2006/FluxionJsSceneEditor/prefabs"
	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
	"github.com/kisstp2006/FluxionJsSceneEditor/view"
)

const (
	leftPanelWidth  = 220
	rightPanelWidth = 200
	toolbarHeight   = 48
	statusHeight    = 20
)

// Editor is the Ebiten game driving the scene editor.
type Editor struct {
	cfg         Config
	scn         *scene.Scene
	filename    string
	dirty       bool
	clipboardOK bool

	cam    *view.Camera
	canvas *Canvas

	ui        *ebitenui.UI
	fontFace  *text.Face
	inspector *Inspector
	palette   *widget.Container
	templates []prefabs.TemplateSpec
	watcher   *prefabs.Watcher

	selected scene.Element
	undo     *UndoStack

	surfaceW, surfaceH int

	status      string
	statusUntil time.Time
	lastSave    time.Time
}

func NewEditor(cfg Config, templates []prefabs.TemplateSpec, clipboardOK bool) *Editor {
	ed := &Editor{
		cfg:         cfg,
		templates:   templates,
		clipboardOK: clipboardOK,
		cam:         view.NewCamera(),
		undo:        NewUndoStack(64),
		surfaceW:    cfg.WindowWidth,
		surfaceH:    cfg.WindowHeight,
	}
	ed.canvas = NewCanvas(ed)
	ed.buildUI()
	return ed
}

// TargetResolution is the logical frame the canvas letterboxes: the open
// scene's camera viewport, or the configured fallback.
func (ed *Editor) TargetResolution() (float64, float64) {
	if ed.scn != nil && ed.scn.Camera.Width > 0 && ed.scn.Camera.Height > 0 {
		return ed.scn.Camera.Width, ed.scn.Camera.Height
	}
	return ed.cfg.TargetWidth, ed.cfg.TargetHeight
}

func (ed *Editor) Update() error {
	ed.pollTemplateWatcher()

	const dt = 1.0 / 60.0
	ed.cam.Update(dt)

	ed.handleShortcuts()
	ed.canvas.Update()
	ed.ui.Update()
	ed.autosave()
	return nil
}

// autosave rewrites a dirty named document on the configured interval.
// Untitled documents are never autosaved; picking a filename is the
// user's call.
func (ed *Editor) autosave() {
	if ed.cfg.AutosaveSec <= 0 || !ed.dirty || ed.filename == "" {
		return
	}
	if time.Since(ed.lastSave) < time.Duration(ed.cfg.AutosaveSec)*time.Second {
		return
	}
	if err := ed.Save(ed.filename); err != nil {
		log.Printf("editor: autosave: %v", err)
		ed.lastSave = time.Now()
		return
	}
	ed.SetStatus("autosaved")
}

func (ed *Editor) handleShortcuts() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		ed.SaveCurrent()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		ed.Undo()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		ed.CopySelected()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		ed.Paste()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ed.FocusSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		ed.DeleteSelected()
	}
}

// FocusSelected scrolls the camera so the selected element sits at the
// center of the logical frame.
func (ed *Editor) FocusSelected() {
	if ed.selected == nil {
		return
	}
	b := ed.selected.Common()
	tw, th := ed.TargetResolution()
	z := ed.cam.Zoom()
	cx := b.X + b.Width/2 - tw/z/2
	cy := b.Y + b.Height/2 - th/z/2
	ed.cam.ScrollTo(cx, cy, 0.25, ease.OutQuad)
}

func (ed *Editor) DeleteSelected() {
	if ed.selected == nil {
		return
	}
	ed.PushUndo()
	ed.scn.RemoveElement(ed.selected)
	ed.Select(nil)
	ed.dirty = true
}

// Select changes the current selection and refreshes the inspector.
func (ed *Editor) Select(el scene.Element) {
	ed.selected = el
	ed.inspector.SetElement(el)
}

func (ed *Editor) PushUndo() {
	ed.undo.Push(ed.scn.Clone())
}

func (ed *Editor) Undo() {
	prev := ed.undo.Pop()
	if prev == nil {
		ed.SetStatus("nothing to undo")
		return
	}
	ed.scn = prev
	ed.Select(nil)
	ed.dirty = true
	ed.SetStatus("undone")
}

// InsertTemplate builds an element from a palette template, placed at the
// center of the current view, with a name made unique within the scene.
func (ed *Editor) InsertTemplate(t prefabs.TemplateSpec) {
	tw, th := ed.TargetResolution()
	z := ed.cam.Zoom()
	cx := ed.cam.X + tw/z/2
	cy := ed.cam.Y + th/z/2

	name := ed.uniqueName(t.Kind)
	el, err := t.Build(name, cx, cy)
	if err != nil {
		ed.SetStatus(err.Error())
		return
	}
	ed.PushUndo()
	ed.scn.Add(el)
	ed.Select(el)
	ed.dirty = true
	ed.SetStatus(fmt.Sprintf("inserted %s", name))
}

func (ed *Editor) uniqueName(prefix string) string {
	if prefix == "" {
		prefix = "Element"
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", prefix, i)
		if ed.scn.Find(name) == nil {
			return name
		}
	}
}

func (ed *Editor) SetStatus(msg string) {
	ed.status = msg
	ed.statusUntil = time.Now().Add(4 * time.Second)
}

func (ed *Editor) pollTemplateWatcher() {
	if ed.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-ed.watcher.Events:
			if !ok {
				ed.watcher = nil
				return
			}
			log.Printf("editor: template changed: %s", name)
			reload = true
		case err, ok := <-ed.watcher.Errors:
			if ok {
				log.Printf("editor: template watcher: %v", err)
			}
		default:
			if reload {
				ed.reloadTemplates()
			}
			return
		}
	}
}

func (ed *Editor) reloadTemplates() {
	templates, err := prefabs.LoadAll()
	if err != nil {
		log.Printf("editor: reload templates: %v", err)
		return
	}
	ed.templates = templates
	ed.rebuildPalette()
	ed.SetStatus("palette reloaded")
}

func (ed *Editor) Draw(screen *ebiten.Image) {
	ed.canvas.Draw(screen)
	ed.ui.Draw(screen)
	ed.drawStatus(screen)
}

func (ed *Editor) drawStatus(screen *ebiten.Image) {
	line := ed.statusLine()
	ebitenutil.DebugPrintAt(screen, line, leftPanelWidth+8, ed.surfaceH-statusHeight+2)
}

func (ed *Editor) statusLine() string {
	name := ed.filename
	if name == "" {
		name = "(unsaved)"
	}
	mark := ""
	if ed.dirty {
		mark = "*"
	}
	line := fmt.Sprintf("%s%s  zoom %.2f", name, mark, ed.cam.Zoom())

	// world coordinates under the cursor, while it is over the frame
	mx, my := ebiten.CursorPosition()
	if vp := ed.canvas.Viewport(); vp.Contains(float64(mx), float64(my)) {
		wx, wy := view.ScreenToWorld(ed.cam, vp, float64(mx), float64(my))
		line += fmt.Sprintf("  (%.1f, %.1f)", wx, wy)
	}

	if ed.status != "" && time.Now().Before(ed.statusUntil) {
		line += "  |  " + ed.status
	}
	return line
}

func (ed *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	ed.surfaceW = outsideWidth
	ed.surfaceH = outsideHeight
	return outsideWidth, outsideHeight
}
