package main

import (
	"fmt"

	"golang.design/x/clipboard"

	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
)

// CopySelected puts the selected element (and its attached clickables) on
// the system clipboard as a scene fragment in the regular markup form, so
// it pastes cleanly into this or another editor instance.
func (ed *Editor) CopySelected() {
	if ed.selected == nil || !ed.clipboardOK {
		return
	}
	if _, ok := ed.selected.(*scene.Clickable); ok {
		// a bare clickable has no standalone serialized form
		ed.SetStatus("copy the owning element instead; clickables travel with it")
		return
	}
	frag := scene.NewScene("clipboard")
	frag.Add(scene.CloneElement(ed.selected))
	for _, c := range ed.scn.Dependents(ed.selected) {
		frag.Add(scene.CloneElement(c))
	}
	clipboard.Write(clipboard.FmtText, scene.Serialize(frag))
	ed.SetStatus(fmt.Sprintf("copied %s", ed.selected.Common().Name))
}

// Paste inserts the clipboard's scene fragment, renaming on collision so
// pasted clickable back-references stay consistent.
func (ed *Editor) Paste() {
	if !ed.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	frag, err := scene.DeserializeBytes(data)
	if err != nil {
		ed.SetStatus("clipboard does not hold a scene fragment")
		return
	}
	if len(frag.Elements) == 0 {
		return
	}

	ed.PushUndo()
	var first scene.Element
	for _, el := range frag.Elements {
		if old := el.Common().Name; ed.scn.Find(old) != nil {
			frag.RenameElement(el, ed.uniqueName(old+"_copy"))
		}
		ed.scn.Add(el)
		if first == nil {
			first = el
		}
	}
	ed.Select(first)
	ed.dirty = true
	ed.SetStatus(fmt.Sprintf("pasted %d element(s)", len(frag.Elements)))
}
