package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
)

// New replaces the open document with a fresh scene.
func (ed *Editor) New() {
	ed.scn = scene.NewScene("Untitled")
	ed.filename = ""
	ed.dirty = false
	ed.undo.Clear()
	ed.Select(nil)
	ed.cam.X = 0
	ed.cam.Y = 0
	ed.cam.SetZoom(1)
}

// Load replaces the open document with the scene at path. The document is
// replaced wholesale, never merged.
func (ed *Editor) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := scene.Deserialize(f)
	if err != nil {
		return err
	}
	ed.scn = s
	ed.filename = path
	ed.dirty = false
	ed.undo.Clear()
	ed.Select(nil)
	ed.cam.X = s.Camera.X
	ed.cam.Y = s.Camera.Y
	ed.cam.SetZoom(1)
	ed.SetStatus(fmt.Sprintf("opened %s (%d elements)", path, len(s.Elements)))
	return nil
}

// SaveCurrent writes the document back to its file, inventing a name in
// scenes/ for never-saved documents.
func (ed *Editor) SaveCurrent() {
	if ed.filename == "" {
		if err := os.MkdirAll("scenes", 0755); err != nil {
			ed.SetStatus(err.Error())
			return
		}
		ed.filename = filepath.Join("scenes", fmt.Sprintf("scene_%d.scene", time.Now().Unix()))
	}
	if err := ed.Save(ed.filename); err != nil {
		ed.SetStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	ed.SetStatus("saved " + ed.filename)
}

func (ed *Editor) Save(path string) error {
	// unowned clickables silently vanish from the output; warn before it
	// happens instead of after someone notices
	if _, orphans := scene.ResolveClickables(ed.scn.Elements); len(orphans) > 0 {
		for _, o := range orphans {
			log.Printf("editor: clickable %q has no owner, dropped from output", o.Name)
		}
		ed.SetStatus(fmt.Sprintf("warning: %d unowned clickable(s) dropped", len(orphans)))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, scene.Serialize(ed.scn), 0644); err != nil {
		return err
	}
	ed.dirty = false
	ed.lastSave = time.Now()

	ed.cfg.LastFile = path
	if err := ed.cfg.Save(); err != nil {
		log.Printf("editor: save config: %v", err)
	}
	return nil
}
