package main

import "github.com/kisstp2006/FluxionJsSceneEditor/scene"

// UndoStack stores whole-document snapshots, oldest dropped first.
type UndoStack struct {
	snaps []*scene.Scene
	max   int
}

func NewUndoStack(max int) *UndoStack {
	if max < 1 {
		max = 1
	}
	return &UndoStack{max: max}
}

func (u *UndoStack) Push(s *scene.Scene) {
	u.snaps = append(u.snaps, s)
	if len(u.snaps) > u.max {
		u.snaps = u.snaps[len(u.snaps)-u.max:]
	}
}

func (u *UndoStack) Pop() *scene.Scene {
	if len(u.snaps) == 0 {
		return nil
	}
	s := u.snaps[len(u.snaps)-1]
	u.snaps = u.snaps[:len(u.snaps)-1]
	return s
}

func (u *UndoStack) Clear() {
	u.snaps = nil
}

func (u *UndoStack) Len() int { return len(u.snaps) }
