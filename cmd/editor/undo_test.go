package main

import (
	"testing"

	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
)

func snap(name string) *scene.Scene {
	s := scene.NewScene(name)
	sp := scene.NewSprite(name + "_sprite")
	sp.X, sp.Y, sp.Width, sp.Height = 1, 2, 3, 4
	sp.ImageSrc = "img.png"
	s.Add(sp)
	return s
}

func TestUndoStackPushPop(t *testing.T) {
	u := NewUndoStack(8)
	if got := u.Pop(); got != nil {
		t.Fatalf("Pop on empty stack = %v, want nil", got)
	}

	u.Push(snap("a"))
	u.Push(snap("b"))
	if u.Len() != 2 {
		t.Fatalf("Len = %d, want 2", u.Len())
	}

	if got := u.Pop(); got == nil || got.Name != "b" {
		t.Fatalf("Pop = %v, want scene b", got)
	}
	if got := u.Pop(); got == nil || got.Name != "a" {
		t.Fatalf("Pop = %v, want scene a", got)
	}
	if got := u.Pop(); got != nil {
		t.Fatalf("Pop after draining = %v, want nil", got)
	}
}

func TestUndoStackDropsOldestAtCapacity(t *testing.T) {
	u := NewUndoStack(2)
	u.Push(snap("a"))
	u.Push(snap("b"))
	u.Push(snap("c"))

	if u.Len() != 2 {
		t.Fatalf("Len = %d, want 2", u.Len())
	}
	if got := u.Pop(); got.Name != "c" {
		t.Fatalf("Pop = %s, want c", got.Name)
	}
	if got := u.Pop(); got.Name != "b" {
		t.Fatalf("Pop = %s, want b", got.Name)
	}
}

func TestUndoStackClear(t *testing.T) {
	u := NewUndoStack(4)
	u.Push(snap("a"))
	u.Clear()
	if u.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", u.Len())
	}
}
