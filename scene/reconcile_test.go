package scene

import "testing"

func explicit(v float64) *float64 { return &v }

func TestClickableMatchingPriority(t *testing.T) {
	door := NewSprite("Door")
	door.X, door.Y, door.Width, door.Height = 10, 20, 30, 40

	byParent := NewClickable("Door")
	byParent.Parent = "Door"

	byName := NewClickable("DoorHitbox")

	byBounds := NewClickable("Unrelated")
	byBounds.X, byBounds.Y = 10, 20
	byBounds.ExplicitWidth = explicit(30)
	byBounds.ExplicitHeight = explicit(40)
	byBounds.Width, byBounds.Height = 30, 40

	elements := []Element{door, byParent, byName, byBounds}
	attached, orphans := ResolveClickables(elements)

	if attached[door] != byParent {
		t.Fatalf("attached = %v, want the explicit parent-name match", attached[door])
	}
	if len(orphans) != 2 {
		t.Fatalf("got %d orphans, want 2", len(orphans))
	}
	for _, o := range orphans {
		if o == byParent {
			t.Error("consumed clickable reported as orphan")
		}
	}
}

func TestClickableMatchingFallbacks(t *testing.T) {
	t.Run("name_convention", func(t *testing.T) {
		door := NewSprite("Door")
		hitbox := NewClickable("DoorHitbox")
		area := NewClickable("Door_ClickableArea")

		attached, _ := ResolveClickables([]Element{door, area, hitbox})
		if attached[door] != hitbox {
			t.Error("Hitbox suffix must be checked before _ClickableArea")
		}
	})

	t.Run("parent_match_is_case_insensitive", func(t *testing.T) {
		door := NewSprite("Door")
		c := NewClickable("c")
		c.Parent = "DOOR"
		attached, _ := ResolveClickables([]Element{door, c})
		if attached[door] != c {
			t.Error("parent-name match should ignore case")
		}
	})

	t.Run("parent_match_requires_area_flag", func(t *testing.T) {
		door := NewSprite("Door")
		c := NewClickable("c")
		c.Parent = "Door"
		c.HasArea = false
		attached, _ := ResolveClickables([]Element{door, c})
		if attached[door] == c {
			t.Error("clickable without area flag must not match by parent name")
		}
	})

	t.Run("bounds_within_tolerance", func(t *testing.T) {
		door := NewSprite("Door")
		door.X, door.Y, door.Width, door.Height = 1, 2, 3, 4
		c := NewClickable("somewhere")
		c.X, c.Y = 1+5e-7, 2-5e-7
		c.ExplicitWidth = explicit(3)
		c.ExplicitHeight = explicit(4)
		c.Width, c.Height = 3, 4
		attached, _ := ResolveClickables([]Element{door, c})
		if attached[door] != c {
			t.Error("bounds within 1e-6 per field should match")
		}
	})

	t.Run("bounds_rule_uses_effective_size", func(t *testing.T) {
		door := NewSprite("Door")
		door.X, door.Y, door.Width, door.Height = 1, 2, 3, 4
		// no explicit size: effective bounds stay at the 0.2 default, which
		// differ from the sprite's, so the bounds rule must not fire
		c := NewClickable("somewhere")
		c.X, c.Y = 1, 2
		attached, orphans := ResolveClickables([]Element{door, c})
		if attached[door] == c {
			t.Error("default-size clickable must not bounds-match a 3x4 sprite")
		}
		if len(orphans) != 1 {
			t.Errorf("got %d orphans, want 1", len(orphans))
		}
	})

	t.Run("bounds_outside_tolerance", func(t *testing.T) {
		door := NewSprite("Door")
		door.X, door.Y, door.Width, door.Height = 1, 2, 3, 4
		c := NewClickable("somewhere")
		c.X, c.Y = 1.01, 2
		c.ExplicitWidth = explicit(3)
		c.ExplicitHeight = explicit(4)
		c.Width, c.Height = 3, 4
		attached, orphans := ResolveClickables([]Element{door, c})
		if attached[door] == c {
			t.Error("bounds off by 0.01 must not match")
		}
		if len(orphans) != 1 {
			t.Errorf("got %d orphans, want 1", len(orphans))
		}
	})
}

func TestClickableConsumedAtMostOnce(t *testing.T) {
	a := NewSprite("A")
	b := NewSprite("B")
	shared := NewClickable("shared")
	shared.Parent = "A"

	second := NewClickable("BHitbox")

	attached, orphans := ResolveClickables([]Element{a, b, shared, second})
	if attached[a] != shared {
		t.Fatal("A should consume its parent-name match")
	}
	if attached[b] != second {
		t.Fatal("B should consume the convention-named clickable")
	}
	if len(orphans) != 0 {
		t.Errorf("orphans = %v, want none", orphans)
	}
}

func TestAudioNeverConsumesClickables(t *testing.T) {
	music := NewAudio("Music")
	c := NewClickable("MusicHitbox")
	attached, orphans := ResolveClickables([]Element{music, c})
	if len(attached) != 0 {
		t.Error("audio has no visual footprint and cannot own a clickable")
	}
	if len(orphans) != 1 {
		t.Errorf("got %d orphans, want 1", len(orphans))
	}
}
