package ui

import "testing"

func TestCheckbox_HandleInput(t *testing.T) {
	c := NewCheckbox(10, 10, "Show Stats", false)

	// Press inside: toggles once even if held for several frames.
	c.HandleInput(15, 15, true)
	c.HandleInput(16, 16, true)
	if !c.Value {
		t.Fatal("expected checkbox to be checked after a press")
	}

	// Release then press again: toggles back.
	c.HandleInput(15, 15, false)
	c.HandleInput(15, 15, true)
	if c.Value {
		t.Error("expected checkbox to be unchecked after a second press")
	}

	// Press outside: nothing happens.
	c.HandleInput(0, 0, false)
	c.HandleInput(100, 100, true)
	if c.Value {
		t.Error("press outside the box toggled it")
	}
}

func TestPanel_AddCheckbox(t *testing.T) {
	p := NewPanel(10, 10, 200, "Display")
	a := p.AddCheckbox("Show Stats", true)
	b := p.AddCheckbox("Show Radii", false)

	if len(p.Boxes) != 2 {
		t.Fatalf("Boxes = %d; want 2", len(p.Boxes))
	}
	if b.Y <= a.Y {
		t.Errorf("second checkbox at y=%v is not below the first at y=%v", b.Y, a.Y)
	}
	if bottom := p.Y + p.Height(); b.Y+b.Size > bottom {
		t.Errorf("checkbox bottom %v outside panel bottom %v", b.Y+b.Size, bottom)
	}
	if !a.Value || b.Value {
		t.Errorf("initial values = %v/%v; want true/false", a.Value, b.Value)
	}
}
