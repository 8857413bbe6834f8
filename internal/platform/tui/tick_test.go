package tui

import (
	"testing"
	"time"
)

func TestTickerGenerations(t *testing.T) {
	tk := NewTicker()
	if tk.Live(0) || tk.Flush() != nil {
		t.Fatal("idle ticker is live")
	}

	h1 := tk.Arm(250 * time.Millisecond)
	if !tk.Live(1) {
		t.Fatal("armed generation not live")
	}
	if tk.Flush() == nil {
		t.Fatal("Arm did not queue a command")
	}
	if tk.Flush() != nil {
		t.Error("Flush returned the same command twice")
	}

	// Re-arm: cancel first, then arm.
	h1.Cancel()
	if tk.Live(1) {
		t.Error("cancelled generation still live")
	}
	tk.Arm(225 * time.Millisecond)
	if tk.Live(1) || !tk.Live(2) {
		t.Error("stale generation survived a re-arm")
	}
	if tk.Interval() != 225*time.Millisecond {
		t.Errorf("Interval() = %s", tk.Interval())
	}

	// A superseded handle must not cancel the new generation.
	h1.Cancel()
	if !tk.Live(2) {
		t.Error("old handle cancelled the current generation")
	}
}

func TestTickerAfter(t *testing.T) {
	tk := NewTicker()
	h := tk.Arm(time.Second)
	tk.Flush()

	if tk.After(1) == nil {
		t.Error("live generation was not re-issued")
	}
	if tk.After(0) != nil {
		t.Error("stale generation was re-issued")
	}

	h.Cancel()
	if tk.After(1) != nil {
		t.Error("cancelled generation was re-issued")
	}

	tk.Arm(time.Second)
	if tk.After(1) == nil {
		t.Error("freshly armed command was not returned")
	}
	if tk.Flush() != nil {
		t.Error("After did not consume the queued command")
	}
}
