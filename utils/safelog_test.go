package utils

import "testing"

func TestMaskID(t *testing.T) {
	old := IsProduction
	defer func() { IsProduction = old }()

	id := "550e8400-e29b-41d4-a716-446655440000"

	IsProduction = false
	if MaskID(id) != id {
		t.Error("development mode should not mask ids")
	}

	IsProduction = true
	if got := MaskID(id); got != "550e8400..." {
		t.Errorf("MaskID = %q, want 550e8400...", got)
	}
	if got := MaskID("short"); got != "***" {
		t.Errorf("MaskID(short) = %q, want ***", got)
	}
}

func TestMaskString(t *testing.T) {
	old := IsProduction
	defer func() { IsProduction = old }()
	IsProduction = true

	masked := MaskString("user alice@example.com spent 120.50 $")
	if masked == "user alice@example.com spent 120.50 $" {
		t.Error("production mode should mask emails and amounts")
	}
}
