package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Slate" || names[1] != "Nightfox" {
		t.Fatalf("ThemeNames() = %v, want [Slate Nightfox]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Nightfox"); got != "Slate" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Slate", got)
	}
	if got := NextTheme("Unknown"); got != "Slate" {
		t.Fatalf("NextTheme(Unknown) = %q, want Slate", got)
	}
}

func TestGetTheme(t *testing.T) {
	slate := GetTheme("Slate")
	if slate.Name != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", slate.Name)
	}

	nightfox := GetTheme("Nightfox")
	if nightfox.Name != "Nightfox" {
		t.Fatalf("GetTheme(Nightfox).Name = %q, want Nightfox", nightfox.Name)
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Slate" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Slate (fallback)", unknown.Name)
	}
}

func TestThemesHaveSurfaces(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Background == "" || th.Surface == "" {
			t.Fatalf("theme %q missing background/surface", name)
		}
	}
}
