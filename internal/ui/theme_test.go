package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetTheme(t *testing.T) {
	slate := GetTheme("Slate")
	if slate.Name != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", slate.Name)
	}

	ink := GetTheme("Ink")
	if ink.Name != "Ink" {
		t.Fatalf("GetTheme(Ink).Name = %q, want Ink", ink.Name)
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Slate" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Slate (fallback)", unknown.Name)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Slate"); got.Name != "Ink" {
		t.Fatalf("NextTheme(Slate) = %q, want Ink", got.Name)
	}
	if got := NextTheme("Ink"); got.Name != "Slate" {
		t.Fatalf("NextTheme(Ink) = %q, want Slate", got.Name)
	}
	if got := NextTheme("Unknown"); got.Name != "Slate" {
		t.Fatalf("NextTheme(Unknown) = %q, want Slate", got.Name)
	}
}

func TestStylesCarryThemeBackgrounds(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()

	if got := styles.Base.GetBackground(); got != lipgloss.Color(th.Background) {
		t.Fatalf("Base background = %v, want %v", got, th.Background)
	}
	if got := styles.Header.GetBackground(); got != lipgloss.Color(th.Surface) {
		t.Fatalf("Header background = %v, want %v", got, th.Surface)
	}
	if got := styles.Footer.GetBackground(); got != lipgloss.Color(th.Surface) {
		t.Fatalf("Footer background = %v, want %v", got, th.Surface)
	}
}

func TestHealthStyleFallsBackToMuted(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()

	green := styles.HealthStyle("GREEN")
	if got := green.GetForeground(); got != styles.HealthStyle("green").GetForeground() {
		t.Fatalf("HealthStyle should be case-insensitive, got %v", got)
	}

	unknown := styles.HealthStyle("purple")
	if got := unknown.GetForeground(); got != styles.MutedText.GetForeground() {
		t.Fatalf("HealthStyle(purple) = %v, want muted fallback", got)
	}
}
