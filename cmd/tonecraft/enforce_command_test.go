package main

import (
	"strings"
	"testing"

	"github.com/tonecraft-ai/tonecraft-api/internal/prompt"
)

func TestEnforceExpandsGenreLine(t *testing.T) {
	stdout, _, err := runCLI(t, "enforce", "--count", "3", "--seed", "5", "Genre: Jazz\nBPM: 120")
	if err != nil {
		t.Fatalf("enforce: %v", err)
	}

	fields := prompt.ParseStandard(stdout)
	genres := strings.Split(fields.Genre, ", ")
	if len(genres) != 3 {
		t.Errorf("genre count = %d (%q), want 3", len(genres), fields.Genre)
	}
	if genres[0] != "Jazz" {
		t.Errorf("primary genre = %q, want Jazz preserved first", genres[0])
	}
}

func TestEnforceTruncates(t *testing.T) {
	stdout, _, err := runCLI(t, "enforce", "--count", "1", "--seed", "5", "Genre: Jazz, Neo-Soul, Funk\nBPM: 96")
	if err != nil {
		t.Fatalf("enforce: %v", err)
	}

	fields := prompt.ParseStandard(stdout)
	if fields.Genre != "Jazz" {
		t.Errorf("genre = %q, want Jazz alone", fields.Genre)
	}
}

func TestEnforceDeterministic(t *testing.T) {
	first, _, err := runCLI(t, "enforce", "--count", "4", "--seed", "11", "Genre: Techno")
	if err != nil {
		t.Fatalf("enforce: %v", err)
	}
	second, _, err := runCLI(t, "enforce", "--count", "4", "--seed", "11", "Genre: Techno")
	if err != nil {
		t.Fatalf("enforce: %v", err)
	}
	if first != second {
		t.Errorf("same seed diverged:\n%s\n---\n%s", first, second)
	}
}
