package main

import (
	"encoding/json"
	"testing"
)

func TestGenerateSameSeedSameOutput(t *testing.T) {
	first, _, err := runCLI(t, "generate", "--seed", "42", "smooth jazz night session")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, _, err := runCLI(t, "generate", "--seed", "42", "smooth jazz night session")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different output:\n%s\n---\n%s", first, second)
	}
}

func TestGenerateJSON(t *testing.T) {
	stdout, _, err := runCLI(t, "--json", "generate", "--seed", "7", "smooth jazz night session")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var out generateOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, stdout)
	}

	if out.Genre != "jazz" {
		t.Errorf("genre = %q, want jazz", out.Genre)
	}
	if out.Seed != 7 {
		t.Errorf("seed = %d, want 7", out.Seed)
	}
	if out.Mode != "standard" {
		t.Errorf("mode = %q, want standard", out.Mode)
	}
	if out.Prompt == "" {
		t.Error("prompt is empty")
	}
	if out.BPMMin <= 0 || out.BPMMax < out.BPMMin {
		t.Errorf("implausible BPM range %d-%d", out.BPMMin, out.BPMMax)
	}
}

func TestGenerateMaxMode(t *testing.T) {
	stdout, _, err := runCLI(t, "--json", "generate", "--max", "--seed", "7", "deep house vibes")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var out generateOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if out.Mode != "max" {
		t.Errorf("mode = %q, want max", out.Mode)
	}
	if out.Genre != "house" {
		t.Errorf("genre = %q, want house", out.Genre)
	}
}

func TestGenerateWithTitle(t *testing.T) {
	stdout, _, err := runCLI(t, "--json", "generate", "--title", "--seed", "3", "lofi study beats")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var out generateOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if out.Title == "" {
		t.Error("expected a title with --title")
	}
}

func TestGenerateContrastValidation(t *testing.T) {
	_, _, err := runCLI(t, "generate", "--contrast", "SOLO=wild", "anything")
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
	requireContains(t, err.Error(), "invalid section")

	_, _, err = runCLI(t, "generate", "--contrast", "CHORUS euphoric", "anything")
	if err == nil {
		t.Fatal("expected error for malformed contrast")
	}
	requireContains(t, err.Error(), "expected SECTION=MOOD")

	_, _, err = runCLI(t, "generate", "--seed", "1", "--contrast", "chorus=euphoric:wall of sound", "anything")
	if err != nil {
		t.Fatalf("lowercase section should normalize: %v", err)
	}
}
