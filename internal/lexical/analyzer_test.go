// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases and splits", "Hello World", []string{"hello", "world"}},
		{"drops punctuation", "air, bersih!", []string{"air", "bersih"}},
		{"drops numeric tokens", "covid19 2024 air", []string{"air"}},
		{"empty input", "", nil},
		{"whitespace only", "  \t\n ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"systems", "system"},
		{"watering", "water"},
		{"studies", "stud"},
		{"air", "air"},
		{"irigasi", "irigasi"},
		// Too short to strip.
		{"bed", "bed"},
	}
	for _, tt := range tests {
		if got := stem(tt.word); got != tt.want {
			t.Errorf("stem(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestBuiltinAnalyzerFiltersStopwords(t *testing.T) {
	a := NewAnalyzer("", io.Discard)
	got := a.Terms("sistem irigasi yang otomatis dan the watering")
	want := []string{"sistem", "irigasi", "otomati", "water"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
}

func TestLexiconAnalyzer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	lex := `{"stopwords": ["dan", "the"], "lemmas": {"otomatis": "otomasi", "Pengairan": "irigasi"}}`
	if err := os.WriteFile(path, []byte(lex), 0o644); err != nil {
		t.Fatal(err)
	}

	var warn bytes.Buffer
	a := NewAnalyzer(path, &warn)
	if warn.Len() != 0 {
		t.Fatalf("unexpected warning: %s", warn.String())
	}

	got := a.Terms("pengairan dan otomatis sawah")
	want := []string{"irigasi", "otomasi", "sawah"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
}

func TestNewAnalyzerFallsBackOnBadLexicon(t *testing.T) {
	var warn bytes.Buffer
	a := NewAnalyzer(filepath.Join(t.TempDir(), "missing.json"), &warn)

	if warn.Len() == 0 {
		t.Error("expected a warning about the unusable lexicon")
	}
	// Built-in analyzer still works.
	if got := a.Terms("sistem yang baik"); len(got) == 0 {
		t.Errorf("fallback analyzer returned no terms")
	}
}

func TestPlainKeepsStopwords(t *testing.T) {
	got := Plain().Terms("the sistem")
	want := []string{"the", "sistem"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plain().Terms() = %v, want %v", got, want)
	}
}
