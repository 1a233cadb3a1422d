// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleCatalog = `{
	"note": "updated quarterly",
	"RANK_1": [
		{"name": "Jurnal A", "url": "https://jurnal-a.example.id"},
		{"name": "", "url": ""}
	],
	"RANK_3": [
		{"name": "Jurnal C", "url": "https://jurnal-c.example.id"}
	],
	"NON_RANKED": [
		{"name": "Buletin X", "url": "https://buletin-x.example.id"}
	],
	"generated_at": "2026-08-01"
}`

func TestLoadPrefersFirstExistingPath(t *testing.T) {
	dir := t.TempDir()
	primary := writeCatalog(t, dir, "generated.json", `{"RANK_1": [{"name": "Primary", "url": "https://p.example"}]}`)
	fallback := writeCatalog(t, dir, "fallback.json", `{"RANK_1": [{"name": "Fallback", "url": "https://f.example"}]}`)

	c, err := Load([]string{primary, fallback})
	if err != nil {
		t.Fatal(err)
	}
	got := c.Select("")
	if len(got) != 1 || got[0].Name != "Primary" {
		t.Errorf("Select() = %v, want the primary catalog's source", got)
	}
}

func TestLoadFallsThroughMissingPath(t *testing.T) {
	dir := t.TempDir()
	fallback := writeCatalog(t, dir, "fallback.json", `{"RANK_2": [{"name": "Fallback", "url": "https://f.example"}]}`)

	c, err := Load([]string{filepath.Join(dir, "missing.json"), fallback})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Select(""); len(got) != 1 || got[0].Name != "Fallback" {
		t.Errorf("Select() = %v, want the fallback source", got)
	}
}

func TestLoadUnavailable(t *testing.T) {
	dir := t.TempDir()
	_, err := Load([]string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeCatalog(t, dir, "bad.json", `{not json`)

	if _, err := Load([]string{bad}); err == nil || errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want a parse error", err)
	}
}

func TestMatchesFilter(t *testing.T) {
	tests := []struct {
		filter string
		key    string
		want   bool
	}{
		{"", "RANK_1", true},
		{"", "NON_RANKED", true},
		{"3", "RANK_3", true},
		{"3", "RANK_1", false},
		{"3", "NON_RANKED", false},
		{" 3 ", "RANK_3", true},
		{"non", "NON_RANKED", true},
		{"NON", "NON_RANKED", true},
		{"non_ranked", "NON_RANKED", true},
		{"non-ranked", "NON_RANKED", true},
		{"nonranked", "NON_RANKED", true},
		{"non", "RANK_1", false},
		{"best", "RANK_1", false},
		{"best", "NON_RANKED", false},
	}
	for _, tt := range tests {
		if got := MatchesFilter(tt.filter, tt.key); got != tt.want {
			t.Errorf("MatchesFilter(%q, %q) = %v, want %v", tt.filter, tt.key, got, tt.want)
		}
	}
}

func TestSelectStampsRankAndSkipsUnnamed(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "catalog.json", sampleCatalog)
	c, err := Load([]string{path})
	if err != nil {
		t.Fatal(err)
	}

	got := c.Select("")
	if len(got) != 3 {
		t.Fatalf("len(Select()) = %d, want 3 (unnamed entry skipped)", len(got))
	}
	wantOrder := []string{"Jurnal A", "Jurnal C", "Buletin X"}
	wantRanks := []string{"RANK_1", "RANK_3", "NON_RANKED"}
	for i, src := range got {
		if src.Name != wantOrder[i] || src.RankLabel != wantRanks[i] {
			t.Errorf("Select()[%d] = %+v, want %s (%s)", i, src, wantOrder[i], wantRanks[i])
		}
	}

	nonOnly := c.Select("non")
	if len(nonOnly) != 1 || nonOnly[0].Name != "Buletin X" {
		t.Errorf(`Select("non") = %v, want only Buletin X`, nonOnly)
	}

	if got := c.Select("unknown"); len(got) != 0 {
		t.Errorf(`Select("unknown") = %v, want empty`, got)
	}
}

func TestGroupedOmitsAbsentGroups(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "catalog.json", sampleCatalog)
	c, err := Load([]string{path})
	if err != nil {
		t.Fatal(err)
	}

	if c.Note != "updated quarterly" {
		t.Errorf("Note = %q, want %q", c.Note, "updated quarterly")
	}

	groups := c.Grouped()
	if len(groups) != 3 {
		t.Fatalf("len(Grouped()) = %d, want 3", len(groups))
	}
	wantKeys := []string{"RANK_1", "RANK_3", "NON_RANKED"}
	for i, g := range groups {
		if g.Key != wantKeys[i] {
			t.Errorf("Grouped()[%d].Key = %s, want %s", i, g.Key, wantKeys[i])
		}
	}
}
