package catalog

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

const sampleTermJSON = `{
  "COMP 1202": [
    {"Section": "1", "Day": "PAZARTESİ", "Start Time": "08:40", "End Time": "09:30", "Classroom": "C101"},
    {"Section": "1", "Day": "ÇARŞAMBA", "Start Time": "10:40", "End Time": "12:30", "Classroom": "C101"},
    {"Section": "2", "Day": "SALI", "Start Time": "08:40", "End Time": "09:30", "Classroom": "C102"}
  ],
  "MATH 1131": [
    {"Section": "1", "Day": "CUMA", "Start Time": "13:40", "End Time": "14:30", "Classroom": "M201"},
    {"Section": "2", "Day": null, "Start Time": null, "End Time": null, "Classroom": null}
  ],
  "ARCH 2210": [
    {"Section": "1", "Day": "PERŞEMBE", "Start Time": null, "End Time": "17:30", "Classroom": "A3"}
  ]
}`

func writeTermFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileProviderTerms(t *testing.T) {
	dir := t.TempDir()
	writeTermFile(t, dir, "2023_2024spring.json", "{}")
	writeTermFile(t, dir, "2024_2025spring.json", "{}")
	writeTermFile(t, dir, "notes.txt", "ignore me")

	p := NewFileProvider(dir, zap.NewNop())
	terms, err := p.Terms(context.Background())
	if err != nil {
		t.Fatalf("Terms: %v", err)
	}
	want := []string{"2024-2025 Spring", "2023-2024 Spring"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("Terms = %v, want %v (newest first)", terms, want)
	}
}

func TestFileProviderLoadBuildsEligibleSections(t *testing.T) {
	dir := t.TempDir()
	writeTermFile(t, dir, "2024_2025spring.json", sampleTermJSON)

	p := NewFileProvider(dir, zap.NewNop())
	cat, err := p.Load(context.Background(), "2024-2025 Spring")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cat.Courses(); !reflect.DeepEqual(got, []string{"COMP 1202", "MATH 1131"}) {
		t.Errorf("Courses = %v, want file order with ineligible courses dropped", got)
	}

	comp, ok := cat.SectionsFor("COMP 1202")
	if !ok || len(comp) != 2 {
		t.Fatalf("COMP 1202 sections = %v, want 2", comp)
	}
	if comp[0].Code != "1" || len(comp[0].Meetings) != 2 {
		t.Errorf("section 1 should keep both meetings, got %+v", comp[0])
	}
	// Turkish day names are normalized.
	if got := comp[0].Meetings[0].Day; string(got) != "Monday" {
		t.Errorf("PAZARTESİ should map to Monday, got %s", got)
	}
	if got := comp[0].Meetings[1].Day; string(got) != "Wednesday" {
		t.Errorf("ÇARŞAMBA should map to Wednesday, got %s", got)
	}

	// MATH 1131 keeps only the complete section.
	math, _ := cat.SectionsFor("MATH 1131")
	if len(math) != 1 || math[0].Code != "1" {
		t.Errorf("MATH 1131 should keep only section 1, got %+v", math)
	}

	// ARCH 2210 has no complete section at all.
	if _, ok := cat.SectionsFor("ARCH 2210"); ok {
		t.Error("ARCH 2210 should be absent: its only section is incomplete")
	}
}

func TestFileProviderUnknownTermFallsBackToLatest(t *testing.T) {
	dir := t.TempDir()
	writeTermFile(t, dir, "2024_2025spring.json", sampleTermJSON)

	p := NewFileProvider(dir, zap.NewNop())
	cat, err := p.Load(context.Background(), "1999-2000 Spring")
	if err != nil {
		t.Fatalf("Load with unknown term: %v", err)
	}
	if cat.Term() != "2024-2025 Spring" {
		t.Errorf("Term = %q, want fallback to latest", cat.Term())
	}
}

func TestFileProviderEmptyTermMeansLatest(t *testing.T) {
	dir := t.TempDir()
	writeTermFile(t, dir, "2023_2024spring.json", "{}")
	writeTermFile(t, dir, "2024_2025spring.json", sampleTermJSON)

	p := NewFileProvider(dir, zap.NewNop())
	cat, err := p.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Term() != "2024-2025 Spring" {
		t.Errorf("Term = %q, want the latest", cat.Term())
	}
}

func TestFileProviderNoFilesAtAll(t *testing.T) {
	p := NewFileProvider(t.TempDir(), zap.NewNop())
	if _, err := p.Load(context.Background(), ""); err != ErrNoTermData {
		t.Errorf("Load = %v, want ErrNoTermData", err)
	}
}

func TestTermNameRoundTrip(t *testing.T) {
	if got := termNameFromFile("2024_2025spring.json"); got != "2024-2025 Spring" {
		t.Errorf("termNameFromFile = %q", got)
	}
	if got := fileFromTerm("2024-2025 Spring"); got != "2024_2025spring.json" {
		t.Errorf("fileFromTerm = %q", got)
	}
}
