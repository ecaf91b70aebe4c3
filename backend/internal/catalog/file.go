package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// termSuffix is the filename suffix every term data file carries,
// e.g. 2024_2025spring.json.
const termSuffix = "spring.json"

// FileProvider serves term catalogs from JSON files in a directory. One
// file holds one term: a JSON object mapping course code to its list of
// meeting rows.
type FileProvider struct {
	dir    string
	logger *zap.Logger
}

// NewFileProvider creates a FileProvider over the given directory.
func NewFileProvider(dir string, logger *zap.Logger) *FileProvider {
	return &FileProvider{dir: dir, logger: logger}
}

// termFileRow is one meeting row as the term files store it. The uppercase
// keys with spaces are the registrar export format, echoed as-is in API
// responses.
type termFileRow struct {
	Section   *string `json:"Section"`
	Day       *string `json:"Day"`
	StartTime *string `json:"Start Time"`
	EndTime   *string `json:"End Time"`
	Classroom *string `json:"Classroom"`
}

// Terms lists the available term names, newest first.
func (p *FileProvider) Terms(_ context.Context) ([]string, error) {
	files, err := p.termFiles()
	if err != nil {
		return nil, err
	}
	terms := make([]string, 0, len(files))
	for _, f := range files {
		terms = append(terms, termNameFromFile(f))
	}
	return terms, nil
}

// Load reads one term's catalog. An empty or unknown term falls back to
// the latest available file.
func (p *FileProvider) Load(_ context.Context, term string) (*model.Catalog, error) {
	path := ""
	if term != "" {
		candidate := filepath.Join(p.dir, fileFromTerm(term))
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path == "" {
		files, err := p.termFiles()
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, ErrNoTermData
		}
		if term != "" {
			p.logger.Warn("term file missing, falling back to latest",
				zap.String("term", term),
				zap.String("fallback", files[0]))
		}
		term = termNameFromFile(files[0])
		path = filepath.Join(p.dir, files[0])
	}

	rows, err := readTermFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading term file %s: %w", path, err)
	}
	return buildCatalog(term, rows), nil
}

// termFiles lists the *spring.json files, newest first.
func (p *FileProvider) termFiles() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("listing terms dir %s: %w", p.dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), termSuffix) {
			files = append(files, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

// termNameFromFile maps "2024_2025spring.json" to "2024-2025 Spring".
func termNameFromFile(filename string) string {
	base := strings.TrimSuffix(filename, termSuffix)
	base = strings.ReplaceAll(base, "_", "-")
	return strings.Trim(base, "-") + " Spring"
}

// fileFromTerm maps "2024-2025 Spring" back to "2024_2025spring.json".
func fileFromTerm(term string) string {
	base := strings.ToLower(term)
	base = strings.ReplaceAll(base, " ", "")
	base = strings.ReplaceAll(base, "-", "_")
	return base + ".json"
}

// readTermFile decodes a term file into raw meeting rows, preserving the
// file's course order. Decoding walks the top-level object token by token
// because encoding/json maps would lose the declared order.
func readTermFile(path string) ([]rawMeeting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("term file must be a JSON object, got %v", tok)
	}

	var rows []rawMeeting
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		course, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", keyTok)
		}

		var sessions []termFileRow
		if err := dec.Decode(&sessions); err != nil {
			return nil, fmt.Errorf("course %s: %w", course, err)
		}
		for _, s := range sessions {
			section := ""
			if s.Section != nil {
				section = *s.Section
			}
			classroom := ""
			if s.Classroom != nil {
				classroom = *s.Classroom
			}
			rows = append(rows, rawMeeting{
				Course:    course,
				Section:   section,
				Day:       s.Day,
				Start:     s.StartTime,
				End:       s.EndTime,
				Classroom: classroom,
			})
		}
	}

	return rows, nil
}
