package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/utils"
)

const manifestFileName = "run.json"

// Run records one analysis of a workbook: where it came from, how cleaning
// changed it and which chart files were written. The cleaned table itself is
// never persisted.
type Run struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	Sheet     string         `json:"sheet"`
	SkipRows  int            `json:"skip_rows"`
	Rows      RowCounts      `json:"rows"`
	Failures  map[string]int `json:"parse_failures,omitempty"`
	Artifacts []Artifact     `json:"artifacts"`
	Skipped   []string       `json:"skipped,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Not serialized: on-disk location of the run.json
	rootDir string `json:"-"`
}

// RowCounts mirrors the normalizer's row accounting.
type RowCounts struct {
	Read    int `json:"read"`
	Dropped int `json:"dropped"`
	Kept    int `json:"kept"`
}

// Artifact is one rendered chart, Path relative to the run directory.
type Artifact struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// New constructs an in-memory run under outputRoot, in a directory named
// after the time, the source file and the run id. Call Save() to persist.
func New(outputRoot, source, sheet string) *Run {
	now := time.Now()
	id := uuid.NewString()
	name := now.Format("20060102-150405") + "-" + utils.Slug(utils.BaseName(source)) + "-" + id[:8]
	dir := filepath.Join(outputRoot, name)
	return &Run{
		ID:        id,
		Source:    source,
		Sheet:     sheet,
		CreatedAt: now,
		UpdatedAt: now,
		rootDir:   dir,
	}
}

// Load reads run.json from dir.
func Load(dir string) (*Run, error) {
	path := filepath.Join(dir, manifestFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("run not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read run: %w", err)
	}
	var r Run
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse run: %w", err)
	}
	r.rootDir = dir
	return &r, nil
}

// Dir returns the on-disk run directory.
func (r *Run) Dir() string { return r.rootDir }

// Save writes run.json using atomic write.
func (r *Run) Save() error {
	if r.rootDir == "" {
		return errors.New("run directory not set")
	}
	if err := utils.EnsureDir(r.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	r.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(r.rootDir, manifestFileName), data)
}

// AddArtifact records a chart written at absPath.
func (r *Run) AddArtifact(kind, title, absPath string) {
	rel, err := filepath.Rel(r.rootDir, absPath)
	if err != nil {
		rel = absPath
	}
	r.Artifacts = append(r.Artifacts, Artifact{Kind: kind, Title: title, Path: rel})
	r.UpdatedAt = time.Now()
}

// List loads every run found directly under root, newest first. A missing
// root yields no runs; unreadable manifests are skipped.
func List(root string) ([]*Run, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []*Run
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		r, err := Load(filepath.Join(root, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
