// Package dataset loads the article snapshot once per process and hands out
// the same read-only Dataset to every caller.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spektr-org/newsdash/engine"
	"github.com/spektr-org/newsdash/helpers"
	"github.com/spektr-org/newsdash/schema"
	"github.com/spektr-org/newsdash/storage"
)

// ============================================================================
// DATASET LOADER — load(path) → Dataset | Empty
// ============================================================================
// A missing or unreadable snapshot is not fatal: the loader returns an
// explicit Empty dataset carrying a Warning so the presentation layer can
// tell "no data" apart from "zero rows after filtering".
//
// Results are cached per path, Empty included, until the process exits.
// Concurrent first calls for one path read storage exactly once.
// ============================================================================

var (
	// ErrMissingResource marks a snapshot that does not exist or cannot be read.
	ErrMissingResource = errors.New("article snapshot missing or unreadable")

	// ErrMissingColumn marks a snapshot without the category or source column.
	ErrMissingColumn = schema.ErrMissingColumn
)

// Dataset is the loaded, immutable article table.
type Dataset struct {
	Path           string
	Schema         *schema.Config
	View           engine.RecordView
	LoadedAt       time.Time
	CategoryColumn string
	SourceColumn   string

	// Empty is set when nothing could be loaded. Warning says why.
	Empty   bool
	Warning error
}

// IsEmpty reports whether d is the Empty marker.
func (d *Dataset) IsEmpty() bool {
	return d == nil || d.Empty
}

// Len returns the number of loaded articles.
func (d *Dataset) Len() int {
	if d.IsEmpty() {
		return 0
	}
	return d.View.Len()
}

// EngineOptions returns the engine options matching the dataset's columns.
func (d *Dataset) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithCategoryColumn(d.CategoryColumn),
		engine.WithSourceColumn(d.SourceColumn),
		engine.WithEmptyDataset(d.IsEmpty()),
	}
}

// SelectAll returns the default selection: every category and source present.
func (d *Dataset) SelectAll() engine.Selection {
	return engine.SelectAll(d.View, d.EngineOptions()...)
}

// ============================================================================
// LOADER
// ============================================================================

// Options configures a Loader.
type Options struct {
	CategoryColumn string
	SourceColumn   string
	Delimiter      rune           // 0 = by extension (.tsv → tab, else comma)
	Opener         storage.Opener // nil = local files only
}

// Loader caches one Dataset per path.
type Loader struct {
	opts Options

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once sync.Once
	ds   *Dataset
}

// NewLoader creates a Loader with its own cache.
func NewLoader(opts Options) *Loader {
	if opts.CategoryColumn == "" {
		opts.CategoryColumn = engine.DefaultCategoryColumn
	}
	if opts.SourceColumn == "" {
		opts.SourceColumn = engine.DefaultSourceColumn
	}
	if opts.Opener == nil {
		opts.Opener = storage.FileOpener{}
	}
	return &Loader{opts: opts, entries: make(map[string]*entry)}
}

// Load returns the cached Dataset for path, reading it on first use.
// It never returns nil. The read ignores ctx cancellation; a cancelled
// caller never caches an Empty dataset.
func (l *Loader) Load(ctx context.Context, path string) *Dataset {
	l.mu.Lock()
	e, ok := l.entries[path]
	if !ok {
		e = &entry{}
		l.entries[path] = e
	}
	l.mu.Unlock()

	e.once.Do(func() {
		e.ds = l.read(context.WithoutCancel(ctx), path)
	})
	return e.ds
}

func (l *Loader) read(ctx context.Context, path string) *Dataset {
	data, err := storage.ReadAll(ctx, l.opts.Opener, path)
	if err != nil {
		return l.empty(path, fmt.Errorf("%w: %s: %v", ErrMissingResource, path, err))
	}

	view, sch, err := helpers.ParseCSVAutoView(data, l.delimiter(path),
		l.opts.CategoryColumn, l.opts.SourceColumn)
	if err != nil {
		return l.empty(path, fmt.Errorf("%w: %s: %v", ErrMissingResource, path, err))
	}
	if err := sch.RequireColumns(l.opts.CategoryColumn, l.opts.SourceColumn); err != nil {
		return l.empty(path, fmt.Errorf("%s: %w", path, err))
	}
	sch.Name = filepath.Base(path)

	log.Printf("📊 Loaded %d articles from %s (%d columns)", view.Len(), path, len(sch.Columns))

	return &Dataset{
		Path:           path,
		Schema:         sch,
		View:           view,
		LoadedAt:       time.Now(),
		CategoryColumn: l.opts.CategoryColumn,
		SourceColumn:   l.opts.SourceColumn,
	}
}

func (l *Loader) empty(path string, warning error) *Dataset {
	log.Printf("⚠️ %v", warning)
	return &Dataset{
		Path:           path,
		View:           engine.EmptyView(),
		LoadedAt:       time.Now(),
		CategoryColumn: l.opts.CategoryColumn,
		SourceColumn:   l.opts.SourceColumn,
		Empty:          true,
		Warning:        warning,
	}
}

func (l *Loader) delimiter(path string) rune {
	if l.opts.Delimiter != 0 {
		return l.opts.Delimiter
	}
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// ============================================================================
// PROCESS-WIDE LOADER
// ============================================================================

var (
	defaultMu     sync.Mutex
	defaultLoader = NewLoader(Options{})
)

// Configure replaces the process-wide loader. Call it once at startup,
// before the first Load.
func Configure(opts Options) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLoader = NewLoader(opts)
}

// Load reads path through the process-wide loader.
func Load(ctx context.Context, path string) *Dataset {
	defaultMu.Lock()
	l := defaultLoader
	defaultMu.Unlock()
	return l.Load(ctx, path)
}
