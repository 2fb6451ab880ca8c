package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/sport"
	"github.com/okian/cooperstown/pkg/logger"
)

// Format is an input encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const defaultConcurrency = 4

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrFormat)
	}
}

// Decode reads player records. Both a top-level list and a document with a
// "players" key are accepted.
func Decode(r io.Reader, format Format) ([]PlayerRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	switch format {
	case FormatJSON:
		if data[0] == '[' {
			var list []PlayerRecord
			if err := json.Unmarshal(data, &list); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDecode, err)
			}
			return list, nil
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return doc.Players, nil
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			var list []PlayerRecord
			if err := node.Decode(&list); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDecode, err)
			}
			return list, nil
		}
		var doc Document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return doc.Players, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrFormat)
	}
}

// Option configures a Loader.
type Option func(*Loader)

// WithConcurrency bounds how many files are read at once.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithStrict makes any invalid record fail the load. By default invalid
// records are logged and skipped.
func WithStrict(strict bool) Option {
	return func(l *Loader) { l.strict = strict }
}

// WithLogger sets the logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.log = lg
		}
	}
}

// Loader reads player files for one sport catalog.
type Loader struct {
	catalog     sport.Catalog
	concurrency int
	strict      bool
	log         logger.Logger
}

// NewLoader returns a loader for catalog c.
func NewLoader(c sport.Catalog, opts ...Option) *Loader {
	l := &Loader{
		catalog:     c,
		concurrency: defaultConcurrency,
		log:         logger.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Convert turns records into players. Invalid records are skipped unless
// the loader is strict; the skipped count is returned.
func (l *Loader) Convert(ctx context.Context, records []PlayerRecord) ([]model.Player, int, error) {
	players := make([]model.Player, 0, len(records))
	skipped := 0
	for _, r := range records {
		p, err := r.ToPlayer(l.catalog)
		if err != nil {
			if l.strict {
				return nil, skipped, err
			}
			skipped++
			l.log.Warn(ctx, "skipping player record", logger.Error(err))
			continue
		}
		players = append(players, p)
	}
	return players, skipped, nil
}

// LoadFile reads and converts one file.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]model.Player, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	players, skipped, err := l.Convert(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.log.Debug(ctx, "loaded player file",
		logger.String("path", path),
		logger.Int("players", len(players)),
		logger.Int("skipped", skipped))
	return players, nil
}

// LoadFiles reads files concurrently. Players are returned in path order,
// then file order. The first failure cancels the rest.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) ([]model.Player, error) {
	results := make([][]model.Player, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			players, err := l.LoadFile(gCtx, path)
			if err != nil {
				return err
			}
			results[i] = players
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, r := range results {
		total += len(r)
	}
	out := make([]model.Player, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
