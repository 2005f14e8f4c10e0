package export

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

// Exporter encodes an ordered record batch into one artifact.
type Exporter interface {
	Scheme() string
	Extension() string
	Encode(w io.Writer, fields []string, records []domain.Record) error
}

func forScheme(scheme string) (Exporter, error) {
	switch scheme {
	case config.SchemeCSV:
		return csvExporter{}, nil
	case config.SchemeFlat:
		return flatExporter{}, nil
	case config.SchemeXLSX:
		return xlsxExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export scheme %q", scheme)
	}
}

// Writer owns the output directory and filename derivation for a run.
type Writer struct {
	OutputDir string
	Identity  string // submitter identity, usually an email
	RunID     string // optional run tag appended to the filename

	exp Exporter
}

func NewWriter(scheme, outputDir, identity, runID string) (*Writer, error) {
	exp, err := forScheme(scheme)
	if err != nil {
		return nil, err
	}
	return &Writer{
		OutputDir: outputDir,
		Identity:  identity,
		RunID:     runID,
		exp:       exp,
	}, nil
}

// Path is the deterministic destination for this writer's identity/run.
func (w *Writer) Path() string {
	return filepath.Join(w.OutputDir, Filename(w.Identity, w.RunID, w.exp.Extension()))
}

// Write serializes the batch. An empty batch writes nothing and is not an
// error. An existing file at the destination is replaced, never appended to.
func (w *Writer) Write(fields []string, records []domain.Record) (string, error) {
	if len(records) == 0 {
		log.Printf("[export] nothing to export (0 entries)")
		return "", nil
	}

	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	// One exporter per output dir at a time; two concurrent runs would
	// otherwise race on the same artifact.
	lock := flock.New(filepath.Join(w.OutputDir, ".jobsweep.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return "", fmt.Errorf("acquire export lock: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("output dir %s is locked by another run", w.OutputDir)
	}
	defer func() { _ = lock.Unlock() }()

	path := w.Path()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove previous export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	if err := w.exp.Encode(f, fields, records); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("encode %s export: %w", w.exp.Scheme(), err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	log.Printf("[export] file saved path=%s entries=%d scheme=%s", path, len(records), w.exp.Scheme())
	return path, nil
}

// fieldValue renders one cell; a record missing the field entirely gets the
// placeholder, never an empty cell.
func fieldValue(rec domain.Record, field string) string {
	v, ok := rec[field]
	if !ok {
		return domain.PlaceholderNotProvided
	}
	return v
}
