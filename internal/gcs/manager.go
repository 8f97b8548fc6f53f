package gcs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// Config names the bucket and the three lifecycle folders.
type Config struct {
	Bucket          string
	InputFolder     string
	ProcessedFolder string
	FailedFolder    string
}

// Manager handles the invoice bucket: listing input objects, checking
// existence, and moving files between the input/processed/failed folders.
type Manager struct {
	bucket *storage.BucketHandle
	cfg    Config
	log    *slog.Logger
}

// FileInfo is object metadata for listings.
type FileInfo struct {
	Name        string
	Size        int64
	ContentType string
	Created     time.Time
	Updated     time.Time
	GCSURI      string
}

func NewManager(client *storage.Client, cfg Config, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{bucket: client.Bucket(cfg.Bucket), cfg: cfg, log: log}
}

// URI returns the gs:// URI for a file in the given folder.
func (m *Manager) URI(folder, fileName string) string {
	return fmt.Sprintf("gs://%s/%s/%s", m.cfg.Bucket, folder, fileName)
}

// InputURI returns the gs:// URI for a file in the input folder.
func (m *Manager) InputURI(fileName string) string {
	return m.URI(m.cfg.InputFolder, fileName)
}

// ProcessedURI returns the gs:// URI a file has after a successful run.
func (m *Manager) ProcessedURI(fileName string) string {
	return m.URI(m.cfg.ProcessedFolder, fileName)
}

// FailedURI returns the gs:// URI a file has after a failed run.
func (m *Manager) FailedURI(fileName string) string {
	return m.URI(m.cfg.FailedFolder, fileName)
}

// Exists reports whether the file is present in the input folder.
func (m *Manager) Exists(ctx context.Context, fileName string) (bool, error) {
	obj := m.bucket.Object(m.cfg.InputFolder + "/" + fileName)
	_, err := obj.Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", obj.ObjectName(), err)
	}
	return true, nil
}

// FileInfo returns metadata for an input file, or ErrObjectNotExist.
func (m *Manager) FileInfo(ctx context.Context, fileName string) (*FileInfo, error) {
	obj := m.bucket.Object(m.cfg.InputFolder + "/" + fileName)
	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", obj.ObjectName(), err)
	}
	return &FileInfo{
		Name:        fileName,
		Size:        attrs.Size,
		ContentType: attrs.ContentType,
		Created:     attrs.Created,
		Updated:     attrs.Updated,
		GCSURI:      m.InputURI(fileName),
	}, nil
}

// ListInputFiles lists file names in the input folder, filtered by
// extension (case-insensitive) when ext is non-empty.
func (m *Manager) ListInputFiles(ctx context.Context, ext string) ([]string, error) {
	prefix := m.cfg.InputFolder + "/"
	it := m.bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	var files []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, err)
		}
		if attrs.Name == prefix {
			continue
		}
		if ext != "" && !strings.HasSuffix(strings.ToLower(attrs.Name), strings.ToLower(ext)) {
			continue
		}
		parts := strings.Split(attrs.Name, "/")
		files = append(files, parts[len(parts)-1])
	}
	m.log.Info("listed input files", "count", len(files), "ext", ext)
	return files, nil
}

func (m *Manager) move(ctx context.Context, fileName, from, to string) error {
	src := m.bucket.Object(from + "/" + fileName)
	dst := m.bucket.Object(to + "/" + fileName)

	if _, err := dst.CopierFrom(src).Run(ctx); err != nil {
		return fmt.Errorf("copy %s -> %s: %w", src.ObjectName(), dst.ObjectName(), err)
	}
	if err := src.Delete(ctx); err != nil {
		return fmt.Errorf("delete %s: %w", src.ObjectName(), err)
	}
	m.log.Info("moved object", "from", src.ObjectName(), "to", dst.ObjectName())
	return nil
}

// MoveToProcessed moves a file from input to the processed folder.
func (m *Manager) MoveToProcessed(ctx context.Context, fileName string) error {
	return m.move(ctx, fileName, m.cfg.InputFolder, m.cfg.ProcessedFolder)
}

// MoveToFailed moves a file from input to the failed folder.
func (m *Manager) MoveToFailed(ctx context.Context, fileName string) error {
	return m.move(ctx, fileName, m.cfg.InputFolder, m.cfg.FailedFolder)
}
