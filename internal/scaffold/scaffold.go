package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/layerkit/layerkit/internal/layout"
	"github.com/layerkit/layerkit/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Permission bits for created entries (before umask).
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Kind tells whether a record is about a directory or a file.
type Kind string

const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
)

// Status is the outcome of processing one path.
type Status string

const (
	// StatusEnsured covers both a new directory and one that already existed.
	StatusEnsured Status = "created or verified"
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Record is the outcome for a single path.
type Record struct {
	Kind   Kind
	Path   string
	Status Status
	Err    error
}

// Scaffolder creates directories and placeholder files on an afero filesystem.
type Scaffolder struct {
	fs  afero.Fs
	log logrus.FieldLogger
}

// New returns a Scaffolder operating on fs and reporting to log.
func New(fs afero.Fs, log logrus.FieldLogger) *Scaffolder {
	return &Scaffolder{fs: fs, log: log}
}

// Run creates l's folders under base, wrapped in start and finish banners.
// When withFiles is set it then creates l's placeholder files the same way.
func (s *Scaffolder) Run(base string, l *layout.Layout, withFiles bool) []Record {
	s.log.Info("Starting folder creation...")
	records := s.EnsureDirectories(base, l.Folders)
	s.log.WithField(logging.FieldSpacer, true).Info("Folder structure creation process finished.")

	if !withFiles {
		return records
	}

	s.log.WithField(logging.FieldSpacer, true).Info("Creating placeholder files...")
	records = append(records, s.EnsureFiles(base, l.Files)...)
	s.log.WithField(logging.FieldSpacer, true).Info("Placeholder file creation process finished.")
	return records
}

// EnsureDirectories makes sure every path in rels exists as a directory under
// base, creating missing parents. An existing directory is not an error.
func (s *Scaffolder) EnsureDirectories(base string, rels []string) []Record {
	records := make([]Record, 0, len(rels))
	for _, rel := range rels {
		full := filepath.Join(base, rel)
		rec := Record{Kind: KindDir, Path: full}

		if err := s.ensureDir(full); err != nil {
			rec.Status = StatusFailed
			rec.Err = err
			s.entry(rec).Errorf("Error creating directory %s: %v", full, err)
		} else {
			rec.Status = StatusEnsured
			s.entry(rec).Infof("Successfully created or verified: %s", full)
		}
		records = append(records, rec)
	}
	return records
}

// EnsureFiles creates an empty file for every path in rels that does not
// exist yet. Existing entries are left untouched. Parent directories are not
// created; a missing parent is reported as a failure for that file.
func (s *Scaffolder) EnsureFiles(base string, rels []string) []Record {
	records := make([]Record, 0, len(rels))
	for _, rel := range rels {
		full := filepath.Join(base, rel)
		rec := Record{Kind: KindFile, Path: full}

		created, err := s.touch(full)
		switch {
		case err != nil:
			rec.Status = StatusFailed
			rec.Err = err
			s.entry(rec).Errorf("Error creating file %s: %v", full, err)
		case created:
			rec.Status = StatusCreated
			s.entry(rec).Infof("Successfully created file: %s", full)
		default:
			rec.Status = StatusSkipped
			s.entry(rec).Infof("File already exists, skipped: %s", full)
		}
		records = append(records, rec)
	}
	return records
}

func (s *Scaffolder) ensureDir(path string) error {
	if err := s.fs.MkdirAll(path, DirPerm); err != nil {
		return err
	}
	// Some afero backends accept MkdirAll over an existing file.
	info, err := s.fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("mkdir %s: file exists and is not a directory", path)
	}
	return nil
}

// touch reports whether it created path.
func (s *Scaffolder) touch(path string) (bool, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, FilePerm)
	if err != nil {
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Scaffolder) entry(rec Record) *logrus.Entry {
	e := s.log.WithFields(logrus.Fields{
		logging.FieldKind:   string(rec.Kind),
		logging.FieldPath:   rec.Path,
		logging.FieldStatus: string(rec.Status),
	})
	if rec.Err != nil {
		e = e.WithError(rec.Err)
	}
	return e
}

