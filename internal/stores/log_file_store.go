package stores

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
)

var (
	ErrNoLogFilesFound = errors.New("no log files found")
)

const gzipSuffix = ".gz"

// LogFileStore finds and opens access logs named "<prefix>-YYYYMMDD" or
// "<prefix>-YYYYMMDD.gz" in the log directory.
//
// Example: with prefix "nginx-access-ui.log" and the directory
//
//	nginx-access-ui.log-20170629
//	nginx-access-ui.log-20170630.gz
//	nginx-access-ui.log-20170630.bz2   (ignored: unknown suffix)
//	report.html                        (ignored)
//
// SelectLatest returns nginx-access-ui.log-20170630.gz (2017-06-30, compressed).
//
//go:generate mockgen -source=log_file_store.go -destination=./mocks/log_file_store_mock.go -package=mocks
type LogFileStore interface {
	// SelectLatest returns the log file with the latest embedded date. Files
	// sharing that date are ordered by name and the first one wins.
	SelectLatest(ctx context.Context) (*models.LogFileCandidate, error)
	// Open opens the candidate for reading, decompressing gzip transparently.
	// Closing the returned reader releases every underlying resource.
	Open(ctx context.Context, candidate *models.LogFileCandidate) (io.ReadCloser, error)
}

type logFileStore struct {
	fileStorage filestorages.FileStorage
	namePattern *regexp.Regexp
}

func NewLogFileStore(fileStorage filestorages.FileStorage, prefix string) LogFileStore {
	return &logFileStore{
		fileStorage: fileStorage,
		namePattern: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d{8})(\.gz)?$`),
	}
}

func (s *logFileStore) SelectLatest(ctx context.Context) (*models.LogFileCandidate, error) {
	logger := loggers.Ctx(ctx)

	names, err := s.fileStorage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log directory: %w", err)
	}

	var latest *models.LogFileCandidate
	for _, name := range names {
		match := s.namePattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}

		date, err := models.ParseDate(models.LogDateLayout, match[1])
		if err != nil {
			logger.Debug().Str(loggers.FieldLogFile, name).Msg("skipping log file with invalid date")
			continue
		}

		candidate := &models.LogFileCandidate{
			Date:       date,
			Name:       name,
			Compressed: match[2] == gzipSuffix,
		}
		if latest == nil || isBetterCandidate(candidate, latest) {
			latest = candidate
		}
	}

	if latest == nil {
		return nil, ErrNoLogFilesFound
	}
	return latest, nil
}

func isBetterCandidate(c, current *models.LogFileCandidate) bool {
	if c.Date != current.Date {
		return c.Date.After(current.Date)
	}
	return c.Name < current.Name
}

func (s *logFileStore) Open(ctx context.Context, candidate *models.LogFileCandidate) (io.ReadCloser, error) {
	file, err := s.fileStorage.Get(ctx, candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", candidate.Name, err)
	}
	if !candidate.Compressed {
		return file, nil
	}

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open gzip stream %q: %w", candidate.Name, err)
	}
	return &multiCloseReader{Reader: gzipReader, closers: []io.Closer{gzipReader, file}}, nil
}

type multiCloseReader struct {
	io.Reader
	closers []io.Closer
}

// Close closes every closer and returns the first error.
func (r *multiCloseReader) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c.Close(); err == nil && e != nil {
			err = e
		}
	}
	return err
}
