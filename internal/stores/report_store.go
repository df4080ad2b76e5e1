package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"

	"cloud.google.com/go/civil"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
)

var reportNamePattern = regexp.MustCompile(`^report-(\d{4}\.\d{2}\.\d{2})\.[^.]+$`)

// ReportStore keeps rendered reports as "report-YYYY.MM.DD.html". The date in
// a report name is what makes a run for the same log date a no-op: any
// extension counts, so a hand-exported report-2017.06.30.pdf also blocks a
// regeneration for 2017-06-30.
//
// Save behaves like a conditional create: the document is written to a
// temporary file and linked into place only if no report with that name
// exists, so a crash never leaves a partial report behind.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	HasReport(ctx context.Context, candidate *models.LogFileCandidate) (bool, error)
	Save(ctx context.Context, candidate *models.LogFileCandidate, document []byte) (string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage}
}

func (s *reportStore) HasReport(ctx context.Context, candidate *models.LogFileCandidate) (bool, error) {
	dates, err := s.reportDates(ctx)
	if err != nil {
		return false, err
	}
	_, exists := dates[candidate.Date]
	return exists, nil
}

func (s *reportStore) Save(ctx context.Context, candidate *models.LogFileCandidate, document []byte) (string, error) {
	key := candidate.ReportName()
	_, err := s.fileStorage.Put(ctx, key, bytes.NewReader(document))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrReportAlreadyExists
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return key, nil
}

// reportDates returns the set of dates that already have a report. A report
// directory that does not exist yet holds no reports.
func (s *reportStore) reportDates(ctx context.Context) (map[civil.Date]struct{}, error) {
	names, err := s.fileStorage.List(ctx)
	if err != nil {
		if errors.Is(err, filestorages.ErrRootDirNotFound) {
			return map[civil.Date]struct{}{}, nil
		}
		return nil, fmt.Errorf("failed to list report directory: %w", err)
	}

	dates := make(map[civil.Date]struct{}, len(names))
	for _, name := range names {
		match := reportNamePattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		date, err := models.ParseDate(models.ReportDateLayout, match[1])
		if err != nil {
			continue
		}
		dates[date] = struct{}{}
	}
	return dates, nil
}
