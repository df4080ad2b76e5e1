package stores

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/filestorages/mocks"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func candidateFor(year int, month time.Month, day int) *models.LogFileCandidate {
	return &models.LogFileCandidate{
		Date: civil.Date{Year: year, Month: month, Day: day},
		Name: "nginx-access-ui.log",
	}
}

func TestReportStore_HasReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reports  []string
		expected bool
	}{
		{name: "report for date exists", reports: []string{"report-2017.06.30.html"}, expected: true},
		{name: "other extension counts", reports: []string{"report-2017.06.30.pdf"}, expected: true},
		{name: "other dates only", reports: []string{"report-2017.06.29.html", "report-2017.07.01.html"}, expected: false},
		{name: "unrelated names ignored", reports: []string{"notes.txt", "report-latest.html", "report-2017.06.30"}, expected: false},
		{name: "empty directory", reports: []string{}, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			mockFileStorage.EXPECT().List(gomock.Any()).Return(tt.reports, nil)

			store := NewReportStore(mockFileStorage)
			exists, err := store.HasReport(context.Background(), candidateFor(2017, 6, 30))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestReportStore_HasReport_MissingDirectory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	mockFileStorage.EXPECT().List(gomock.Any()).Return(nil, filestorages.ErrRootDirNotFound)

	exists, err := NewReportStore(mockFileStorage).HasReport(context.Background(), candidateFor(2017, 6, 30))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReportStore_HasReport_ListError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	mockFileStorage.EXPECT().List(gomock.Any()).Return(nil, errors.New("permission denied"))

	_, err := NewReportStore(mockFileStorage).HasReport(context.Background(), candidateFor(2017, 6, 30))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list report directory")
}

func TestReportStore_Save_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	mockFileStorage.EXPECT().
		Put(ctx, "report-2017.06.30.html", gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "<html></html>", string(data))
			return &filestorages.PutResult{FileKey: key}, nil
		})

	key, err := NewReportStore(mockFileStorage).Save(ctx, candidateFor(2017, 6, 30), []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, "report-2017.06.30.html", key)
}

func TestReportStore_Save_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	mockFileStorage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, filestorages.ErrFileAlreadyExists)

	_, err := NewReportStore(mockFileStorage).Save(context.Background(), candidateFor(2017, 6, 30), []byte("x"))
	assert.ErrorIs(t, err, ErrReportAlreadyExists)
}

func TestReportStore_Save_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storageErr := errors.New("disk full")
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	mockFileStorage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storageErr)

	_, err := NewReportStore(mockFileStorage).Save(context.Background(), candidateFor(2017, 6, 30), []byte("x"))
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrReportAlreadyExists)
}
