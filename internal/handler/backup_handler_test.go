package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackupLister struct {
	keys    []string
	listErr error
}

func (f *fakeBackupLister) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	return f.keys, f.listErr
}

func (f *fakeBackupLister) GeneratePresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://storage.example/" + key + "?expires=" + expiry.String(), nil
}

type fakeBackupRunner struct {
	keys []string
	err  error
	runs int
}

func (f *fakeBackupRunner) Run(ctx context.Context) ([]string, error) {
	f.runs++
	return f.keys, f.err
}

func TestListBackups_GroupsNewestFirst(t *testing.T) {
	lister := &fakeBackupLister{keys: []string{
		"backups/20240101T000000Z/expenses.json",
		"backups/20240101T000000Z/income.json",
		"backups/20240201T000000Z/income.json",
	}}
	h := NewBackupHandler(lister, &fakeBackupRunner{}, "backups")

	c, rec := newRequest(http.MethodGet, "/api/v1/backups", "")
	require.NoError(t, h.ListBackups(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	backups := decodeBody[[]Backup](t, rec)
	require.Len(t, backups, 2)
	assert.Equal(t, "20240201T000000Z", backups[0].TakenAt)
	require.Len(t, backups[1].Objects, 2)
	assert.Equal(t, "expenses", backups[1].Objects[0].Category)
	assert.Contains(t, backups[1].Objects[0].DownloadURL, "expires=15m0s")
}

func TestListBackups_Empty(t *testing.T) {
	h := NewBackupHandler(&fakeBackupLister{}, &fakeBackupRunner{}, "backups")

	c, rec := newRequest(http.MethodGet, "/api/v1/backups", "")
	require.NoError(t, h.ListBackups(c))

	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListBackups_StorageError(t *testing.T) {
	h := NewBackupHandler(&fakeBackupLister{listErr: errors.New("bucket gone")}, &fakeBackupRunner{}, "backups")

	c, rec := newRequest(http.MethodGet, "/api/v1/backups", "")
	require.NoError(t, h.ListBackups(c))

	decodeProblem(t, rec, http.StatusInternalServerError)
}

func TestCreateBackup(t *testing.T) {
	runner := &fakeBackupRunner{keys: []string{"backups/20240301T000000Z/income.json"}}
	h := NewBackupHandler(&fakeBackupLister{}, runner, "backups")

	c, rec := newRequest(http.MethodPost, "/api/v1/backups", "")
	require.NoError(t, h.CreateBackup(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, runner.keys, decodeBody[[]string](t, rec))
	assert.Equal(t, 1, runner.runs)
}

func TestCreateBackup_Failure(t *testing.T) {
	h := NewBackupHandler(&fakeBackupLister{}, &fakeBackupRunner{err: errors.New("upload failed")}, "backups")

	c, rec := newRequest(http.MethodPost, "/api/v1/backups", "")
	require.NoError(t, h.CreateBackup(c))

	decodeProblem(t, rec, http.StatusInternalServerError)
}
