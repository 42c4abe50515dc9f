package handler

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// presignExpiry is how long a backup download link stays valid
const presignExpiry = 15 * time.Minute

// BackupLister lists stored backup objects and signs download links
type BackupLister interface {
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	GeneratePresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// BackupRunner takes a backup on demand
type BackupRunner interface {
	Run(ctx context.Context) ([]string, error)
}

// BackupHandler exposes category backups kept in object storage
type BackupHandler struct {
	lister BackupLister
	runner BackupRunner
	prefix string
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(lister BackupLister, runner BackupRunner, prefix string) *BackupHandler {
	return &BackupHandler{lister: lister, runner: runner, prefix: prefix}
}

// BackupObject is one stored category document of a backup
type BackupObject struct {
	Category    string `json:"category"`
	Key         string `json:"key"`
	DownloadURL string `json:"download_url"`
}

// Backup groups the documents written by one backup run
type Backup struct {
	TakenAt string         `json:"taken_at"`
	Objects []BackupObject `json:"objects"`
}

// ListBackups handles GET /api/v1/backups
// @Summary List backups
// @Description Newest first, with short-lived download links
// @Tags backups
// @Produce json
// @Success 200 {array} Backup
// @Failure 500 {object} ProblemDetails
// @Router /backups [get]
func (h *BackupHandler) ListBackups(c echo.Context) error {
	ctx := c.Request().Context()
	keys, err := h.lister.ListKeys(ctx, h.prefix+"/")
	if err != nil {
		log.Error().Err(err).Msg("Failed to list backups")
		return NewInternalError(c, "Failed to list backups")
	}

	var backups []Backup
	index := make(map[string]int)
	for _, key := range keys {
		takenAt := path.Base(path.Dir(key))
		url, err := h.lister.GeneratePresignedURL(ctx, key, presignExpiry)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("Failed to sign backup URL")
			return NewInternalError(c, "Failed to list backups")
		}

		i, ok := index[takenAt]
		if !ok {
			i = len(backups)
			index[takenAt] = i
			backups = append(backups, Backup{TakenAt: takenAt})
		}
		backups[i].Objects = append(backups[i].Objects, BackupObject{
			Category:    strings.TrimSuffix(path.Base(key), ".json"),
			Key:         key,
			DownloadURL: url,
		})
	}

	// Keys are sorted oldest first
	for l, r := 0, len(backups)-1; l < r; l, r = l+1, r-1 {
		backups[l], backups[r] = backups[r], backups[l]
	}
	if backups == nil {
		backups = []Backup{}
	}
	return c.JSON(http.StatusOK, backups)
}

// CreateBackup handles POST /api/v1/backups
// @Summary Take a backup now
// @Tags backups
// @Produce json
// @Success 201 {array} string
// @Failure 500 {object} ProblemDetails
// @Router /backups [post]
func (h *BackupHandler) CreateBackup(c echo.Context) error {
	keys, err := h.runner.Run(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Manual backup failed")
		return NewInternalError(c, "Backup failed")
	}
	return c.JSON(http.StatusCreated, keys)
}
