package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	dbm "salonsage/internal/models/db_models"
	resp "salonsage/internal/models/response_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

type UpdaterServiceInterface interface {
	// CheckForUpdates polls the configured releases endpoint once and
	// records the outcome in the metadata table.
	CheckForUpdates(ctx context.Context) (*resp.UpdateCheckResult, error)
	Status(ctx context.Context) (*resp.UpdateStatusResponse, error)
	// RunPeriodic blocks, re-checking on the configured interval until
	// the context is cancelled.
	RunPeriodic(ctx context.Context)
}

type UpdaterConfig struct {
	ReleasesURL    string
	CurrentVersion string
	CheckInterval  time.Duration
	InitialDelay   time.Duration
}

type UpdaterService struct {
	metadataRepo repositories.MetadataRepository
	cfg          UpdaterConfig
	client       *http.Client
	logger       *zap.Logger
}

func NewUpdaterService(metadataRepo repositories.MetadataRepository, cfg UpdaterConfig, logger *zap.Logger) UpdaterServiceInterface {
	return &UpdaterService{
		metadataRepo: metadataRepo,
		cfg:          cfg,
		client:       &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type release struct {
	TagName     string         `json:"tag_name"`
	Name        string         `json:"name"`
	PublishedAt string         `json:"published_at"`
	Assets      []releaseAsset `json:"assets"`
}

func (s *UpdaterService) CheckForUpdates(ctx context.Context) (*resp.UpdateCheckResult, error) {
	if s.cfg.ReleasesURL == "" {
		s.logger.Debug("update url not configured, skipping check")
		return &resp.UpdateCheckResult{HasUpdate: false}, nil
	}

	rel, err := s.fetchLatestRelease(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	hasUpdate := utils.CompareVersions(rel.TagName, s.cfg.CurrentVersion) > 0

	if err := s.metadataRepo.Set(ctx, dbm.MetaUpdateCheckedAt, now); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !hasUpdate {
		if err := s.metadataRepo.Set(ctx, dbm.MetaUpdateAvailable, "false"); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		return &resp.UpdateCheckResult{HasUpdate: false}, nil
	}

	if err := s.metadataRepo.Set(ctx, dbm.MetaLatestVersion, rel.TagName); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if err := s.metadataRepo.Set(ctx, dbm.MetaUpdateAvailable, "true"); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := &resp.UpdateCheckResult{HasUpdate: true, Version: rel.TagName}
	for _, asset := range rel.Assets {
		if strings.Contains(asset.Name, "salon-sage") || strings.HasSuffix(asset.Name, ".zip") {
			out.DownloadURL = asset.BrowserDownloadURL
			break
		}
	}
	s.logger.Info("update available", zap.String("version", rel.TagName))
	return out, nil
}

func (s *UpdaterService) fetchLatestRelease(ctx context.Context) (*release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.ReleasesURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "SalonSage-AutoUpdater")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release endpoint returned %d", res.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(res.Body).Decode(&rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

func (s *UpdaterService) Status(ctx context.Context) (*resp.UpdateStatusResponse, error) {
	available, _, err := s.metadataRepo.Get(ctx, dbm.MetaUpdateAvailable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	latest, _, err := s.metadataRepo.Get(ctx, dbm.MetaLatestVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	checked, _, err := s.metadataRepo.Get(ctx, dbm.MetaUpdateCheckedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &resp.UpdateStatusResponse{
		UpdateAvailable: available == "true",
		CurrentVersion:  s.cfg.CurrentVersion,
		LatestVersion:   latest,
		LastChecked:     checked,
	}, nil
}

func (s *UpdaterService) RunPeriodic(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.cfg.InitialDelay):
	}

	if _, err := s.CheckForUpdates(ctx); err != nil {
		s.logger.Warn("update check failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.cfg.CheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.CheckForUpdates(ctx); err != nil {
				s.logger.Warn("update check failed", zap.Error(err))
			}
		}
	}
}
