package application

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	repo "github.com/anujyadav2244/cricriser/internal/domain/repository"
	"github.com/anujyadav2244/cricriser/internal/infrastructure/postgres"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

var (
	ErrPlayerNotFound = errors.New("Player not found")
	ErrPlayerName     = errors.New("Player name is required")
)

type PlayerService struct {
	Players   repo.PlayerRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewPlayerService(players repo.PlayerRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *PlayerService {
	return &PlayerService{Players: players, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

func (s *PlayerService) Create(ctx context.Context, p *entity.Player, photo *LogoUpload) (*entity.Player, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrPlayerName
	}
	if err := s.Players.Create(p); err != nil {
		return nil, err
	}
	if photo != nil {
		url, err := s.uploadPhoto(ctx, p.ID, photo)
		if err != nil {
			return nil, err
		}
		if err := s.Players.SetPhotoURL(p.ID, url); err != nil {
			return nil, err
		}
		p.PhotoURL = url
	}
	return p, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (*entity.Player, error) {
	p, err := s.Players.GetByID(id)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PlayerService) List(ctx context.Context) ([]*entity.Player, error) {
	return s.Players.List()
}

func (s *PlayerService) uploadPhoto(ctx context.Context, playerID string, photo *LogoUpload) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(photo.Filename))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, "players/"+playerID+ext, photo.ContentType, photo.Reader)
}
