package cmd

import (
	"horae/internal/adapters/storage"
	"horae/internal/adapters/tz"
	"horae/internal/config"
	"horae/internal/ports"
	"horae/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	PreferenceService *services.PreferenceService
	Projector         *services.Projector
	SessionService    *services.SessionService
	Zones             ports.ZoneResolver

	// Internal - for cleanup only
	repo ports.SessionRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(dbPath string) (*Container, error) {
	repo, err := storage.NewSQLiteRepository(config.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}

	zones := tz.NewResolver()

	return &Container{
		PreferenceService: services.NewPreferenceService(repo),
		Projector:         services.NewProjector(zones),
		SessionService:    services.NewSessionService(repo),
		Zones:             zones,
		repo:              repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
