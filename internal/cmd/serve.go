package cmd

import (
	"fmt"

	"horae/internal/config"
	"horae/internal/logging"
	"horae/internal/server"
)

// ServeCmd serves the dashboard over SSH
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"0.0.0.0"`
	Port string `help:"Port to listen on" default:"2323"`
}

// Run starts the SSH server
func (s *ServeCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting horae SSH server", "host", s.Host, "port", s.Port)

	srv, err := server.NewServer(s.Host, s.Port, config.ExpandPath(cli.DBPath))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
