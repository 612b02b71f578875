package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"

	"horae/internal/domain"
	"horae/internal/services"
)

// SessionsCmd manages sessions
type SessionsCmd struct {
	Add   SessionsAddCmd   `cmd:"add" help:"Add a new session"`
	Del   SessionsDelCmd   `cmd:"del" help:"Delete a session by name or id"`
	List  SessionsListCmd  `cmd:"list" help:"List all sessions" default:"1"`
	Reset SessionsResetCmd `cmd:"reset" help:"Replace all sessions with the defaults"`
}

// SessionsListCmd lists all sessions with their current status
type SessionsListCmd struct {
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Timezone string `help:"Timezone for local open/close times" default:"local"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	ctx := context.Background()
	sessions := container.SessionService.Load(ctx)

	if s.Format == "json" {
		data, err := json.MarshalIndent(sessions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	zone := container.Zones.Resolve(s.Timezone)
	details := container.Projector.Project(sessions, time.Now(), zone, domain.ScheduleContinuous)

	statusColors := map[domain.SessionStatus]*color.Color{
		domain.StatusActive:        color.New(color.FgGreen),
		domain.StatusActiveClosing: color.New(color.FgYellow),
		domain.StatusUpcoming:      color.New(color.FgCyan),
		domain.StatusUpcomingSoon:  color.New(color.FgHiCyan),
		domain.StatusClosed:        color.New(color.FgHiBlack),
	}

	header := color.New(color.Bold)
	header.Printf("%-16s %-12s %-14s %-13s %s\n", "NAME", "MARKET", "STATUS", "LOCAL HOURS", "COUNTDOWN")
	for _, d := range details {
		c, ok := statusColors[d.Status]
		if !ok {
			c = color.New(color.Reset)
		}
		c.Printf("%-16s %-12s %-14s %-13s %s\n",
			d.Name, d.Market, d.Status,
			fmt.Sprintf("%s-%s", d.LocalOpenTime, d.LocalCloseTime),
			d.Countdown)
	}
	return nil
}

// SessionsAddCmd adds a new session. Positional args are name, then the
// opening and closing hours in UTC.
type SessionsAddCmd struct {
	Name  string `arg:"" help:"Session name"`
	Start int    `arg:"" help:"Opening hour in UTC (0-23)"`
	End   int    `arg:"" help:"Closing hour in UTC (0-23)"`

	Color  string `help:"Palette color name (violet, rose, cyan, emerald, sky, amber, lime, pink)"`
	Market string `required:"" help:"Region or exchange label" short:"m"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	ctx := context.Background()
	sessions := container.SessionService.Load(ctx)

	draft := services.SessionDraft{
		Color:        s.Color,
		Market:       s.Market,
		Name:         s.Name,
		UTCEndHour:   s.End,
		UTCStartHour: s.Start,
	}
	if _, err := container.SessionService.Create(ctx, sessions, draft); err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}

	color.Green("Session %q added", s.Name)
	return nil
}

// SessionsDelCmd deletes a session
type SessionsDelCmd struct {
	Name string `arg:"" help:"Name or id of the session to delete"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	ctx := context.Background()
	sessions := container.SessionService.Load(ctx)

	id := ""
	for _, session := range sessions {
		if session.ID == s.Name || session.Name == s.Name {
			id = session.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("session %q: %w", s.Name, domain.ErrSessionNotFound)
	}

	container.SessionService.Delete(ctx, sessions, id)
	color.Green("Session %q deleted", s.Name)
	return nil
}

// SessionsResetCmd resets the session list to the defaults
type SessionsResetCmd struct{}

// Run executes the reset command
func (s *SessionsResetCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	sessions := container.SessionService.Reset(context.Background())
	color.Green("Sessions reset to %d defaults", len(sessions))
	return nil
}
