package cli

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/config"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/update"
)

// runUI owns the interactive session: store, poller and program. The terminal
// belongs to bubbletea, so logs go to log.file or nowhere.
func runUI(ctx context.Context, cfg config.RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "dayboard")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	a, err := openApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(); err != nil {
			logger.Printf("close store: %v", err)
		}
	}()

	poller, err := scheduler.NewPoller(cfg.RolloverInterval, cfg.RolloverBuffer)
	if err != nil {
		return err
	}
	poller.Start()
	defer poller.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}
	m := update.NewModel(ctx, a.board, update.Options{
		Poller:         poller,
		DesktopEnabled: cfg.DesktopNotifications,
		Notifier:       notifier,
		Logger:         logger,
	})

	logger.Printf("ui: start today=%s backend=%s interval=%s", a.board.TodayKey(), cfg.StoreBackend, poller.Interval())
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if n := poller.Dropped(); n > 0 {
		logger.Printf("ui: %d rollover poll(s) dropped while busy", n)
	}
	return nil
}
