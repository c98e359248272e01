package main

import (
	"context"
	"os"

	"marine-guardian/internal/app"
	"marine-guardian/internal/cli"
	"marine-guardian/internal/config"
	"marine-guardian/internal/logger"
	"marine-guardian/internal/shutdown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	code := cli.Execute(ctx, cli.NewRootCommand(runGUI))
	cancel()
	os.Exit(code)
}

// runGUI opens the window and blocks until it is closed or a signal arrives
func runGUI(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	shutdownManager := shutdown.NewManager(log)

	application, err := app.NewApplication(shutdownManager.Context(), cfg, log)
	if err != nil {
		return err
	}

	shutdownManager.Register(shutdown.Func(application.Lifecycle().Quit))
	shutdownManager.Listen()

	go func() {
		select {
		case <-ctx.Done():
			shutdownManager.Shutdown()
		case <-shutdownManager.Done():
		}
	}()

	if err := application.Run(); err != nil {
		return err
	}

	shutdownManager.Shutdown()
	log.Info("Application", "application terminated", nil)
	return nil
}
