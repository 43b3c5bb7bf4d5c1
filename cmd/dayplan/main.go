package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dayplan/internal/config"
	"dayplan/internal/dateview"
	"dayplan/internal/logging"
	"dayplan/internal/notify"
	"dayplan/internal/storage"
	"dayplan/internal/taskstore"
	"dayplan/internal/update"
)

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "dayplan: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "dayplan: logging setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	kv, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DataDir)
	if err != nil {
		// Tasks for this session still work, they just will not survive
		// a restart.
		logging.Error("storage unavailable, running in-memory", err,
			zap.String("backend", cfg.Storage.Backend))
		kv = storage.NewMemoryStore()
	}
	defer kv.Close()

	var notifier notify.DesktopNotifier = notify.NoopNotifier{}
	if cfg.Notifications.Desktop {
		notifier = notify.ExecNotifier{}
	}
	relay := notify.NewRelay(notifier, notify.NewPermissionCache())

	tasks := taskstore.New(kv, relay.Publish)
	tasks.Load(context.Background())

	selector := dateview.NewSelector()

	logging.Info("dayplan starting",
		zap.String("backend", cfg.Storage.Backend),
		zap.Bool("desktop_notifications", cfg.Notifications.Desktop),
		zap.Int("tasks", tasks.Len()))

	program := tea.NewProgram(update.NewModel(tasks, selector, relay), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("program terminated", err)
		fmt.Fprintf(os.Stderr, "dayplan failed: %v\n", err)
		os.Exit(1)
	}
}
