package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"glint/internal/config"
	"glint/internal/diag"
	"glint/internal/engine"
	"glint/internal/langdetect"
	"glint/internal/lexers"
	"glint/internal/logging"
	"glint/internal/sched"
	"glint/internal/textmodel"
	"glint/internal/tokenizer"
	"glint/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file",
	Short: "View a file with live incremental highlighting",
	Long:  `View opens a full-screen viewer; scrolling prioritizes the visible range while background tokenization catches up`,
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().String("lang", "", "force a language instead of detecting one")
	viewCmd.Flags().Bool("watch", false, "reload the file when it changes on disk")
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, _, err := config.Load(".")
	if err != nil {
		return err
	}
	logLevel, _ := cmd.Root().PersistentFlags().GetString("log-level")
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	logger := logging.New(logLevel)

	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = langdetect.Detect(path, content)
	}

	registry := tokenizer.NewRegistry()
	lexers.RegisterBuiltins(registry)
	if registry.Lookup(lang) == nil {
		lang = langdetect.Fallback
	}

	buf := textmodel.NewBuffer(string(content))
	buf.SetAttached(true)
	if cfg.Engine.MaxFileSize > 0 {
		buf.SetTokenizationSizeLimit(cfg.Engine.MaxFileSize)
	}

	queue := sched.NewQueue(sched.RealClock{}, cfg.Engine.IdleSlice())
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiagnostics)
	eng := engine.New(buf, registry, lang, engine.Options{
		Scheduler:       queue,
		BatchBudget:     cfg.Engine.BatchBudget(),
		CheapLineLength: cfg.Engine.CheapLineLength,
		Reporter:        diag.BagReporter{Bag: bag},
	})
	defer eng.Dispose()
	buf.OnEdit(func(ed textmodel.Edit) {
		eng.ApplyEdits([]textmodel.Edit{ed})
	})

	var reloads chan string
	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer watcher.Close()
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		reloads = make(chan string, 1)
		go func() {
			defer close(reloads)
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					fresh, err := os.ReadFile(path)
					if err != nil {
						logger.Warn("reload failed", "file", path, "err", err)
						continue
					}
					select {
					case reloads <- string(fresh):
					default:
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					logger.Warn("watcher error", "err", err)
				}
			}
		}()
	}

	model := ui.NewViewerModel(path, lang, buf, eng, queue, reloads)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}

	for _, d := range bag.Items() {
		logger.Debug("tokenizer diagnostic", "diag", d.String())
	}
	return nil
}
