package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"glint/internal/config"
	"glint/internal/diag"
	"glint/internal/engine"
	"glint/internal/highlight"
	"glint/internal/langdetect"
	"glint/internal/lexers"
	"glint/internal/logging"
	"glint/internal/observ"
	"glint/internal/textmodel"
	"glint/internal/tokenizer"
	"glint/internal/tokfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file...",
	Short: "Tokenize source files",
	Long:  `Tokenize runs each file through the tokenization engine to completion and prints the resulting token spans`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("lang", "", "force a language instead of detecting one")
}

type tokenizeOutcome struct {
	path string
	doc  tokfmt.DocumentOutput
	buf  *textmodel.Buffer
	lang string
	bag  *diag.Bag
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	forcedLang, _ := cmd.Flags().GetString("lang")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	cfg, _, err := config.Load(".")
	if err != nil {
		return err
	}
	logLevel, _ := cmd.Root().PersistentFlags().GetString("log-level")
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	logger := logging.New(logLevel)

	registry := tokenizer.NewRegistry()
	lexers.RegisterBuiltins(registry)

	timer := observ.NewTimer()
	phase := timer.Begin("tokenize")

	// Each file is an independent engine over an independent buffer, so the
	// files can run in parallel even though every single engine stays
	// strictly single-threaded.
	outcomes := make([]tokenizeOutcome, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			out, err := tokenizeFile(path, forcedLang, maxDiagnostics, registry, cfg)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d file(s)", len(args)))

	for _, out := range outcomes {
		for _, d := range out.bag.Items() {
			logger.Warn("tokenizer diagnostic", "file", out.path, "diag", d.String())
		}
	}

	color := useColor(cmd, os.Stdout)
	theme := highlight.DefaultTheme()
	for _, out := range outcomes {
		switch format {
		case "pretty":
			if len(outcomes) > 1 {
				fmt.Fprintf(os.Stdout, "== %s [%s]\n", out.path, out.lang)
			}
			if err := tokfmt.FormatPretty(os.Stdout, out.buf, theme, color); err != nil {
				return err
			}
		case "json":
			if err := tokfmt.FormatJSON(os.Stdout, out.doc); err != nil {
				return err
			}
		case "msgpack":
			if err := tokfmt.FormatMsgpack(os.Stdout, out.doc); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

func tokenizeFile(path, forcedLang string, maxDiagnostics int, registry *tokenizer.Registry, cfg config.Config) (tokenizeOutcome, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return tokenizeOutcome{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lang := forcedLang
	if lang == "" {
		lang = langdetect.Detect(path, content)
	}
	if registry.Lookup(lang) == nil {
		lang = langdetect.Fallback
	}

	buf := textmodel.NewBuffer(string(content))
	if cfg.Engine.MaxFileSize > 0 {
		buf.SetTokenizationSizeLimit(cfg.Engine.MaxFileSize)
	}

	bag := diag.NewBag(maxDiagnostics)
	eng := engine.New(buf, registry, lang, engine.Options{
		BatchBudget:     cfg.Engine.BatchBudget(),
		CheapLineLength: cfg.Engine.CheapLineLength,
		Reporter:        diag.BagReporter{Bag: bag},
	})
	defer eng.Dispose()

	eng.ForceTokenize(buf.LineCount())

	return tokenizeOutcome{
		path: path,
		doc:  tokfmt.Collect(path, lang, buf),
		buf:  buf,
		lang: lang,
		bag:  bag,
	}, nil
}
