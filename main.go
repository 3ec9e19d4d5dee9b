package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-elect/cliparse"
)

// cfg is filled from flags, the environment and .env before any command runs.
var cfg cliparse.Config

var rootCmd = &cobra.Command{
	Use:           "quickly-elect",
	Short:         "Single-election voting service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cliparse.LoadDotEnv(".env"); err != nil {
			return err
		}
		if err := cliparse.Resolve(&cfg); err != nil {
			return err
		}
		slog.SetDefault(newLogger(cfg.LogFormat, os.Stderr))
		return nil
	},
}

func init() {
	cliparse.BindFlags(rootCmd.PersistentFlags(), &cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newLogger picks a text handler for terminals and JSON otherwise, unless
// format forces one.
func newLogger(format string, w io.Writer) *slog.Logger {
	if format == "auto" || format == "" {
		format = "json"
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = "text"
		}
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, nil))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}
