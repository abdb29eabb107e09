// Package cmd provides CLI commands for bibconv.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "bibconv",
	Short: "Convert bibliographic references between exchange formats",
	Long: `bibconv converts bibliographic references between BibTeX, BibLaTeX, RIS,
EndNote (tagged and XML), MODS XML, ISI Web of Science, Copac, EBI/Medline
PubMed XML, Microsoft Word 2007 bibliography XML, NBIB, and ADS.

Examples:
  bibconv convert bibtexin risout -i refs.bib -o refs.ris
  cat refs.bib | bibconv convert bibtexin modsout > refs.xml
  bibconv formats`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(formatsCmd)
}
