package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/odfmark/go-odfmark/pkg/odfmark"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	verbose bool
	cfgFile string

	cfg = odfmark.DefaultConfig()

	rootCmd = &cobra.Command{
		Use:   "odfmark",
		Short: "Fill bookmarks in OpenDocument text files",
		Long: titleStyle.Render("odfmark") + subtitleStyle.Render(" - Fill bookmarks in OpenDocument text files") + `

odfmark edits .odt files by populating named bookmark placeholders and
appending paragraphs, then repacks a valid container. The result can
optionally be handed to LibreOffice for PDF rendering.

` + subtitleStyle.Render("Examples:") + `
  odfmark markers letter.odt
  odfmark populate letter.odt out.odt --set name="Jane Doe" --set date="today"
  odfmark populate letter.odt out.odt --set name=Jane --convert`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/odfmark/config.toml)")

	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(markersCmd)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads the config file and ODFMARK_* environment variables.
func initRootConfig() {
	loaded, err := odfmark.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, warningStyle.Render("Warning: ")+err.Error())
		return
	}
	cfg = loaded

	if verbose {
		cfg.LogLevel = "debug"
	}
	odfmark.SetLogLevel(cfg.LogLevel)
}
