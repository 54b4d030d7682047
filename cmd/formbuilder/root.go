package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flavono123/formbuilder/internal/config"
	"github.com/flavono123/formbuilder/internal/form"
	"github.com/flavono123/formbuilder/internal/ui"
	"github.com/flavono123/formbuilder/internal/ui/theme"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formbuilder",
		Short:         "Build a form by adding text, dropdown, checkbox and radio fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBuilder,
	}

	cmd.Flags().String("config", "", "config file (default: user config dir)")
	cmd.Flags().String("theme", "", "catppuccin flavour: latte, frappe, macchiato or mocha")
	cmd.Flags().String("debug", "", "write debug log to this file")
	cmd.Flags().Bool("no-alt-screen", false, "render inline instead of in the alternate screen")
	cmd.Flags().Bool("dev", false, "use the development config directory")

	cmd.AddCommand(newKindsCmd())
	return cmd
}

// execute runs cmd and reports a failure on its error writer. The standard
// logger may point at a closed debug file or be discarded by then, so it is
// not used for the final error.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("formbuilder:", err)
		return 1
	}
	return 0
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the field kinds the builder can add",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range form.Kinds() {
				choice := ""
				if k.IsChoice() {
					choice = " (with options)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", k, choice)
			}
			return nil
		},
	}
}

// loadConfig merges the config file and the command line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	dev, _ := cmd.Flags().GetBool("dev")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.Path(dev)
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg.DevMode = cfg.DevMode || dev

	if t, _ := cmd.Flags().GetString("theme"); t != "" {
		cfg.Theme = t
	}
	if d, _ := cmd.Flags().GetString("debug"); d != "" {
		cfg.DebugLog = d
	}
	if os.Getenv("DEBUG") != "" && cfg.DebugLog == "" {
		cfg.DebugLog = "debug.log"
	}
	if noAlt, _ := cmd.Flags().GetBool("no-alt-screen"); noAlt {
		cfg.AltScreen = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runBuilder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the TUI owns the terminal; logs only go to the debug file
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "debug")
		if err != nil {
			return fmt.Errorf("failed to log to file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	theme.SetFlavour(cfg.Theme)
	log.Printf("starting with theme %s", theme.Flavour())

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(ui.InitModel(form.NewStore(form.UUIDGenerator{})), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
