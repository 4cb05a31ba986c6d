package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	adapter "github.com/ionut-t/miv/adapter-bubbletea"
	"github.com/ionut-t/miv/core"
	"github.com/ionut-t/miv/internal/config"
	"github.com/ionut-t/miv/internal/log"
)

const debugLogFile = "miv-debug.log"

var (
	cfgFile  string
	debug    bool
	language string
)

var rootCmd = &cobra.Command{
	Use:           "miv",
	Short:         "A small modal text editor",
	Long:          `miv is a vim flavoured modal editor for the terminal with normal, insert and visual modes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runEditor,
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write the default configuration as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".miv.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.miv.yaml, then ~/.config/miv/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to "+debugLogFile)
	rootCmd.Flags().StringVarP(&language, "language", "l", "",
		"syntax highlighting language, overrides the config")

	rootCmd.AddCommand(initConfigCmd)
}

func initLogging() (func(), error) {
	if !debug && os.Getenv("MIV_DEBUG") == "" {
		return func() {}, nil
	}
	return log.InitWithTeaLog(debugLogFile, "miv")
}

func runEditor(cmd *cobra.Command, args []string) error {
	cleanup, err := initLogging()
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	defer cleanup()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if language != "" {
		cfg.Language = language
	}

	opts := append(cfg.EditorOptions(), core.WithClipboard(adapter.SystemClipboard{}))
	ed, err := core.New(opts...)
	if err != nil {
		return fmt.Errorf("building editor: %w", err)
	}

	model := adapter.New(ed)
	model.SetLanguage(cfg.Language, cfg.Theme)
	model.HideLineNumbers(!cfg.ShowLineNumbers)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if m, ok := final.(adapter.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
