// Command matcher-cli drives an annotation session from the terminal and
// reports on the state of the annotation files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yashubustudio/sentencematcher/internal/tui"
	"yashubustudio/sentencematcher/matcher"
)

type cliOptions struct {
	envFile string
	verbose bool
	logFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:   "matcher-cli",
		Short: "Annotate sentence pairs and inspect annotation files",
		Long: `Annotate sentence pairs and inspect annotation files.

Configuration is read from a .env file (or $` + matcher.EnvFileVar + `) and the
process environment:

` + matcher.ConfigDescription(),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env", "", "path to the .env file (default: ./.env)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newTUICmd(opts), newStatusCmd(opts), newKeywordsCmd(opts))
	return root
}

func newTUICmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Annotate the unprocessed sentences in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := openLogger(opts)
			if err != nil {
				return err
			}
			defer closeLog()

			svc, err := loadService(opts, logger)
			if err != nil {
				return err
			}
			if err := tui.Run(svc.Session()); err != nil {
				return fmt.Errorf("terminal ui: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d sentence(s).\n", svc.Session().Saved())
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append logs to this file (logs are discarded otherwise)")
	return cmd
}

func newStatusCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print past keywords and the number of unprocessed sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loadDataset(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			past := data.SortedPastKeywords()
			if len(past) == 0 {
				fmt.Fprintln(out, "Past keywords: none")
			} else {
				fmt.Fprintf(out, "Past keywords: %s\n", strings.Join(past, ", "))
			}
			fmt.Fprintf(out, "Sentence groups: %d\n", len(data.Groups))
			fmt.Fprintf(out, "Processed sentences: %d\n", len(data.Processed.Sentences))
			fmt.Fprintf(out, "Unrated sentences: %d\n", len(data.Records))
			return nil
		},
	}
}

func newKeywordsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "Print previously selected keywords in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loadDataset(opts)
			if err != nil {
				return err
			}
			for _, kw := range data.Processed.Keywords {
				fmt.Fprintln(cmd.OutOrStdout(), kw)
			}
			return nil
		},
	}
}

func loadDataset(opts *cliOptions) (matcher.Dataset, error) {
	cfg, err := matcher.LoadConfig(opts.envFile)
	if err != nil {
		return matcher.Dataset{}, fmt.Errorf("load configuration: %w", err)
	}
	return matcher.LoadDataset(cfg)
}

func loadService(opts *cliOptions, logger *zap.Logger) (*matcher.Service, error) {
	cfg, err := matcher.LoadConfig(opts.envFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return matcher.NewService(cfg, logger)
}

// openLogger keeps log output off the terminal while the TUI owns it.
func openLogger(opts *cliOptions) (*zap.Logger, func(), error) {
	if opts.logFile == "" {
		return zap.NewNop(), func() {}, nil
	}
	f, err := os.OpenFile(opts.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := matcher.NewLogger(opts.verbose, f)
	return logger, func() {
		_ = logger.Sync()
		_ = f.Close()
	}, nil
}
