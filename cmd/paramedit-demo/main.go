package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/paramedit"
	"github.com/iw2rmb/paramedit/param"
)

var (
	docPath string
	logPath string
	verbose bool
	preview bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "paramedit-demo",
	Short:   "Edit a parameter set in the terminal",
	Version: paramedit.Version(),
	Long: `paramedit-demo opens a form with one text field per parameter.

Tab and shift+tab move between fields. ctrl+s prints the current model as JSON
and exits; ctrl+c or esc exits without printing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(logPath, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(docPath)
		if err != nil {
			return err
		}
		return runEditor(cmd.OutOrStdout(), doc, preview, logger)
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the model the form would start with",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(docPath)
		if err != nil {
			return err
		}
		return printInitialModel(cmd.OutOrStdout(), doc)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&docPath, "file", "f", "", "parameter document (YAML or JSON); built-in demo when empty")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug events")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "show the current model below the fields")
	rootCmd.AddCommand(printCmd)
}

// newLogger writes to path, or discards everything when path is empty. The
// terminal belongs to the form, so logs never go to stderr.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func loadDocument(path string) (param.Document, error) {
	if path == "" {
		return demoDocument(), nil
	}
	return param.LoadDocument(path)
}

func demoDocument() param.Document {
	return param.Document{
		Definitions: []param.Definition{
			{ID: 1, Name: "Purpose", Type: param.TypeText},
			{ID: 2, Name: "Length", Type: param.TypeText},
		},
		Model: param.Model{
			Values: []param.Value{
				{ParamID: 1, Value: "casual"},
				{ParamID: 2, Value: "maxi"},
			},
			Colors: []param.Color{},
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
