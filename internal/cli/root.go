package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/layerkit/layerkit/internal/branding"
	"github.com/layerkit/layerkit/internal/config"
	"github.com/layerkit/layerkit/internal/layout"
	"github.com/layerkit/layerkit/internal/logging"
	"github.com/layerkit/layerkit/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

func init() {
	rootCmd.Flags().String("base-dir", "", "Directory to scaffold into (default: current directory)")
	rootCmd.Flags().Bool("files", false, "Also create empty placeholder files")
	rootCmd.Flags().String("log-format", logging.FormatConsole,
		"Output format: "+strings.Join(logging.Formats(), ", "))
	rootCmd.PersistentFlags().String("layout", "", "Layout file (default: built-in "+layout.DefaultName+")")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the folder tree of a layered project
(core, presentation, domain, data) under the base directory.

Every folder is created together with any missing parents; folders that
already exist are left as they are. With --files, empty placeholder files
are created as well, skipping any that already exist. A failure on one path
is reported and the run continues with the next one.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return config.BindFlags(cmd.Flags())
	},
	RunE: runScaffold,
}

// runScaffold returns nil even when some paths failed; those failures are
// already in the output.
func runScaffold(cmd *cobra.Command, args []string) error {
	settings := config.Resolve()

	log, err := logging.New(cmd.OutOrStdout(), settings.LogFormat)
	if err != nil {
		return err
	}

	l, err := layout.Resolve(settings.LayoutFile)
	if err != nil {
		return err
	}

	s := scaffold.New(afero.NewOsFs(), log)
	s.Run(settings.BaseDir, l, settings.CreateFiles)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
