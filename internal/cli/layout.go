package cli

import (
	"fmt"
	"os"

	"github.com/layerkit/layerkit/internal/config"
	"github.com/layerkit/layerkit/internal/layout"
	"github.com/spf13/cobra"
)

func init() {
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutValidateCmd)
	rootCmd.AddCommand(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect scaffold layouts",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective layout as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := layout.Resolve(config.Resolve().LayoutFile)
		if err != nil {
			return err
		}
		data, err := l.Marshal()
		if err != nil {
			return fmt.Errorf("encoding layout: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a layout file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading layout %s: %w", path, err)
		}

		result, err := layout.Validate(data)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s: valid\n", path)
			return nil
		}

		fmt.Fprintf(out, "%s: invalid\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return fmt.Errorf("%s has %d issue(s)", path, len(result.Issues))
	},
}
