package cmd

import (
	"github.com/spf13/cobra"

	"termselect/internal/config"
	"termselect/models"
)

var styleBase string

var styleCmd = &cobra.Command{
	Use:   "style FILE",
	Short: "Write a style file to edit and pass to pick --style",
	Long: `Style writes the default glyphs and colors as YAML to FILE. With --from,
the written style is that file on top of the defaults, so a partial style
file can be expanded into a complete one.`,
	Args: cobra.ExactArgs(1),
	RunE: runStyle,
}

func init() {
	styleCmd.Flags().StringVar(&styleBase, "from", "", "YAML style file to start from")
	rootCmd.AddCommand(styleCmd)
}

func runStyle(cmd *cobra.Command, args []string) error {
	st := models.DefaultStyle()
	if styleBase != "" {
		var err error
		if st, err = config.LoadStyle(styleBase, st); err != nil {
			return err
		}
	}
	logger.Debug("style: writing", "path", args[0])
	return config.SaveStyle(args[0], st)
}
