package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twinkle/internal/scene"
)

func newLayoutCmd(app *AppContext) *cobra.Command {
	opts := &sceneOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Validate a scene and print it as YAML",
		Long: `Validate a scene file and print it with defaults filled in.
Without --scene the built-in tree is printed, which is a good starting point
for a custom scene.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := app.Logger.Component("cli")
			sc, err := loadScene(*opts, log)
			if err != nil {
				return err
			}

			lights, toggles := sc.Counts()
			log.WithFields(map[string]any{"scene": sc.Name, "rows": len(sc.Rows), "lights": lights, "toggles": toggles}).Info("scene is valid")

			return scene.Encode(cmd.OutOrStdout(), sc)
		},
	}

	cmd.Flags().StringVarP(&opts.ScenePath, "scene", "s", "", "Scene YAML file (defaults to the built-in tree)")
	return cmd
}
