package main

import (
	"fmt"
	"os"

	"github.com/assimp-bridge/assimp-go/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "assimp-import",
		Short: "Import 3D assets with Assimp",
		Long:  "Import a single 3D asset file through the Assimp library and print a summary of the resulting scene",
		Example: `
# Import a model with the realtime quality preset
assimp-import import model.fbx --preset TargetRealtimeQuality

# Show progress and emit JSON
assimp-import import model.obj --progress --output json
`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to a config file (default: discovered .assimp-import.yaml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-file", "", "Write logs to a rotating file instead of stderr")
	root.PersistentFlags().String("cwd", "", "Working directory used for config discovery")

	root.AddCommand(
		newImportCmd(),
		newFormatsCmd(),
		newVersionCmd(),
		newConfigCmd(),
	)
	return root
}

// loadConfig resolves the configuration for cmd and applies the persistent
// flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	explicit, _ := cmd.Flags().GetString("config")
	cwd, err := resolveCwd(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg, path, err := config.Init(explicit, cwd)
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File, _ = cmd.Flags().GetString("log-file")
	}
	return cfg, path, nil
}

func resolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		return cwd, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}
