package cmd

import (
	"fmt"
	"os"
	"strings"

	config "github.com/inference-gateway/tilecfg/config"
	logger "github.com/inference-gateway/tilecfg/internal/logger"
	services "github.com/inference-gateway/tilecfg/internal/services"
	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"
)

// V holds the resolved CLI settings: flags first, then TILECFG_* environment
// variables, then defaults
var V = viper.New()

var rootCmd = &cobra.Command{
	Use:   "tilecfg",
	Short: "Inspect and validate tiling compositor configs",
	Long: `tilecfg loads a compositor config document with its includes, reports
every problem it finds, and resolves key binds the way the compositor would.`,
	SilenceUsage: true,
}

func Execute() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath()))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-format", "console", "log format, console or json")
	rootCmd.PersistentFlags().Bool("nested", false, "resolve Mod as when running nested in another session")

	setupViper(V, rootCmd)
	cobra.OnInitialize(initConfig)
}

func setupViper(v *viper.Viper, root *cobra.Command) {
	v.SetEnvPrefix("TILECFG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-format", "console")

	if err := v.BindPFlags(root.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to bind flags: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	logger.Init(V.GetBool("verbose"), V.GetString("log-format"))
}

func configPath() string {
	if path := V.GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

func newConfigService(opts ...services.ConfigServiceOption) *services.ConfigService {
	opts = append([]services.ConfigServiceOption{services.WithNested(V.GetBool("nested"))}, opts...)
	return services.NewConfigService(configPath(), opts...)
}

// loadSnapshot loads the config once. Diagnostics are logged and stay on
// the snapshot; only fatal errors are returned.
func loadSnapshot() (*services.Snapshot, error) {
	snap, err := newConfigService().Reload()
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath(), err)
	}
	if snap.Err != nil {
		for _, d := range snap.Err.Diagnostics {
			logger.Warn("Config diagnostic", "file", d.File, "line", d.Span.Line, "col", d.Span.Col, "message", d.Message)
		}
	}
	return snap, nil
}
