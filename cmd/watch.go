package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/inference-gateway/tilecfg/internal/logger"
	services "github.com/inference-gateway/tilecfg/internal/services"
	icons "github.com/inference-gateway/tilecfg/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the config whenever it changes",
	Long: `Watch the config and every file it includes. Each change triggers a reload
and a short report; a broken edit keeps the last good config active.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.With(ctx, "command", "watch")

		svc := newConfigService()
		out := cmd.OutOrStdout()

		snap, err := svc.Reload()
		reportReload(out, snap, err)

		return watchConfig(ctx, svc, out)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchConfig(ctx context.Context, svc *services.ConfigService, out io.Writer) error {
	return svc.Watch(ctx, func(snap *services.Snapshot, err error) {
		reportReload(out, snap, err)
	})
}

func reportReload(out io.Writer, snap *services.Snapshot, err error) {
	switch {
	case err != nil:
		_, _ = fmt.Fprintf(out, "%s reload failed, keeping previous config: %v\n", icons.StyledCrossMark(), err)
	case snap.Err != nil:
		_, _ = fmt.Fprintf(out, "%s loaded %s with %d problems\n", icons.StyledWarningMark(), snap.Path, len(snap.Err.Diagnostics))
		for _, d := range snap.Err.Diagnostics {
			_, _ = fmt.Fprintf(out, "  %s\n", d.Error())
		}
	default:
		_, _ = fmt.Fprintf(out, "%s loaded %s (%d binds)\n", icons.StyledCheckMark(), snap.Path, len(snap.Config.Binds))
	}
}
