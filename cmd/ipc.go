package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	config "github.com/inference-gateway/tilecfg/config"
	icons "github.com/inference-gateway/tilecfg/internal/ui/styles/icons"
	ipc "github.com/inference-gateway/tilecfg/ipc"
	cobra "github.com/spf13/cobra"
)

var ipcCmd = &cobra.Command{
	Use:   "ipc",
	Short: "Work with the IPC action wire format",
}

var ipcTranslateCmd = &cobra.Command{
	Use:   "translate JSON",
	Short: "Translate a wire action into a compositor action",
	Long: `Decode an externally tagged wire action such as {"FocusWorkspace":{"reference":{"Index":2}}}
and print the compositor action it maps to along with the request envelope.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return translateAction(cmd.OutOrStdout(), []byte(args[0]))
	},
}

var ipcVariantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List every wire action variant",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, v := range ipc.Variants() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ipc.Name(v))
		}
	},
}

func init() {
	ipcCmd.AddCommand(ipcTranslateCmd)
	ipcCmd.AddCommand(ipcVariantsCmd)
	rootCmd.AddCommand(ipcCmd)
}

func marshalWire(a ipc.Action) ([]byte, error) {
	return ipc.MarshalAction(a)
}

func translateAction(out io.Writer, data []byte) error {
	wa, err := ipc.UnmarshalAction(data)
	if err != nil {
		return err
	}
	action, err := config.ActionFromIPC(wa)
	if err != nil {
		return err
	}

	req, err := json.Marshal(ipc.Request{Action: wa})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", icons.StyledCheckMark(), actionStyle.Render(config.ActionName(action)))
	_, _ = fmt.Fprintf(out, "  %s\n", dimStyle.Render(string(req)))
	return nil
}
