package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	lipgloss "github.com/charmbracelet/lipgloss"
	config "github.com/inference-gateway/tilecfg/config"
	keybinding "github.com/inference-gateway/tilecfg/internal/keybinding"
	colors "github.com/inference-gateway/tilecfg/internal/ui/styles/colors"
	icons "github.com/inference-gateway/tilecfg/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
)

var bindsCmd = &cobra.Command{
	Use:   "binds",
	Short: "Inspect key binds",
	Long:  `List the configured key binds and check which bind a key combination triggers.`,
}

var bindsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List binds as the hotkey overlay shows them",
	Long: `List every reachable bind with its hotkey overlay title. Binds hidden from the
overlay are only shown with --all.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}
		if all {
			listAllBinds(cmd.OutOrStdout(), snap.Registry)
			return nil
		}
		listOverlay(cmd.OutOrStdout(), snap.Registry)
		return nil
	},
}

var bindsResolveCmd = &cobra.Command{
	Use:   "resolve COMBO",
	Short: "Show which bind a key combination triggers",
	Long: `Resolve a physical key combination such as "Super+Shift+Left" against the
binds, applying the lock, inhibit and repeat gates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := config.ParseKey(args[0])
		if err != nil {
			return fmt.Errorf("invalid key combination: %w", err)
		}

		locked, _ := cmd.Flags().GetBool("locked")
		inhibited, _ := cmd.Flags().GetBool("inhibited")
		repeat, _ := cmd.Flags().GetBool("repeat")

		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		ev := keybinding.Event{Trigger: key.Trigger, Modifiers: key.Modifiers, Repeat: repeat}
		st := keybinding.State{Locked: locked, Inhibited: inhibited}
		resolveBind(cmd.OutOrStdout(), snap.Registry, ev, st)
		return nil
	},
}

func init() {
	bindsListCmd.Flags().Bool("all", false, "include binds hidden from the hotkey overlay")
	bindsResolveCmd.Flags().Bool("locked", false, "resolve as if the session is locked")
	bindsResolveCmd.Flags().Bool("inhibited", false, "resolve as if a client inhibits shortcuts")
	bindsResolveCmd.Flags().Bool("repeat", false, "resolve as a key repeat")

	bindsCmd.AddCommand(bindsListCmd)
	bindsCmd.AddCommand(bindsResolveCmd)
	rootCmd.AddCommand(bindsCmd)
}

var (
	headerStyle = colors.HeaderColor.Style().Bold(true)
	keyStyle    = colors.KeyColor.Style()
	actionStyle = colors.ActionColor.Style()
	dimStyle    = colors.DimColor.Style()
)

func keyColumnWidth(keys []string) int {
	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k))
	}
	return width + 2
}

func listOverlay(out io.Writer, r *keybinding.Registry) {
	entries := r.HotkeyOverlay()

	_, _ = fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("KEYBINDINGS (%d shown, Mod is %s)", len(entries), r.ModKey())))
	_, _ = fmt.Fprintln(out, dimStyle.Render(strings.Repeat("═", 60)))

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	col := keyStyle.Width(keyColumnWidth(keys))

	for _, e := range entries {
		_, _ = fmt.Fprintf(out, "%s%s %s\n", col.Render(e.Key), e.Title, dimStyle.Render("("+e.Action+")"))
	}
}

func listAllBinds(out io.Writer, r *keybinding.Registry) {
	binds := r.Binds()

	_, _ = fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("KEYBINDINGS (%d total, Mod is %s)", len(binds), r.ModKey())))
	_, _ = fmt.Fprintln(out, dimStyle.Render(strings.Repeat("═", 60)))

	keys := make([]string, len(binds))
	for i, b := range binds {
		keys[i] = r.FormatKey(b.Key)
	}
	col := keyStyle.Width(keyColumnWidth(keys))

	for i, b := range binds {
		_, _ = fmt.Fprintf(out, "%s%s", col.Render(keys[i]), actionStyle.Render(config.ActionName(b.Action)))
		if flags := bindFlags(b); flags != "" {
			_, _ = fmt.Fprintf(out, " %s", dimStyle.Render(flags))
		}
		_, _ = fmt.Fprintln(out)
	}
}

func bindFlags(b config.Bind) string {
	var flags []string
	if !b.Repeat {
		flags = append(flags, "no-repeat")
	}
	if b.Cooldown != nil {
		flags = append(flags, "cooldown="+b.Cooldown.String())
	}
	if b.AllowWhenLocked {
		flags = append(flags, "when-locked")
	}
	if !b.AllowInhibiting {
		flags = append(flags, "not-inhibitable")
	}
	if b.HotkeyOverlayTitle.Kind == config.TitleHidden {
		flags = append(flags, "hidden")
	}
	if len(flags) == 0 {
		return ""
	}
	return "[" + strings.Join(flags, ", ") + "]"
}

func resolveBind(out io.Writer, r *keybinding.Registry, ev keybinding.Event, st keybinding.State) {
	key := r.FormatKey(config.Key{Trigger: ev.Trigger, Modifiers: ev.Modifiers})

	bind, err := r.Resolve(ev, st)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, keybinding.ErrNoBinding) {
			reason = "no bind"
		}
		_, _ = fmt.Fprintf(out, "%s %s passed through: %s\n", icons.StyledCrossMark(), keyStyle.Render(key), reason)
		return
	}

	_, _ = fmt.Fprintf(out, "%s %s triggers %s\n", icons.StyledCheckMark(), keyStyle.Render(key), actionStyle.Render(config.ActionName(bind.Action)))
	if wa, ok := config.ActionToIPC(bind.Action); ok {
		if data, err := marshalWire(wa); err == nil {
			_, _ = fmt.Fprintf(out, "  %s\n", dimStyle.Render(string(data)))
		}
	}
}
