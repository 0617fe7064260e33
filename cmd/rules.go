package cmd

import (
	"fmt"
	"io"

	config "github.com/inference-gateway/tilecfg/config"
	rules "github.com/inference-gateway/tilecfg/internal/rules"
	cobra "github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	yaml "gopkg.in/yaml.v3"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Evaluate window and layer rules",
	Long:  `Evaluate the configured rules against a described surface and print the merged result.`,
}

var rulesWindowCmd = &cobra.Command{
	Use:   "window",
	Short: "Resolve the window rules for a window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		var w rules.Window
		w.AppID = changedString(f, "app-id")
		w.Title = changedString(f, "title")
		w.IsActive, _ = f.GetBool("active")
		w.IsFocused, _ = f.GetBool("focused")
		w.IsActiveInColumn, _ = f.GetBool("active-in-column")
		w.IsFloating, _ = f.GetBool("floating")
		w.IsWindowCastTarget, _ = f.GetBool("cast-target")
		w.IsUrgent, _ = f.GetBool("urgent")
		w.AtStartup, _ = f.GetBool("at-startup")

		snap, err := loadSnapshot()
		if err != nil {
			return err
		}
		return printWindowRules(cmd.OutOrStdout(), snap.Config.WindowRules, w)
	},
}

// changedString is nil unless the flag was given, so an unset property stays
// distinct from an empty one.
func changedString(f *pflag.FlagSet, name string) *string {
	if !f.Changed(name) {
		return nil
	}
	v, _ := f.GetString(name)
	return &v
}

var rulesLayerCmd = &cobra.Command{
	Use:   "layer",
	Short: "Resolve the layer rules for a layer-shell surface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var l rules.Layer
		l.Namespace, _ = cmd.Flags().GetString("namespace")
		l.AtStartup, _ = cmd.Flags().GetBool("at-startup")

		snap, err := loadSnapshot()
		if err != nil {
			return err
		}
		return printLayerRules(cmd.OutOrStdout(), snap.Config.LayerRules, l)
	},
}

func init() {
	wf := rulesWindowCmd.Flags()
	wf.String("app-id", "", "window app id")
	wf.String("title", "", "window title")
	wf.Bool("active", false, "window is active")
	wf.Bool("focused", false, "window has keyboard focus")
	wf.Bool("active-in-column", false, "window is the active one in its column")
	wf.Bool("floating", false, "window is floating")
	wf.Bool("cast-target", false, "window is the target of a window cast")
	wf.Bool("urgent", false, "window requested attention")
	wf.Bool("at-startup", false, "window opened during startup")

	rulesLayerCmd.Flags().String("namespace", "", "layer-shell namespace")
	rulesLayerCmd.Flags().Bool("at-startup", false, "surface opened during startup")

	rulesCmd.AddCommand(rulesWindowCmd)
	rulesCmd.AddCommand(rulesLayerCmd)
	rootCmd.AddCommand(rulesCmd)
}

func printWindowRules(out io.Writer, rs []config.WindowRule, w rules.Window) error {
	holds := func(m config.Match) bool { return rules.WindowMatches(w, m) }
	var applied []int
	for i, r := range rs {
		if rules.RuleApplies(r.Matches, r.Excludes, holds) {
			applied = append(applied, i+1)
		}
	}
	_, _ = fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("WINDOW RULES (%d of %d apply)", len(applied), len(rs))))
	if len(applied) > 0 {
		_, _ = fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("applied: %v", applied)))
	}
	return encodeYAML(out, rules.ComputeWindowRules(rs, w))
}

func printLayerRules(out io.Writer, rs []config.LayerRule, l rules.Layer) error {
	holds := func(m config.LayerMatch) bool { return rules.LayerMatches(l, m) }
	var applied []int
	for i, r := range rs {
		if rules.RuleApplies(r.Matches, r.Excludes, holds) {
			applied = append(applied, i+1)
		}
	}
	_, _ = fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("LAYER RULES (%d of %d apply)", len(applied), len(rs))))
	if len(applied) > 0 {
		_, _ = fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("applied: %v", applied)))
	}
	return encodeYAML(out, rules.ComputeLayerRules(rs, l))
}

func encodeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	return enc.Close()
}
