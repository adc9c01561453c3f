package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"glslpack/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "glslpack",
	Short: "GLSL shader pack builder",
	Long:  `glslpack lowers type-checked GLSL syntax dumps into compact interned packs`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyColorMode forces color output on or off; "auto" keeps the
// library's terminal detection.
func applyColorMode(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}
