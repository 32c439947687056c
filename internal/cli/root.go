// Package cli provides the command-line interface for huepack.
package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/huepack/huepack/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global verbosity flag, shared by all subcommands.
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huepack",
		Short: "A packed-colour encoding and conversion toolkit",
		Long: `Huepack converts between packed 32-bit RGBA colours, float-bit-pattern
encodings used by rendering pipelines, perceptual Oklab coordinates and
descriptive colour text, and generates the fixed engine palette.

Colours parse from 0xRRGGBBAA packed form, #rrggbb hex, or free-text
descriptions such as "light blue" or "muted warm red".`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// NewRootCmd returns the root command with all subcommands attached.
// Tests use it to drive the CLI with their own args and output buffers.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(convertCmd)
}

// newLogger builds the command logger. Verbose runs log debug detail to
// stderr; otherwise logging is off entirely.
func newLogger() hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huepack",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huepack",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
