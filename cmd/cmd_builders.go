// cmd_builders.go - Command-Builder fuer NewCLI
// Hauptfunktionen: newSpaceToDepthCmd, newRoundtripCmd, newEnvCmd
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/7blacky7/s2d2s/envconfig"
	"github.com/7blacky7/s2d2s/vision"
)

// addBlockFlags - Gemeinsame Flags fuer alle Umordnungs-Commands
func addBlockFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("block-size", "b", int(envconfig.BlockSize()), "Block size (height and width must be divisible by it)")
	cmd.Flags().Bool("crop", envconfig.Crop(), "Center-crop the image to a multiple of the block size")
	cmd.Flags().String("normalize", envconfig.Normalize(), fmt.Sprintf("Per-channel normalization (%s)", strings.Join(vision.Normalizations(), ", ")))
	cmd.Flags().Bool("f16", false, "Round the space-to-depth result through float16")
}

func newSpaceToDepthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "space-to-depth IMAGE",
		Aliases: []string{"s2d"},
		Short:   "Move spatial blocks of an image into the channel axis",
		Args:    cobra.ExactArgs(1),
		RunE:    SpaceToDepthHandler,
	}

	addBlockFlags(cmd)
	cmd.Flags().Bool("stats", false, "Print per-channel mean and standard deviation")
	cmd.Flags().Bool("raw", false, "Rearrange raw uint8 pixel values (ignores --normalize)")
	return cmd
}

func newRoundtripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip IMAGE",
		Short: "Apply space-to-depth and depth-to-space and verify the image is unchanged",
		Args:  cobra.ExactArgs(1),
		RunE:  RoundtripHandler,
	}

	addBlockFlags(cmd)
	return cmd
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}
}
