// cmd_rearrange.go - Space-to-Depth und Roundtrip Commands
// Hauptfunktionen: SpaceToDepthHandler, RoundtripHandler
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/floats"

	"github.com/7blacky7/s2d2s/layout"
	"github.com/7blacky7/s2d2s/vision"
)

var errRoundtripMismatch = errors.New("roundtrip mismatch: depth-to-space did not restore the input")

// f16Tolerance - Absolute/relative Toleranz fuer den float16 Roundtrip
const f16Tolerance = 1e-3

// blockOptions - Gemeinsame Optionen aus addBlockFlags
type blockOptions struct {
	blockSize int
	crop      bool
	normalize string
	half      bool
}

func readBlockOptions(cmd *cobra.Command) (blockOptions, error) {
	var opts blockOptions
	var err error
	if opts.blockSize, err = cmd.Flags().GetInt("block-size"); err != nil {
		return opts, err
	}
	if opts.crop, err = cmd.Flags().GetBool("crop"); err != nil {
		return opts, err
	}
	if opts.normalize, err = cmd.Flags().GetString("normalize"); err != nil {
		return opts, err
	}
	if opts.half, err = cmd.Flags().GetBool("f16"); err != nil {
		return opts, err
	}
	return opts, nil
}

// loadImage - Laedt ein Bild und schneidet es bei --crop zu
func loadImage(path string, opts blockOptions) (*vision.ImageInput, error) {
	img, err := vision.LoadImage(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("image loaded", "path", path, "format", img.Format, "width", img.Width, "height", img.Height)

	if opts.crop {
		if img, err = vision.CropToMultiple(img, opts.blockSize); err != nil {
			return nil, err
		}
		slog.Debug("image cropped", "width", img.Width, "height", img.Height, "block_size", opts.blockSize)
	}
	return img, nil
}

// loadArray - Laedt ein Bild als normalisiertes (H, W, 3) float32 Array
func loadArray(path string, opts blockOptions) (*layout.Array[float32], error) {
	mean, std, err := vision.Normalization(opts.normalize)
	if err != nil {
		return nil, err
	}

	img, err := loadImage(path, opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("normalize", "preset", opts.normalize, "mean", mean, "std", std)
	return vision.NormalizeArray(img, mean, std)
}

// SpaceToDepthHandler - Wendet SpaceToDepth auf ein Bild an und zeigt die Shapes
func SpaceToDepthHandler(cmd *cobra.Command, args []string) error {
	opts, err := readBlockOptions(cmd)
	if err != nil {
		return err
	}
	stats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return err
	}
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if raw {
		img, err := loadImage(args[0], opts)
		if err != nil {
			return err
		}
		x, err := vision.ToUint8Array(img)
		if err != nil {
			return err
		}
		return spaceToDepth(out, x, opts, stats)
	}

	x, err := loadArray(args[0], opts)
	if err != nil {
		return err
	}
	return spaceToDepth(out, x, opts, stats)
}

// spaceToDepth - Fuehrt SpaceToDepth aus und gibt Stufen und Statistik aus
func spaceToDepth[T layout.Element](out io.Writer, x *layout.Array[T], opts blockOptions, stats bool) error {
	y, err := layout.SpaceToDepth(x, opts.blockSize)
	if err != nil {
		return err
	}
	slog.Debug("space to depth", "input", x.Shape(), "output", y.Shape(), "block_size", opts.blockSize)

	stages := []stage{
		newStage("input", x),
		newStage("space-to-depth", y),
	}
	if opts.half {
		stages = append(stages, newStage("float16", layout.Map(y, func(v T) float16.Float16 {
			return float16.Fromfloat32(float32(v))
		})))
	}

	renderStages(out, stages)
	if stats {
		renderChannelStats(out, y)
	}
	return nil
}

// RoundtripHandler - Prueft DepthToSpace(SpaceToDepth(x)) == x fuer ein Bild
func RoundtripHandler(cmd *cobra.Command, args []string) error {
	opts, err := readBlockOptions(cmd)
	if err != nil {
		return err
	}

	x, err := loadArray(args[0], opts)
	if err != nil {
		return err
	}

	y, err := layout.SpaceToDepth(x, opts.blockSize)
	if err != nil {
		return err
	}

	stages := []stage{
		newStage("input", x),
		newStage("space-to-depth", y),
	}

	var z *layout.Array[float32]
	if opts.half {
		y16 := layout.ToFloat16(y)
		z16, err := layout.DepthToSpace(y16, opts.blockSize)
		if err != nil {
			return err
		}
		z = layout.FromFloat16(z16)
		stages = append(stages, newStage("float16", y16), newStage("depth-to-space", z16))

		// float16 hat 11 Bit Mantisse, relativer Fehler <= 2^-11
		if !z.Shape().Equal(x.Shape()) || !floats.EqualApprox(float64s(x), float64s(z), f16Tolerance) {
			return errRoundtripMismatch
		}
	} else {
		if z, err = layout.DepthToSpace(y, opts.blockSize); err != nil {
			return err
		}
		stages = append(stages, newStage("depth-to-space", z))

		if !z.Equal(x) {
			return errRoundtripMismatch
		}
	}
	slog.Debug("roundtrip", "input", x.Shape(), "output", z.Shape(), "float16", opts.half)

	out := cmd.OutOrStdout()
	renderStages(out, stages)
	fmt.Fprintln(out, "roundtrip ok")
	return nil
}

// float64s - Kopiert die Array-Daten nach []float64 fuer gonum
func float64s(a *layout.Array[float32]) []float64 {
	data := a.Data()
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
