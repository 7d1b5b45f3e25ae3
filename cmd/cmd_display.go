// cmd_display.go - Tabellen-Ausgabe fuer die CLI
// Hauptfunktionen: renderStages, renderChannelStats, EnvHandler
package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/stat"

	"github.com/7blacky7/s2d2s/envconfig"
	"github.com/7blacky7/s2d2s/layout"
)

// stage - Eine Zeile der Shape-Tabelle
type stage struct {
	name  string
	shape layout.Shape
	dtype string
	size  int
}

func newStage[T layout.Element](name string, a *layout.Array[T]) stage {
	dtype, size := dtypeOf[T]()
	return stage{name: name, shape: a.Shape(), dtype: dtype, size: a.Len() * size}
}

// dtypeOf - Name und Groesse in Bytes der in der CLI verwendeten Elementtypen
func dtypeOf[T layout.Element]() (string, int) {
	var zero T
	switch any(zero).(type) {
	case float16.Float16:
		return "float16", 2
	case float32:
		return "float32", 4
	case float64:
		return "float64", 8
	case uint8:
		return "uint8", 1
	default:
		return fmt.Sprintf("%T", zero), 0
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// renderStages - Zeigt Shape, Datentyp und Groesse jeder Stufe
func renderStages(w io.Writer, stages []stage) {
	var data [][]string
	for _, s := range stages {
		data = append(data, []string{s.name, s.shape.String(), s.dtype, strconv.Itoa(s.size)})
	}

	table := newTable(w, []string{"STAGE", "SHAPE", "DTYPE", "SIZE"})
	table.AppendBulk(data)
	table.Render()
}

// renderChannelStats - Mittelwert und Standardabweichung pro Kanal
func renderChannelStats[T layout.Element](w io.Writer, a *layout.Array[T]) {
	shape := a.Shape()
	h, wd, d := shape[0], shape[1], shape[2]

	var data [][]string
	values := make([]float64, 0, h*wd)
	for c := 0; c < d; c++ {
		values = values[:0]
		for i := 0; i < h; i++ {
			for j := 0; j < wd; j++ {
				values = append(values, float64(a.At(i, j, c)))
			}
		}
		mean, std := stat.MeanStdDev(values, nil)
		data = append(data, []string{strconv.Itoa(c), fmt.Sprintf("%.4f", mean), fmt.Sprintf("%.4f", std)})
	}

	table := newTable(w, []string{"CHANNEL", "MEAN", "STDDEV"})
	table.AppendBulk(data)
	table.Render()
}

// EnvHandler - Listet die Environment-Konfiguration auf
func EnvHandler(cmd *cobra.Command, args []string) error {
	vars := envconfig.AsMap()
	values := envconfig.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var data [][]string
	for _, k := range keys {
		data = append(data, []string{k, values[k], vars[k].Description})
	}

	table := newTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
	return nil
}
