package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/7blacky7/s2d2s/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
