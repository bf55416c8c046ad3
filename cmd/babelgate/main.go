package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	servecmder "github.com/babelgateco/babelgate/cmd/babelgate/serve"
)

func main() {
	root := &cobra.Command{
		Use:   "babelgate",
		Short: "LLM-backed translation gateway",
		Long: `babelgate fronts an OpenAI-compatible LLM with a fixed-language
translation endpoint, an optional translation cache, and Prometheus metrics.`,
		SilenceUsage: true,
	}

	root.AddCommand(servecmder.NewServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
