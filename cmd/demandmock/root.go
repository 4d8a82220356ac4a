package main

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the demandmock CLI.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "demandmock",
		Short: "Mock telemetry surface for the TechFlow demand-sensing platform",
		Long: "demandmock emulates the data sources a demand forecasting system polls:\n" +
			"realtime sales, inventory levels, competitor prices, social sentiment,\n" +
			"economic indicators and supply-chain alerts, plus intake endpoints for\n" +
			"forecast submissions. All signals are synthetic but internally consistent.",
	}
	root.AddCommand(serveCmd(ctx))
	return root.ExecuteContext(ctx)
}
