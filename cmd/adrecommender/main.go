package main

import (
	"os"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/app"
	"github.com/spf13/cobra"
)

var (
	backendFlag  string
	customerFlag string

	rootCmd = &cobra.Command{
		Use:          "adrecommender",
		Short:        "Recommends a video advertisement matching a customer's interest embeddings.",
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the recommendation REST API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := app.ParseBackend(backendFlag)
			if err != nil {
				return err
			}
			return app.NewAdRecommenderApp(backend).
				Introspect(&app.ReportLoggerIntrospector{}).
				Run()
		},
	}

	compareCmd = &cobra.Command{
		Use:   "compare",
		Short: "Compare the selection and aggregation approaches for one customer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := app.ParseBackend(backendFlag)
			if err != nil {
				return err
			}
			return app.NewComparisonApp(backend, cmd.OutOrStdout(),
				&app.InitEnvVars{EnvVars: map[string]string{
					"COMPARE_CUSTOMER_ID": customerFlag,
				}},
			).Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "postgres", "vector store backend: postgres, astra or memory")
	compareCmd.Flags().StringVar(&customerFlag, "customer", "", "customer id; a random customer is picked when empty")

	rootCmd.AddCommand(serveCmd, compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
