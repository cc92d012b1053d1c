package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/usecases"
)

// ComparisonReport is a runnable that runs both recommendation approaches for one
// customer, prints them side by side, and returns.
type ComparisonReport struct {
	Logger            *log.Logger                `resolve:""`
	CompareApproaches usecases.CompareApproaches `resolve:""`
	CustomerID        string                     `config:"COMPARE_CUSTOMER_ID" default:"-"`
	Out               io.Writer
}

// Run executes the comparison and writes the report. The report is written even
// when the comparison fails, so the error fallback stays visible.
func (c ComparisonReport) Run(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	customerID := c.CustomerID
	if customerID == "-" {
		customerID = ""
	}

	c.Logger.Println("ComparisonReport: starting recommendation workflow")
	comparison, err := c.CompareApproaches.Query(ctx, customerID)
	if err != nil {
		c.Logger.Printf("ComparisonReport: comparison failed: %v", err)
		if comparison.CustomerID == "" {
			return err
		}
	}

	writeReport(out, comparison)
	return err
}

func writeReport(w io.Writer, comparison domain.ApproachComparison) {
	fmt.Fprintf(w, "CustomerID: %s\n", comparison.CustomerID)
	if comparison.Selection.AdURL == domain.DefaultVideoURL {
		fmt.Fprintln(w, "Error: No valid CustomerID or URL found")
	}
	writeApproach(w, "Selection Approach", comparison.Interests, comparison.Selection)
	writeApproach(w, "Aggregation Approach", comparison.Interests, comparison.Aggregation)
}

func writeApproach(w io.Writer, label string, interests domain.UserInterests, result domain.PipelineResult) {
	fmt.Fprintf(w, "\n=== %s ===\n", label)
	if len(result.Shortlist) > 0 {
		fmt.Fprintf(w, "Top %d Recommendations (%s):\n", len(result.Shortlist), label)
		for _, rec := range result.Shortlist {
			fmt.Fprintf(w, "  - URL: %s, Product: %s, Score: %v\n", rec.URL, rec.Product, rec.Score)
		}
	}

	if result.PlayAd && result.AdURL != "" {
		fmt.Fprintf(w, "\nOpening advertisement (%s): %s\n", label, result.AdURL)
	} else {
		fmt.Fprintf(w, "\nNo advertisement played (%s)\n", label)
	}
	fmt.Fprintf(w, "User Interests: %s\n", formatInterests(interests))
	fmt.Fprintf(w, "Matched Product: %s\n", result.Product)
	fmt.Fprintf(w, "Similarity Score: %v\n", result.Score)
	if result.Rejected != nil {
		fmt.Fprintf(w, "Rejected Match: %s (%s), Score: %v\n", result.Rejected.Product, result.Rejected.URL, result.Rejected.Score)
	}
}

func formatInterests(interests domain.UserInterests) string {
	parts := make([]string, 0, 2)
	if interests.InterestName != "" {
		parts = append(parts, "InterestName="+interests.InterestName)
	}
	if interests.InterestDescription != "" {
		parts = append(parts, "InterestDescription="+interests.InterestDescription)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}
