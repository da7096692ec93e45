package cmd

import (
	"fmt"

	"github.com/bizradar/bizradar/internal/news"
	"github.com/bizradar/bizradar/internal/swot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var swotCmd = &cobra.Command{
	Use:   "swot",
	Short: "Build a SWOT snapshot from recent news",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)
		days, _ := cmd.Flags().GetInt("days")
		maxResults, _ := cmd.Flags().GetInt("max")
		top, _ := cmd.Flags().GetInt("top")

		r.logger.Info("building swot", zap.String("company", company))

		items := r.newsScanner().Scan(company, days, maxResults)
		buckets := swot.Build(items, top)
		printSWOT(buckets)
	},
}

func init() {
	rootCmd.AddCommand(swotCmd)
	addCompanyFlag(swotCmd)
	swotCmd.Flags().Int("days", news.DefaultDays, "news look-back window in days")
	swotCmd.Flags().Int("max", 12, "maximum news items to scan")
	swotCmd.Flags().Int("top", swot.DefaultMaxPerBucket, "maximum items per SWOT bucket")
}

func printSWOT(buckets *swot.Buckets) {
	sections := []struct {
		name  string
		items []string
	}{
		{swot.Strengths, buckets.Strengths},
		{swot.Weaknesses, buckets.Weaknesses},
		{swot.Opportunities, buckets.Opportunities},
		{swot.Threats, buckets.Threats},
	}
	for _, sec := range sections {
		fmt.Println(sec.name)
		if len(sec.items) == 0 {
			fmt.Println("  * (none)")
			continue
		}
		for _, item := range sec.items {
			fmt.Printf("  * %s\n", item)
		}
	}
}
