package cmd

import (
	"fmt"

	"github.com/bizradar/bizradar/internal/enrich"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var industryCmd = &cobra.Command{
	Use:   "industry",
	Short: "Look up a company's industry and sector",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)

		r.logger.Info("looking up industry", zap.String("company", company))

		info := r.enricher().IndustryInfo(company)
		printIndustry(info)
	},
}

func init() {
	rootCmd.AddCommand(industryCmd)
	addCompanyFlag(industryCmd)
}

func printIndustry(info *enrich.Info) {
	fmt.Printf("industry: %s\n", orUnknown(info.Industry))
	fmt.Printf("sector:   %s\n", orUnknown(normalizeSector(info.Sector)))
}

// normalizeSector folds Yahoo's legacy sector label into the GICS one
// the rest of the output uses.
func normalizeSector(sector string) string {
	if sector == "Consumer Cyclical" {
		return "Consumer Discretionary"
	}
	return sector
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}
