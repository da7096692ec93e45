package cmd

import (
	"fmt"

	"github.com/bizradar/bizradar/internal/contacts"
	"github.com/bizradar/bizradar/internal/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export company, industry and contacts as CSV and JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)
		limit, _ := cmd.Flags().GetInt("limit")
		priority, _ := cmd.Flags().GetBool("priority")

		r.logger.Info("exporting", zap.String("company", company))

		runExport(r, company, limit, priority)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addCompanyFlag(exportCmd)
	exportCmd.Flags().Int("limit", 10, "maximum contacts to include")
	exportCmd.Flags().Bool("priority", false, "rank contacts by decision-maker title")
}

func runExport(r *radar, company string, limit int, priority bool) {
	info := r.enricher().IndustryInfo(company)
	domain := r.web().ResolveCompanyDomain(company, "")

	list := r.contactsFinder().Find(r.ctx, company, "", limit)
	if priority {
		list = contacts.Rank(list, limit, contacts.DefaultMinScore)
	}

	rows := export.BuildRows(company, info.Industry, "", domain, list)

	writer := r.exporter()
	base := slug(company)

	csvPath, err := writer.WriteCSV(rows, base)
	if err != nil {
		r.logger.Fatal("writing csv export", zap.Error(err))
	}
	jsonPath, err := writer.WriteJSON(rows, base)
	if err != nil {
		r.logger.Fatal("writing json export", zap.Error(err))
	}

	fmt.Println("saved files:")
	fmt.Printf("- CSV : %s\n", csvPath)
	fmt.Printf("- JSON: %s\n", jsonPath)
}
