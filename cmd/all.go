package cmd

import (
	"fmt"

	"github.com/bizradar/bizradar/internal/contacts"
	"github.com/bizradar/bizradar/internal/market"
	"github.com/bizradar/bizradar/internal/news"
	"github.com/bizradar/bizradar/internal/swot"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	promptYes = "Yes"
	promptNo  = "No"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the full prospecting pipeline for a company",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)

		limit, _ := cmd.Flags().GetInt("limit")
		priority, _ := cmd.Flags().GetBool("priority")
		days, _ := cmd.Flags().GetInt("days")
		maxResults, _ := cmd.Flags().GetInt("max")
		top, _ := cmd.Flags().GetInt("top")
		depth, _ := cmd.Flags().GetInt("depth")
		maxPerNode, _ := cmd.Flags().GetInt("max-per-node")

		if cmd.Flag("auto-approve").Value.String() == "false" {
			prompt := promptui.Select{
				Label: fmt.Sprintf("Run the full pipeline for %q? This makes many network requests", company),
				Items: []string{promptYes, promptNo},
			}
			_, action, err := prompt.Run()
			if err != nil {
				r.logger.Fatal("exiting", zap.Error(err))
			}
			if action != promptYes {
				r.logger.Info("exiting", zap.String("reason", "got no from prompt"))
				return
			}
		}

		r.logger.Info("starting the full pipeline", zap.String("company", company))

		fmt.Println("== industry ==")
		info := r.enricher().IndustryInfo(company)
		printIndustry(info)

		fmt.Println("== similar ==")
		peers := r.similarFinder().Companies(company, info.Industry, maxPerNode)
		printPeers(peers)

		fmt.Println("== emails ==")
		list := r.contactsFinder().Find(r.ctx, company, "", limit)
		if priority {
			list = contacts.Rank(list, limit, contacts.DefaultMinScore)
		}
		printContacts(list, priority)

		fmt.Println("== news ==")
		items := r.newsScanner().Scan(company, days, maxResults)
		printNews(items)

		fmt.Println("== swot ==")
		printSWOT(swot.Build(items, top))

		fmt.Println("== export ==")
		runExport(r, company, limit, priority)

		fmt.Println("== market map ==")
		runMarketMap(r, company, depth, maxPerNode)
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
	addCompanyFlag(allCmd)
	allCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before running")
	allCmd.Flags().Int("limit", 10, "maximum contacts to return")
	allCmd.Flags().Bool("priority", false, "rank contacts by decision-maker title")
	allCmd.Flags().Int("days", news.DefaultDays, "news look-back window in days")
	allCmd.Flags().Int("max", news.DefaultMaxResults, "maximum news items")
	allCmd.Flags().Int("top", swot.DefaultMaxPerBucket, "maximum items per SWOT bucket")
	allCmd.Flags().Int("depth", market.DefaultMaxDepth, "market map expansion depth")
	allCmd.Flags().Int("max-per-node", market.DefaultMaxPerCompany, "maximum peers added per company")
}
