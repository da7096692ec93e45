package cmd

import (
	"fmt"

	"github.com/bizradar/bizradar/internal/news"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Scan recent funding, M&A and expansion news",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)
		days, _ := cmd.Flags().GetInt("days")
		maxResults, _ := cmd.Flags().GetInt("max")

		r.logger.Info("scanning news", zap.String("company", company), zap.Int("days", days))

		items := r.newsScanner().Scan(company, days, maxResults)
		printNews(items)
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
	addCompanyFlag(newsCmd)
	newsCmd.Flags().Int("days", news.DefaultDays, "look-back window in days")
	newsCmd.Flags().Int("max", news.DefaultMaxResults, "maximum news items")
}

func printNews(items []*news.Item) {
	if len(items) == 0 {
		fmt.Println("- (none)")
		return
	}
	for _, n := range items {
		line := fmt.Sprintf("- [%s] %s", n.Kind, n.Summary)
		if n.Date != "" {
			line += fmt.Sprintf(" (%s)", n.Date)
		}
		line += "  " + n.URL
		fmt.Println(line)
	}
}
