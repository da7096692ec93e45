package cmd

import (
	"fmt"
	"strings"

	"github.com/bizradar/bizradar/internal/keyword"
	"github.com/bizradar/bizradar/internal/news"
	"github.com/bizradar/bizradar/internal/webtext"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var keywordCmd = &cobra.Command{
	Use:   "keyword",
	Short: "Flag a company by keyword evidence on its website and news",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)
		keywords, _ := cmd.Flags().GetStringSlice("keywords")
		days, _ := cmd.Flags().GetInt("days")
		maxResults, _ := cmd.Flags().GetInt("max")

		include := append(append([]string{}, keywords...), r.config.Keywords.Include...)
		exclude := r.config.Keywords.Exclude

		r.logger.Info("keyword scan",
			zap.String("company", company),
			zap.Strings("keywords", include),
		)

		// News headlines first: cheap and often the strongest signal.
		items := r.newsScanner().Scan(company, days, maxResults)
		scorer := r.scorer()
		newsHits := scorer.Match(joinTitles(items), keyword.Expand(include), keyword.Expand(exclude))
		if len(newsHits.Matched) > 0 {
			fmt.Printf("keyword match in news: %s\n", strings.Join(newsHits.Matched, ", "))
		}

		web := r.web()
		domain := web.ResolveCompanyDomain(company, "")
		result := flagCompany(scorer, web, domain, include, exclude, r.config.Scoring.Threshold)
		printFlag(result)
	},
}

func init() {
	rootCmd.AddCommand(keywordCmd)
	addCompanyFlag(keywordCmd)
	keywordCmd.Flags().StringSliceP("keywords", "k", nil, "keywords to match, e.g. ai,saas,procurement")
	keywordCmd.MarkFlagRequired("keywords")
	keywordCmd.Flags().Int("days", news.DefaultDays, "news look-back window in days")
	keywordCmd.Flags().Int("max", news.DefaultMaxResults, "maximum news items to scan")
}

// flagCompany fetches the company pages and runs the relevance scorer
// over them. An empty domain yields the negative flag result.
func flagCompany(scorer *keyword.Scorer, web *webtext.Client, domain string, include, exclude []string, threshold int) *keyword.FlagResult {
	var pages []keyword.Page
	if domain != "" {
		pages = web.FetchPages(domain, nil, webtext.DefaultMaxFollow)
	}
	return scorer.Flag(domain, pages, include, exclude, threshold)
}

func joinTitles(items []*news.Item) string {
	titles := make([]string, 0, len(items))
	for _, n := range items {
		titles = append(titles, n.Title)
	}
	return strings.Join(titles, " ")
}

func printFlag(result *keyword.FlagResult) {
	fmt.Printf("flag: %t  score: %d\n", result.Flag, result.Score)
	if len(result.Matched) > 0 {
		fmt.Printf("matched: %s\n", strings.Join(result.Matched, ", "))
	}
	if len(result.Excluded) > 0 {
		fmt.Printf("excluded: %s\n", strings.Join(result.Excluded, ", "))
	}
	for _, ev := range result.Evidence {
		fmt.Printf("- %s: %s\n", ev.URL, ev.Snippet)
	}
}
