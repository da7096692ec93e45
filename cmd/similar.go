package cmd

import (
	"fmt"
	"strings"

	"github.com/bizradar/bizradar/internal/similar"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find companies similar by industry",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)
		maxResults, _ := cmd.Flags().GetInt("max")

		r.logger.Info("finding similar companies", zap.String("company", company))

		// The industry hint only steers the offline fallback.
		info := r.enricher().IndustryInfo(company)
		peers := r.similarFinder().Companies(company, info.Industry, maxResults)
		printPeers(peers)
	},
}

func init() {
	rootCmd.AddCommand(similarCmd)
	addCompanyFlag(similarCmd)
	similarCmd.Flags().Int("max", similar.DefaultMaxResults, "maximum peers to return")
}

func printPeers(peers []*similar.Peer) {
	if len(peers) == 0 {
		fmt.Println("- (none)")
		return
	}
	for _, p := range peers {
		line := "- " + p.Name
		if url := strings.TrimRight(p.Website, "/"); url != "" {
			line += fmt.Sprintf(" (%s)", url)
		}
		fmt.Println(line)
	}
}
