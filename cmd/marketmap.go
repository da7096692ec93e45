package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/bizradar/bizradar/internal/market"
	"github.com/bizradar/bizradar/internal/similar"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var marketmapCmd = &cobra.Command{
	Use:   "marketmap",
	Short: "Build a market map around the company (HTML + GEXF)",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)
		depth, _ := cmd.Flags().GetInt("depth")
		maxPerNode, _ := cmd.Flags().GetInt("max-per-node")

		r.logger.Info("building market map",
			zap.String("company", company),
			zap.Int("depth", depth),
		)

		runMarketMap(r, company, depth, maxPerNode)
	},
}

func init() {
	rootCmd.AddCommand(marketmapCmd)
	addCompanyFlag(marketmapCmd)
	marketmapCmd.Flags().Int("depth", market.DefaultMaxDepth, "peer expansion depth")
	marketmapCmd.Flags().Int("max-per-node", market.DefaultMaxPerCompany, "maximum peers added per company")
}

func runMarketMap(r *radar, company string, depth, maxPerNode int) {
	finder := r.similarFinder()
	graph := market.Build(company, func(name string) []*similar.Peer {
		return finder.Companies(name, "", maxPerNode)
	}, depth, maxPerNode)

	r.logger.Info("market graph built",
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()),
	)

	base := slug(company)
	htmlPath := filepath.Join(r.config.ExportDir, base+"_market_map.html")
	gexfPath := filepath.Join(r.config.ExportDir, base+"_market_map.gexf")

	if err := market.RenderHTML(graph, htmlPath, "Market Map: "+company); err != nil {
		r.logger.Fatal("writing market map html", zap.Error(err))
	}
	if err := market.WriteGEXF(graph, gexfPath); err != nil {
		r.logger.Fatal("writing market map gexf", zap.Error(err))
	}

	fmt.Println("market map saved:")
	fmt.Printf("- HTML: %s\n", htmlPath)
	fmt.Printf("- GEXF: %s\n", gexfPath)
}
