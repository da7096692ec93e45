package cmd

import (
	"fmt"

	"github.com/bizradar/bizradar/internal/contacts"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "Find contact emails via Hunter.io or a shallow site scrape",
	Run: func(cmd *cobra.Command, _ []string) {
		r := setup(cmd.Context())
		company := companyArg(cmd)
		limit, _ := cmd.Flags().GetInt("limit")
		priority, _ := cmd.Flags().GetBool("priority")

		r.logger.Info("finding emails", zap.String("company", company), zap.Int("limit", limit))

		list := r.contactsFinder().Find(r.ctx, company, "", limit)
		if priority {
			list = contacts.Rank(list, limit, contacts.DefaultMinScore)
		}
		printContacts(list, priority)
	},
}

func init() {
	rootCmd.AddCommand(emailsCmd)
	addCompanyFlag(emailsCmd)
	emailsCmd.Flags().Int("limit", 10, "maximum contacts to return")
	emailsCmd.Flags().Bool("priority", false, "rank contacts by decision-maker title")
}

func printContacts(list []*contacts.Contact, scored bool) {
	if len(list) == 0 {
		fmt.Println("- (none)")
		return
	}
	for _, c := range list {
		line := "- " + c.Email
		if c.Name != "" {
			line += " | " + c.Name
		}
		if c.Title != "" {
			line += " (" + c.Title + ")"
		}
		if scored {
			line += fmt.Sprintf("  [score %d]", c.Score)
		}
		if c.Source != "" {
			line += fmt.Sprintf("  [%s]", c.Source)
		}
		fmt.Println(line)
	}
}
