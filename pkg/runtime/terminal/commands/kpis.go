package commands

import (
	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewKPIsCmd(services ServiceFactory) *cobra.Command {
	var reportID string

	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Compare a report's KPIs with the previous month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, err := services(ctx, 0)
			if err != nil {
				return err
			}

			id, err := resolveReport(ctx, svc, reportID)
			if err != nil {
				return err
			}

			summary, err := svc.Insights(ctx, id)
			if err != nil {
				return err
			}
			return export.WriteInsights(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVar(&reportID, "report", "", "Report id (defaults to the latest report)")
	return cmd
}
