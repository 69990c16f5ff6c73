package commands

import (
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	metric   string
	reportID string
	seed     uint64
	services ServiceFactory
	reporter *export.Reporter
}

func NewAnalyzeCmd(services ServiceFactory, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{services: services, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Explain the month-over-month change of a metric",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.metric, "metric", string(domain.MetricLeads),
		"Metric to analyze (leads, cpa, conversionRate, roi)")
	cmd.Flags().StringVar(&ac.reportID, "report", "", "Report id to analyze (defaults to the latest report)")
	cmd.Flags().Uint64Var(&ac.seed, "seed", 0, "Seed for the weekday and hour simulation")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	metric, err := domain.ParseMetric(ac.metric)
	if err != nil {
		return err
	}

	svc, err := ac.services(ctx, ac.seed)
	if err != nil {
		return err
	}

	id, err := resolveReport(ctx, svc, ac.reportID)
	if err != nil {
		return err
	}

	analysis, err := svc.Analyze(ctx, id, metric)
	if err != nil {
		return err
	}
	if analysis == nil {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "No previous report to compare report %s against.\n", id)
		return err
	}

	return ac.reporter.Handle(analysis)
}
