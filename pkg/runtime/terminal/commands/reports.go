package commands

import (
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/impact-atlas/pkg/store/inifile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func NewReportsCmd(services ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Manage monthly reports",
	}

	cmd.AddCommand(newListReportsCmd(services))
	cmd.AddCommand(newImportReportsCmd(services))
	cmd.AddCommand(newDeleteReportCmd(services))

	return cmd
}

func newListReportsCmd(services ServiceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reports in chronological order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := services(cmd.Context(), 0)
			if err != nil {
				return err
			}

			reports, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			return export.WriteReports(cmd.OutOrStdout(), reports)
		},
	}
}

func newImportReportsCmd(services ServiceFactory) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import monthly reports from INI files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)

			reports := make([]domain.MonthlyReport, 0, len(files))
			for _, file := range files {
				r, err := inifile.LoadReport(file)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				reports = append(reports, *r)
			}

			svc, err := services(ctx, 0)
			if err != nil {
				return err
			}

			saved, err := svc.SaveAll(ctx, reports)
			if err != nil {
				return err
			}

			for _, r := range saved {
				logger.Info().Str("report", r.ID).Str("period", r.Period()).Msg("report imported")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d report(s).\n", len(saved))
			return err
		},
	}

	cmd.Flags().StringArrayVar(&files, "file", nil, "INI report file to import (repeatable)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newDeleteReportCmd(services ServiceFactory) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := services(cmd.Context(), 0)
			if err != nil {
				return err
			}

			if err := svc.Delete(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s.\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Report id")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
