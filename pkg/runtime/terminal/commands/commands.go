package commands

import (
	"context"

	"github.com/de-tools/impact-atlas/pkg/services/report"
)

// ServiceFactory opens the report service. A non-zero seed overrides the configured simulator seed.
type ServiceFactory func(ctx context.Context, seed uint64) (report.Service, error)

// resolveReport returns the report with the given id, or the latest one when id is empty
func resolveReport(ctx context.Context, svc report.Service, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	latest, err := svc.Latest(ctx)
	if err != nil {
		return "", err
	}
	return latest.ID, nil
}
