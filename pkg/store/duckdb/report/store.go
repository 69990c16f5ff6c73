package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/store"
	"github.com/de-tools/impact-atlas/pkg/store/duckdb"
)

// Store keeps monthly reports in DuckDB. Writes are last-write-wins upserts by id.
type Store interface {
	Upsert(ctx context.Context, record store.ReportRecord) error
	Get(ctx context.Context, id string) (*store.ReportRecord, error)
	List(ctx context.Context) ([]store.ReportRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

const selectColumns = `
	id, month, year, client,
	ads_leads_generated, ads_conversions, ads_spend, ads_cpa, ads_roi,
	ai_interaction_volume, ai_qualified_leads, ai_user_satisfaction,
	portal_visits, portal_signups, portal_properties_viewed, portal_conversions,
	social_reach, social_engagement, social_organic_leads, social_cost_per_lead,
	social_new_followers, social_interactions,
	total_leads, overall_conversion_rate, average_ticket, nps_score,
	notes, created_at, updated_at`

func (s *reportStore) executor(ctx context.Context) execer {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *reportStore) Upsert(ctx context.Context, r store.ReportRecord) error {
	query := `INSERT OR REPLACE INTO monthly_reports (` + selectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.executor(ctx).ExecContext(ctx, query,
		r.ID, r.Month, r.Year, r.Client,
		r.AdsLeadsGenerated, r.AdsConversions, r.AdsSpend, r.AdsCPA, r.AdsROI,
		r.AIInteractionVolume, r.AIQualifiedLeads, r.AIUserSatisfaction,
		r.PortalVisits, r.PortalSignups, r.PortalPropertiesViewed, r.PortalConversions,
		r.SocialReach, r.SocialEngagement, r.SocialOrganicLeads, r.SocialCostPerLead,
		r.SocialNewFollowers, r.SocialInteractions,
		r.TotalLeads, r.OverallConversionRate, r.AverageTicket, r.NPSScore,
		r.Notes, r.CreatedAt.UTC(), r.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert report %s: %w", r.ID, err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, id string) (*store.ReportRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM monthly_reports WHERE id = ?`

	record, err := scanReport(s.executor(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return record, nil
}

func (s *reportStore) List(ctx context.Context) ([]store.ReportRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM monthly_reports ORDER BY year, month, created_at`

	rows, err := s.executor(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	records := make([]store.ReportRecord, 0)
	for rows.Next() {
		record, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return records, nil
}

func (s *reportStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.executor(ctx).ExecContext(ctx, `DELETE FROM monthly_reports WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete report %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete report %s: %w", id, err)
	}
	return affected > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*store.ReportRecord, error) {
	var r store.ReportRecord
	err := row.Scan(
		&r.ID, &r.Month, &r.Year, &r.Client,
		&r.AdsLeadsGenerated, &r.AdsConversions, &r.AdsSpend, &r.AdsCPA, &r.AdsROI,
		&r.AIInteractionVolume, &r.AIQualifiedLeads, &r.AIUserSatisfaction,
		&r.PortalVisits, &r.PortalSignups, &r.PortalPropertiesViewed, &r.PortalConversions,
		&r.SocialReach, &r.SocialEngagement, &r.SocialOrganicLeads, &r.SocialCostPerLead,
		&r.SocialNewFollowers, &r.SocialInteractions,
		&r.TotalLeads, &r.OverallConversionRate, &r.AverageTicket, &r.NPSScore,
		&r.Notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	return &r, nil
}
