package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const MonthlyReportsSchema = `
	CREATE TABLE IF NOT EXISTS monthly_reports (
		id VARCHAR PRIMARY KEY,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		client VARCHAR NOT NULL,
		ads_leads_generated DOUBLE NOT NULL DEFAULT 0,
		ads_conversions DOUBLE NOT NULL DEFAULT 0,
		ads_spend DOUBLE NOT NULL DEFAULT 0,
		ads_cpa DOUBLE NOT NULL DEFAULT 0,
		ads_roi DOUBLE NOT NULL DEFAULT 0,
		ai_interaction_volume DOUBLE NOT NULL DEFAULT 0,
		ai_qualified_leads DOUBLE NOT NULL DEFAULT 0,
		ai_user_satisfaction DOUBLE NOT NULL DEFAULT 0,
		portal_visits DOUBLE NOT NULL DEFAULT 0,
		portal_signups DOUBLE NOT NULL DEFAULT 0,
		portal_properties_viewed DOUBLE NOT NULL DEFAULT 0,
		portal_conversions DOUBLE NOT NULL DEFAULT 0,
		social_reach DOUBLE NOT NULL DEFAULT 0,
		social_engagement DOUBLE NOT NULL DEFAULT 0,
		social_organic_leads DOUBLE NOT NULL DEFAULT 0,
		social_cost_per_lead DOUBLE NOT NULL DEFAULT 0,
		social_new_followers DOUBLE NOT NULL DEFAULT 0,
		social_interactions DOUBLE NOT NULL DEFAULT 0,
		total_leads DOUBLE NOT NULL DEFAULT 0,
		overall_conversion_rate DOUBLE NOT NULL DEFAULT 0,
		average_ticket DOUBLE NOT NULL DEFAULT 0,
		nps_score DOUBLE NOT NULL DEFAULT 0,
		notes VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	MonthlyReportsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
