// Package sqlite implements the reporting store on an embedded SQLite
// database through modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// ReportRepository implements port.Store on a *sql.DB opened with
// db.OpenSQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository returns a repository backed by conn.
func NewReportRepository(conn *sql.DB) *ReportRepository {
	return &ReportRepository{db: conn}
}

var _ port.Store = (*ReportRepository)(nil)

const aggregateColumns = `
		count(*),
		COALESCE(sum(s.cost), 0.0),
		COALESCE(sum(s.clicks), 0),
		COALESCE(sum(s.conversions), 0.0),
		COALESCE(sum(s.impressions), 0),
		avg(s.cost / NULLIF(s.clicks, 0)),
		avg(s.cost / NULLIF(s.conversions, 0))`

// ListCampaigns returns every campaign ordered by id.
func (r *ReportRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT campaign_id, campaign_name, campaign_type FROM campaign ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		if err = rows.Scan(&c.ID, &c.Name, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// RenameCampaign updates the campaign name inside a transaction.
func (r *ReportRepository) RenameCampaign(ctx context.Context, id int64, name string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.ExecContext(ctx, `UPDATE campaign SET campaign_name = ? WHERE campaign_id = ?`, name, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		err = port.ErrCampaignNotFound
	}
	return err
}

// ListAdGroupsByCampaign returns the ad groups of a campaign ordered by id.
func (r *ReportRepository) ListAdGroupsByCampaign(ctx context.Context, campaignID int64) ([]domain.AdGroup, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ad_group_id, ad_group_name, campaign_id FROM ad_group WHERE campaign_id = ? ORDER BY ad_group_id`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AdGroup
	for rows.Next() {
		var g domain.AdGroup
		if err = rows.Scan(&g.ID, &g.Name, &g.CampaignID); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ListStatsByAdGroup returns the stat records of an ad group ordered by date.
func (r *ReportRepository) ListStatsByAdGroup(ctx context.Context, adGroupID int64) ([]domain.StatRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, ad_group_id, device, impressions, clicks, conversions, cost
		FROM ad_group_stats
		WHERE ad_group_id = ?
		ORDER BY date, id`, adGroupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StatRecord
	for rows.Next() {
		var (
			s    domain.StatRecord
			date string
		)
		if err = rows.Scan(&s.ID, &date, &s.AdGroupID, &s.Device, &s.Impressions, &s.Clicks, &s.Conversions, &s.Cost); err != nil {
			return nil, err
		}
		if s.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("stat %d: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AggregateStats returns totals over the filtered stat records.
func (r *ReportRepository) AggregateStats(ctx context.Context, filter domain.StatFilter) (domain.Totals, error) {
	where, args := statsWhere(filter)
	query := fmt.Sprintf(`
		SELECT %s
		FROM ad_group_stats s
		JOIN ad_group g ON g.ad_group_id = s.ad_group_id
		%s`, aggregateColumns, where)

	var sc totalsScanner
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(sc.dest()...); err != nil {
		return domain.Totals{}, err
	}
	return sc.totals(), nil
}

// AggregateStatsByPeriod returns totals per bucket ordered by bucket start.
func (r *ReportRepository) AggregateStatsByPeriod(ctx context.Context, filter domain.StatFilter, g domain.Granularity) ([]domain.PeriodTotals, error) {
	bucket, err := bucketExpr(g)
	if err != nil {
		return nil, err
	}
	where, args := statsWhere(filter)
	query := fmt.Sprintf(`
		SELECT %s AS period, %s
		FROM ad_group_stats s
		JOIN ad_group g ON g.ad_group_id = s.ad_group_id
		%s
		GROUP BY period
		ORDER BY period`, bucket, aggregateColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PeriodTotals
	for rows.Next() {
		var (
			sc    totalsScanner
			start string
		)
		if err = rows.Scan(append([]any{&start}, sc.dest()...)...); err != nil {
			return nil, err
		}
		p := domain.PeriodTotals{Totals: sc.totals()}
		if p.Start, err = domain.ParseDate(start); err != nil {
			return nil, fmt.Errorf("period %q: %w", start, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Ping checks connectivity.
func (r *ReportRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// InsertCampaigns inserts campaigns in one transaction, ignoring existing ids.
func (r *ReportRepository) InsertCampaigns(ctx context.Context, campaigns []domain.Campaign) error {
	return r.insert(ctx, `INSERT OR IGNORE INTO campaign (campaign_id, campaign_name, campaign_type) VALUES (?, ?, ?)`,
		len(campaigns), func(i int) []any {
			c := campaigns[i]
			return []any{c.ID, c.Name, c.Type}
		})
}

// InsertAdGroups inserts ad groups in one transaction, ignoring existing ids.
func (r *ReportRepository) InsertAdGroups(ctx context.Context, groups []domain.AdGroup) error {
	return r.insert(ctx, `INSERT OR IGNORE INTO ad_group (ad_group_id, ad_group_name, campaign_id) VALUES (?, ?, ?)`,
		len(groups), func(i int) []any {
			g := groups[i]
			return []any{g.ID, g.Name, g.CampaignID}
		})
}

// InsertStats inserts stat records in one transaction.
func (r *ReportRepository) InsertStats(ctx context.Context, stats []domain.StatRecord) error {
	return r.insert(ctx, `INSERT INTO ad_group_stats (date, ad_group_id, device, impressions, clicks, conversions, cost) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(stats), func(i int) []any {
			s := stats[i]
			return []any{s.Date.Format(domain.DateLayout), s.AdGroupID, s.Device, s.Impressions, s.Clicks, s.Conversions, s.Cost}
		})
}

// insert runs query once per row with a prepared statement in a single
// transaction.
func (r *ReportRepository) insert(ctx context.Context, query string, n int, row func(int) []any) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err = stmt.ExecContext(ctx, row(i)...); err != nil {
			return err
		}
	}
	return nil
}

type totalsScanner struct {
	t        domain.Totals
	cpc, cpa sql.NullFloat64
}

func (s *totalsScanner) dest() []any {
	return []any{&s.t.Records, &s.t.Cost, &s.t.Clicks, &s.t.Conversions, &s.t.Impressions, &s.cpc, &s.cpa}
}

func (s *totalsScanner) totals() domain.Totals {
	t := s.t
	if s.cpc.Valid {
		v := s.cpc.Float64
		t.AvgCostPerClick = &v
	}
	if s.cpa.Valid {
		v := s.cpa.Float64
		t.AvgCostPerConversion = &v
	}
	return t
}

func statsWhere(f domain.StatFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if len(f.CampaignIDs) > 0 {
		marks := make([]string, len(f.CampaignIDs))
		for i, id := range f.CampaignIDs {
			marks[i] = "?"
			args = append(args, id)
		}
		conds = append(conds, "g.campaign_id IN ("+strings.Join(marks, ", ")+")")
	}
	if !f.From.IsZero() {
		args = append(args, f.From.Format(domain.DateLayout))
		conds = append(conds, "s.date >= ?")
	}
	if !f.To.IsZero() {
		args = append(args, f.To.Format(domain.DateLayout))
		conds = append(conds, "s.date <= ?")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func bucketExpr(g domain.Granularity) (string, error) {
	switch g {
	case domain.GranularityDay:
		return "s.date", nil
	case domain.GranularityWeek:
		return "date(s.date, '-6 days', 'weekday 1')", nil
	case domain.GranularityMonth:
		return "strftime('%Y-%m-01', s.date)", nil
	default:
		return "", fmt.Errorf("%w: unsupported granularity %q", port.ErrInvalidInput, g)
	}
}
