package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// ReportRepository implements port.Store using pgxpool for PostgreSQL.
// Aggregates are computed by the database with SUM/AVG and date_trunc.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a new repository instance.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

var _ port.Store = (*ReportRepository)(nil)

// aggregateColumns computes domain.Totals. Ratios per record skip zero
// denominators through NULLIF so AVG ignores them.
const aggregateColumns = `
            count(*),
            COALESCE(sum(s.cost), 0),
            COALESCE(sum(s.clicks), 0),
            COALESCE(sum(s.conversions), 0),
            COALESCE(sum(s.impressions), 0),
            avg(s.cost / NULLIF(s.clicks, 0)),
            avg(s.cost / NULLIF(s.conversions, 0))`

// ListCampaigns returns every campaign ordered by id.
func (r *ReportRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, campaign_name, campaign_type FROM campaign ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.Type)
		return c, err
	})
}

// RenameCampaign updates the campaign name inside a transaction that is
// rolled back on any failure.
func (r *ReportRepository) RenameCampaign(ctx context.Context, id int64, name string) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE campaign SET campaign_name = $1 WHERE campaign_id = $2`, name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = port.ErrCampaignNotFound
	}
	return err
}

// ListAdGroupsByCampaign returns the ad groups of a campaign ordered by id.
func (r *ReportRepository) ListAdGroupsByCampaign(ctx context.Context, campaignID int64) ([]domain.AdGroup, error) {
	rows, err := r.pool.Query(ctx, `SELECT ad_group_id, ad_group_name, campaign_id FROM ad_group WHERE campaign_id = $1 ORDER BY ad_group_id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroup, error) {
		var g domain.AdGroup
		err := row.Scan(&g.ID, &g.Name, &g.CampaignID)
		return g, err
	})
}

// ListStatsByAdGroup returns the stat records of an ad group ordered by date.
func (r *ReportRepository) ListStatsByAdGroup(ctx context.Context, adGroupID int64) ([]domain.StatRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, date, ad_group_id, device, impressions, clicks, conversions, cost
        FROM ad_group_stats
        WHERE ad_group_id = $1
        ORDER BY date, id`, adGroupID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatRecord, error) {
		var s domain.StatRecord
		err := row.Scan(&s.ID, &s.Date, &s.AdGroupID, &s.Device, &s.Impressions, &s.Clicks, &s.Conversions, &s.Cost)
		return s, err
	})
}

// AggregateStats returns totals over the filtered stat records.
func (r *ReportRepository) AggregateStats(ctx context.Context, filter domain.StatFilter) (domain.Totals, error) {
	where, args := statsWhere(filter)
	query := fmt.Sprintf(`
        SELECT %s
        FROM ad_group_stats s
        JOIN ad_group g ON g.ad_group_id = s.ad_group_id
        %s`, aggregateColumns, where)

	var t domain.Totals
	err := r.pool.QueryRow(ctx, query, args...).Scan(totalsDest(&t)...)
	if err != nil {
		return domain.Totals{}, err
	}
	return t, nil
}

// AggregateStatsByPeriod returns totals per bucket, ordered by bucket start.
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

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PeriodTotals, error) {
		var p domain.PeriodTotals
		var start time.Time
		err := row.Scan(append([]any{&start}, totalsDest(&p.Totals)...)...)
		p.Start = domain.TruncateDay(start)
		return p, err
	})
}

// Ping checks connectivity.
func (r *ReportRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// InsertCampaigns inserts campaigns in one batch, ignoring existing ids.
func (r *ReportRepository) InsertCampaigns(ctx context.Context, campaigns []domain.Campaign) error {
	batch := &pgx.Batch{}
	for _, c := range campaigns {
		batch.Queue(`INSERT INTO campaign (campaign_id, campaign_name, campaign_type) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			c.ID, c.Name, c.Type)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// InsertAdGroups inserts ad groups in one batch, ignoring existing ids.
func (r *ReportRepository) InsertAdGroups(ctx context.Context, groups []domain.AdGroup) error {
	batch := &pgx.Batch{}
	for _, g := range groups {
		batch.Queue(`INSERT INTO ad_group (ad_group_id, ad_group_name, campaign_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			g.ID, g.Name, g.CampaignID)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// InsertStats bulk loads stat records with the COPY protocol.
func (r *ReportRepository) InsertStats(ctx context.Context, stats []domain.StatRecord) error {
	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"ad_group_stats"},
		[]string{"date", "ad_group_id", "device", "impressions", "clicks", "conversions", "cost"},
		pgx.CopyFromSlice(len(stats), func(i int) ([]any, error) {
			s := stats[i]
			return []any{pgDate(s.Date), s.AdGroupID, s.Device, s.Impressions, s.Clicks, s.Conversions, s.Cost}, nil
		}),
	)
	return err
}

// statsWhere builds the WHERE clause for a filter over the aliases s (stats)
// and g (ad groups).
func statsWhere(f domain.StatFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if len(f.CampaignIDs) > 0 {
		args = append(args, f.CampaignIDs)
		conds = append(conds, fmt.Sprintf("g.campaign_id = ANY($%d)", len(args)))
	}
	if !f.From.IsZero() {
		args = append(args, pgDate(f.From))
		conds = append(conds, fmt.Sprintf("s.date >= $%d", len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, pgDate(f.To))
		conds = append(conds, fmt.Sprintf("s.date <= $%d", len(args)))
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
		return "date_trunc('week', s.date::timestamp)::date", nil
	case domain.GranularityMonth:
		return "date_trunc('month', s.date::timestamp)::date", nil
	default:
		return "", fmt.Errorf("%w: unsupported granularity %q", port.ErrInvalidInput, g)
	}
}

// totalsDest returns scan targets matching aggregateColumns.
func totalsDest(t *domain.Totals) []any {
	return []any{&t.Records, &t.Cost, &t.Clicks, &t.Conversions, &t.Impressions, &t.AvgCostPerClick, &t.AvgCostPerConversion}
}

func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: domain.TruncateDay(t), Valid: true}
}
