package analytics

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	UsersByRole(ctx context.Context) (map[string]int, error)
	FacilitiesByState(ctx context.Context) (map[string]int, error)
	BookingsByStatus(ctx context.Context, w Window) (map[string]int, error)
	BookingsPerDay(ctx context.Context, w Window) ([]DailyCount, error)
	OwnerFacilityStats(ctx context.Context, ownerID string) ([]FacilityStats, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) UsersByRole(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "public.users", "role", nil)
}

func (r *pgxRepository) FacilitiesByState(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "public.facilities", "status", nil)
}

func (r *pgxRepository) BookingsByStatus(ctx context.Context, w Window) (map[string]int, error) {
	return r.countBy(ctx, "public.bookings", "status", &w)
}

func (r *pgxRepository) countBy(ctx context.Context, table, column string, w *Window) (map[string]int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(column, "count(*)").From(table).GroupBy(column)
	if w != nil {
		query = query.
			Where(squirrel.GtOrEq{"date": w.From}).
			Where(squirrel.LtOrEq{"date": w.To})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("count %s by %s failed: %w", table, column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan count failed: %w", err)
		}
		counts[key] = n
	}
	return counts, nil
}

func (r *pgxRepository) BookingsPerDay(ctx context.Context, w Window) ([]DailyCount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("date", "count(*)").
		From("public.bookings").
		Where(squirrel.GtOrEq{"date": w.From}).
		Where(squirrel.LtOrEq{"date": w.To}).
		GroupBy("date").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bookings per day query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bookings per day failed: %w", err)
	}
	defer rows.Close()

	var daily []DailyCount
	for rows.Next() {
		var d DailyCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("scan daily count failed: %w", err)
		}
		daily = append(daily, d)
	}
	return daily, nil
}

func (r *pgxRepository) OwnerFacilityStats(ctx context.Context, ownerID string) ([]FacilityStats, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"f.id",
		"f.name",
		"count(DISTINCT c.id)",
		"count(b.id)",
		"coalesce(sum(b.total_amount) FILTER (WHERE b.status IN ('confirmed', 'completed')), 0)",
	).
		From("public.facilities f").
		LeftJoin("public.courts c ON c.facility_id = f.id").
		LeftJoin("public.bookings b ON b.court_id = c.id").
		Where(squirrel.Eq{"f.owner_id": ownerID}).
		GroupBy("f.id", "f.name").
		OrderBy("f.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build owner stats query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("owner stats failed: %w", err)
	}
	defer rows.Close()

	var stats []FacilityStats
	for rows.Next() {
		var s FacilityStats
		if err := rows.Scan(&s.FacilityID, &s.FacilityName, &s.ActiveCourts, &s.Bookings, &s.Earnings); err != nil {
			return nil, fmt.Errorf("scan owner stats failed: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, nil
}
