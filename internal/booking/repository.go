package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ListForDate returns the time ranges and statuses of all bookings for
	// the court on the given date. The evaluator filters occupying statuses
	// itself.
	ListForDate(ctx context.Context, courtID string, date time.Time) ([]Reservation, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingJoins = "public.bookings b " +
	"JOIN public.courts c ON b.court_id = c.id " +
	"JOIN public.facilities f ON c.facility_id = f.id " +
	"JOIN public.users u ON b.user_id = u.id"

var bookingColumns = []string{
	"b.id", "b.court_id", "c.name", "f.id", "f.name", "b.user_id", "u.full_name",
	"b.date", "b.start_time", "b.end_time", "b.status",
	"b.tier", "b.unit_price", "b.duration_hours", "b.base_cost",
	"b.add_ons", "b.add_on_costs", "b.total_amount", "b.currency",
	"b.created_at", "b.updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	addOns, err := json.Marshal(b.AddOns)
	if err != nil {
		return fmt.Errorf("marshal add-ons failed: %w", err)
	}
	addOnCosts, err := json.Marshal(b.AddOnCosts)
	if err != nil {
		return fmt.Errorf("marshal add-on costs failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"court_id", "user_id", "date", "start_time", "end_time", "status",
			"tier", "unit_price", "duration_hours", "base_cost",
			"add_ons", "add_on_costs", "total_amount", "currency",
		).
		Values(
			b.CourtID, b.UserID, b.Date, b.StartTime, b.EndTime, b.Status,
			b.Tier, b.UnitPrice, b.DurationHours, b.BaseCost,
			addOns, addOnCosts, b.TotalAmount, b.Currency,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From(bookingJoins).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...), nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, bookingColumns...), "count(*) OVER() as total_count")
	query := psql.Select(cols...).From(bookingJoins)

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.CourtID != "" {
		query = query.Where(squirrel.Eq{"b.court_id": filter.CourtID})
	}
	if filter.FacilityID != "" {
		query = query.Where(squirrel.Eq{"f.id": filter.FacilityID})
	}
	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"f.owner_id": filter.OwnerID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.date": *filter.DateTo})
	}

	orderBy := "b.date"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy+" "+orderDir, "b.start_time "+orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListForDate(ctx context.Context, courtID string, date time.Time) ([]Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("start_time", "end_time", "status").
		From("public.bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(&res.StartTime, &res.EndTime, &res.Status); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, total *int) (*Booking, error) {
	var b Booking
	var addOns, addOnCosts []byte

	dest := []any{
		&b.ID, &b.CourtID, &b.CourtName, &b.FacilityID, &b.FacilityName, &b.UserID, &b.UserName,
		&b.Date, &b.StartTime, &b.EndTime, &b.Status,
		&b.Tier, &b.UnitPrice, &b.DurationHours, &b.BaseCost,
		&addOns, &addOnCosts, &b.TotalAmount, &b.Currency,
		&b.CreatedAt, &b.UpdatedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(addOns, &b.AddOns); err != nil {
		return nil, fmt.Errorf("unmarshal add-ons failed: %w", err)
	}
	if err := json.Unmarshal(addOnCosts, &b.AddOnCosts); err != nil {
		return nil, fmt.Errorf("unmarshal add-on costs failed: %w", err)
	}

	return &b, nil
}
