package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
	Delete(ctx context.Context, id string) error

	// HasCompletedBooking reports whether the user has at least one
	// completed booking at any court of the facility.
	HasCompletedBooking(ctx context.Context, userID, facilityID string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reviewJoins = "public.reviews r " +
	"JOIN public.facilities f ON r.facility_id = f.id " +
	"JOIN public.users u ON r.user_id = u.id"

var reviewColumns = []string{
	"r.id", "r.facility_id", "f.name", "r.user_id", "u.full_name",
	"r.rating", "r.comment", "r.created_at", "r.updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reviews").
		Columns("facility_id", "user_id", "rating", "comment").
		Values(rv.FacilityID, rv.UserID, rv.Rating, rv.Comment).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create review query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyReviewed
		}
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reviewColumns...).
		From(reviewJoins).
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review query failed: %w", err)
	}

	rv, err := scanReview(r.pool.QueryRow(ctx, query, args...), nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review failed: %w", err)
	}
	return rv, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, reviewColumns...), "count(*) OVER() as total_count")
	query := psql.Select(cols...).From(reviewJoins)

	if filter.FacilityID != "" {
		query = query.Where(squirrel.Eq{"r.facility_id": filter.FacilityID})
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy("r.created_at " + orderDir)

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
		return nil, 0, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int

	for rows.Next() {
		rv, err := scanReview(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, total, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete review query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasCompletedBooking(ctx context.Context, userID, facilityID string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("1").
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Where(squirrel.Eq{"b.user_id": userID}).
		Where(squirrel.Eq{"c.facility_id": facilityID}).
		Where(squirrel.Eq{"b.status": "completed"}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build completed booking query failed: %w", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check completed booking failed: %w", err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner, total *int) (*Review, error) {
	var rv Review

	dest := []any{
		&rv.ID, &rv.FacilityID, &rv.FacilityName, &rv.UserID, &rv.UserName,
		&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &rv, nil
}
