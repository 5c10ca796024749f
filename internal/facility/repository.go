package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, f *Facility) error
	Delete(ctx context.Context, id string) error

	// ApplyRating adjusts the aggregate rating by adding delta to the total
	// score and deltaCount to the vote count, in a single statement.
	ApplyRating(ctx context.Context, id string, delta float64, deltaCount int) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.facilities").
		Columns("owner_id", "name", "description", "address", "city", "sports", "status").
		Values(f.OwnerID, f.Name, f.Description, f.Address, f.City, f.Sports, f.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create facility query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Facility, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"f.id", "f.owner_id", "u.full_name", "f.name", "f.description",
		"f.address", "f.city", "f.sports", "f.status", "f.reject_reason",
		"f.rating_total", "f.rating_count", "f.created_at", "f.updated_at",
	).
		From("public.facilities f").
		Join("public.users u ON f.owner_id = u.id").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get facility query failed: %w", err)
	}

	f, err := scanFacility(r.pool.QueryRow(ctx, query, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"f.id", "f.owner_id", "u.full_name", "f.name", "f.description",
		"f.address", "f.city", "f.sports", "f.status", "f.reject_reason",
		"f.rating_total", "f.rating_count", "f.created_at", "f.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.facilities f").
		Join("public.users u ON f.owner_id = u.id")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"f.owner_id": filter.OwnerID})
	}
	if filter.City != "" {
		query = query.Where(squirrel.ILike{"f.city": filter.City})
	}
	if filter.Sport != "" {
		query = query.Where(squirrel.Expr("? = ANY(f.sports)", filter.Sport))
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"f.status": filter.Status})
	}

	orderBy := "f.created_at"
	if filter.SortBy != "" {
		orderBy = "f." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

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
		return nil, 0, fmt.Errorf("build list facilities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var facilities []*Facility
	var total int

	for rows.Next() {
		f, err := scanFacilityRow(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan facility failed: %w", err)
		}
		facilities = append(facilities, f)
	}

	return facilities, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.facilities").
		Set("name", f.Name).
		Set("description", f.Description).
		Set("address", f.Address).
		Set("city", f.City).
		Set("sports", f.Sports).
		Set("status", f.Status).
		Set("reject_reason", f.RejectReason).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update facility query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete facility query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ApplyRating(ctx context.Context, id string, delta float64, deltaCount int) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.facilities").
		Set("rating_total", squirrel.Expr("rating_total + ?", delta)).
		Set("rating_count", squirrel.Expr("rating_count + ?", deltaCount)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build apply rating query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("apply rating failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFacility(row rowScanner, withTotal bool) (*Facility, error) {
	var total int
	if withTotal {
		return scanFacilityRow(row, &total)
	}

	var f Facility
	var ratingTotal float64
	if err := row.Scan(
		&f.ID, &f.OwnerID, &f.OwnerName, &f.Name, &f.Description,
		&f.Address, &f.City, &f.Sports, &f.Status, &f.RejectReason,
		&ratingTotal, &f.RatingCount, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	f.Rating = averageRating(ratingTotal, f.RatingCount)
	return &f, nil
}

func scanFacilityRow(row rowScanner, total *int) (*Facility, error) {
	var f Facility
	var ratingTotal float64
	if err := row.Scan(
		&f.ID, &f.OwnerID, &f.OwnerName, &f.Name, &f.Description,
		&f.Address, &f.City, &f.Sports, &f.Status, &f.RejectReason,
		&ratingTotal, &f.RatingCount, &f.CreatedAt, &f.UpdatedAt, total,
	); err != nil {
		return nil, err
	}
	f.Rating = averageRating(ratingTotal, f.RatingCount)
	return &f, nil
}

func averageRating(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
