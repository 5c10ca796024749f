package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	schedule, pricing, err := marshalRules(c)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.courts").
		Columns("facility_id", "name", "sport", "schedule", "pricing").
		Values(c.FacilityID, c.Name, c.Sport, schedule, pricing).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create court query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.facility_id", "f.name", "c.name", "c.sport",
		"c.schedule", "c.pricing", "c.created_at", "c.updated_at",
	).
		From("public.courts c").
		Join("public.facilities f ON c.facility_id = f.id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get court query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var c Court
	var scheduleJSON, pricingJSON []byte
	if err := row.Scan(
		&c.ID, &c.FacilityID, &c.FacilityName, &c.Name, &c.Sport,
		&scheduleJSON, &pricingJSON, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}

	if err := unmarshalRules(&c, scheduleJSON, pricingJSON); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"c.id", "c.facility_id", "f.name", "c.name", "c.sport",
		"c.schedule", "c.pricing", "c.created_at", "c.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.courts c").
		Join("public.facilities f ON c.facility_id = f.id")

	if filter.FacilityID != "" {
		query = query.Where(squirrel.Eq{"c.facility_id": filter.FacilityID})
	}
	if filter.Sport != "" {
		query = query.Where(squirrel.Eq{"c.sport": filter.Sport})
	}
	if filter.FacilityStatus != "" {
		query = query.Where(squirrel.Eq{"f.status": filter.FacilityStatus})
	}

	orderBy := "c.created_at"
	if filter.SortBy != "" {
		orderBy = "c." + filter.SortBy
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
		return nil, 0, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	var total int

	for rows.Next() {
		var c Court
		var scheduleJSON, pricingJSON []byte
		if err := rows.Scan(
			&c.ID, &c.FacilityID, &c.FacilityName, &c.Name, &c.Sport,
			&scheduleJSON, &pricingJSON, &c.CreatedAt, &c.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		if err := unmarshalRules(&c, scheduleJSON, pricingJSON); err != nil {
			return nil, 0, err
		}
		courts = append(courts, &c)
	}

	return courts, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	schedule, pricing, err := marshalRules(c)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.courts").
		Set("name", c.Name).
		Set("sport", c.Sport).
		Set("schedule", schedule).
		Set("pricing", pricing).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalRules(c *Court) ([]byte, []byte, error) {
	schedule, err := json.Marshal(c.Schedule)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal schedule failed: %w", err)
	}
	pricing, err := json.Marshal(c.Pricing)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal pricing failed: %w", err)
	}
	return schedule, pricing, nil
}

func unmarshalRules(c *Court, scheduleJSON, pricingJSON []byte) error {
	if err := json.Unmarshal(scheduleJSON, &c.Schedule); err != nil {
		return fmt.Errorf("unmarshal schedule failed: %w", err)
	}
	if err := json.Unmarshal(pricingJSON, &c.Pricing); err != nil {
		return fmt.Errorf("unmarshal pricing failed: %w", err)
	}
	return nil
}
