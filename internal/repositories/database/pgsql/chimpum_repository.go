package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/acme_marketplace/internal/apperrors"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxChimpumRepository implements portsrepo.ChimpumRepositoryFacade using pgxpool.
type PgxChimpumRepository struct {
	BaseRepository
}

// NewPgxChimpumRepository creates a new PgxChimpumRepository.
func NewPgxChimpumRepository(db *pgxpool.Pool) *PgxChimpumRepository {
	return &PgxChimpumRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ChimpumRepositoryFacade = (*PgxChimpumRepository)(nil)

const chimpumColumns = `
	chimpum_id, item_id, inventor_id, code, title, description,
	creation_moment, start_date, end_date,
	budget_amount, budget_currency, converted_budget_amount, converted_budget_currency,
	exchange_date, more_info, created_at, created_by, last_updated_at, last_updated_by`

func scanChimpum(row pgx.Row) (domain.Chimpum, error) {
	var c domain.Chimpum
	err := row.Scan(
		&c.ChimpumID, &c.ItemID, &c.InventorID, &c.Code, &c.Title, &c.Description,
		&c.CreationMoment, &c.StartDate, &c.EndDate,
		&c.Budget.Amount, &c.Budget.Currency, &c.ConvertedBudget.Amount, &c.ConvertedBudget.Currency,
		&c.ExchangeDate, &c.MoreInfo, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxChimpumRepository) FindChimpumByID(ctx context.Context, chimpumID string) (*domain.Chimpum, error) {
	query := `SELECT ` + chimpumColumns + ` FROM chimpums WHERE chimpum_id = $1;`
	c, err := scanChimpum(r.Pool.QueryRow(ctx, query, chimpumID))
	if err != nil {
		return nil, notFoundOr(err, "chimpum")
	}
	return &c, nil
}

func (r *PgxChimpumRepository) FindChimpumByCode(ctx context.Context, code string) (*domain.Chimpum, error) {
	query := `SELECT ` + chimpumColumns + ` FROM chimpums WHERE code = $1;`
	c, err := scanChimpum(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		return nil, notFoundOr(err, "chimpum")
	}
	return &c, nil
}

func (r *PgxChimpumRepository) FindChimpumsByInventor(ctx context.Context, inventorID string) ([]domain.Chimpum, error) {
	query := `SELECT ` + chimpumColumns + ` FROM chimpums WHERE inventor_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, inventorID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list chimpums", err)
	}
	defer rows.Close()

	chimpums := make([]domain.Chimpum, 0)
	for rows.Next() {
		c, err := scanChimpum(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan chimpum", err)
		}
		chimpums = append(chimpums, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to iterate chimpums", err)
	}
	return chimpums, nil
}

func (r *PgxChimpumRepository) SaveChimpum(ctx context.Context, c domain.Chimpum) error {
	query := `INSERT INTO chimpums (` + chimpumColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);`
	_, err := r.Pool.Exec(ctx, query,
		c.ChimpumID, c.ItemID, c.InventorID, c.Code, c.Title, c.Description,
		c.CreationMoment, c.StartDate, c.EndDate,
		c.Budget.Amount, c.Budget.Currency, c.ConvertedBudget.Amount, c.ConvertedBudget.Currency,
		c.ExchangeDate, c.MoreInfo, c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save chimpum", err)
	}
	return nil
}

func (r *PgxChimpumRepository) DeleteChimpum(ctx context.Context, chimpumID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM chimpums WHERE chimpum_id = $1;`, chimpumID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete chimpum", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("chimpum not found")
	}
	return nil
}
