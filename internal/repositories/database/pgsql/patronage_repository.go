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

// PgxPatronageRepository implements portsrepo.PatronageRepositoryFacade using pgxpool.
type PgxPatronageRepository struct {
	BaseRepository
}

// NewPgxPatronageRepository creates a new PgxPatronageRepository.
func NewPgxPatronageRepository(db *pgxpool.Pool) *PgxPatronageRepository {
	return &PgxPatronageRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PatronageRepositoryFacade = (*PgxPatronageRepository)(nil)

const patronageColumns = `
	patronage_id, patron_id, inventor_id, status, code, legal_stuff,
	budget_amount, budget_currency, creation_moment, start_date, end_date,
	more_info, published, created_at, created_by, last_updated_at, last_updated_by`

func scanPatronage(row pgx.Row) (domain.Patronage, error) {
	var p domain.Patronage
	err := row.Scan(
		&p.PatronageID, &p.PatronID, &p.InventorID, &p.Status, &p.Code, &p.LegalStuff,
		&p.Budget.Amount, &p.Budget.Currency, &p.CreationMoment, &p.StartDate, &p.EndDate,
		&p.MoreInfo, &p.Published, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxPatronageRepository) findOne(ctx context.Context, where string, arg any) (*domain.Patronage, error) {
	query := `SELECT ` + patronageColumns + ` FROM patronages WHERE ` + where + `;`
	p, err := scanPatronage(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, notFoundOr(err, "patronage")
	}
	return &p, nil
}

func (r *PgxPatronageRepository) findMany(ctx context.Context, where string, args ...any) ([]domain.Patronage, error) {
	query := `SELECT ` + patronageColumns + ` FROM patronages WHERE ` + where + ` ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list patronages", err)
	}
	defer rows.Close()

	patronages := make([]domain.Patronage, 0)
	for rows.Next() {
		p, err := scanPatronage(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan patronage", err)
		}
		patronages = append(patronages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to iterate patronages", err)
	}
	return patronages, nil
}

func (r *PgxPatronageRepository) FindPatronageByID(ctx context.Context, patronageID string) (*domain.Patronage, error) {
	return r.findOne(ctx, "patronage_id = $1", patronageID)
}

func (r *PgxPatronageRepository) FindPatronageByCode(ctx context.Context, code string) (*domain.Patronage, error) {
	return r.findOne(ctx, "code = $1", code)
}

func (r *PgxPatronageRepository) FindPatronagesByPatron(ctx context.Context, patronID string) ([]domain.Patronage, error) {
	return r.findMany(ctx, "patron_id = $1", patronID)
}

func (r *PgxPatronageRepository) FindPublishedPatronagesByInventor(ctx context.Context, inventorID string) ([]domain.Patronage, error) {
	return r.findMany(ctx, "published AND inventor_id = $1", inventorID)
}

func (r *PgxPatronageRepository) SavePatronage(ctx context.Context, p domain.Patronage) error {
	query := `INSERT INTO patronages (` + patronageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`
	_, err := r.Pool.Exec(ctx, query,
		p.PatronageID, p.PatronID, p.InventorID, p.Status, p.Code, p.LegalStuff,
		p.Budget.Amount, p.Budget.Currency, p.CreationMoment, p.StartDate, p.EndDate,
		p.MoreInfo, p.Published, p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save patronage", err)
	}
	return nil
}

func (r *PgxPatronageRepository) UpdatePatronage(ctx context.Context, p domain.Patronage) error {
	query := `
		UPDATE patronages SET
			inventor_id = $2, status = $3, code = $4, legal_stuff = $5,
			budget_amount = $6, budget_currency = $7, start_date = $8, end_date = $9,
			more_info = $10, published = $11, last_updated_at = $12, last_updated_by = $13
		WHERE patronage_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		p.PatronageID, p.InventorID, p.Status, p.Code, p.LegalStuff,
		p.Budget.Amount, p.Budget.Currency, p.StartDate, p.EndDate,
		p.MoreInfo, p.Published, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update patronage", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("patronage not found")
	}
	return nil
}
