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

// PgxItemRepository implements portsrepo.ItemRepositoryFacade using pgxpool.
type PgxItemRepository struct {
	BaseRepository
}

// NewPgxItemRepository creates a new PgxItemRepository.
func NewPgxItemRepository(db *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

const itemColumns = `
	item_id, inventor_id, type, name, code, technology, description,
	retail_price_amount, retail_price_currency,
	converted_price_amount, converted_price_currency, exchange_date,
	more_info, published, created_at, created_by, last_updated_at, last_updated_by`

func scanItem(row pgx.Row) (domain.Item, error) {
	var i domain.Item
	err := row.Scan(
		&i.ItemID, &i.InventorID, &i.Type, &i.Name, &i.Code, &i.Technology, &i.Description,
		&i.RetailPrice.Amount, &i.RetailPrice.Currency,
		&i.ConvertedPrice.Amount, &i.ConvertedPrice.Currency, &i.ExchangeDate,
		&i.MoreInfo, &i.Published, &i.CreatedAt, &i.CreatedBy, &i.LastUpdatedAt, &i.LastUpdatedBy,
	)
	return i, err
}

func (r *PgxItemRepository) findOne(ctx context.Context, where string, arg any) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + where + `;`
	item, err := scanItem(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, notFoundOr(err, "item")
	}
	return &item, nil
}

func (r *PgxItemRepository) findMany(ctx context.Context, where string, args ...any) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + where + ` ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list items", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to iterate items", err)
	}
	return items, nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	return r.findOne(ctx, "item_id = $1", itemID)
}

func (r *PgxItemRepository) FindItemByCode(ctx context.Context, code string) (*domain.Item, error) {
	return r.findOne(ctx, "code = $1", code)
}

func (r *PgxItemRepository) FindItemsByInventor(ctx context.Context, inventorID string) ([]domain.Item, error) {
	return r.findMany(ctx, "inventor_id = $1", inventorID)
}

func (r *PgxItemRepository) FindPublishedItemsByType(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error) {
	return r.findMany(ctx, "published AND type = $1", itemType)
}

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID, item.InventorID, item.Type, item.Name, item.Code, item.Technology, item.Description,
		item.RetailPrice.Amount, item.RetailPrice.Currency,
		item.ConvertedPrice.Amount, item.ConvertedPrice.Currency, item.ExchangeDate,
		item.MoreInfo, item.Published, item.CreatedAt, item.CreatedBy, item.LastUpdatedAt, item.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save item", err)
	}
	return nil
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	query := `
		UPDATE items SET
			type = $2, name = $3, code = $4, technology = $5, description = $6,
			retail_price_amount = $7, retail_price_currency = $8,
			converted_price_amount = $9, converted_price_currency = $10, exchange_date = $11,
			more_info = $12, published = $13, last_updated_at = $14, last_updated_by = $15
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.ItemID, item.Type, item.Name, item.Code, item.Technology, item.Description,
		item.RetailPrice.Amount, item.RetailPrice.Currency,
		item.ConvertedPrice.Amount, item.ConvertedPrice.Currency, item.ExchangeDate,
		item.MoreInfo, item.Published, item.LastUpdatedAt, item.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item not found")
	}
	return nil
}

// DeleteItem removes the item and its chimpums in one transaction.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM chimpums WHERE item_id = $1;`, itemID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete item chimpums", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete item", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("item not found")
		}
		return nil
	})
}
