package salelog

import (
	"context"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Insert(ctx context.Context, sale domain.Sale) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const saleQ = `
INSERT INTO sales (id, subtotal, discount, tax, total, amount_paid, change, cashier, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	if _, err := tx.Exec(ctx, saleQ,
		sale.ID,
		sale.Subtotal.String(),
		sale.Discount.String(),
		sale.Tax.String(),
		sale.Total.String(),
		sale.AmountPaid.String(),
		sale.Change.String(),
		sale.Cashier,
		sale.Timestamp,
	); err != nil {
		r.logger.Printf("salelog: insert sale id=%s error=%v", sale.ID, err)
		return err
	}

	const itemQ = `
INSERT INTO sale_items (sale_id, product_id, product_name, quantity, unit_price, total)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for _, item := range sale.Items {
		if _, err := tx.Exec(ctx, itemQ,
			sale.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice.String(),
			item.Total.String(),
		); err != nil {
			r.logger.Printf("salelog: insert item sale_id=%s product_id=%s error=%v", sale.ID, item.ProductID, err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("salelog: archived sale id=%s items=%d", sale.ID, len(sale.Items))
	return nil
}

func (r *postgresRepo) ListRecent(ctx context.Context, limit int) ([]domain.Sale, error) {
	const q = `
SELECT id::text, subtotal::text, discount::text, tax::text, total::text, amount_paid::text, change::text, cashier, created_at
FROM sales
ORDER BY created_at DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sale
	for rows.Next() {
		var (
			sale                                                  domain.Sale
			subtotal, discount, tax, total, amountPaid, changeAmt string
		)
		if err := rows.Scan(&sale.ID, &subtotal, &discount, &tax, &total, &amountPaid, &changeAmt, &sale.Cashier, &sale.Timestamp); err != nil {
			return nil, err
		}
		if sale.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, err
		}
		if sale.Discount, err = decimal.NewFromString(discount); err != nil {
			return nil, err
		}
		if sale.Tax, err = decimal.NewFromString(tax); err != nil {
			return nil, err
		}
		if sale.Total, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		if sale.AmountPaid, err = decimal.NewFromString(amountPaid); err != nil {
			return nil, err
		}
		if sale.Change, err = decimal.NewFromString(changeAmt); err != nil {
			return nil, err
		}
		result = append(result, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.listItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *postgresRepo) listItems(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	const q = `
SELECT product_id, product_name, quantity, unit_price::text, total::text
FROM sale_items
WHERE sale_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SaleItem
	for rows.Next() {
		var (
			item             domain.SaleItem
			unitPrice, total string
		)
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &unitPrice, &total); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return nil, err
		}
		if item.Total, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
