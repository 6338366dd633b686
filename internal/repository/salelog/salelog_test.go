package salelog

import (
	"context"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
	"pos-terminal/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE sale_items, sales CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestInsertAndListRecent(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, log.New(io.Discard, "", 0))

	first := domain.Sale{
		ID: uuid.NewString(),
		Items: []domain.SaleItem{
			{ProductID: "p1", ProductName: "Coca Cola 500ml", Quantity: 2, UnitPrice: decimal.RequireFromString("1.50"), Total: decimal.RequireFromString("3.00")},
		},
		Subtotal:   decimal.RequireFromString("3.00"),
		Discount:   decimal.Zero,
		Tax:        decimal.RequireFromString("0.24"),
		Total:      decimal.RequireFromString("3.24"),
		AmountPaid: decimal.RequireFromString("5.00"),
		Change:     decimal.RequireFromString("1.76"),
		Cashier:    "Sarah Cashier",
		Timestamp:  time.Now().UTC().Add(-time.Minute).Truncate(time.Microsecond),
	}
	second := domain.Sale{
		ID: uuid.NewString(),
		Items: []domain.SaleItem{
			{ProductID: "p2", ProductName: "Croissant", Quantity: 1, UnitPrice: decimal.RequireFromString("1.99"), Total: decimal.RequireFromString("1.99")},
		},
		Subtotal:   decimal.RequireFromString("1.99"),
		Discount:   decimal.Zero,
		Tax:        decimal.RequireFromString("0.16"),
		Total:      decimal.RequireFromString("2.15"),
		AmountPaid: decimal.RequireFromString("2.15"),
		Change:     decimal.Zero,
		Cashier:    "Sarah Cashier",
		Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	if err := repo.Insert(ctx, second); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	sales, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("sale count = %d, want 2", len(sales))
	}
	if sales[0].ID != second.ID || sales[1].ID != first.ID {
		t.Fatalf("sales not newest first: %s, %s", sales[0].ID, sales[1].ID)
	}

	got := sales[1]
	if !got.Total.Equal(first.Total) || !got.Change.Equal(first.Change) {
		t.Fatalf("amounts do not round trip: %+v", got)
	}
	if got.Cashier != first.Cashier {
		t.Fatalf("cashier = %q, want %q", got.Cashier, first.Cashier)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "p1" || got.Items[0].Quantity != 2 {
		t.Fatalf("items do not round trip: %+v", got.Items)
	}
	if !got.Items[0].UnitPrice.Equal(first.Items[0].UnitPrice) {
		t.Fatalf("unit price = %s, want %s", got.Items[0].UnitPrice, first.Items[0].UnitPrice)
	}
}

func TestListRecentLimit(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, log.New(io.Discard, "", 0))
	for i := 0; i < 3; i++ {
		sale := domain.Sale{
			ID:         uuid.NewString(),
			Subtotal:   decimal.RequireFromString("1.00"),
			Discount:   decimal.Zero,
			Tax:        decimal.RequireFromString("0.08"),
			Total:      decimal.RequireFromString("1.08"),
			AmountPaid: decimal.RequireFromString("2.00"),
			Change:     decimal.RequireFromString("0.92"),
			Cashier:    "Mike Cashier",
			Timestamp:  time.Now().UTC(),
		}
		if err := repo.Insert(ctx, sale); err != nil {
			t.Fatalf("insert %s: %v", sale.ID, err)
		}
	}

	sales, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("sale count = %d, want 2", len(sales))
	}
}
