package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
	"github.com/craftpine/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, extracted so
// tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

type stockRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) Stocks() repository.StockRepository {
	return &stockRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            user_id UUID NOT NULL REFERENCES users(id),
            street TEXT NOT NULL,
            city TEXT NOT NULL,
            country TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS stocks (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            quantity INT NOT NULL CHECK (quantity >= 0)
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            name TEXT NOT NULL,
            price NUMERIC(10,2) NOT NULL,
            stock_id UUID UNIQUE NOT NULL REFERENCES stocks(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            user_id UUID NOT NULL REFERENCES users(id),
            product_id UUID NOT NULL REFERENCES products(id),
            address_id UUID NOT NULL REFERENCES addresses(id),
            quantity INT NOT NULL CHECK (quantity > 0),
            total NUMERIC(10,2) NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            deleted_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	const query = `SELECT p.id, p.name, p.price, p.stock_id, s.quantity, p.created_at
                   FROM products p JOIN stocks s ON s.id = p.stock_id
                   WHERE p.id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.StockID, &p.StockQuantity, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- AddressRepository implementation ---

func (r *addressRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	const query = `SELECT id, user_id, street, city, country, created_at FROM addresses WHERE id=$1`
	var a model.Address
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.Country, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- StockRepository implementation ---

func (r *stockRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Stock, error) {
	const query = `SELECT id, quantity FROM stocks WHERE id=$1`
	var st model.Stock
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&st.ID, &st.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

// Reduce decrements the counter only when enough stock remains. The
// condition lives in the UPDATE itself, so two concurrent reservations can
// never both succeed on the last units.
func (r *stockRepository) Reduce(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error) {
	const query = `UPDATE stocks SET quantity = quantity - $2
                   WHERE id=$1 AND quantity >= $2
                   RETURNING id, quantity`
	var st model.Stock
	err := r.storage.pool.QueryRow(ctx, query, id, quantity).Scan(&st.ID, &st.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.disambiguateReduce(ctx, id)
		}
		return nil, err
	}
	return &st, nil
}

func (r *stockRepository) disambiguateReduce(ctx context.Context, id uuid.UUID) error {
	var quantity int
	err := r.storage.pool.QueryRow(ctx, `SELECT quantity FROM stocks WHERE id=$1`, id).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrInsufficientStock
}

func (r *stockRepository) Set(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error) {
	const query = `UPDATE stocks SET quantity=$2 WHERE id=$1 RETURNING id, quantity`
	var st model.Stock
	err := r.storage.pool.QueryRow(ctx, query, id, quantity).Scan(&st.ID, &st.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrUpdateFailed, err)
	}
	return &st, nil
}

// restockTx returns quantity units to the stock owned by the order's
// product. Relative update: compensation never trusts a previously read
// quantity.
func (s *Storage) restockTx(ctx context.Context, tx pgx.Tx, productID uuid.UUID, quantity int) error {
	const query = `UPDATE stocks SET quantity = quantity + $2
                   FROM products
                   WHERE stocks.id = products.stock_id AND products.id = $1`
	ct, err := tx.Exec(ctx, query, productID, quantity)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domainErrors.ErrUpdateFailed
	}
	return nil
}

// --- OrderRepository implementation ---

// Create reserves stock and inserts the order in a single transaction; if
// the reservation fails nothing is persisted.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var stockID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT stock_id FROM products WHERE id=$1`, order.ProductID).Scan(&stockID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const reserve = `UPDATE stocks SET quantity = quantity - $2
                         WHERE id=$1 AND quantity >= $2`
		ct, err := tx.Exec(ctx, reserve, stockID, order.Quantity)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return domainErrors.ErrInsufficientStock
		}

		const insert = `INSERT INTO orders (id, user_id, product_id, address_id, quantity, total, status)
                        VALUES ($1, $2, $3, $4, $5, $6, $7)
                        RETURNING created_at, updated_at`
		err = tx.QueryRow(ctx, insert,
			order.ID, order.UserID, order.ProductID, order.AddressID,
			order.Quantity, order.Total, order.Status,
		).Scan(&created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrCreateFailed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const orderColumns = `id, user_id, product_id, address_id, quantity, total, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.AddressID, &o.Quantity, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND deleted_at IS NULL`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders WHERE user_id=$1 AND deleted_at IS NULL
              ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders WHERE deleted_at IS NULL
              ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Transition moves a pending order to a terminal status. The pending guard
// is part of the UPDATE, so a concurrent transition wins at most once and
// compensation can never run twice for the same order.
func (r *orderRepository) Transition(ctx context.Context, id uuid.UUID, to model.OrderStatus, restock bool) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE orders SET status=$2, updated_at=NOW()
                        WHERE id=$1 AND status='pending' AND deleted_at IS NULL
                        RETURNING id, user_id, product_id, address_id, quantity, total, status, created_at, updated_at`
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, update, id, to))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.disambiguateTransition(ctx, tx, id)
			}
			return err
		}

		if restock {
			return r.storage.restockTx(ctx, tx, order.ProductID, order.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) disambiguateTransition(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var status model.OrderStatus
	err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 AND deleted_at IS NULL`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrOrderNotPending
}

// Delete soft deletes the order; a still-pending order additionally gets
// its reservation returned to stock, all in one transaction.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `SELECT ` + orderColumns + `
                       FROM orders WHERE id=$1 AND deleted_at IS NULL FOR UPDATE`
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if order.Status == model.OrderStatusPending {
			if err := r.storage.restockTx(ctx, tx, order.ProductID, order.Quantity); err != nil {
				return err
			}
		}

		ct, err := tx.Exec(ctx, `UPDATE orders SET deleted_at=NOW(), updated_at=NOW() WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return domainErrors.ErrDeleteFailed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders
              WHERE status='pending' AND deleted_at IS NULL AND created_at < $1
              ORDER BY created_at
              LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Error("rollback transaction", slog.String("error", rbErr.Error()))
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
