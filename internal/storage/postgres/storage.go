package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
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

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type editRequestRepository struct {
	storage *Storage
}

type ticketRepository struct {
	storage *Storage
}

type voucherRepository struct {
	storage *Storage
}

type settingsRepository struct {
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

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) EditRequests() repository.EditRequestRepository {
	return &editRequestRepository{storage: s}
}

func (s *Storage) Tickets() repository.TicketRepository {
	return &ticketRepository{storage: s}
}

func (s *Storage) Vouchers() repository.VoucherRepository {
	return &voucherRepository{storage: s}
}

func (s *Storage) Settings() repository.SettingsRepository {
	return &settingsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            status TEXT NOT NULL,
            ban_reason TEXT NOT NULL DEFAULT '',
            ban_reason_details TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS vouchers (
            id TEXT PRIMARY KEY,
            code TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(id),
            product_link TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            voucher_code TEXT NOT NULL DEFAULT '',
            customer_name TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            contact TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL DEFAULT '',
            service_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            tracking_code TEXT NOT NULL DEFAULT '',
            cancellation_reason TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_edit_requests (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            rejection_reason TEXT NOT NULL DEFAULT '',
            token TEXT NOT NULL DEFAULT '',
            expires_at TIMESTAMPTZ,
            old_data JSONB,
            new_data JSONB
        )`,
		`CREATE TABLE IF NOT EXISTS support_tickets (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            order_id TEXT NOT NULL DEFAULT '',
            issue TEXT NOT NULL,
            contact_link TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS ticket_messages (
            id TEXT PRIMARY KEY,
            ticket_id TEXT NOT NULL REFERENCES support_tickets(id) ON DELETE CASCADE,
            author TEXT NOT NULL,
            content TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            id SMALLINT PRIMARY KEY CHECK (id = 1),
            data JSONB NOT NULL
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_edit_requests_order ON order_edit_requests(order_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_edit_requests_token ON order_edit_requests(token)`,
		`CREATE INDEX IF NOT EXISTS idx_ticket_messages_ticket ON ticket_messages(ticket_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (id, username, email, password_hash, role, status, ban_reason, ban_reason_details, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.storage.pool.Exec(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.Status, u.BanReason, u.BanReasonDetails, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

const userColumns = `id, username, email, password_hash, role, status, ban_reason, ban_reason_details, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.BanReason, &u.BanReasonDetails, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByIdentity(ctx context.Context, usernameOrEmail string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username=$1 OR LOWER(email)=LOWER($1)`
	return scanUser(r.storage.pool.QueryRow(ctx, query, usernameOrEmail))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.BanReason, &u.BanReasonDetails, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) SetBan(ctx context.Context, id string, status model.UserStatus, reason, details string) error {
	const query = `UPDATE users SET status=$1, ban_reason=$2, ban_reason_details=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, status, reason, details, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) SetRole(ctx context.Context, id string, role model.Role) error {
	const query = `UPDATE users SET role=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) ReplaceAll(ctx context.Context, users []model.User) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM users`); err != nil {
			return err
		}
		const insert = `INSERT INTO users (id, username, email, password_hash, role, status, ban_reason, ban_reason_details, created_at)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		for _, u := range users {
			if _, err := tx.Exec(ctx, insert, u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.Status, u.BanReason, u.BanReasonDetails, u.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, product_link, quantity, voucher_code, customer_name, address, contact, notes, email,
                      service_fee, status, payment_status, tracking_code, cancellation_reason, created_at, updated_at`

func scanOrderRow(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.ProductLink, &o.Quantity, &o.VoucherCode,
		&o.CustomerName, &o.Address, &o.Contact, &o.Notes, &o.Email,
		&o.ServiceFee, &o.Status, &o.PaymentStatus, &o.TrackingCode, &o.CancellationReason,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	const query = `INSERT INTO orders (id, user_id, product_link, quantity, voucher_code, customer_name, address, contact, notes, email,
                                       service_fee, status, payment_status, tracking_code, cancellation_reason, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.storage.pool.Exec(ctx, query,
		o.ID, o.UserID, o.ProductLink, o.Quantity, o.VoucherCode,
		o.CustomerName, o.Address, o.Contact, o.Notes, o.Email,
		o.ServiceFee, o.Status, o.PaymentStatus, o.TrackingCode, o.CancellationReason,
		o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrderRow(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductLink, &o.Quantity, &o.VoucherCode,
			&o.CustomerName, &o.Address, &o.Contact, &o.Notes, &o.Email,
			&o.ServiceFee, &o.Status, &o.PaymentStatus, &o.TrackingCode, &o.CancellationReason,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	const query = `UPDATE orders SET product_link=$1, quantity=$2, voucher_code=$3, customer_name=$4, address=$5,
                       contact=$6, notes=$7, email=$8, status=$9, payment_status=$10, tracking_code=$11,
                       cancellation_reason=$12, updated_at=NOW()
                   WHERE id=$13`
	tag, err := r.storage.pool.Exec(ctx, query,
		o.ProductLink, o.Quantity, o.VoucherCode, o.CustomerName, o.Address,
		o.Contact, o.Notes, o.Email, o.Status, o.PaymentStatus, o.TrackingCode,
		o.CancellationReason, o.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdateShipping(ctx context.Context, orderID string, info model.ShippingInfo) error {
	const query = `UPDATE orders SET customer_name=$1, address=$2, contact=$3, notes=$4, email=$5, updated_at=NOW() WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query, info.CustomerName, info.Address, info.Contact, info.Notes, info.Email, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SetPaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) error {
	const query = `UPDATE orders SET payment_status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SumServiceFee(ctx context.Context, status model.OrderStatus) (float64, error) {
	var sum float64
	const query = `SELECT COALESCE(SUM(service_fee), 0) FROM orders WHERE status=$1`
	if err := r.storage.pool.QueryRow(ctx, query, status).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *orderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders`)
	return err
}

func (r *orderRepository) ReplaceAll(ctx context.Context, orders []model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM orders`); err != nil {
			return err
		}
		const insert = `INSERT INTO orders (id, user_id, product_link, quantity, voucher_code, customer_name, address, contact, notes, email,
                                            service_fee, status, payment_status, tracking_code, cancellation_reason, created_at, updated_at)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
		for _, o := range orders {
			if _, err := tx.Exec(ctx, insert,
				o.ID, o.UserID, o.ProductLink, o.Quantity, o.VoucherCode,
				o.CustomerName, o.Address, o.Contact, o.Notes, o.Email,
				o.ServiceFee, o.Status, o.PaymentStatus, o.TrackingCode, o.CancellationReason,
				o.CreatedAt, o.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- EditRequestRepository implementation ---

const editRequestColumns = `id, order_id, status, created_at, rejection_reason, token, expires_at, old_data, new_data`

func scanEditRequest(row pgx.Row) (*model.EditRequest, error) {
	var (
		req     model.EditRequest
		oldData []byte
		newData []byte
	)
	err := row.Scan(&req.ID, &req.OrderID, &req.Status, &req.CreatedAt, &req.RejectionReason,
		&req.Token, &req.ExpiresAt, &oldData, &newData)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := decodeShipping(oldData, &req.OldData); err != nil {
		return nil, err
	}
	if err := decodeShipping(newData, &req.NewData); err != nil {
		return nil, err
	}
	return &req, nil
}

func decodeShipping(raw []byte, dst **model.ShippingInfo) error {
	if len(raw) == 0 {
		return nil
	}
	var info model.ShippingInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return fmt.Errorf("decode shipping info: %w", err)
	}
	*dst = &info
	return nil
}

func encodeShipping(info *model.ShippingInfo) (any, error) {
	if info == nil {
		return nil, nil
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("encode shipping info: %w", err)
	}
	return raw, nil
}

func (r *editRequestRepository) Create(ctx context.Context, req *model.EditRequest) error {
	oldData, err := encodeShipping(req.OldData)
	if err != nil {
		return err
	}
	newData, err := encodeShipping(req.NewData)
	if err != nil {
		return err
	}
	const query = `INSERT INTO order_edit_requests (id, order_id, status, created_at, rejection_reason, token, expires_at, old_data, new_data)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.storage.pool.Exec(ctx, query,
		req.ID, req.OrderID, req.Status, req.CreatedAt, req.RejectionReason, req.Token, req.ExpiresAt, oldData, newData)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *editRequestRepository) GetByID(ctx context.Context, id string) (*model.EditRequest, error) {
	query := `SELECT ` + editRequestColumns + ` FROM order_edit_requests WHERE id=$1`
	return scanEditRequest(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *editRequestRepository) GetByToken(ctx context.Context, token string) (*model.EditRequest, error) {
	if token == "" {
		return nil, domainErrors.ErrNotFound
	}
	query := `SELECT ` + editRequestColumns + ` FROM order_edit_requests WHERE token=$1`
	return scanEditRequest(r.storage.pool.QueryRow(ctx, query, token))
}

func (r *editRequestRepository) HasPendingForOrder(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	const query = `SELECT EXISTS (SELECT 1 FROM order_edit_requests WHERE order_id=$1 AND status=$2)`
	if err := r.storage.pool.QueryRow(ctx, query, orderID, model.EditRequestStatusPending).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *editRequestRepository) listRequests(ctx context.Context, query string, args ...any) ([]model.EditRequest, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.EditRequest
	for rows.Next() {
		var (
			req     model.EditRequest
			oldData []byte
			newData []byte
		)
		if err := rows.Scan(&req.ID, &req.OrderID, &req.Status, &req.CreatedAt, &req.RejectionReason,
			&req.Token, &req.ExpiresAt, &oldData, &newData); err != nil {
			return nil, err
		}
		if err := decodeShipping(oldData, &req.OldData); err != nil {
			return nil, err
		}
		if err := decodeShipping(newData, &req.NewData); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *editRequestRepository) ListAll(ctx context.Context) ([]model.EditRequest, error) {
	query := `SELECT ` + editRequestColumns + ` FROM order_edit_requests ORDER BY created_at DESC`
	return r.listRequests(ctx, query)
}

func (r *editRequestRepository) ListExpiredLinks(ctx context.Context, now time.Time) ([]model.EditRequest, error) {
	query := `SELECT ` + editRequestColumns + ` FROM order_edit_requests
              WHERE status=$1 AND token <> '' AND expires_at IS NOT NULL AND expires_at < $2`
	return r.listRequests(ctx, query, model.EditRequestStatusPending, now)
}

func (r *editRequestRepository) SubmitLinkData(ctx context.Context, id string, oldData, newData model.ShippingInfo) error {
	oldRaw, err := encodeShipping(&oldData)
	if err != nil {
		return err
	}
	newRaw, err := encodeShipping(&newData)
	if err != nil {
		return err
	}
	const query = `UPDATE order_edit_requests SET old_data=$1, new_data=$2, token='' WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, oldRaw, newRaw, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *editRequestRepository) SetStatus(ctx context.Context, id string, status model.EditRequestStatus, rejectionReason string) error {
	const query = `UPDATE order_edit_requests SET status=$1, rejection_reason=$2 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, status, rejectionReason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *editRequestRepository) ReplaceAll(ctx context.Context, requests []model.EditRequest) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM order_edit_requests`); err != nil {
			return err
		}
		const insert = `INSERT INTO order_edit_requests (id, order_id, status, created_at, rejection_reason, token, expires_at, old_data, new_data)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		for _, req := range requests {
			oldData, err := encodeShipping(req.OldData)
			if err != nil {
				return err
			}
			newData, err := encodeShipping(req.NewData)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, insert,
				req.ID, req.OrderID, req.Status, req.CreatedAt, req.RejectionReason,
				req.Token, req.ExpiresAt, oldData, newData); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- TicketRepository implementation ---

func (r *ticketRepository) Create(ctx context.Context, t *model.SupportTicket) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO support_tickets (id, user_id, order_id, issue, contact_link, status, created_at)
                        VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := tx.Exec(ctx, insert, t.ID, t.UserID, t.OrderID, t.Issue, t.ContactLink, t.Status, t.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}
		const insertMsg = `INSERT INTO ticket_messages (id, ticket_id, author, content, created_at)
                           VALUES ($1, $2, $3, $4, $5)`
		for _, m := range t.Messages {
			if _, err := tx.Exec(ctx, insertMsg, m.ID, t.ID, m.Author, m.Content, m.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*model.SupportTicket, error) {
	const query = `SELECT id, user_id, order_id, issue, contact_link, status, created_at FROM support_tickets WHERE id=$1`
	var t model.SupportTicket
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.UserID, &t.OrderID, &t.Issue, &t.ContactLink, &t.Status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	messages, err := r.messagesFor(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Messages = messages
	return &t, nil
}

func (r *ticketRepository) messagesFor(ctx context.Context, ticketID string) ([]model.TicketMessage, error) {
	const query = `SELECT id, ticket_id, author, content, created_at FROM ticket_messages WHERE ticket_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.TicketMessage
	for rows.Next() {
		var m model.TicketMessage
		if err := rows.Scan(&m.ID, &m.TicketID, &m.Author, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ticketRepository) listTickets(ctx context.Context, query string, args ...any) ([]model.SupportTicket, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SupportTicket
	for rows.Next() {
		var t model.SupportTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.OrderID, &t.Issue, &t.ContactLink, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range result {
		messages, err := r.messagesFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Messages = messages
	}
	return result, nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]model.SupportTicket, error) {
	const query = `SELECT id, user_id, order_id, issue, contact_link, status, created_at
                   FROM support_tickets WHERE user_id=$1 ORDER BY created_at DESC`
	return r.listTickets(ctx, query, userID)
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]model.SupportTicket, error) {
	const query = `SELECT id, user_id, order_id, issue, contact_link, status, created_at
                   FROM support_tickets ORDER BY created_at DESC`
	return r.listTickets(ctx, query)
}

func (r *ticketRepository) AppendMessage(ctx context.Context, m *model.TicketMessage) error {
	const query = `INSERT INTO ticket_messages (id, ticket_id, author, content, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.storage.pool.Exec(ctx, query, m.ID, m.TicketID, m.Author, m.Content, m.CreatedAt)
	return err
}

func (r *ticketRepository) SetStatus(ctx context.Context, id string, status model.TicketStatus) error {
	const query = `UPDATE support_tickets SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *ticketRepository) ReplaceAll(ctx context.Context, tickets []model.SupportTicket) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM ticket_messages`); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM support_tickets`); err != nil {
			return err
		}
		const insert = `INSERT INTO support_tickets (id, user_id, order_id, issue, contact_link, status, created_at)
                        VALUES ($1, $2, $3, $4, $5, $6, $7)`
		const insertMsg = `INSERT INTO ticket_messages (id, ticket_id, author, content, created_at)
                           VALUES ($1, $2, $3, $4, $5)`
		for _, t := range tickets {
			if _, err := tx.Exec(ctx, insert, t.ID, t.UserID, t.OrderID, t.Issue, t.ContactLink, t.Status, t.CreatedAt); err != nil {
				return err
			}
			for _, m := range t.Messages {
				if _, err := tx.Exec(ctx, insertMsg, m.ID, t.ID, m.Author, m.Content, m.CreatedAt); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// --- VoucherRepository implementation ---

func (r *voucherRepository) Create(ctx context.Context, v *model.Voucher) error {
	const query = `INSERT INTO vouchers (id, code, description, price) VALUES ($1, $2, $3, $4)`
	_, err := r.storage.pool.Exec(ctx, query, v.ID, v.Code, v.Description, v.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *voucherRepository) GetByCode(ctx context.Context, code string) (*model.Voucher, error) {
	const query = `SELECT id, code, description, price FROM vouchers WHERE code=$1`
	var v model.Voucher
	err := r.storage.pool.QueryRow(ctx, query, code).Scan(&v.ID, &v.Code, &v.Description, &v.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *voucherRepository) List(ctx context.Context) ([]model.Voucher, error) {
	const query = `SELECT id, code, description, price FROM vouchers ORDER BY code`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Voucher
	for rows.Next() {
		var v model.Voucher
		if err := rows.Scan(&v.ID, &v.Code, &v.Description, &v.Price); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *voucherRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM vouchers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *voucherRepository) ReplaceAll(ctx context.Context, vouchers []model.Voucher) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM vouchers`); err != nil {
			return err
		}
		const insert = `INSERT INTO vouchers (id, code, description, price) VALUES ($1, $2, $3, $4)`
		for _, v := range vouchers {
			if _, err := tx.Exec(ctx, insert, v.ID, v.Code, v.Description, v.Price); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- SettingsRepository implementation ---

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var raw []byte
	err := r.storage.pool.QueryRow(ctx, `SELECT data FROM settings WHERE id=1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	var settings model.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	const query = `INSERT INTO settings (id, data) VALUES (1, $1)
                   ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`
	_, err = r.storage.pool.Exec(ctx, query, raw)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
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

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
