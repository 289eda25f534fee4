package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	_ "modernc.org/sqlite"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	sqliteDriver  = "sqlite"
	sqliteDialect = "sqlite3"
	migrationsDir = "migrations"

	// Fixed width so that created_at sorts correctly as text.
	sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

// OpenSQLite opens the local store at path, applies connection pragmas and
// runs pending migrations.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One connection keeps pragmas and in-memory databases consistent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(sqliteDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}
	return nil
}

// SQLiteCustomerRepository is the local customer store used when MongoDB is
// disabled or unreachable at startup.
type SQLiteCustomerRepository struct {
	db *sql.DB
}

// NewSQLiteCustomerRepository creates a repository over an opened database.
func NewSQLiteCustomerRepository(db *sql.DB) *SQLiteCustomerRepository {
	return &SQLiteCustomerRepository{db: db}
}

// Create stores the customer with its rooms and items in one transaction.
func (r *SQLiteCustomerRepository) Create(ctx context.Context, customer *model.Customer) (err error) {
	prepareCustomer(customer)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin customer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id := customer.ID.Hex()
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO customers (id, fullname, phone, address, attender, attender_phone,
			total_amount, total_area, total_weight, loading_charges, total_tile_cost, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, customer.FullName, customer.Phone, customer.Address, customer.Attender, customer.AttenderPhone,
		customer.TotalAmount, customer.TotalArea, customer.TotalWeight, customer.LoadingCharges, customer.TotalTileCost,
		customer.CreatedAt.UTC().Format(sqliteTimeLayout),
	); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	for ri, room := range customer.Rooms {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO customer_rooms (customer_id, position, name, area_type, total_area, total_cost, total_weight)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, ri, room.Name, room.AreaType, room.TotalArea, room.TotalCost, room.TotalWeight,
		); err != nil {
			return fmt.Errorf("insert customer room: %w", err)
		}

		for ii, item := range room.Items {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO customer_items (customer_id, room_position, position, type, design, area, boxes,
					price, cost, weight, description, dark_boxes, light_boxes, highlight_boxes,
					tiles_per_width, tiles_per_length)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, ri, ii, item.Type, item.Design, item.Area, item.Boxes,
				item.Price, item.Cost, item.Weight, item.Description, item.DarkBoxes, item.LightBoxes, item.HighlightBoxes,
				item.TilesPerWidth, item.TilesPerLength,
			); err != nil {
				return fmt.Errorf("insert customer item: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit customer: %w", err)
	}
	return nil
}

// GetByID returns one customer with its rooms.
func (r *SQLiteCustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if _, err := parseCustomerID(id); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, customerSelect+` WHERE id = ?`, id)
	customer, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	if err := r.loadRooms(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List returns customers newest first.
func (r *SQLiteCustomerRepository) List(ctx context.Context, limit int) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx, customerSelect+` ORDER BY created_at DESC, id DESC LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("list customers: %w", err)
	}
	_ = rows.Close()

	// Rooms are loaded after the cursor is closed; the pool has one connection.
	for i := range customers {
		if err := r.loadRooms(ctx, &customers[i]); err != nil {
			return nil, err
		}
	}
	return customers, nil
}

const customerSelect = `
	SELECT id, fullname, phone, address, attender, attender_phone,
		total_amount, total_area, total_weight, loading_charges, total_tile_cost, created_at
	FROM customers`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*model.Customer, error) {
	var (
		c         model.Customer
		id        string
		createdAt string
	)
	if err := row.Scan(&id, &c.FullName, &c.Phone, &c.Address, &c.Attender, &c.AttenderPhone,
		&c.TotalAmount, &c.TotalArea, &c.TotalWeight, &c.LoadingCharges, &c.TotalTileCost, &createdAt); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("stored customer id %q: %w", id, err)
	}
	c.ID = oid

	c.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("stored customer created_at %q: %w", createdAt, err)
	}
	return &c, nil
}

func (r *SQLiteCustomerRepository) loadRooms(ctx context.Context, customer *model.Customer) error {
	id := customer.ID.Hex()

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, area_type, total_area, total_cost, total_weight
		FROM customer_rooms WHERE customer_id = ? ORDER BY position`, id)
	if err != nil {
		return fmt.Errorf("load customer rooms: %w", err)
	}
	rooms := make([]model.CustomerRoom, 0)
	for rows.Next() {
		var room model.CustomerRoom
		if err := rows.Scan(&room.Name, &room.AreaType, &room.TotalArea, &room.TotalCost, &room.TotalWeight); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan customer room: %w", err)
		}
		room.Items = make([]model.CustomerItem, 0)
		rooms = append(rooms, room)
	}
	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		return fmt.Errorf("load customer rooms: %w", err)
	}

	rows, err = r.db.QueryContext(ctx, `
		SELECT room_position, type, design, area, boxes, price, cost, weight, description,
			dark_boxes, light_boxes, highlight_boxes, tiles_per_width, tiles_per_length
		FROM customer_items WHERE customer_id = ? ORDER BY room_position, position`, id)
	if err != nil {
		return fmt.Errorf("load customer items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()
	for rows.Next() {
		var (
			roomPos int
			item    model.CustomerItem
		)
		if err := rows.Scan(&roomPos, &item.Type, &item.Design, &item.Area, &item.Boxes, &item.Price,
			&item.Cost, &item.Weight, &item.Description, &item.DarkBoxes, &item.LightBoxes,
			&item.HighlightBoxes, &item.TilesPerWidth, &item.TilesPerLength); err != nil {
			return fmt.Errorf("scan customer item: %w", err)
		}
		if roomPos < 0 || roomPos >= len(rooms) {
			return fmt.Errorf("customer item references missing room %d", roomPos)
		}
		rooms[roomPos].Items = append(rooms[roomPos].Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load customer items: %w", err)
	}

	customer.Rooms = rooms
	return nil
}
