package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// GetListingsByZone returns every stored advert row for a canonical zone
// name, newest first.
func (d *Database) GetListingsByZone(zone string) ([]models.RawListing, error) {
	query := `
        SELECT
            id,
            fuente,
            url,
            zona,
            titulo,
            COALESCE(descripcion, '') as descripcion,
            COALESCE(precio, '') as precio,
            COALESCE(caracteristica_1, '') as caracteristica_1,
            COALESCE(caracteristica_2, '') as caracteristica_2,
            COALESCE(caracteristica_3, '') as caracteristica_3,
            COALESCE(created_at, CURRENT_TIMESTAMP) as created_at
        FROM anuncios
        WHERE LOWER(zona) = LOWER(?)
        ORDER BY created_at DESC
    `
	rows, err := d.db.Query(query, zone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListings(rows)
}

// GetAllListings returns stored adverts, optionally filtered by zone,
// capped at limit.
func (d *Database) GetAllListings(zone string, limit int) ([]models.RawListing, error) {
	query := `
        SELECT
            id,
            fuente,
            url,
            zona,
            titulo,
            COALESCE(descripcion, '') as descripcion,
            COALESCE(precio, '') as precio,
            COALESCE(caracteristica_1, '') as caracteristica_1,
            COALESCE(caracteristica_2, '') as caracteristica_2,
            COALESCE(caracteristica_3, '') as caracteristica_3,
            COALESCE(created_at, CURRENT_TIMESTAMP) as created_at
        FROM anuncios
        WHERE (? = '' OR LOWER(zona) = LOWER(?))
        ORDER BY created_at DESC
        LIMIT ?
    `
	rows, err := d.db.Query(query, zone, zone, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListings(rows)
}

// GetListing returns a single advert by id, nil when not found.
func (d *Database) GetListing(id int64) (*models.RawListing, error) {
	query := `
        SELECT
            id,
            fuente,
            url,
            zona,
            titulo,
            COALESCE(descripcion, '') as descripcion,
            COALESCE(precio, '') as precio,
            COALESCE(caracteristica_1, '') as caracteristica_1,
            COALESCE(caracteristica_2, '') as caracteristica_2,
            COALESCE(caracteristica_3, '') as caracteristica_3,
            COALESCE(created_at, CURRENT_TIMESTAMP) as created_at
        FROM anuncios
        WHERE id = ?
    `
	row := d.db.QueryRow(query, id)
	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// InsertListings stores a batch of advert rows inside one transaction,
// replacing rows with the same URL.
func (d *Database) InsertListings(batch []models.RawListing) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO anuncios
		(fuente, url, zona, titulo, descripcion, precio,
		 caracteristica_1, caracteristica_2, caracteristica_3, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, listing := range batch {
		createdAt := listing.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		_, err = stmt.Exec(
			listing.Fuente,
			listing.URL,
			listing.Zona,
			listing.Titulo,
			listing.Descripcion,
			listing.PrecioTexto,
			listing.Caracteristica1,
			listing.Caracteristica2,
			listing.Caracteristica3,
			createdAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert listing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteListing removes an advert by id.
func (d *Database) DeleteListing(id int64) error {
	result, err := d.db.Exec("DELETE FROM anuncios WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("listing not found: %d", id)
	}

	return nil
}

// CountListingsByZone returns the number of stored adverts per zone.
func (d *Database) CountListingsByZone() (map[string]int, error) {
	rows, err := d.db.Query(`
		SELECT zona, COUNT(*) as n
		FROM anuncios
		GROUP BY zona
		ORDER BY n DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var zone string
		var n int
		if err := rows.Scan(&zone, &n); err != nil {
			return nil, fmt.Errorf("failed to scan zone count: %w", err)
		}
		counts[zone] = n
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zone counts: %w", err)
	}

	return counts, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*models.RawListing, error) {
	var l models.RawListing
	var createdAt sql.NullString

	err := row.Scan(
		&l.ID,
		&l.Fuente,
		&l.URL,
		&l.Zona,
		&l.Titulo,
		&l.Descripcion,
		&l.PrecioTexto,
		&l.Caracteristica1,
		&l.Caracteristica2,
		&l.Caracteristica3,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if createdAt.Valid && createdAt.String != "" {
		if t, err := time.Parse(time.RFC3339, createdAt.String); err == nil {
			l.CreatedAt = t
		}
	}

	return &l, nil
}

func scanListings(rows *sql.Rows) ([]models.RawListing, error) {
	var listings []models.RawListing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}
