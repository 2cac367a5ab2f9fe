package database

import "fmt"

func (d *Database) RunMigrations() error {
	// Create the adverts table
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS anuncios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fuente TEXT NOT NULL,
			url TEXT UNIQUE NOT NULL,
			zona TEXT NOT NULL,
			titulo TEXT NOT NULL,
			descripcion TEXT,
			precio TEXT,
			caracteristica_1 TEXT,
			caracteristica_2 TEXT,
			caracteristica_3 TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create anuncios table: %v", err)
	}

	// Index for the zone query the valuation pipeline runs
	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_anuncios_zona
		ON anuncios(zona);
	`)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_anuncios_created_at
		ON anuncios(created_at);
	`)
	if err != nil {
		return err
	}

	return nil
}
