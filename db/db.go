// Package db keeps a small library of named layouts in a sqlite file, so
// grids can be saved from one editing session and replayed in another.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Load/Delete for names missing from the library.
var ErrNotFound = errors.New("layout not found")

// LayoutInfo describes a stored layout without its cells.
type LayoutInfo struct {
	Name    string
	Rows    int
	Cols    int
	Updated string
}

type Storage interface {
	Save(name string, g *grid.Grid) error
	Load(name string) (*grid.Grid, error)
	List() ([]LayoutInfo, error)
	Delete(name string) error
	Close()
}

type SQLiteStorage struct {
	db *sql.DB
}

func initDBStorage(db *sql.DB) error {
	sqlStmt := `
	create table if not exists layouts(
		name text primary key,
		rows int, cols int,
		cells text,
		updated datetime);`

	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("could not initialize layouts table: %w", err)
	}

	return nil
}

func ConnectDB(path string) (Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}

	if err := initDBStorage(db); err != nil {
		return nil, err
	}

	return &SQLiteStorage{db}, nil
}

// encodeCells flattens a grid into abbreviation rows: cells joined by
// commas, rows joined by semicolons.
func encodeCells(g *grid.Grid) string {
	rows := make([]string, 0, g.Rows())

	for row := range g.RowTokens() {
		abbrevs := make([]string, len(row))
		for i, tok := range row {
			abbrevs[i] = tok.Abbrev()
		}

		rows = append(rows, strings.Join(abbrevs, ","))
	}

	return strings.Join(rows, ";")
}

func decodeCells(cells string, rows, cols int) (*grid.Grid, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("stored layout has bad dimensions: %w", err)
	}

	for i, rowText := range strings.Split(cells, ";") {
		for j, abbrev := range strings.Split(rowText, ",") {
			tok, err := model.ParseAbbrev(abbrev)
			if err != nil {
				return nil, fmt.Errorf("stored layout has bad cell (%d,%d): %w", i, j, err)
			}

			if err := g.Set(i, j, tok); err != nil {
				return nil, fmt.Errorf("stored layout does not fit its dimensions: %w", err)
			}
		}
	}

	return g, nil
}

func (s *SQLiteStorage) Save(name string, g *grid.Grid) error {
	_, err := s.db.Exec(`insert into layouts(name, rows, cols, cells, updated)
	    values(?, ?, ?, ?, datetime('now', 'subsec'))
	    on conflict(name) do update set
	        rows = excluded.rows, cols = excluded.cols,
	        cells = excluded.cells, updated = excluded.updated`,
		name, g.Rows(), g.Cols(), encodeCells(g))
	if err != nil {
		return fmt.Errorf("could not save layout %q: %w", name, err)
	}

	return nil
}

func (s *SQLiteStorage) Load(name string) (*grid.Grid, error) {
	var (
		rows, cols int
		cells      string
	)

	err := s.db.QueryRow(`select rows, cols, cells from layouts where name = ?`, name).
		Scan(&rows, &cols, &cells)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("layout %q: %w", name, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("could not load layout %q: %w", name, err)
	}

	return decodeCells(cells, rows, cols)
}

func (s *SQLiteStorage) List() ([]LayoutInfo, error) {
	rows, err := s.db.Query(`select name, rows, cols, updated from layouts order by name`)
	if err != nil {
		return nil, fmt.Errorf("could not list layouts: %w", err)
	}

	defer rows.Close()

	result := make([]LayoutInfo, 0)

	for rows.Next() {
		var info LayoutInfo

		if err := rows.Scan(&info.Name, &info.Rows, &info.Cols, &info.Updated); err != nil {
			return nil, fmt.Errorf("could not scan layout row: %w", err)
		}

		result = append(result, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate layouts: %w", err)
	}

	return result, nil
}

func (s *SQLiteStorage) Delete(name string) error {
	res, err := s.db.Exec(`delete from layouts where name = ?`, name)
	if err != nil {
		return fmt.Errorf("could not delete layout %q: %w", name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not delete layout %q: %w", name, err)
	}

	if affected == 0 {
		return fmt.Errorf("layout %q: %w", name, ErrNotFound)
	}

	return nil
}

func (s *SQLiteStorage) Close() {
	s.db.Close()
}
