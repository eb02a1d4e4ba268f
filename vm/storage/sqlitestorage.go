package storage

import (
	"database/sql"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/sarchlab/vmsim/vm"
)

// A SQLiteStorage keeps blocks as rows of a SQLite table. Blocks that have
// never been written have no row; reading them yields zeros.
type SQLiteStorage struct {
	*sql.DB
	readStatement  *sql.Stmt
	writeStatement *sql.Stmt

	numBlocks int
}

// OpenSQLiteStorage opens the database at path and prepares the block table.
func OpenSQLiteStorage(path string, numBlocks int) (*SQLiteStorage, error) {
	if path == "" {
		return nil, errors.New("sqlite database path must not be empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	s, err := NewSQLiteStorageWithDB(db, numBlocks)
	if err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// NewSQLiteStorageWithDB uses an already opened database.
func NewSQLiteStorageWithDB(db *sql.DB, numBlocks int) (*SQLiteStorage, error) {
	s := &SQLiteStorage{DB: db, numBlocks: numBlocks}

	_, err := s.Exec(`
		CREATE TABLE IF NOT EXISTS blocks
		(
			page INTEGER PRIMARY KEY,
			data BLOB NOT NULL
		);
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create block table")
	}

	s.readStatement, err = s.Prepare(`SELECT data FROM blocks WHERE page = ?`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare read statement")
	}

	s.writeStatement, err = s.Prepare(
		`INSERT OR REPLACE INTO blocks (page, data) VALUES (?, ?)`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare write statement")
	}

	return s, nil
}

// NumBlocks returns the capacity of the store in blocks.
func (s *SQLiteStorage) NumBlocks() int {
	return s.numBlocks
}

// Read fills dst with the block of the given page.
func (s *SQLiteStorage) Read(page vm.PageNum, dst []byte) error {
	if err := s.accessMustBeValid(page, dst); err != nil {
		return err
	}

	var data []byte

	err := s.readStatement.QueryRow(int64(page)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		clear(dst)
		return nil
	}

	if err != nil {
		return errors.Wrapf(err, "failed to read block %d", page)
	}

	if len(data) != vm.PageSize {
		return errors.Errorf("block %d holds %d bytes", page, len(data))
	}

	copy(dst, data)

	return nil
}

// Write persists src as the block of the given page.
func (s *SQLiteStorage) Write(page vm.PageNum, src []byte) error {
	if err := s.accessMustBeValid(page, src); err != nil {
		return err
	}

	_, err := s.writeStatement.Exec(int64(page), src)

	return errors.Wrapf(err, "failed to write block %d", page)
}

// Close releases the statements and the database.
func (s *SQLiteStorage) Close() error {
	s.readStatement.Close()
	s.writeStatement.Close()

	return s.DB.Close()
}

func (s *SQLiteStorage) accessMustBeValid(page vm.PageNum, buf []byte) error {
	if err := blockMustBeInRange(page, s.numBlocks); err != nil {
		return err
	}

	return bufferMustHoldOneBlock(buf)
}
