package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/pkg/storage"
	"github.com/kasuboski/vfp/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vfp/pkg/storage/sqlite/schema/gen/table"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db *sql.DB
}

// New opens the sqlite database at filePath. Migrations are not applied until RunMigrations is called.
func New(ctx context.Context, filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// sqlite only allows one writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLite{
		db: db,
	}, nil
}

// RunMigrations brings the schema up to date
func (s *SQLite) RunMigrations(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	if err := runMigrations(s.db); err != nil {
		return err
	}

	version, dirty, err := s.GetMigrationVersion()
	if err != nil {
		return err
	}
	log.Debugw("database migrated", "version", version, "dirty", dirty)

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateParseResult stores a parse result and returns its id
func (s *SQLite) CreateParseResult(ctx context.Context, result model.ParseResult) (int64, error) {
	stmt := table.ParseResult.
		INSERT(table.ParseResult.MutableColumns.Except(table.ParseResult.CreatedAt)).
		MODEL(result)

	res, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// GetParseResult returns the parse result with the given id
func (s *SQLite) GetParseResult(ctx context.Context, id int64) (*model.ParseResult, error) {
	result := new(model.ParseResult)
	stmt := table.ParseResult.
		SELECT(table.ParseResult.AllColumns).
		FROM(table.ParseResult).
		WHERE(table.ParseResult.ID.EQ(sqlite.Int64(id)))

	err := stmt.QueryContext(ctx, s.db, result)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return result, nil
}

// ListParseResults lists stored parse results newest first
func (s *SQLite) ListParseResults(ctx context.Context, offset, limit int) ([]*model.ParseResult, error) {
	log := logger.FromCtx(ctx)

	results := make([]*model.ParseResult, 0)
	stmt := table.ParseResult.
		SELECT(table.ParseResult.AllColumns).
		FROM(table.ParseResult).
		ORDER_BY(table.ParseResult.ID.DESC())

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	} else if offset > 0 {
		// sqlite requires a limit before an offset
		stmt = stmt.LIMIT(math.MaxInt64).OFFSET(int64(offset))
	}

	err := stmt.QueryContext(ctx, s.db, &results)
	if err != nil {
		log.Errorw("failed to list parse results", "error", err)
		return nil, err
	}

	return results, nil
}

// CountParseResults returns how many parse results are stored
func (s *SQLite) CountParseResults(ctx context.Context) (int, error) {
	query, args := sqlite.SELECT(sqlite.COUNT(sqlite.STAR)).
		FROM(table.ParseResult).
		Sql()

	var count int
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		logger.FromCtx(ctx).Errorw("failed to count parse results", "error", err)
		return 0, err
	}
	return count, nil
}

// DeleteParseResult deletes a stored parse result given its id
func (s *SQLite) DeleteParseResult(ctx context.Context, id int64) error {
	stmt := table.ParseResult.DELETE().WHERE(table.ParseResult.ID.EQ(sqlite.Int64(id)))
	res, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debugw("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
