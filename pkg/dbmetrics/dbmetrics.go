package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DBExecutor общий интерфейс *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Observer получатель метрик запросов
type Observer interface {
	ObserveDBQuery(operation string, success bool, duration time.Duration)
}

// DB обертка над DBExecutor, записывающая длительность и результат каждого запроса
type DB struct {
	db       DBExecutor
	observer Observer
}

// Wrap оборачивает подключение; при observer == nil возвращает обертку без метрик
func Wrap(db DBExecutor, observer Observer) *DB {
	return &DB{db: db, observer: observer}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, err, start)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, err, start)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)

	// sql.ErrNoRows не считается ошибкой запроса
	err := row.Err()
	if err == sql.ErrNoRows {
		err = nil
	}
	d.observe(query, err, start)
	return row
}

func (d *DB) observe(query string, err error, start time.Time) {
	if d.observer == nil {
		return
	}
	d.observer.ObserveDBQuery(Operation(query), err == nil, time.Since(start))
}

// Operation возвращает SQL-команду запроса в нижнем регистре (select, insert, ...)
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
