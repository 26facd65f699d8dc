// Package storage owns the database handle and hands each operation a
// dedicated connection for its lifetime.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/quiz-survey-api/internal/config"
)

type connKey struct{}

// logWriter forwards gorm's slow-query and error lines to logrus.
type logWriter struct {
	log logrus.FieldLogger
}

func (w logWriter) Printf(format string, args ...interface{}) {
	w.log.WithField("component", "gorm").Warnf(format, args...)
}

// newLogger reports slow statements and failures, but not the missing rows
// every 404 produces.
func newLogger(l logrus.FieldLogger) logger.Interface {
	return logger.New(logWriter{log: l}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Scope runs fn with a single connection bound to ctx.
type Scope interface {
	Scoped(ctx context.Context, fn func(ctx context.Context) error) error
}

type Store struct {
	db *gorm.DB
}

func Open(cfg config.DatabaseConfig) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(DSN(cfg))
	default:
		dialector = gormmysql.Open(DSN(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(config.Logger),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	config.Logger.WithField("driver", cfg.Driver).Info("Database connected")
	return &Store{db: db}, nil
}

// DSN builds the driver connection string, preferring an explicit DSN.
func DSN(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	if cfg.Driver == config.DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
		)
	}

	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ParseTime = true

	// FormatDSN always emits parseTime, so the query string is already open.
	dsn := mc.FormatDSN()
	if cfg.Charset != "" {
		dsn += "&charset=" + url.QueryEscape(cfg.Charset)
	}
	return dsn
}

// Scoped acquires one connection, runs fn with it bound to ctx and releases it
// when fn returns, whatever the outcome. A ctx that already carries a
// connection is passed through unchanged.
func (s *Store) Scoped(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(connKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(context.WithValue(ctx, connKey{}, conn))
	})
}

// DB returns a fresh statement on the connection bound to ctx, or on the
// shared handle when ctx has none.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	if conn, ok := ctx.Value(connKey{}).(*gorm.DB); ok {
		return conn.Session(&gorm.Session{NewDB: true, Context: ctx})
	}
	return s.db.WithContext(ctx)
}

// Migrate creates missing tables and columns for models, in the given order.
func (s *Store) Migrate(ctx context.Context, models ...interface{}) error {
	return s.db.WithContext(ctx).AutoMigrate(models...)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func IsForeignKey(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
