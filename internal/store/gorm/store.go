package gorm

import (
	"context"
	"strings"

	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedDSN = errors.New("unsupported database url")

type Store struct {
	db *gorm.DB
}

// Open connects to the database described by dsn and migrates the schema.
// Supported forms: sqlite://<path>, :memory:, postgres://..., mysql://<go-sql-driver dsn>.
func Open(dsn string) (*Store, error) {
	dialector, err := dialectorFor(dsn)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not open database")
	}

	if dsn == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return NewStore(db)
}

// NewStore wraps an opened connection and migrates the schema.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Certificate{}); err != nil {
		return nil, errors.Wrap(err, "could not migrate schema")
	}

	return &Store{db: db}, nil
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	switch {
	case dsn == ":memory:":
		return sqlite.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.Open(strings.TrimPrefix(dsn, "mysql://")), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedDSN, "'%s'", redact(dsn))
	}
}

// isDuplicate reports unique constraint violations, whether or not the
// dialect translated them to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}

func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	return "..."
}

// Create implements certificate.Store.
func (s *Store) Create(ctx context.Context, cert *certificate.Certificate) error {
	row := fromCertificate(cert)
	row.ID = 0

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if isDuplicate(err) {
			return errors.WithStack(certificate.ErrDuplicateID)
		}
		return errors.WithStack(err)
	}

	cert.Key = row.ID
	cert.CreatedAt = row.CreatedAt

	return nil
}

// FindByID implements certificate.Store.
func (s *Store) FindByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	var row Certificate
	if err := s.db.WithContext(ctx).Where("certificate_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(certificate.ErrNotFound)
		}
		return nil, errors.WithStack(err)
	}

	return row.toCertificate(), nil
}

// Get implements certificate.Store.
func (s *Store) Get(ctx context.Context, key uint) (*certificate.Certificate, error) {
	var row Certificate
	if err := s.db.WithContext(ctx).First(&row, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(certificate.ErrNotFound)
		}
		return nil, errors.WithStack(err)
	}

	return row.toCertificate(), nil
}

// List implements certificate.Store.
func (s *Store) List(ctx context.Context) ([]certificate.Certificate, error) {
	var rows []Certificate
	if err := s.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	certs := make([]certificate.Certificate, 0, len(rows))
	for i := range rows {
		certs = append(certs, *rows[i].toCertificate())
	}

	return certs, nil
}

// Delete implements certificate.Store.
func (s *Store) Delete(ctx context.Context, key uint) error {
	res := s.db.WithContext(ctx).Delete(&Certificate{}, key)
	if res.Error != nil {
		return errors.WithStack(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.WithStack(certificate.ErrNotFound)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(sqlDB.Close())
}

var _ certificate.Store = &Store{}
