package sequence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/sequence_repo_mock.go -package=mock . Repository

// Repository memperbaiki serial sequence yang tertinggal dari max(id).
// Kasusnya: tabel bigserial yang pernah diisi manual/migrasi sehingga
// counter auto-increment menabrak primary key yang sudah ada.
type Repository interface {
	Resync(ctx context.Context, table, column string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Resync(ctx context.Context, table, column string) error {
	// setval ke max(id)+1 dengan is_called=false supaya nextval
	// mengembalikan tepat max+1
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 0) + 1, false)`,
		table, column, column, table,
	)
	return r.db.WithContext(ctx).Exec(query).Error
}

// IsUniqueViolation mendeteksi pelanggaran unik postgres (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// InsertWithRepair menjalankan insert; kalau gagal karena 23505,
// sequence di-resync lalu insert diulang TEPAT SEKALI. Error percobaan
// kedua (bukan yang pertama) yang dipropagasi. Ini kompensasi sempit,
// bukan retry policy umum.
func InsertWithRepair(ctx context.Context, repo Repository, table, column string, insert func() error) error {
	err := insert()
	if err == nil {
		return nil
	}
	if !IsUniqueViolation(err) {
		return err
	}

	if repairErr := repo.Resync(ctx, table, column); repairErr != nil {
		return repairErr
	}
	return insert()
}
