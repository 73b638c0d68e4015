package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound aranan kayıt bulunamadığında döner.
var ErrNotFound = errors.New("kayıt bulunamadı")

// getDB context içinde aktif bir transaction varsa onu, yoksa context'e
// bağlanmış verilen bağlantıyı döndürür.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
