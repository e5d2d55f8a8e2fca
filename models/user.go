package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      string    `gorm:"uniqueIndex;not null" json:"username"`
	Email         string    `json:"email"`
	Password      string    `gorm:"not null" json:"-"` // bcrypt hash
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	WalletBalance int64     `gorm:"default:0" json:"wallet_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReduceWalletBalance debits a user's wallet inside the given
// transaction. It is the only mutator of wallet_balance. The update is
// conditional on the stored balance, so a stale in-memory value can
// never push the wallet negative: the debit applies iff
// 0 < amount <= balance, reported by the returned bool.
func ReduceWalletBalance(tx *gorm.DB, userID uint, amount int64) (bool, error) {
	if amount <= 0 {
		return false, nil
	}

	result := tx.Model(&User{}).
		Where("id = ? AND wallet_balance >= ?", userID, amount).
		UpdateColumn("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
