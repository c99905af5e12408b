// internals/features/library/model/loan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LoanStatusBorrowed = "borrowed"
	LoanStatusReturned = "returned"
	LoanStatusOverdue  = "overdue"
)

// LoanModel: transaksi peminjaman. Buku yang dipinjam harus hidup
// (bukan di sampah) saat transaksi dibuat.
type LoanModel struct {
	LoanID       uuid.UUID `gorm:"column:loan_id;type:uuid;primaryKey" json:"loan_id"`
	LoanCampusID uuid.UUID `gorm:"column:loan_campus_id;type:uuid;not null;index" json:"loan_campus_id"`
	LoanBookID   uuid.UUID `gorm:"column:loan_book_id;type:uuid;not null;index" json:"loan_book_id"`

	LoanMemberName string `gorm:"column:loan_member_name;type:varchar(160);not null" json:"loan_member_name"`
	LoanStatus     string `gorm:"column:loan_status;type:varchar(20);not null;default:borrowed" json:"loan_status"`

	LoanBorrowedAt time.Time  `gorm:"column:loan_borrowed_at;not null" json:"loan_borrowed_at"`
	LoanDueAt      *time.Time `gorm:"column:loan_due_at"               json:"loan_due_at,omitempty"`
	LoanReturnedAt *time.Time `gorm:"column:loan_returned_at"          json:"loan_returned_at,omitempty"`

	LoanCreatedAt time.Time `gorm:"column:loan_created_at;not null;autoCreateTime" json:"loan_created_at"`
	LoanUpdatedAt time.Time `gorm:"column:loan_updated_at;not null;autoUpdateTime" json:"loan_updated_at"`
}

func (LoanModel) TableName() string { return "loans" }

func (m *LoanModel) BeforeCreate(*gorm.DB) error {
	if m.LoanID == uuid.Nil {
		m.LoanID = uuid.New()
	}
	if m.LoanBorrowedAt.IsZero() {
		m.LoanBorrowedAt = time.Now()
	}
	return nil
}
