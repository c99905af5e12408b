// internals/features/library/dto/loan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/library/model"
)

type CreateLoanRequest struct {
	CampusID *uuid.UUID `json:"loan_campus_id" form:"loan_campus_id"`
	BookID   uuid.UUID  `json:"loan_book_id" form:"loan_book_id" validate:"required"`

	MemberName string `json:"loan_member_name" form:"loan_member_name" validate:"required,min=1,max=160"`

	// kosong → default "borrowed"
	Status *string `json:"loan_status" form:"loan_status" validate:"omitempty,oneof=borrowed returned overdue"`

	BorrowedAt *time.Time `json:"loan_borrowed_at" form:"loan_borrowed_at"`
	DueAt      *time.Time `json:"loan_due_at" form:"loan_due_at"`
}

func (r *CreateLoanRequest) Normalize() {
	r.MemberName = strings.TrimSpace(r.MemberName)
	trimPtr(&r.Status)
}

func (r *CreateLoanRequest) ToModel(campusID uuid.UUID) *m.LoanModel {
	status := m.LoanStatusBorrowed
	if r.Status != nil {
		status = *r.Status
	}
	mm := &m.LoanModel{
		LoanCampusID:   campusID,
		LoanBookID:     r.BookID,
		LoanMemberName: r.MemberName,
		LoanStatus:     status,
		LoanDueAt:      r.DueAt,
	}
	if r.BorrowedAt != nil {
		mm.LoanBorrowedAt = *r.BorrowedAt
	}
	return mm
}

type UpdateLoanRequest struct {
	BookID *uuid.UUID `json:"loan_book_id" form:"loan_book_id"`

	MemberName *string `json:"loan_member_name" form:"loan_member_name" validate:"omitempty,min=1,max=160"`
	Status     *string `json:"loan_status" form:"loan_status" validate:"omitempty,oneof=borrowed returned overdue"`

	BorrowedAt *time.Time `json:"loan_borrowed_at" form:"loan_borrowed_at"`
	DueAt      *time.Time `json:"loan_due_at" form:"loan_due_at"`
	ReturnedAt *time.Time `json:"loan_returned_at" form:"loan_returned_at"`
}

func (r *UpdateLoanRequest) Normalize() {
	trimPtr(&r.MemberName)
	trimPtr(&r.Status)
}

func (r *UpdateLoanRequest) ApplyToModel(mm *m.LoanModel) {
	if r.BookID != nil {
		mm.LoanBookID = *r.BookID
	}
	if r.MemberName != nil {
		mm.LoanMemberName = *r.MemberName
	}
	if r.Status != nil {
		mm.LoanStatus = *r.Status
		// status "returned" tanpa timestamp eksplisit → isi sekarang
		if *r.Status == m.LoanStatusReturned && r.ReturnedAt == nil && mm.LoanReturnedAt == nil {
			now := time.Now()
			mm.LoanReturnedAt = &now
		}
	}
	if r.BorrowedAt != nil {
		mm.LoanBorrowedAt = *r.BorrowedAt
	}
	if r.DueAt != nil {
		mm.LoanDueAt = r.DueAt
	}
	if r.ReturnedAt != nil {
		mm.LoanReturnedAt = r.ReturnedAt
	}
}
