// internals/features/library/controller/loan_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/library/dto"
	m "sekolahku_backend/internals/features/library/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type LoanController = resource.Controller[m.LoanModel, dto.CreateLoanRequest, dto.UpdateLoanRequest]

func NewLoanController(db *gorm.DB, bs *blob.Service) *LoanController {
	return &LoanController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "loan",
			Labels: map[string]string{"id": "Peminjaman", "en": "Loan"},

			Table:    "loans",
			IDCol:    "loan_id",
			ScopeCol: "loan_campus_id",

			Searchable: []string{"loan_member_name"},
			Filters: map[string]string{
				"status":  "loan_status",
				"book_id": "loan_book_id",
			},
			Sortable: map[string]string{
				"member":      "loan_member_name",
				"status":      "loan_status",
				"borrowed_at": "loan_borrowed_at",
				"due_at":      "loan_due_at",
				"created_at":  "loan_created_at",
			},
			DefaultSort: "borrowed_at",
			DefaultDir:  "desc",
			PerPage:     15,

			Refs: []resource.RefRule{
				{Key: "loan_campus_id", Column: "loan_campus_id", Table: "campuses", RefColumn: "campus_id"},
				// buku di sampah tidak bisa dipinjam
				{Key: "loan_book_id", Column: "loan_book_id", Table: "books", RefColumn: "book_id", AliveCol: "book_deleted_at"},
			},
			FormRefs: []resource.FormRef{
				{Key: "books", Table: "books", IDCol: "book_id", LabelCol: "book_title", AliveCol: "book_deleted_at", ScopeCol: "book_campus_id"},
			},
		},
		Hooks: resource.Hooks[m.LoanModel, dto.CreateLoanRequest, dto.UpdateLoanRequest]{
			NewFromCreate: func(req *dto.CreateLoanRequest, actor *helperAuth.Actor) *m.LoanModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateLoanRequest, mm *m.LoanModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.LoanModel) any { return mm },
			ColumnValue: func(mm *m.LoanModel, col string) any {
				switch col {
				case "loan_id":
					return mm.LoanID
				case "loan_campus_id":
					return mm.LoanCampusID
				case "loan_book_id":
					return mm.LoanBookID
				}
				return nil
			},
		},
	}
}
