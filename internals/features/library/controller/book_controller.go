// internals/features/library/controller/book_controller.go
package controller

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/library/dto"
	m "sekolahku_backend/internals/features/library/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/blob"
	"sekolahku_backend/internals/resource"
)

type BookController = resource.Controller[m.BookModel, dto.CreateBookRequest, dto.UpdateBookRequest]

func NewBookController(db *gorm.DB, bs *blob.Service) *BookController {
	return &BookController{
		DB:   db,
		Blob: bs,
		Desc: resource.Descriptor{
			Name:   "book",
			Labels: map[string]string{"id": "Buku", "en": "Book"},

			Table:        "books",
			IDCol:        "book_id",
			ScopeCol:     "book_campus_id",
			DeletedAtCol: "book_deleted_at",

			Searchable: []string{"book_isbn", "book_title", "book_author"},
			Filters: map[string]string{
				"shelf_id":  "book_shelf_id",
				"publisher": "book_publisher",
				"year":      "book_year",
				"campus_id": "book_campus_id",
			},
			Sortable: map[string]string{
				"title":      "book_title",
				"isbn":       "book_isbn",
				"author":     "book_author",
				"year":       "book_year",
				"created_at": "book_created_at",
			},
			DefaultSort: "title",
			DefaultDir:  "asc",
			PerPage:     15,

			SoftDelete: true,

			Unique: []resource.UniqueRule{{Key: "book_isbn", Column: "book_isbn"}},
			Refs: []resource.RefRule{
				{Key: "book_campus_id", Column: "book_campus_id", Table: "campuses", RefColumn: "campus_id"},
				{Key: "book_shelf_id", Column: "book_shelf_id", Table: "shelves", RefColumn: "shelf_id", Optional: true},
			},
			Files: []resource.FileRule{
				{
					Field:    "book_cover",
					Column:   "book_cover_url",
					ThumbCol: "book_cover_thumb_url",
					Dir:      "covers",
					Image:    true,
					NameFrom: "book_isbn",
				},
				{
					Field:    "book_pdf",
					Column:   "book_pdf_url",
					Dir:      "pdfs",
					NameFrom: "book_isbn",
				},
			},
			FormRefs: []resource.FormRef{
				{Key: "shelves", Table: "shelves", IDCol: "shelf_id", LabelCol: "shelf_name", ScopeCol: "shelf_campus_id"},
			},
		},
		Hooks: resource.Hooks[m.BookModel, dto.CreateBookRequest, dto.UpdateBookRequest]{
			NewFromCreate: func(req *dto.CreateBookRequest, actor *helperAuth.Actor) *m.BookModel {
				return req.ToModel(campusFor(actor, req.CampusID))
			},
			ApplyUpdate: func(req *dto.UpdateBookRequest, mm *m.BookModel) { req.ApplyToModel(mm) },
			Response:    func(mm *m.BookModel) any { return mm },
			ColumnValue: func(mm *m.BookModel, col string) any {
				switch col {
				case "book_id":
					return mm.BookID
				case "book_campus_id":
					return mm.BookCampusID
				case "book_isbn":
					return mm.BookISBN
				case "book_shelf_id":
					return mm.BookShelfID
				case "book_cover_url":
					return mm.BookCoverURL
				case "book_cover_thumb_url":
					return mm.BookCoverThumbURL
				case "book_pdf_url":
					return mm.BookPDFURL
				}
				return nil
			},
			SetFileURL: func(mm *m.BookModel, col, url string) {
				switch col {
				case "book_cover_url":
					mm.BookCoverURL = &url
				case "book_cover_thumb_url":
					mm.BookCoverThumbURL = &url
				case "book_pdf_url":
					mm.BookPDFURL = &url
				}
			},
			IsDeleted: func(mm *m.BookModel) bool { return mm.BookDeletedAt.Valid },
		},
	}
}
