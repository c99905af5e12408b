// internals/features/library/dto/book_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/library/model"
)

/* =========================================================
   CREATE (multipart: "book_cover" = gambar, "book_pdf" = dokumen)
   ========================================================= */

type CreateBookRequest struct {
	CampusID *uuid.UUID `json:"book_campus_id" form:"book_campus_id"`

	ISBN  string `json:"book_isbn"  form:"book_isbn"  validate:"required,min=1,max=20"`
	Title string `json:"book_title" form:"book_title" validate:"required,min=1,max=200"`

	Author    *string `json:"book_author"    form:"book_author"    validate:"omitempty,max=160"`
	Publisher *string `json:"book_publisher" form:"book_publisher" validate:"omitempty,max=160"`
	Year      *int    `json:"book_year"      form:"book_year"      validate:"omitempty,min=1000,max=2100"`

	ShelfID *uuid.UUID `json:"book_shelf_id" form:"book_shelf_id"`
	Copies  *int       `json:"book_copies"   form:"book_copies" validate:"omitempty,min=1"`

	Synopsis *string `json:"book_synopsis" form:"book_synopsis"`
}

func (r *CreateBookRequest) Normalize() {
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(&r.Author)
	trimPtr(&r.Publisher)
	trimPtr(&r.Synopsis)
}

func (r *CreateBookRequest) ToModel(campusID uuid.UUID) *m.BookModel {
	copies := 1
	if r.Copies != nil {
		copies = *r.Copies
	}
	return &m.BookModel{
		BookCampusID:  campusID,
		BookISBN:      r.ISBN,
		BookTitle:     r.Title,
		BookAuthor:    r.Author,
		BookPublisher: r.Publisher,
		BookYear:      r.Year,
		BookShelfID:   r.ShelfID,
		BookCopies:    copies,
		BookSynopsis:  r.Synopsis,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateBookRequest struct {
	ISBN  *string `json:"book_isbn"  form:"book_isbn"  validate:"omitempty,min=1,max=20"`
	Title *string `json:"book_title" form:"book_title" validate:"omitempty,min=1,max=200"`

	Author    *string `json:"book_author"    form:"book_author"    validate:"omitempty,max=160"`
	Publisher *string `json:"book_publisher" form:"book_publisher" validate:"omitempty,max=160"`
	Year      *int    `json:"book_year"      form:"book_year"      validate:"omitempty,min=1000,max=2100"`

	ShelfID *uuid.UUID `json:"book_shelf_id" form:"book_shelf_id"`
	Copies  *int       `json:"book_copies"   form:"book_copies" validate:"omitempty,min=1"`

	Synopsis *string `json:"book_synopsis" form:"book_synopsis"`
}

func (r *UpdateBookRequest) Normalize() {
	trimPtr(&r.ISBN)
	trimPtr(&r.Title)
	trimPtr(&r.Author)
	trimPtr(&r.Publisher)
	trimPtr(&r.Synopsis)
}

func (r *UpdateBookRequest) ApplyToModel(mm *m.BookModel) {
	if r.ISBN != nil {
		mm.BookISBN = *r.ISBN
	}
	if r.Title != nil {
		mm.BookTitle = *r.Title
	}
	if r.Author != nil {
		mm.BookAuthor = r.Author
	}
	if r.Publisher != nil {
		mm.BookPublisher = r.Publisher
	}
	if r.Year != nil {
		mm.BookYear = r.Year
	}
	if r.ShelfID != nil {
		mm.BookShelfID = r.ShelfID
	}
	if r.Copies != nil {
		mm.BookCopies = *r.Copies
	}
	if r.Synopsis != nil {
		mm.BookSynopsis = r.Synopsis
	}
}
