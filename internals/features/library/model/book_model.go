// internals/features/library/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookModel: katalog buku. Soft delete dua langkah; sampul dinamai dari
// ISBN yang sudah disanitasi, PDF ikut namespace sendiri.
type BookModel struct {
	BookID       uuid.UUID `gorm:"column:book_id;type:uuid;primaryKey" json:"book_id"`
	BookCampusID uuid.UUID `gorm:"column:book_campus_id;type:uuid;not null;index" json:"book_campus_id"`

	BookISBN  string `gorm:"column:book_isbn;type:varchar(20);not null;index" json:"book_isbn"`
	BookTitle string `gorm:"column:book_title;type:varchar(200);not null"     json:"book_title"`

	BookAuthor    *string `gorm:"column:book_author;type:varchar(160)"    json:"book_author,omitempty"`
	BookPublisher *string `gorm:"column:book_publisher;type:varchar(160)" json:"book_publisher,omitempty"`
	BookYear      *int    `gorm:"column:book_year"                        json:"book_year,omitempty"`

	BookShelfID *uuid.UUID `gorm:"column:book_shelf_id;type:uuid;index" json:"book_shelf_id,omitempty"`
	BookCopies  int        `gorm:"column:book_copies;not null;default:1" json:"book_copies"`

	BookCoverURL      *string `gorm:"column:book_cover_url;type:text"       json:"book_cover_url,omitempty"`
	BookCoverThumbURL *string `gorm:"column:book_cover_thumb_url;type:text" json:"book_cover_thumb_url,omitempty"`
	BookPDFURL        *string `gorm:"column:book_pdf_url;type:text"         json:"book_pdf_url,omitempty"`

	BookSynopsis *string `gorm:"column:book_synopsis;type:text" json:"book_synopsis,omitempty"`

	BookCreatedAt time.Time      `gorm:"column:book_created_at;not null;autoCreateTime" json:"book_created_at"`
	BookUpdatedAt time.Time      `gorm:"column:book_updated_at;not null;autoUpdateTime" json:"book_updated_at"`
	BookDeletedAt gorm.DeletedAt `gorm:"column:book_deleted_at;index"                   json:"book_deleted_at,omitempty"`
}

func (BookModel) TableName() string { return "books" }

func (m *BookModel) BeforeCreate(*gorm.DB) error {
	if m.BookID == uuid.Nil {
		m.BookID = uuid.New()
	}
	return nil
}
