package resource

import "gorm.io/gorm"

// State lifecycle sebuah record. Live → SoftDeleted → Gone untuk tipe
// ber-soft-delete; Live → Gone untuk sisanya. Transisi hanya lewat
// fungsi di file ini, tidak diturunkan ulang per controller.
type State int

const (
	Live State = iota
	SoftDeleted
	Gone
)

func (s State) String() string {
	switch s {
	case Live:
		return "live"
	case SoftDeleted:
		return "soft_deleted"
	case Gone:
		return "gone"
	}
	return "unknown"
}

// Outcome hasil satu aksi delete.
type Outcome int

const (
	OutcomeSoftDeleted Outcome = iota
	OutcomeGone
)

// destroy menjalankan satu langkah lifecycle:
//   - soft-deletable + masih Live  → set flag (file TIDAK dihapus)
//   - soft-deletable + SoftDeleted → hapus file lalu hapus row (irreversible)
//   - tanpa soft delete            → hapus file lalu hapus row
//
// cleanupFiles dipanggil sebelum row dihapus, best-effort.
func destroy(db *gorm.DB, m any, soft, alreadyDeleted bool, cleanupFiles func()) (Outcome, error) {
	if soft && !alreadyDeleted {
		if err := db.Delete(m).Error; err != nil {
			return OutcomeSoftDeleted, err
		}
		return OutcomeSoftDeleted, nil
	}
	if cleanupFiles != nil {
		cleanupFiles()
	}
	if err := db.Unscoped().Delete(m).Error; err != nil {
		return OutcomeGone, err
	}
	return OutcomeGone, nil
}

// restore membalik SoftDeleted → Live.
func restore(db *gorm.DB, m any, deletedAtCol string) error {
	return db.Unscoped().Model(m).UpdateColumn(deletedAtCol, nil).Error
}
