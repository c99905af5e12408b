package seeds

import (
	"gorm.io/gorm"

	campusSeed "sekolahku_backend/internals/seeds/campus"
	supplierSeed "sekolahku_backend/internals/seeds/suppliers"
)

// RunAllSeeds mengisi master data awal. Semua seeder idempotent
// (FirstOrCreate berdasarkan kode), jadi aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	campusSeed.SeedCampusesFromJSON(db, "internals/seeds/campus/data_campuses.json")
	supplierSeed.SeedSuppliersFromJSON(db, "internals/seeds/suppliers/data_suppliers.json")
}
