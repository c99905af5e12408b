package database

import (
	"log"

	assetModel "sekolahku_backend/internals/features/assets/model"
	campusModel "sekolahku_backend/internals/features/campus/model"
	libraryModel "sekolahku_backend/internals/features/library/model"
	procurementModel "sekolahku_backend/internals/features/procurement/model"
)

// AutoMigrateAll menjalankan auto-migration seluruh tabel domain.
// Urutan mengikuti dependensi FK.
func AutoMigrateAll() {
	err := DB.AutoMigrate(
		&campusModel.CampusModel{},
		&campusModel.BuildingModel{},
		&campusModel.RoomModel{},
		&campusModel.DepartmentModel{},
		&procurementModel.SupplierModel{},
		&procurementModel.PurchaseOrderModel{},
		&assetModel.AssetCategoryModel{},
		&assetModel.AssetSubcategoryModel{},
		&assetModel.AssetModel{},
		&libraryModel.BookcaseModel{},
		&libraryModel.ShelfModel{},
		&libraryModel.BookModel{},
		&libraryModel.LoanModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}
