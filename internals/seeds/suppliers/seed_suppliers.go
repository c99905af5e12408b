package suppliers

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/procurement/model"
)

type SupplierSeed struct {
	SupplierCode  string `json:"supplier_code"`
	SupplierName  string `json:"supplier_name"`
	SupplierPhone string `json:"supplier_phone"`
	SupplierEmail string `json:"supplier_email"`
}

func SeedSuppliersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var rows []SupplierSeed
	if err := sonic.Unmarshal(file, &rows); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, s := range rows {
		var existing model.SupplierModel
		if err := db.Where("supplier_code = ?", s.SupplierCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Supplier %s sudah ada, lewati...", s.SupplierCode)
			continue
		}

		phone := s.SupplierPhone
		email := s.SupplierEmail
		row := model.SupplierModel{
			SupplierCode:  s.SupplierCode,
			SupplierName:  s.SupplierName,
			SupplierPhone: &phone,
			SupplierEmail: &email,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal seed supplier %s: %v", s.SupplierCode, err)
			continue
		}
		log.Printf("✅ Supplier %s dibuat", s.SupplierCode)
	}
}
