package campus

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/campus/model"
)

type CampusSeed struct {
	CampusCode    string `json:"campus_code"`
	CampusName    string `json:"campus_name"`
	CampusCity    string `json:"campus_city"`
	CampusAddress string `json:"campus_address"`
}

func SeedCampusesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var campuses []CampusSeed
	if err := sonic.Unmarshal(file, &campuses); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, s := range campuses {
		var existing model.CampusModel
		if err := db.Where("campus_code = ?", s.CampusCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Campus %s sudah ada, lewati...", s.CampusCode)
			continue
		}

		city := s.CampusCity
		addr := s.CampusAddress
		row := model.CampusModel{
			CampusCode:     s.CampusCode,
			CampusName:     s.CampusName,
			CampusCity:     &city,
			CampusAddr:     &addr,
			CampusIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal seed campus %s: %v", s.CampusCode, err)
			continue
		}
		log.Printf("✅ Campus %s dibuat", s.CampusCode)
	}
}
