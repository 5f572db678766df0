package db

import (
	"yumicuit/models"

	"github.com/jinzhu/gorm"
)

// GetDream loads one record by id. Returns gorm.ErrRecordNotFound when
// the id is unknown.
func GetDream(db *gorm.DB, id string) (*models.DreamRecord, error) {
	var rec models.DreamRecord
	if err := db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// SaveDream upserts a record. gorm's Save on a string primary key only
// updates, so new ids go through Create explicitly.
func SaveDream(db *gorm.DB, rec *models.DreamRecord) error {
	var existing models.DreamRecord
	err := db.Select("id").First(&existing, "id = ?", rec.ID).Error
	if gorm.IsRecordNotFoundError(err) {
		return db.Create(rec).Error
	}
	if err != nil {
		return err
	}
	return db.Save(rec).Error
}

// DeleteDream removes a record by id. Deleting an unknown id is a no-op.
func DeleteDream(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.DreamRecord{}).Error
}
