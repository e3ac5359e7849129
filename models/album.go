package models

import (
	"server/db"

	"gorm.io/gorm"
)

type Album struct {
	ID            uint64         `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(300);not null" json:"name"`
	Description   string         `gorm:"type:varchar(2000)" json:"description"`
	CreatedAt     int64          `gorm:"index:album_created" json:"createdAt"`
	Installations []Installation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"installations"`
}

// AlbumList returns all albums, newest-created first, with their
// installations in insertion order.
func AlbumList() ([]Album, error) {
	albums := []Album{}
	err := db.Instance.
		Preload("Installations", installationOrder).
		Order("created_at DESC, id DESC").
		Find(&albums).Error
	for i := range albums {
		albums[i].normalize()
	}
	return albums, err
}

func AlbumByID(id uint64) (Album, error) {
	album := Album{}
	err := db.Instance.Preload("Installations", installationOrder).First(&album, id).Error
	album.normalize()
	return album, err
}

// normalize keeps the JSON contract: installations is always a list, never
// null.
func (a *Album) normalize() {
	if a.Installations == nil {
		a.Installations = []Installation{}
	}
}

// AlbumDelete removes the album and all of its installations. The two
// deletes run in one transaction so no orphan installation can survive a
// partial failure.
func AlbumDelete(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Album{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("album_id = ?", id).Delete(&Installation{}).Error
	})
}

func installationOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("position ASC")
}
