package models

import (
	"time"

	"server/db"

	"github.com/google/uuid"
)

// Installation is one photographed job record. It belongs to exactly one
// album; the image itself lives on the external media host and only its URL
// is stored here.
type Installation struct {
	ID          string `gorm:"type:varchar(40);primaryKey" json:"id"`
	AlbumID     uint64 `gorm:"not null;index:installation_album" json:"-"`
	Image       string `gorm:"type:varchar(500);not null" json:"image"`
	Title       string `gorm:"type:varchar(300);not null" json:"title"`
	Category    string `gorm:"type:varchar(100);not null" json:"category"`
	Description string `gorm:"type:varchar(2000)" json:"description"`
	Date        string `gorm:"type:varchar(10);not null" json:"date"`
	Position    int    `gorm:"not null" json:"-"`
}

const DateFormat = "2006-01-02"

// NewInstallation assigns the id and defaults the date to today when blank.
// Position is set by the caller (next slot in the parent album).
func NewInstallation(albumID uint64, image, title, category, description, date string, position int) Installation {
	if date == "" {
		date = time.Now().Format(DateFormat)
	}
	return Installation{
		ID:          uuid.NewString(),
		AlbumID:     albumID,
		Image:       image,
		Title:       title,
		Category:    category,
		Description: description,
		Date:        date,
		Position:    position,
	}
}

// NextInstallationPosition returns the position for a new installation so
// that insertion order is preserved when reading the album back.
func NextInstallationPosition(albumID uint64) (int, error) {
	last := int64(-1)
	err := db.Instance.
		Raw("select ifnull(max(position), -1) from installations where album_id = ?", albumID).
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return int(last) + 1, nil
}
