package models

import (
	"log"

	"server/db"
)

func Init() {
	if err := db.Instance.AutoMigrate(&Album{}, &Installation{}, &Message{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
