package models

import "time"

// StoreRecord: isimlendirilmiş kayıt deposu satırı. Katalog ve satış defteri
// birer JSON dokümanı olarak bu tabloda tutulur (name -> value).
type StoreRecord struct {
	Name      string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
