package store

import (
	"errors"
	"sync"

	"dukkan-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Kalıcı kayıt isimleri. Katalog ve satış defteri ayrı birer dokümandır.
const (
	RecordProducts = "products"
	RecordSales    = "sales"
)

// Store: string anahtarlı kalıcı kayıt deposu. Get kaydın var olup olmadığını
// ayrıca döner; olmayan kayıt hata değildir.
type Store interface {
	Get(name string) (string, bool, error)
	Set(name, value string) error
}

// GormStore: store_records tablosu üzerinde çalışan kalıcı depo.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(name string) (string, bool, error) {
	var rec models.StoreRecord
	err := s.db.First(&rec, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *GormStore) Set(name, value string) error {
	rec := models.StoreRecord{Name: name, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

// MemStore: testler için bellek içi depo.
type MemStore struct {
	mu      sync.Mutex
	records map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]string)}
}

func (s *MemStore) Get(name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[name]
	return v, ok, nil
}

func (s *MemStore) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[name] = value
	return nil
}
