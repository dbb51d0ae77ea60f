package storage

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one persisted collection, stored as a JSON document under its
// key. One row per key, replaced on every write.
type Snapshot struct {
	Key       string         `gorm:"primaryKey;type:varchar(64)"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// Postgres stores snapshots in a single table through GORM.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string) ([]byte, error) {
	var snap Snapshot
	if err := p.db.First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(snap.Value), nil
}

func (p *Postgres) Put(key string, value []byte) error {
	snap := Snapshot{Key: key, Value: datatypes.JSON(value)}
	return p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
}

func (p *Postgres) Delete(key string) error {
	return p.db.Delete(&Snapshot{}, "key = ?", key).Error
}
