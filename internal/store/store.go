package store

import (
	"gorm.io/gorm"
)

type Store interface {
	Session() Session
	InitialMigration() error
	Close() error
}

type DataStore struct {
	session Session
	db      *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		session: NewSessionStore(db),
		db:      db,
	}
}

func (s *DataStore) Session() Session {
	return s.session
}

func (s *DataStore) InitialMigration() error {
	return s.session.InitialMigration()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
