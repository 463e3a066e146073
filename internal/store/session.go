package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/renalecon/transplant-planner/internal/store/model"
	"gorm.io/gorm"
)

type Session interface {
	List(ctx context.Context) (model.SessionList, error)
	Create(ctx context.Context, session model.Session) (*model.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Session, error)
	UpdateParameters(ctx context.Context, id uuid.UUID, parameters map[string]float64) (*model.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InitialMigration() error
}

type SessionStore struct {
	db *gorm.DB
}

// Make sure we conform to Session interface
var _ Session = (*SessionStore)(nil)

func NewSessionStore(db *gorm.DB) Session {
	return &SessionStore{db: db}
}

func (s *SessionStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Session{})
}

func (s *SessionStore) List(ctx context.Context) (model.SessionList, error) {
	var sessions model.SessionList
	result := s.db.WithContext(ctx).Model(&sessions).Order("created_at").Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}

func (s *SessionStore) Create(ctx context.Context, session model.Session) (*model.Session, error) {
	result := s.db.WithContext(ctx).Create(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &session, nil
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	session := model.NewSessionFromId(id)
	result := s.db.WithContext(ctx).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return session, nil
}

func (s *SessionStore) UpdateParameters(ctx context.Context, id uuid.UUID, parameters map[string]float64) (*model.Session, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Update("parameters", model.MakeJSONField(parameters))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return s.Get(ctx, id)
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	session := model.NewSessionFromId(id)
	result := s.db.WithContext(ctx).Unscoped().Delete(&session)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}
