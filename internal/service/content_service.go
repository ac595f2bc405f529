package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/suncoopng/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSectionNotFound is returned when no record exists for a section key.
	ErrSectionNotFound = errors.New("content section not found")
	// ErrSectionKeyMissing is returned for a blank section key.
	ErrSectionKeyMissing = errors.New("section key is required")
)

// identityFields are stripped from incoming payloads before persisting so a
// client echoing a previously fetched record can never overwrite the row
// identity or the section key.
var identityFields = []string{"id", "_id", "ID", "key"}

// ContentService reads and upserts singleton content records by section key.
type ContentService struct {
	db *gorm.DB
}

// NewContentService returns a new ContentService instance.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// GetSection fetches the stored payload for a section key.
func (s *ContentService) GetSection(key string) (map[string]any, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSectionKeyMissing
	}

	var record db.ContentRecord
	if err := s.db.Where("key = ?", trimmed).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("get section %s: %w", trimmed, err)
	}

	payload := map[string]any{}
	if strings.TrimSpace(record.Data) != "" {
		if err := json.Unmarshal([]byte(record.Data), &payload); err != nil {
			return nil, fmt.Errorf("decode section %s: %w", trimmed, err)
		}
	}

	return payload, nil
}

// SaveSection upserts the payload for a section key. The stored value is
// replaced wholesale, identity fields are stripped and an updatedAt timestamp
// is stamped. The persisted payload is returned.
func (s *ContentService) SaveSection(key string, payload map[string]any) (map[string]any, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSectionKeyMissing
	}

	if payload == nil {
		payload = map[string]any{}
	}
	for _, field := range identityFields {
		delete(payload, field)
	}
	payload["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode section %s: %w", trimmed, err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var record db.ContentRecord
		if err := tx.Where("key = ?", trimmed).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&db.ContentRecord{Key: trimmed, Data: string(data)}).Error
			}
			return err
		}

		record.Data = string(data)
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, fmt.Errorf("save section %s: %w", trimmed, err)
	}

	return payload, nil
}
