package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suncoopng/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrFAQItemNotFound is returned when the requested FAQ item does not exist.
	ErrFAQItemNotFound = errors.New("faq item not found")
	// ErrFAQItemInvalidInput is returned for incomplete FAQ input.
	ErrFAQItemInvalidInput = errors.New("invalid faq item input")
)

// FAQService maintains the FAQ accordion entries for the public pages.
type FAQService struct {
	db *gorm.DB
}

// NewFAQService returns a new FAQService instance.
func NewFAQService(gdb *gorm.DB) *FAQService {
	return &FAQService{db: gdb}
}

// FAQItemInput describes the editable fields of an FAQ item.
// Sort uses a pointer so an omitted value appends to the end of its group.
type FAQItemInput struct {
	GroupLabel string
	Question   string
	Answer     string
	Sort       *int
	PageTag    string
}

// List returns FAQ items for a page tag ordered by group then sort value.
// An empty pageTag returns the default page items.
func (s *FAQService) List(pageTag string) ([]db.FAQItem, error) {
	tag := normalizePageTag(pageTag)

	var items []db.FAQItem
	if err := s.db.Where("page_tag = ?", tag).
		Order("group_label ASC, sort ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list faq items: %w", err)
	}
	return items, nil
}

// Create inserts a new FAQ item, appending to its group when no sort is given.
func (s *FAQService) Create(input FAQItemInput) (*db.FAQItem, error) {
	if err := validateFAQInput(input); err != nil {
		return nil, err
	}

	tag := normalizePageTag(input.PageTag)
	sortValue, err := s.resolveSort(input.GroupLabel, tag, input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.FAQItem{
		GroupLabel: strings.TrimSpace(input.GroupLabel),
		Question:   strings.TrimSpace(input.Question),
		Answer:     strings.TrimSpace(input.Answer),
		Sort:       sortValue,
		PageTag:    tag,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create faq item: %w", err)
	}

	return &item, nil
}

// Update rewrites an existing FAQ item.
func (s *FAQService) Update(id uint, input FAQItemInput) (*db.FAQItem, error) {
	if err := validateFAQInput(input); err != nil {
		return nil, err
	}

	var item db.FAQItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFAQItemNotFound
		}
		return nil, fmt.Errorf("find faq item: %w", err)
	}

	item.GroupLabel = strings.TrimSpace(input.GroupLabel)
	item.Question = strings.TrimSpace(input.Question)
	item.Answer = strings.TrimSpace(input.Answer)
	if input.Sort != nil {
		item.Sort = *input.Sort
	}
	if strings.TrimSpace(input.PageTag) != "" {
		item.PageTag = normalizePageTag(input.PageTag)
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update faq item: %w", err)
	}

	return &item, nil
}

// Delete removes an FAQ item by id.
func (s *FAQService) Delete(id uint) error {
	result := s.db.Delete(&db.FAQItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete faq item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFAQItemNotFound
	}
	return nil
}

func (s *FAQService) resolveSort(groupLabel, pageTag string, sortPtr *int) (int, error) {
	if sortPtr != nil {
		return *sortPtr, nil
	}

	var maxSort int
	if err := s.db.Model(&db.FAQItem{}).
		Where("group_label = ? AND page_tag = ?", strings.TrimSpace(groupLabel), pageTag).
		Select("COALESCE(MAX(sort), -1)").Scan(&maxSort).Error; err != nil {
		return 0, fmt.Errorf("resolve faq sort: %w", err)
	}

	return maxSort + 1, nil
}

func validateFAQInput(input FAQItemInput) error {
	if strings.TrimSpace(input.GroupLabel) == "" {
		return fmt.Errorf("%w: group label is required", ErrFAQItemInvalidInput)
	}
	if strings.TrimSpace(input.Question) == "" {
		return fmt.Errorf("%w: question is required", ErrFAQItemInvalidInput)
	}
	if strings.TrimSpace(input.Answer) == "" {
		return fmt.Errorf("%w: answer is required", ErrFAQItemInvalidInput)
	}
	return nil
}

// normalizePageTag maps an empty tag to the default public page.
func normalizePageTag(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "default"
	}
	return trimmed
}
