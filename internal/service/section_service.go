package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suncoopng/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSectionItemNotFound is returned when the requested custom section does not exist.
	ErrSectionItemNotFound = errors.New("custom section not found")
	// ErrSectionInvalidInput is returned for incomplete custom section input.
	ErrSectionInvalidInput = errors.New("invalid custom section input")
)

// sectionLayouts are the arrangements the public templates know how to render.
var sectionLayouts = []string{"text", "image-left", "image-right", "banner"}

// SectionService maintains the admin-authored custom page sections.
type SectionService struct {
	db *gorm.DB
}

// NewSectionService returns a new SectionService instance.
func NewSectionService(gdb *gorm.DB) *SectionService {
	return &SectionService{db: gdb}
}

// SectionInput describes the editable fields of a custom section.
// Sort/Visible use pointers so omitted values keep their defaults.
type SectionInput struct {
	Title           string
	Content         string
	ImageURL        string
	Layout          string
	BackgroundColor string
	TextColor       string
	Sort            *int
	Visible         *bool
}

// List returns custom sections ordered by sort value. When includeHidden is
// false only visible sections are returned, which is what the public page uses.
func (s *SectionService) List(includeHidden bool) ([]db.CustomSection, error) {
	query := s.db.Model(&db.CustomSection{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}

	var items []db.CustomSection
	if err := query.Order("sort ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list custom sections: %w", err)
	}
	return items, nil
}

// Get fetches a custom section by id.
func (s *SectionService) Get(id uint) (*db.CustomSection, error) {
	var item db.CustomSection
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionItemNotFound
		}
		return nil, fmt.Errorf("get custom section: %w", err)
	}
	return &item, nil
}

// Create inserts a new custom section, appending to the end when no sort is given.
func (s *SectionService) Create(input SectionInput) (*db.CustomSection, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrSectionInvalidInput)
	}

	sortValue, err := s.resolveSort(input.Sort)
	if err != nil {
		return nil, err
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	item := db.CustomSection{
		Title:           strings.TrimSpace(input.Title),
		Content:         input.Content,
		ImageURL:        strings.TrimSpace(input.ImageURL),
		Layout:          normalizeLayout(input.Layout),
		BackgroundColor: strings.TrimSpace(input.BackgroundColor),
		TextColor:       strings.TrimSpace(input.TextColor),
		Sort:            sortValue,
		Visible:         visible,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create custom section: %w", err)
	}

	return &item, nil
}

// Update rewrites an existing custom section.
func (s *SectionService) Update(id uint, input SectionInput) (*db.CustomSection, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrSectionInvalidInput)
	}

	var item db.CustomSection
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionItemNotFound
		}
		return nil, fmt.Errorf("find custom section: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Content = input.Content
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.Layout = normalizeLayout(input.Layout)
	item.BackgroundColor = strings.TrimSpace(input.BackgroundColor)
	item.TextColor = strings.TrimSpace(input.TextColor)
	if input.Sort != nil {
		item.Sort = *input.Sort
	}
	if input.Visible != nil {
		item.Visible = *input.Visible
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update custom section: %w", err)
	}

	return &item, nil
}

// Delete removes a custom section by id.
func (s *SectionService) Delete(id uint) error {
	result := s.db.Delete(&db.CustomSection{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete custom section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSectionItemNotFound
	}
	return nil
}

// Reorder rewrites the sort field following the given id order. Ids are
// assigned 0,1,2... in sequence; sections not listed keep their old sort.
func (s *SectionService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(&db.CustomSection{}).Where("id = ?", id).Update("sort", index).Error; err != nil {
				return fmt.Errorf("reorder custom sections: %w", err)
			}
		}
		return nil
	})
}

func (s *SectionService) resolveSort(sortPtr *int) (int, error) {
	if sortPtr != nil {
		return *sortPtr, nil
	}

	var maxSort int
	if err := s.db.Model(&db.CustomSection{}).Select("COALESCE(MAX(sort), -1)").Scan(&maxSort).Error; err != nil {
		return 0, fmt.Errorf("resolve custom section sort: %w", err)
	}

	return maxSort + 1, nil
}

func normalizeLayout(layout string) string {
	trimmed := strings.ToLower(strings.TrimSpace(layout))
	for _, candidate := range sectionLayouts {
		if trimmed == candidate {
			return candidate
		}
	}
	return "text"
}
