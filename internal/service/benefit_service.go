package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suncoopng/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrBenefitNotFound is returned when the requested benefit does not exist.
	ErrBenefitNotFound = errors.New("benefit not found")
	// ErrBenefitInvalidInput is returned for incomplete benefit input.
	ErrBenefitInvalidInput = errors.New("invalid benefit input")
)

// BenefitService maintains the selling-point cards for the public pages.
type BenefitService struct {
	db *gorm.DB
}

// NewBenefitService returns a new BenefitService instance.
func NewBenefitService(gdb *gorm.DB) *BenefitService {
	return &BenefitService{db: gdb}
}

// BenefitInput describes the editable fields of a benefit card.
type BenefitInput struct {
	Title    string
	Subtitle string
	Icon     string
	Sort     *int
	PageTag  string
}

// List returns benefits for a page tag ordered by sort value.
func (s *BenefitService) List(pageTag string) ([]db.Benefit, error) {
	tag := normalizePageTag(pageTag)

	var items []db.Benefit
	if err := s.db.Where("page_tag = ?", tag).
		Order("sort ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list benefits: %w", err)
	}
	return items, nil
}

// Create inserts a new benefit, appending to the end when no sort is given.
func (s *BenefitService) Create(input BenefitInput) (*db.Benefit, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBenefitInvalidInput)
	}

	tag := normalizePageTag(input.PageTag)
	sortValue, err := s.resolveSort(tag, input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.Benefit{
		Title:    strings.TrimSpace(input.Title),
		Subtitle: strings.TrimSpace(input.Subtitle),
		Icon:     strings.TrimSpace(input.Icon),
		Sort:     sortValue,
		PageTag:  tag,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create benefit: %w", err)
	}

	return &item, nil
}

// Update rewrites an existing benefit.
func (s *BenefitService) Update(id uint, input BenefitInput) (*db.Benefit, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBenefitInvalidInput)
	}

	var item db.Benefit
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBenefitNotFound
		}
		return nil, fmt.Errorf("find benefit: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Subtitle = strings.TrimSpace(input.Subtitle)
	item.Icon = strings.TrimSpace(input.Icon)
	if input.Sort != nil {
		item.Sort = *input.Sort
	}
	if strings.TrimSpace(input.PageTag) != "" {
		item.PageTag = normalizePageTag(input.PageTag)
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update benefit: %w", err)
	}

	return &item, nil
}

// Delete removes a benefit by id.
func (s *BenefitService) Delete(id uint) error {
	result := s.db.Delete(&db.Benefit{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete benefit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBenefitNotFound
	}
	return nil
}

func (s *BenefitService) resolveSort(pageTag string, sortPtr *int) (int, error) {
	if sortPtr != nil {
		return *sortPtr, nil
	}

	var maxSort int
	if err := s.db.Model(&db.Benefit{}).
		Where("page_tag = ?", pageTag).
		Select("COALESCE(MAX(sort), -1)").Scan(&maxSort).Error; err != nil {
		return 0, fmt.Errorf("resolve benefit sort: %w", err)
	}

	return maxSort + 1, nil
}
