package services

import (
	"errors"
	"strings"

	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/models"
	"gorm.io/gorm"
)

func SearchCategories(take int, offset int, probe string) ([]models.Category, error) {
	probe = "%" + probe + "%"

	var categories []models.Category
	err := database.C.Where("alias LIKE ?", probe).Offset(offset).Limit(take).Find(&categories).Error

	return categories, err
}

func ListCategory(take int, offset int) ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Offset(offset).Limit(take).Find(&categories).Error

	return categories, err
}

func GetCategory(alias string) (models.Category, error) {
	var category models.Category
	if err := database.C.Where(models.Category{Alias: alias}).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func GetCategoryWithID(id uint) (models.Category, error) {
	var category models.Category
	if err := database.C.Where(models.Category{
		BaseModel: models.BaseModel{ID: id},
	}).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewCategory(alias, name, description string) (models.Category, error) {
	category := models.Category{
		Alias:       alias,
		Name:        name,
		Description: description,
	}

	err := database.C.Save(&category).Error

	return category, err
}

func EditCategory(category models.Category, alias, name, description string) (models.Category, error) {
	category.Alias = alias
	category.Name = name
	category.Description = description

	err := database.C.Save(&category).Error

	return category, err
}

// Categories are never soft deleted, a question losing its last
// category only loses the filter tag.
func DeleteCategory(category models.Category) error {
	return database.C.Delete(&category).Error
}

func GetCategoryOrCreate(alias, name string) (models.Category, error) {
	alias = strings.ToLower(alias)
	var category models.Category
	if err := database.C.Where(models.Category{Alias: alias}).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = models.Category{
				Alias: alias,
				Name:  name,
			}
			err := database.C.Save(&category).Error
			return category, err
		}
		return category, err
	}
	return category, nil
}
