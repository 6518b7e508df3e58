package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platewise/recipe-service/internal/model"
)

// recipeRow is the recipe_entries table: one column per field, with the
// ingredient and instruction arrays JSON-encoded into their TEXT columns.
// Optional columns are pointers so absent stays NULL rather than becoming a
// zero value.
type recipeRow struct {
	ID            string            `gorm:"column:id;primaryKey;size:255"`
	Name          string            `gorm:"column:name;size:255;not null"`
	DatePublished *string           `gorm:"column:datePublished;size:255"`
	Description   *string           `gorm:"column:description;size:500"`
	Rating        *float64          `gorm:"column:rating"`
	PrepTime      *string           `gorm:"column:prepTime;size:255"`
	CookTime      *string           `gorm:"column:cookTime;size:255"`
	Ingredients   model.StringArray `gorm:"column:ingredients;type:text;not null"`
	Instructions  model.StringArray `gorm:"column:instructions;type:text;not null"`
	Calories      *int64            `gorm:"column:calories"`
	ServingSize   *string           `gorm:"column:servingSize;size:255"`
}

func (recipeRow) TableName() string { return "recipe_entries" }

// SQLStore keeps recipes in a single sqlite table. The connection is opened
// at Start and closed at Stop; database/sql pools connections underneath, so
// reads are not serialized behind writes.
type SQLStore struct {
	path string
	db   *gorm.DB
}

// NewSQLStore creates a relational engine over the sqlite file at path. The
// file is opened at Start, not at construction.
func NewSQLStore(path string) *SQLStore {
	return &SQLStore{path: path}
}

// Path reports the configured database file.
func (s *SQLStore) Path() string { return s.path }

func (s *SQLStore) Start(ctx context.Context) error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open recipe database %q: %w", s.path, err)
	}
	if err := db.AutoMigrate(&recipeRow{}); err != nil {
		return fmt.Errorf("migrate recipe_entries: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLStore) Stop(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}

func (s *SQLStore) rowExists(ctx context.Context, key string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&recipeRow{}).Where("id = ?", key).Count(&n).Error; err != nil {
		return false, fmt.Errorf("query recipe %s: %w", key, err)
	}
	return n > 0, nil
}

func (s *SQLStore) Create(ctx context.Context, recipe *model.RecipeEntry, key string) (string, error) {
	if key == "" {
		key = newKey()
	}
	exists, err := s.rowExists(ctx, key)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, key)
	}

	row := rowFromEntry(key, recipe)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert recipe %s: %w", key, err)
	}
	return key, nil
}

func (s *SQLStore) Read(ctx context.Context, key string) (*model.RecipeEntry, error) {
	var row recipeRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("query recipe %s: %w", key, err)
	}
	return row.toEntry()
}

func (s *SQLStore) ReadAll(ctx context.Context) ([]Record, error) {
	var rows []recipeRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for i := range rows {
		recipe, err := rows[i].toEntry()
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Key: rows[i].ID, Recipe: recipe})
	}
	return records, nil
}

func (s *SQLStore) Update(ctx context.Context, key string, recipe *model.RecipeEntry) error {
	exists, err := s.rowExists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	row := rowFromEntry(key, recipe)
	// Save writes every column, so fields cleared to NULL stay NULL.
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("update recipe %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	exists, err := s.rowExists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := s.db.WithContext(ctx).Delete(&recipeRow{}, "id = ?", key).Error; err != nil {
		return fmt.Errorf("delete recipe %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) ClearAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&recipeRow{}).Error; err != nil {
		return fmt.Errorf("clear recipes: %w", err)
	}
	return nil
}

func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&recipeRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}

func rowFromEntry(key string, recipe *model.RecipeEntry) recipeRow {
	row := recipeRow{
		ID:           key,
		Name:         recipe.Name(),
		Ingredients:  recipe.Ingredients(),
		Instructions: recipe.Instructions(),
	}
	if v, ok := recipe.DatePublished(); ok {
		row.DatePublished = &v
	}
	if v, ok := recipe.Description(); ok {
		row.Description = &v
	}
	if v, ok := recipe.Rating(); ok {
		row.Rating = &v
	}
	if v, ok := recipe.PrepTime(); ok {
		row.PrepTime = &v
	}
	if v, ok := recipe.CookTime(); ok {
		row.CookTime = &v
	}
	if n, ok := recipe.Nutrition(); ok {
		row.Calories = n.Calories
		row.ServingSize = n.ServingSize
	}
	return row
}

func (r recipeRow) toEntry() (*model.RecipeEntry, error) {
	recipe, err := model.New(r.Name, r.Ingredients, r.Instructions)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", r.ID, err)
	}
	if r.DatePublished != nil {
		if err := recipe.SetDatePublished(*r.DatePublished); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", r.ID, err)
		}
	}
	if r.Description != nil {
		if err := recipe.SetDescription(*r.Description); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", r.ID, err)
		}
	}
	if r.Rating != nil {
		recipe.SetRating(*r.Rating)
	}
	if r.PrepTime != nil {
		if err := recipe.SetPrepTime(*r.PrepTime); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", r.ID, err)
		}
	}
	if r.CookTime != nil {
		if err := recipe.SetCookTime(*r.CookTime); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", r.ID, err)
		}
	}
	if r.Calories != nil || r.ServingSize != nil {
		if err := recipe.SetNutrition(model.Nutrition{
			Calories:    r.Calories,
			ServingSize: r.ServingSize,
		}); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", r.ID, err)
		}
	}
	return recipe, nil
}
