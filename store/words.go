package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sonerk/kelimeweb/models"
	"github.com/sonerk/kelimeweb/seed"
)

var (
	// ErrDuplicateWord signals an add for an English term the owner already has.
	ErrDuplicateWord = errors.New("word already exists for this user")
	// ErrWordNotFound signals a counter update for a term that is gone.
	ErrWordNotFound = errors.New("word not found")
)

// WordStore is the per-owner collection of word entries. Every query is
// keyed on the owner, so different owners never observe each other's rows.
type WordStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewWordStore(db *gorm.DB, log *zap.Logger) *WordStore {
	return &WordStore{db: db, log: log}
}

// Load returns the owner's entries ordered by English term, seeding the
// store from the built-in catalog first when the owner has none. A non-empty
// level restricts the result to that bucket ("ALL" means no restriction);
// entries with an unrecognized stored level count as A1.
func (s *WordStore) Load(ctx context.Context, owner, level string) ([]models.WordEntry, error) {
	count, err := s.Count(ctx, owner)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := s.seedOwner(ctx, owner); err != nil {
			return nil, err
		}
	}

	var entries []models.WordEntry
	err = s.db.WithContext(ctx).
		Where("username = ?", owner).
		Order("foreign_term asc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load words for %s: %w", owner, err)
	}

	if level == "" || strings.EqualFold(level, "ALL") {
		return entries, nil
	}

	want := models.ParseLevel(level)
	filtered := make([]models.WordEntry, 0, len(entries))
	for _, e := range entries {
		if models.ParseLevel(e.Level) == want {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Add inserts a new entry with zero counters. The English term is unique
// per owner; a conflict leaves the store unchanged.
func (s *WordStore) Add(ctx context.Context, owner, foreign, native, level string) error {
	entry := models.WordEntry{
		Username:    owner,
		ForeignTerm: strings.ToLower(strings.TrimSpace(foreign)),
		NativeTerm:  strings.ToLower(strings.TrimSpace(native)),
		Level:       models.ParseLevel(level),
	}

	err := s.db.WithContext(ctx).Create(&entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateWord
	}
	if err != nil {
		return fmt.Errorf("failed to add word for %s: %w", owner, err)
	}
	return nil
}

// RecordAnswer bumps exactly one counter on the matching entry.
func (s *WordStore) RecordAnswer(ctx context.Context, owner, foreign string, correct bool) error {
	column := "incorrect_count"
	if correct {
		column = "correct_count"
	}

	res := s.db.WithContext(ctx).Model(&models.WordEntry{}).
		Where("username = ? AND foreign_term = ?", owner, strings.ToLower(strings.TrimSpace(foreign))).
		Update(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to record answer for %s: %w", owner, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrWordNotFound
	}
	return nil
}

// Count reports how many entries the owner has, without seeding.
func (s *WordStore) Count(ctx context.Context, owner string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.WordEntry{}).
		Where("username = ?", owner).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count words for %s: %w", owner, err)
	}
	return count, nil
}

// DeleteAll removes the owner's entire word store.
func (s *WordStore) DeleteAll(ctx context.Context, owner string) error {
	err := s.db.WithContext(ctx).Unscoped().
		Where("username = ?", owner).
		Delete(&models.WordEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete words for %s: %w", owner, err)
	}
	return nil
}

func (s *WordStore) seedOwner(ctx context.Context, owner string) error {
	catalog := seed.Catalog()
	entries := make([]models.WordEntry, 0, len(catalog))
	for _, c := range catalog {
		entries = append(entries, models.WordEntry{
			Username:    owner,
			ForeignTerm: c.ForeignTerm,
			NativeTerm:  c.NativeTerm,
			Level:       c.Level,
		})
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(entries, 100).Error
	if err != nil {
		return fmt.Errorf("failed to seed words for %s: %w", owner, err)
	}

	s.log.Info("seeded word store", zap.String("owner", owner), zap.Int("words", len(entries)))
	return nil
}
