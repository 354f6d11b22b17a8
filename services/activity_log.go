package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// ActivityRecorder stores the admin audit trail
type ActivityRecorder interface {
	Record(ctx context.Context, entry *models.ActivityLog) error
	Recent(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

type GormActivityLog struct {
	db *gorm.DB
}

func NewGormActivityLog(db *gorm.DB) *GormActivityLog {
	return &GormActivityLog{db: db}
}

func (g *GormActivityLog) Record(ctx context.Context, entry *models.ActivityLog) error {
	if err := g.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (g *GormActivityLog) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	logs := []models.ActivityLog{}
	if err := g.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return logs, nil
}

// MemoryActivityLog keeps entries in process memory, newest last
type MemoryActivityLog struct {
	mu      sync.Mutex
	entries []models.ActivityLog
}

func (m *MemoryActivityLog) Record(_ context.Context, entry *models.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := entry.BeforeCreate(nil); err != nil {
		return err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MemoryActivityLog) Recent(_ context.Context, limit int) ([]models.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ActivityLog{}
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}
