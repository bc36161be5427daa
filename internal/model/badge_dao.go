package model

import (
	"context"

	"gorm.io/gorm"
)

// BadgeSnapshotsDao defines the interface for database operations on the
// badge_snapshots table.
type BadgeSnapshotsDao interface {
	Insert(ctx context.Context, data *BadgeSnapshots) error
	FindRecent(ctx context.Context, limit int) ([]*BadgeSnapshots, error)
	FindByAddress(ctx context.Context, address string, limit int) ([]*BadgeSnapshots, error)
}

type badgeSnapshotsDao struct {
	db *gorm.DB
}

// NewBadgeSnapshotsDao creates a new instance of BadgeSnapshotsDao.
func NewBadgeSnapshotsDao(db *gorm.DB) BadgeSnapshotsDao {
	return &badgeSnapshotsDao{
		db: db,
	}
}

// Insert adds a new record to the badge_snapshots table.
func (d *badgeSnapshotsDao) Insert(ctx context.Context, data *BadgeSnapshots) error {
	return d.db.WithContext(ctx).Create(data).Error
}

// FindRecent retrieves the newest snapshots first.
func (d *badgeSnapshotsDao) FindRecent(ctx context.Context, limit int) ([]*BadgeSnapshots, error) {
	var snapshots []*BadgeSnapshots
	err := d.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// FindByAddress retrieves the newest snapshots issued for one address.
func (d *badgeSnapshotsDao) FindByAddress(ctx context.Context, address string, limit int) ([]*BadgeSnapshots, error) {
	var snapshots []*BadgeSnapshots
	err := d.db.WithContext(ctx).
		Where("LOWER(address) = LOWER(?)", address).
		Order("created_at desc").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// nopBadgeSnapshotsDao is used when no database is configured.
type nopBadgeSnapshotsDao struct{}

// NewNopBadgeSnapshotsDao returns a dao that stores nothing.
func NewNopBadgeSnapshotsDao() BadgeSnapshotsDao {
	return nopBadgeSnapshotsDao{}
}

func (nopBadgeSnapshotsDao) Insert(context.Context, *BadgeSnapshots) error { return nil }

func (nopBadgeSnapshotsDao) FindRecent(context.Context, int) ([]*BadgeSnapshots, error) {
	return nil, nil
}

func (nopBadgeSnapshotsDao) FindByAddress(context.Context, string, int) ([]*BadgeSnapshots, error) {
	return nil, nil
}
