package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/videoforge/backend/models"
)

// ErrTargetNotAllowed is returned when a table/column pair outside the
// allow-list reaches the gateway.
var ErrTargetNotAllowed = errors.New("table/column pair not allow-listed")

// Gateway is the database surface the GDPR manager is parameterized over.
// Tests substitute fakes; production uses the gorm-backed implementation.
type Gateway interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	ContentByUploader(ctx context.Context, userID string) ([]models.Content, error)
	FeedbackByUser(ctx context.Context, userID string) ([]models.Feedback, error)
	ScriptsByUser(ctx context.Context, userID string) ([]models.Script, error)
	AnalyticsByUser(ctx context.Context, userID string) ([]models.AnalyticsEvent, error)
	AuditLogsByUser(ctx context.Context, userID string) ([]models.AuditLog, error)

	// DeleteOwnedRows removes all rows of table whose column equals userID
	// and returns the affected row count. The pair must be allow-listed.
	DeleteOwnedRows(ctx context.Context, table, column, userID string) (int64, error)
	// CountOwnedRows counts rows of table whose column equals userID.
	CountOwnedRows(ctx context.Context, table, column, userID string) (int64, error)
	// DeleteUser removes the user row itself; reports whether a row existed.
	DeleteUser(ctx context.Context, userID string) (bool, error)
}

type gormGateway struct {
	db *gorm.DB
}

// NewGateway wraps a gorm DB in the Gateway interface.
func NewGateway(db *gorm.DB) Gateway {
	return &gormGateway{db: db}
}

func (g *gormGateway) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *gormGateway) ContentByUploader(ctx context.Context, userID string) ([]models.Content, error) {
	var rows []models.Content
	err := g.db.WithContext(ctx).Where("uploader_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (g *gormGateway) FeedbackByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (g *gormGateway) ScriptsByUser(ctx context.Context, userID string) ([]models.Script, error) {
	var rows []models.Script
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (g *gormGateway) AnalyticsByUser(ctx context.Context, userID string) ([]models.AnalyticsEvent, error) {
	var rows []models.AnalyticsEvent
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (g *gormGateway) AuditLogsByUser(ctx context.Context, userID string) ([]models.AuditLog, error) {
	var rows []models.AuditLog
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (g *gormGateway) DeleteOwnedRows(ctx context.Context, table, column, userID string) (int64, error) {
	// Re-validated here even though the manager checks first: the identifier
	// interpolation below must never see an unvetted name.
	if !AllowedTarget(table, column) {
		return 0, fmt.Errorf("%w: %s.%s", ErrTargetNotAllowed, table, column)
	}
	res := g.db.WithContext(ctx).Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, column), userID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (g *gormGateway) CountOwnedRows(ctx context.Context, table, column, userID string) (int64, error) {
	if !AllowedTarget(table, column) {
		return 0, fmt.Errorf("%w: %s.%s", ErrTargetNotAllowed, table, column)
	}
	var count int64
	err := g.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", table, column), userID).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *gormGateway) DeleteUser(ctx context.Context, userID string) (bool, error) {
	res := g.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
