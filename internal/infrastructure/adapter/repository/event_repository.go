package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/model"
)

// EventRepository implements persistence.EventRepository using GORM
type EventRepository struct {
	conn            *database.Connection
	logger          coreport.Logger
	errorMapper     *database.ErrorMapper
	errorClassifier *ErrorClassifier
	retry           database.RetryConfig
}

var _ persistence.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(conn *database.Connection, logger coreport.Logger) *EventRepository {
	return &EventRepository{
		conn:            conn,
		logger:          logger,
		errorMapper:     database.NewErrorMapper(),
		errorClassifier: NewErrorClassifier(),
		retry:           database.DefaultRetryConfig(),
	}
}

// Insert stores the event; a row with the same id is replaced
func (r *EventRepository) Insert(ctx context.Context, event *entity.Event) (int64, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	row := model.FromEventEntity(event)

	err := database.RetryOnTransientError(ctx, r.retry, func() error {
		return r.conn.DB.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(row).Error
	}, r.logger)
	if err != nil {
		r.logger.Error("Failed to insert event", map[string]any{
			"type":       event.Type,
			"route":      event.Route,
			"error_type": r.errorClassifier.Classify(err),
			"error":      err.Error(),
		})
		return 0, r.errorMapper.MapError(err, "insert", database.TableEvents)
	}

	return row.ID, nil
}

// All streams every event, newest first
func (r *EventRepository) All() live.Source[[]*entity.Event] {
	return database.LiveQuery(r.conn.Tracker, database.TableEvents, r.findAll)
}

// Clear deletes every event
func (r *EventRepository) Clear(ctx context.Context) error {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	result := r.conn.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Event{})
	if result.Error != nil {
		r.logger.Error("Failed to clear events", map[string]any{
			"error_type": r.errorClassifier.Classify(result.Error),
			"error":      result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, "delete_all", database.TableEvents)
	}

	r.logger.Info("Events cleared", map[string]any{"rows": result.RowsAffected})
	return nil
}

func (r *EventRepository) findAll(ctx context.Context) ([]*entity.Event, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	var rows []model.Event
	if err := r.conn.DB.WithContext(ctx).Order(newestFirst).Find(&rows).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "select_all", database.TableEvents)
	}

	events := make([]*entity.Event, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].ToEntity())
	}
	return events, nil
}
