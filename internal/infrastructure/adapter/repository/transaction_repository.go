package repository

import (
	"context"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/model"
)

// newestFirst orders rows by creation time; the id breaks ties between rows
// written in the same millisecond
const newestFirst = "timestamp DESC, id DESC"

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	conn            *database.Connection
	logger          coreport.Logger
	errorMapper     *database.ErrorMapper
	errorClassifier *ErrorClassifier
	metrics         *database.MetricsCollector
	retry           database.RetryConfig
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(conn *database.Connection, logger coreport.Logger, timeProvider coreport.TimeProvider) *TransactionRepository {
	return &TransactionRepository{
		conn:            conn,
		logger:          logger,
		errorMapper:     database.NewErrorMapper(),
		errorClassifier: NewErrorClassifier(),
		metrics:         database.NewMetricsCollector(logger, timeProvider, conn.Config.SlowThreshold),
		retry:           database.DefaultRetryConfig(),
	}
}

// Insert stores the transaction as given and returns its new id
func (r *TransactionRepository) Insert(ctx context.Context, transaction *entity.Transaction) (int64, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	row := model.FromTransactionEntity(transaction)

	err := database.RetryOnTransientError(ctx, r.retry, func() error {
		_, err := r.metrics.MeasureQuery("insert", database.TableTransactions, func() (int64, error) {
			result := r.conn.DB.WithContext(ctx).Create(row)
			return result.RowsAffected, result.Error
		})
		return err
	}, r.logger)
	if err != nil {
		r.logger.Error("Failed to insert transaction", map[string]any{
			"transaction_ref": transaction.TransactionRef,
			"error_type":      r.errorClassifier.Classify(err),
			"error":           err.Error(),
		})
		return 0, r.errorMapper.MapError(err, "insert", database.TableTransactions)
	}

	r.logger.Debug("Transaction inserted", map[string]any{
		"id":              row.ID,
		"transaction_ref": transaction.TransactionRef,
	})
	return row.ID, nil
}

// AllTransactions streams every transaction, newest first
func (r *TransactionRepository) AllTransactions() live.Source[[]*entity.Transaction] {
	return database.LiveQuery(r.conn.Tracker, database.TableTransactions, r.findAll)
}

// TransactionByID streams the transaction with the given id, nil while absent
func (r *TransactionRepository) TransactionByID(id int64) live.Source[*entity.Transaction] {
	return database.LiveQuery(r.conn.Tracker, database.TableTransactions, func(ctx context.Context) (*entity.Transaction, error) {
		return r.findOne(ctx, "by_id", "id = ?", id)
	})
}

// LatestTransaction streams the newest transaction, nil while the table is empty
func (r *TransactionRepository) LatestTransaction() live.Source[*entity.Transaction] {
	return database.LiveQuery(r.conn.Tracker, database.TableTransactions, func(ctx context.Context) (*entity.Transaction, error) {
		return r.findOne(ctx, "latest", "")
	})
}

func (r *TransactionRepository) findAll(ctx context.Context) ([]*entity.Transaction, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	var rows []model.Transaction
	_, err := r.metrics.MeasureQuery("select_all", database.TableTransactions, func() (int64, error) {
		result := r.conn.DB.WithContext(ctx).Order(newestFirst).Find(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.errorMapper.MapError(err, "select_all", database.TableTransactions)
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, rows[i].ToEntity())
	}
	return transactions, nil
}

// findOne returns the newest row matching the optional condition, or nil
func (r *TransactionRepository) findOne(ctx context.Context, operation, condition string, args ...any) (*entity.Transaction, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	var rows []model.Transaction
	_, err := r.metrics.MeasureQuery(operation, database.TableTransactions, func() (int64, error) {
		query := r.conn.DB.WithContext(ctx).Order(newestFirst).Limit(1)
		if condition != "" {
			query = query.Where(condition, args...)
		}
		result := query.Find(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.errorMapper.MapError(err, operation, database.TableTransactions)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].ToEntity(), nil
}
