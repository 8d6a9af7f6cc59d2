package repository

import (
	"context"
	"time"

	domainRepo "github.com/davidkuria/brewpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db       *gorm.DB
	timezone string
}

// NewAnalyticsRepository creates the SQL-backed sales aggregation
// repository. The timezone is the IANA name used to bucket order
// timestamps into calendar days and months.
func NewAnalyticsRepository(db *gorm.DB, timezone string) domainRepo.AnalyticsRepository {
	if timezone == "" {
		timezone = "UTC"
	}
	return &analyticsRepository{db: db, timezone: timezone}
}

// Order timestamps are stored as nanoseconds since the epoch; the
// queries convert them to timestamps once and bucket with to_char.
const tsExpr = "to_timestamp(orders.timestamp / 1000000000.0) AT TIME ZONE ?"

func (r *analyticsRepository) GetDailySummary(ctx context.Context, day time.Time) (*domainRepo.DailySummaryResult, error) {
	date := day.Format("2006-01-02")

	var result domainRepo.DailySummaryResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			? AS date,
			COALESCE(SUM(orders.total), 0) AS revenue,
			COALESCE(SUM(orders.discount), 0) AS discount,
			COALESCE((
				SELECT SUM(order_items.quantity)
				FROM order_items
				JOIN orders o ON o.id = order_items.order_id
				WHERE o.deleted_at IS NULL
				  AND to_char(to_timestamp(o.timestamp / 1000000000.0) AT TIME ZONE ?, 'YYYY-MM-DD') = ?
			), 0) AS item_count,
			COUNT(orders.id) AS bill_count
		FROM orders
		WHERE orders.deleted_at IS NULL
		  AND to_char(`+tsExpr+`, 'YYYY-MM-DD') = ?
	`, date, r.timezone, date, r.timezone, date).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	result.Date = date
	return &result, nil
}

func (r *analyticsRepository) GetItemWiseSales(ctx context.Context) ([]domainRepo.ItemSalesResult, error) {
	var results []domainRepo.ItemSalesResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			order_items.name AS name,
			SUM(order_items.quantity) AS quantity,
			SUM(order_items.quantity * order_items.price) AS revenue
		FROM order_items
		JOIN orders ON orders.id = order_items.order_id
		WHERE orders.deleted_at IS NULL
		GROUP BY order_items.name
		ORDER BY quantity DESC, MIN(order_items.id)
	`).Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetDateWiseSales(ctx context.Context, ascending bool) ([]domainRepo.DateSalesResult, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	var results []domainRepo.DateSalesResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(`+tsExpr+`, 'YYYY-MM-DD') AS date,
			COUNT(orders.id) AS bill_count,
			COALESCE(SUM(orders.total), 0) AS revenue
		FROM orders
		WHERE orders.deleted_at IS NULL
		GROUP BY date
		ORDER BY date `+direction+`
	`, r.timezone).Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetMonthlySales(ctx context.Context) ([]domainRepo.MonthSalesResult, error) {
	var results []domainRepo.MonthSalesResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(`+tsExpr+`, 'YYYY-MM') AS month,
			COUNT(orders.id) AS order_count,
			COALESCE(SUM(orders.total), 0) AS revenue
		FROM orders
		WHERE orders.deleted_at IS NULL
		GROUP BY month
		ORDER BY month DESC
	`, r.timezone).Scan(&results).Error
	return results, err
}
