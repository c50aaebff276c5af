package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/pkg/psqlbuilder"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// slotColumns полный набор колонок таблицы slots.
// В Update попадают только явно перечисленные поля SlotUpdate,
// любой другой вход отбрасывается до записи (защита от over-posting).
var slotColumns = []string{
	"id",
	"date",
	"time",
	"service_name",
	"client_name",
	"client_email",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый доступный слот (только дата и время,
// поля назначения всегда NULL)
func (r *Repository) Create(ctx context.Context, date time.Time, t types.TimeString) (*domain.Slot, error) {
	query, args, err := psqlbuilder.Insert("slots").
		Columns("date", "time").
		Values(date, t).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	slot := &domain.Slot{Date: date, Time: t}
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.Date,
		&slot.Time,
		&slot.ServiceName,
		&slot.ClientName,
		&slot.ClientEmail,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// Update обновляет только переданные поля слота по ID.
// ID не обновляется никогда. Запись слепая: никаких проверок занятости
// на уровне SQL нет, из двух конкурентных обновлений одного слота
// выживает последняя запись.
func (r *Repository) Update(ctx context.Context, id int64, update domain.SlotUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	updateBuilder := psqlbuilder.Update("slots").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Date != nil {
		updateBuilder = updateBuilder.Set("date", *update.Date)
	}
	if update.Time != nil {
		updateBuilder = updateBuilder.Set("time", *update.Time)
	}
	if update.ServiceName != nil {
		updateBuilder = updateBuilder.Set("service_name", *update.ServiceName)
	}
	if update.ClientName != nil {
		updateBuilder = updateBuilder.Set("client_name", *update.ClientName)
	}
	if update.ClientEmail != nil {
		updateBuilder = updateBuilder.Set("client_email", *update.ClientEmail)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete удаляет слот (физическое удаление строки)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// List получает все слоты с опциональным фильтром по диапазону дат
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	selectBuilder := r.listBuilder(filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListAvailable получает слоты без назначения (все три поля NULL)
// с опциональным фильтром по диапазону дат
func (r *Repository) ListAvailable(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	selectBuilder := r.listBuilder(filter).
		Where("service_name IS NULL AND client_name IS NULL AND client_email IS NULL")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// listBuilder общий SELECT с фильтром по датам и сортировкой
func (r *Repository) listBuilder(filter domain.SlotFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		OrderBy("date ASC, time ASC")

	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.ToDate})
	}

	return selectBuilder
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&slot.Time,
			&slot.ServiceName,
			&slot.ClientName,
			&slot.ClientEmail,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
