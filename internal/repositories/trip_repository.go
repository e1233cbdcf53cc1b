package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripwise/internal/models/db_models"
)

type TripRepository interface {
	SaveTrip(ctx context.Context, trip *dbm.Trip) (uuid.UUID, error)
	GetListOfTripsByUserId(ctx context.Context, page int, pagesize int, userId string) ([]dbm.Trip, error)
	GetTripById(ctx context.Context, tripId string, userId string) (*dbm.Trip, error)
	DeleteTrip(ctx context.Context, tripId string, userId string) error
	UpdateTripBudget(ctx context.Context, tripId string, userId string, amount float64) error
	AddExpense(ctx context.Context, tripId string, userId string, expense *dbm.Expense) error
	GetExpensesByTripId(ctx context.Context, tripId string) ([]dbm.Expense, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) SaveTrip(ctx context.Context, trip *dbm.Trip) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) GetListOfTripsByUserId(ctx context.Context, page int, pagesize int, userId string) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pagesize).
		Limit(pagesize).
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string, userId string) (*dbm.Trip, error) {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		// a malformed id cannot name any trip
		return nil, nil
	}

	var trip dbm.Trip
	err = r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripUUID, userId).
		Preload("Expenses").
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripId string, userId string) error {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", tripUUID, userId).Delete(&dbm.Trip{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("trip_id = ?", tripUUID).Delete(&dbm.Expense{}).Error
	})
}

func (r *tripRepository) UpdateTripBudget(ctx context.Context, tripId string, userId string, amount float64) error {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return gorm.ErrRecordNotFound
	}

	res := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ? AND user_id = ?", tripUUID, userId).
		Update("budget_amount", amount)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tripRepository) AddExpense(ctx context.Context, tripId string, userId string, expense *dbm.Expense) error {
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return gorm.ErrRecordNotFound
	}

	// The trip must exist and belong to the caller before anything is written.
	var trip dbm.Trip
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("id = ? AND user_id = ?", tripUUID, userId).
		First(&trip).Error; err != nil {
		return err
	}

	expense.TripID = tripUUID
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *tripRepository) GetExpensesByTripId(ctx context.Context, tripId string) ([]dbm.Expense, error) {
	var expenses []dbm.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("created_at ASC").
		Find(&expenses).Error

	if err != nil {
		return nil, err
	}

	return expenses, nil
}
