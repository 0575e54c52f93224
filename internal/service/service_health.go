package service

import (
	"context"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

type healthService struct {
	records store.HealthRepository

	logger *logger.Logger
}

func NewHealthService(records store.HealthRepository, logger *logger.Logger) HealthService {
	return &healthService{records: records, logger: logger}
}

func (h *healthService) List(ctx context.Context) ([]models.HealthRecord, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return h.records.HealthRecordsByUser(ctx, caller.ID)
}

func (h *healthService) GetByID(ctx context.Context, id int64) (models.HealthRecord, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.HealthRecord{}, err
	}

	record, err := h.ownedRecord(ctx, caller, id)
	if err != nil {
		return models.HealthRecord{}, err
	}

	return record, nil
}

func (h *healthService) Create(ctx context.Context, data models.CreateHealthRecordRequest) (models.InsertResult, error) {
	if data.Date.IsZero() {
		return models.InsertResult{}, validationError("date is required")
	}
	if err := validateHealthScales(data.SleepQuality, data.Mood); err != nil {
		return models.InsertResult{}, err
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.InsertResult{}, err
	}

	id, err := h.records.CreateHealthRecord(ctx, caller.ID, data)
	if err != nil {
		return models.InsertResult{}, err
	}

	return models.InsertResult{InsertID: id}, nil
}

func (h *healthService) Update(ctx context.Context, req models.UpdateHealthRecordRequest) (models.AffectedResult, error) {
	quality, mood := "", ""
	if req.SleepQuality != nil {
		quality = *req.SleepQuality
	}
	if req.Mood != nil {
		mood = *req.Mood
	}
	if err := validateHealthScales(quality, mood); err != nil {
		return models.AffectedResult{}, err
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	if _, err = h.ownedRecord(ctx, caller, req.ID); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := h.records.UpdateHealthRecord(ctx, req.ID, req.HealthRecordPatch)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}

func (h *healthService) Delete(ctx context.Context, id int64) (models.AffectedResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	if _, err = h.ownedRecord(ctx, caller, id); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := h.records.DeleteHealthRecord(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}

// ownedRecord fetches the record and hides other users' records behind
// ErrNotFound, so a caller cannot probe which ids exist.
func (h *healthService) ownedRecord(ctx context.Context, caller models.User, id int64) (models.HealthRecord, error) {
	record, err := h.records.GetHealthRecordByID(ctx, id)
	if err != nil {
		return models.HealthRecord{}, err
	}
	if record.UserID != caller.ID {
		return models.HealthRecord{}, store.ErrNotFound
	}

	return record, nil
}

func validateHealthScales(sleepQuality, mood string) error {
	switch sleepQuality {
	case "", models.SleepPoor, models.SleepFair, models.SleepGood, models.SleepExcellent:
	default:
		return validationError("invalid sleepQuality %q", sleepQuality)
	}
	switch mood {
	case "", models.MoodBad, models.MoodOkay, models.MoodGood, models.MoodGreat:
	default:
		return validationError("invalid mood %q", mood)
	}
	return nil
}
