package store

import (
	"context"
	"sort"

	"github.com/dkurbatov/lifehub/models"
)

// healthRecordsLimit caps list queries; the dashboard only ever shows the
// most recent month of entries.
const healthRecordsLimit = 30

// HealthRecordsByUser returns up to healthRecordsLimit records owned by
// userID, most recent date first.
func (s *Store) HealthRecordsByUser(ctx context.Context, userID int64) ([]models.HealthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.HealthRecord, 0)
	for _, h := range s.healthRecords {
		if h.UserID == userID {
			result = append(result, h)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID > result[j].ID
		}
		return result[i].Date.After(result[j].Date)
	})
	if len(result) > healthRecordsLimit {
		result = result[:healthRecordsLimit]
	}

	return result, nil
}

// GetHealthRecordByID returns the record with the given id or ErrNotFound.
func (s *Store) GetHealthRecordByID(ctx context.Context, id int64) (models.HealthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.healthRecords[id]
	if !ok {
		return models.HealthRecord{}, ErrNotFound
	}

	return h, nil
}

// CreateHealthRecord inserts a new record owned by userID.
func (s *Store) CreateHealthRecord(ctx context.Context, userID int64, data models.CreateHealthRecordRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.healthSeq++
	record := models.HealthRecord{
		ID:               s.healthSeq,
		UserID:           userID,
		Date:             data.Date,
		SleepHours:       data.SleepHours,
		SleepQuality:     data.SleepQuality,
		Meals:            data.Meals,
		Water:            data.Water,
		Exercise:         data.Exercise,
		ExerciseDuration: data.ExerciseDuration,
		Mood:             data.Mood,
		Notes:            data.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.healthRecords[record.ID] = record

	return record.ID, nil
}

// UpdateHealthRecord applies a partial patch and refreshes the updated
// timestamp. Returns the number of affected records.
func (s *Store) UpdateHealthRecord(ctx context.Context, id int64, patch models.HealthRecordPatch) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.healthRecords[id]
	if !ok {
		return 0, nil
	}

	if patch.Date != nil {
		record.Date = *patch.Date
	}
	if patch.SleepHours != nil {
		record.SleepHours = patch.SleepHours
	}
	if patch.SleepQuality != nil {
		record.SleepQuality = *patch.SleepQuality
	}
	if patch.Meals != nil {
		record.Meals = *patch.Meals
	}
	if patch.Water != nil {
		record.Water = patch.Water
	}
	if patch.Exercise != nil {
		record.Exercise = *patch.Exercise
	}
	if patch.ExerciseDuration != nil {
		record.ExerciseDuration = patch.ExerciseDuration
	}
	if patch.Mood != nil {
		record.Mood = *patch.Mood
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	record.UpdatedAt = s.now()
	s.healthRecords[id] = record

	return 1, nil
}

// DeleteHealthRecord removes the record with the given id. Returns the
// number of affected records.
func (s *Store) DeleteHealthRecord(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.healthRecords[id]; !ok {
		return 0, nil
	}
	delete(s.healthRecords, id)

	return 1, nil
}
