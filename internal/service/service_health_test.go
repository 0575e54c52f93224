package service

import (
	"testing"
	"time"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_OwnerScope(t *testing.T) {
	f := newFixture(t)
	svc := NewHealthService(f.store, logger.Nop())

	created, err := svc.Create(f.as(f.demo), models.CreateHealthRecordRequest{
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Mood: models.MoodGood,
	})
	require.NoError(t, err)

	// The owner reads it back.
	record, err := svc.GetByID(f.as(f.demo), created.InsertID)
	require.NoError(t, err)
	assert.Equal(t, models.MoodGood, record.Mood)

	// Another caller sees not-found, not denied: ids never leak.
	_, err = svc.GetByID(f.as(f.admin), created.InsertID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	notes := "slept badly"
	_, err = svc.Update(f.as(f.admin), models.UpdateHealthRecordRequest{
		ID:                created.InsertID,
		HealthRecordPatch: models.HealthRecordPatch{Notes: &notes},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Delete(f.as(f.admin), created.InsertID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The failed attempts changed nothing.
	record, err = svc.GetByID(f.as(f.demo), created.InsertID)
	require.NoError(t, err)
	assert.Empty(t, record.Notes)
}

func TestHealthService_Create_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewHealthService(f.store, logger.Nop())
	ctx := f.as(f.demo)

	_, err := svc.Create(ctx, models.CreateHealthRecordRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, models.CreateHealthRecordRequest{
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Mood: "ecstatic",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, models.CreateHealthRecordRequest{
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SleepQuality: "amazing",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHealthService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	svc := NewHealthService(f.store, logger.Nop())
	ctx := f.as(f.demo)

	created, err := svc.Create(ctx, models.CreateHealthRecordRequest{
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	mood := models.MoodGreat
	result, err := svc.Update(ctx, models.UpdateHealthRecordRequest{
		ID:                created.InsertID,
		HealthRecordPatch: models.HealthRecordPatch{Mood: &mood},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AffectedRows)

	result, err = svc.Delete(ctx, created.InsertID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AffectedRows)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
