package store

import (
	"context"
	"testing"
	"time"

	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRecords_LimitAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < healthRecordsLimit+3; i++ {
		_, err := s.CreateHealthRecord(ctx, 1, models.CreateHealthRecordRequest{
			Date: start.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	records, err := s.HealthRecordsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, healthRecordsLimit)
	assert.True(t, records[0].Date.After(records[len(records)-1].Date), "most recent date first")
}

func TestUpdateHealthRecord_PartialPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sleep := 7.5
	id, err := s.CreateHealthRecord(ctx, 1, models.CreateHealthRecordRequest{
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SleepHours:   &sleep,
		SleepQuality: models.SleepGood,
		Mood:         models.MoodOkay,
	})
	require.NoError(t, err)

	mood := models.MoodGreat
	water := int64(8)
	affected, err := s.UpdateHealthRecord(ctx, id, models.HealthRecordPatch{Mood: &mood, Water: &water})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	record, err := s.GetHealthRecordByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.MoodGreat, record.Mood)
	require.NotNil(t, record.Water)
	assert.Equal(t, int64(8), *record.Water)
	require.NotNil(t, record.SleepHours)
	assert.Equal(t, 7.5, *record.SleepHours, "unpatched metrics stay")
	assert.Equal(t, models.SleepGood, record.SleepQuality)
}

func TestDeleteHealthRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateHealthRecord(ctx, 1, models.CreateHealthRecordRequest{
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	affected, err := s.DeleteHealthRecord(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	_, err = s.GetHealthRecordByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	affected, err = s.DeleteHealthRecord(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
}
