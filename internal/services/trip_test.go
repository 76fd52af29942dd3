package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemet-travel/kemet-api/internal/models"
	"github.com/kemet-travel/kemet-api/internal/services"
)

func newTripService(ctrl *gomock.Controller) (
	*services.TripService,
	*services.MockTripReader,
	*services.MockTripWriter,
	*services.MockEventRecorder,
) {
	reader := services.NewMockTripReader(ctrl)
	writer := services.NewMockTripWriter(ctrl)
	recorder := services.NewMockEventRecorder(ctrl)
	svc := services.NewTripService(reader, writer, recorder)
	return svc, reader, writer, recorder
}

func TestTripService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, recorder := newTripService(ctrl)

	ownerID := uuid.New()
	destID := uuid.New()
	trip := &models.TripDB{
		UserID:       &ownerID,
		Title:        "Cairo Highlights",
		TripType:     models.TripTypeFamily,
		StartDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		DurationDays: 3,
		Days: []models.DayDB{
			{
				DayNumber: 1,
				Title:     "Giza",
				City:      "Giza",
				Activities: []models.DayActivityDB{
					{DestinationID: destID, ActivityType: models.ActivitySightseeing, StartTime: "09:00", DurationHours: 3},
				},
			},
			{DayNumber: 2, Title: "Old Cairo", City: "Cairo"},
		},
	}

	writer.EXPECT().
		SaveTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.TripDB) error {
			assert.NotEqual(t, uuid.Nil, tr.TripID)
			return nil
		})
	writer.EXPECT().
		SaveDay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, day *models.DayDB) error {
			assert.NotEqual(t, uuid.Nil, day.DayID)
			assert.Equal(t, trip.TripID, day.TripID)
			return nil
		}).
		Times(2)
	writer.EXPECT().
		SaveActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, act *models.DayActivityDB) error {
			assert.NotEqual(t, uuid.Nil, act.ActivityID)
			assert.Equal(t, trip.Days[0].DayID, act.DayID)
			return nil
		})
	recorder.EXPECT().
		Record(gomock.Any(), models.EventTripCreated, gomock.Any(), &ownerID).
		Return(nil)

	created, err := svc.Create(context.Background(), trip)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.TripID)
}

func TestTripService_Create_RecorderFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, recorder := newTripService(ctrl)

	trip := &models.TripDB{Title: "System Trip", TripType: models.TripTypeGroup}

	writer.EXPECT().SaveTrip(gomock.Any(), gomock.Any()).Return(nil)
	recorder.EXPECT().
		Record(gomock.Any(), models.EventTripCreated, gomock.Any(), gomock.Nil()).
		Return(errors.New("broker down"))

	created, err := svc.Create(context.Background(), trip)
	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestTripService_Create_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _ := newTripService(ctrl)

	writer.EXPECT().SaveTrip(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	created, err := svc.Create(context.Background(), &models.TripDB{Title: "x"})
	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestTripService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _ := newTripService(ctrl)

	tripID := uuid.New()

	t.Run("updates mutable fields", func(t *testing.T) {
		existing := &models.TripDB{TripID: tripID, Title: "Old", Price: 100}
		reader.EXPECT().GetWithDays(gomock.Any(), tripID).Return(existing, nil)
		writer.EXPECT().
			UpdateTrip(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *models.TripDB) error {
				assert.Equal(t, "New", tr.Title)
				assert.Equal(t, 250.0, tr.Price)
				return nil
			})

		updated, err := svc.Update(context.Background(), tripID, &models.TripDB{Title: "New", Price: 250})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "New", updated.Title)
	})

	t.Run("missing trip returns nil", func(t *testing.T) {
		reader.EXPECT().GetWithDays(gomock.Any(), tripID).Return(nil, nil)

		updated, err := svc.Update(context.Background(), tripID, &models.TripDB{Title: "New"})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestTripService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _ := newTripService(ctrl)

	tripID := uuid.New()

	t.Run("deletes an existing trip", func(t *testing.T) {
		reader.EXPECT().Get(gomock.Any(), tripID).Return(&models.TripDB{TripID: tripID}, nil)
		writer.EXPECT().DeleteTrip(gomock.Any(), tripID).Return(nil)

		ok, err := svc.Delete(context.Background(), tripID)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing trip returns false", func(t *testing.T) {
		reader.EXPECT().Get(gomock.Any(), tripID).Return(nil, nil)

		ok, err := svc.Delete(context.Background(), tripID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTripService_Days(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _ := newTripService(ctrl)

	tripID := uuid.New()
	otherTrip := uuid.New()
	dayID := uuid.New()

	t.Run("add day to existing trip", func(t *testing.T) {
		reader.EXPECT().Get(gomock.Any(), tripID).Return(&models.TripDB{TripID: tripID}, nil)
		writer.EXPECT().
			SaveDay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, day *models.DayDB) error {
				assert.Equal(t, tripID, day.TripID)
				assert.NotEqual(t, uuid.Nil, day.DayID)
				return nil
			})

		day, err := svc.AddDay(context.Background(), tripID, &models.DayDB{DayNumber: 1, Title: "Luxor"})
		require.NoError(t, err)
		require.NotNil(t, day)
	})

	t.Run("add day to missing trip", func(t *testing.T) {
		reader.EXPECT().Get(gomock.Any(), tripID).Return(nil, nil)

		day, err := svc.AddDay(context.Background(), tripID, &models.DayDB{DayNumber: 1})
		assert.NoError(t, err)
		assert.Nil(t, day)
	})

	t.Run("update day of another trip is refused", func(t *testing.T) {
		reader.EXPECT().GetDay(gomock.Any(), dayID).Return(&models.DayDB{DayID: dayID, TripID: otherTrip}, nil)

		day, err := svc.UpdateDay(context.Background(), tripID, dayID, &models.DayDB{Title: "x"})
		assert.NoError(t, err)
		assert.Nil(t, day)
	})

	t.Run("update day", func(t *testing.T) {
		reader.EXPECT().GetDay(gomock.Any(), dayID).Return(&models.DayDB{DayID: dayID, TripID: tripID, Title: "Old"}, nil)
		writer.EXPECT().
			UpdateDay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, day *models.DayDB) error {
				assert.Equal(t, "New", day.Title)
				return nil
			})

		day, err := svc.UpdateDay(context.Background(), tripID, dayID, &models.DayDB{Title: "New"})
		require.NoError(t, err)
		require.NotNil(t, day)
	})

	t.Run("remove day", func(t *testing.T) {
		reader.EXPECT().GetDay(gomock.Any(), dayID).Return(&models.DayDB{DayID: dayID, TripID: tripID}, nil)
		writer.EXPECT().DeleteDay(gomock.Any(), dayID).Return(nil)

		ok, err := svc.RemoveDay(context.Background(), tripID, dayID)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove day of another trip is refused", func(t *testing.T) {
		reader.EXPECT().GetDay(gomock.Any(), dayID).Return(&models.DayDB{DayID: dayID, TripID: otherTrip}, nil)

		ok, err := svc.RemoveDay(context.Background(), tripID, dayID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTripService_Activities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _ := newTripService(ctrl)

	tripID := uuid.New()
	dayID := uuid.New()
	otherDay := uuid.New()
	activityID := uuid.New()

	t.Run("add activity to a day of the trip", func(t *testing.T) {
		reader.EXPECT().GetDay(gomock.Any(), dayID).Return(&models.DayDB{DayID: dayID, TripID: tripID}, nil)
		writer.EXPECT().
			SaveActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, act *models.DayActivityDB) error {
				assert.Equal(t, dayID, act.DayID)
				assert.NotEqual(t, uuid.Nil, act.ActivityID)
				return nil
			})

		act, err := svc.AddActivity(context.Background(), tripID, dayID, &models.DayActivityDB{ActivityType: models.ActivityFood})
		require.NoError(t, err)
		require.NotNil(t, act)
	})

	t.Run("add activity to a day of another trip is refused", func(t *testing.T) {
		reader.EXPECT().GetDay(gomock.Any(), dayID).Return(&models.DayDB{DayID: dayID, TripID: uuid.New()}, nil)

		act, err := svc.AddActivity(context.Background(), tripID, dayID, &models.DayActivityDB{})
		assert.NoError(t, err)
		assert.Nil(t, act)
	})

	t.Run("update activity of another day is refused", func(t *testing.T) {
		reader.EXPECT().GetActivity(gomock.Any(), activityID).Return(&models.DayActivityDB{ActivityID: activityID, DayID: otherDay}, nil)

		act, err := svc.UpdateActivity(context.Background(), dayID, activityID, &models.DayActivityDB{})
		assert.NoError(t, err)
		assert.Nil(t, act)
	})

	t.Run("update activity", func(t *testing.T) {
		reader.EXPECT().GetActivity(gomock.Any(), activityID).Return(&models.DayActivityDB{ActivityID: activityID, DayID: dayID}, nil)
		writer.EXPECT().
			UpdateActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, act *models.DayActivityDB) error {
				assert.Equal(t, models.ActivityMuseum, act.ActivityType)
				return nil
			})

		act, err := svc.UpdateActivity(context.Background(), dayID, activityID, &models.DayActivityDB{ActivityType: models.ActivityMuseum})
		require.NoError(t, err)
		require.NotNil(t, act)
	})

	t.Run("remove activity", func(t *testing.T) {
		reader.EXPECT().GetActivity(gomock.Any(), activityID).Return(&models.DayActivityDB{ActivityID: activityID, DayID: dayID}, nil)
		writer.EXPECT().DeleteActivity(gomock.Any(), activityID).Return(nil)

		ok, err := svc.RemoveActivity(context.Background(), dayID, activityID)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestTripService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newTripService(ctrl)

	userID := uuid.New()
	tripID := uuid.New()
	trips := []models.TripDB{{TripID: tripID}}

	reader.EXPECT().ListWithDays(gomock.Any()).Return(trips, nil)
	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, trips, got)

	reader.EXPECT().GetWithDays(gomock.Any(), tripID).Return(&trips[0], nil)
	trip, err := svc.Get(context.Background(), tripID)
	assert.NoError(t, err)
	assert.Equal(t, &trips[0], trip)

	reader.EXPECT().ListByUser(gomock.Any(), userID).Return(trips, nil)
	got, err = svc.ListByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, trips, got)
}
