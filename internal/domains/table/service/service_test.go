package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel/mocks"
	reservationMocks "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/mocks"
	reservationModel "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	tableMocks "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/mocks"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/service"
	cacheMocks "github.com/kadynthorpe/starter-restaurant-reservation/shared/cache/mocks"
	gModel "github.com/kadynthorpe/starter-restaurant-reservation/shared/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func freeTable(id int64, capacity int) model.Table {
	now := timezone.Now()

	return model.Table{
		ID:        id,
		TableName: "Bar #1",
		Capacity:  capacity,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

func occupiedTable(id int64, capacity int, reservationID int64) model.Table {
	table := freeTable(id, capacity)
	table.ReservationID = sql.NullInt64{Int64: reservationID, Valid: true}

	return table
}

func bookedReservation(id int64, people int) reservationModel.Reservation {
	now := timezone.Now()

	return reservationModel.Reservation{
		ID:              id,
		FirstName:       "Rick",
		LastName:        "Sanchez",
		MobileNumber:    "(202) 555-0100",
		ReservationDate: now.AddDate(0, 0, 7),
		ReservationTime: "18:00:00",
		People:          people,
		Status:          reservationModel.StatusBooked,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

func TestTableService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tableMocks.NewMockTable(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, testConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable(1, 4), nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), dto.CreateTableRequest{TableName: "Bar #1", Capacity: 4})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), res.ID)
				assert.Nil(t, res.ReservationID, "expected a new table to be free")
			}
		})
	}
}

func TestTableService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tableMocks.NewMockTable(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, testConfig(), mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Table{freeTable(1, 4), occupiedTable(2, 2, 7)}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Nil(t, res[0].ReservationID)
	if assert.NotNil(t, res[1].ReservationID) {
		assert.Equal(t, int64(7), *res[1].ReservationID)
	}
}

func TestTableService_Seat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tableMocks.NewMockTable(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, testConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful seating",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().
						Get(gomock.Any(), gomock.Any()).
						Return(freeTable(1, 4), nil),
					mockReservationRepo.EXPECT().
						Get(gomock.Any(), gomock.Any()).
						Return(bookedReservation(7, 2), nil),
					mockRepo.EXPECT().
						Seat(gomock.Any(), int64(1), int64(7)).
						Return(nil),
					mockRepo.EXPECT().
						Get(gomock.Any(), gomock.Any()).
						Return(occupiedTable(1, 4, 7), nil),
				)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "missing table",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Table{}, nil)
			},
			wantErr: "table cannot be found. 1",
		},
		{
			name: "missing reservation",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable(1, 4), nil)

				mockReservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservationModel.Reservation{}, nil)
			},
			wantErr: "Reservation with id: 7 does not exists.",
		},
		{
			name: "occupied table",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupiedTable(1, 4, 5), nil)

				mockReservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookedReservation(7, 2), nil)
			},
			wantErr: "Table is occupied",
		},
		{
			name: "insufficient capacity",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable(1, 2), nil)

				mockReservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookedReservation(7, 6), nil)
			},
			wantErr: "Table does not have sufficient capacity.",
		},
		{
			name: "reservation already seated",
			setupMock: func() {
				seated := bookedReservation(7, 2)
				seated.Status = reservationModel.StatusSeated

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable(1, 4), nil)

				mockReservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(seated, nil)
			},
			wantErr: "reservation_id is already seated",
		},
		{
			name: "cancelled reservation cannot be seated",
			setupMock: func() {
				cancelled := bookedReservation(7, 2)
				cancelled.Status = reservationModel.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable(1, 4), nil)

				mockReservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: "status cannot change from cancelled to seated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Seat(context.Background(), 1, 7)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, res.ReservationID) {
					assert.Equal(t, int64(7), *res.ReservationID)
				}
			}
		})
	}
}

func TestTableService_Unseat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tableMocks.NewMockTable(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservationRepo, testConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful unseating",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().
						Get(gomock.Any(), gomock.Any()).
						Return(occupiedTable(1, 4, 7), nil),
					mockRepo.EXPECT().
						Unseat(gomock.Any(), int64(1), int64(7)).
						Return(nil),
					mockRepo.EXPECT().
						Get(gomock.Any(), gomock.Any()).
						Return(freeTable(1, 4), nil),
				)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "missing table",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Table{}, nil)
			},
			wantErr: "table cannot be found. 1",
		},
		{
			name: "free table",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable(1, 4), nil)
			},
			wantErr: "Table is not occupied.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Unseat(context.Background(), 1)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Nil(t, res.ReservationID, "expected the table to be free again")
			}
		})
	}
}
