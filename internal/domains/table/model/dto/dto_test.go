package dto_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model/dto"
)

func TestCreateTableRequest_ToModel(t *testing.T) {
	req := dto.CreateTableRequest{
		TableName: "Bar #1",
		Capacity:  4,
	}

	table := req.ToModel()

	assert.Equal(t, req.TableName, table.TableName)
	assert.Equal(t, req.Capacity, table.Capacity)
	assert.False(t, table.ReservationID.Valid, "expected a new table to be free")
	assert.False(t, table.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, table.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestTableResponse_FromModel(t *testing.T) {
	free := model.Table{ID: 1, TableName: "Bar #1", Capacity: 4}

	var freeResponse dto.TableResponse
	freeResponse.FromModel(free)

	assert.Equal(t, free.ID, freeResponse.ID)
	assert.Nil(t, freeResponse.ReservationID)

	occupied := free
	occupied.ReservationID = sql.NullInt64{Int64: 7, Valid: true}

	var occupiedResponse dto.TableResponse
	occupiedResponse.FromModel(occupied)

	if assert.NotNil(t, occupiedResponse.ReservationID) {
		assert.Equal(t, int64(7), *occupiedResponse.ReservationID)
	}
}
