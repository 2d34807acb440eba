package dto

import (
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	gModel "github.com/kadynthorpe/starter-restaurant-reservation/shared/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
)

type CreateTableRequest struct {
	TableName string `json:"table_name" validate:"required,min=2"`
	Capacity  int    `json:"capacity"   validate:"required,gte=1"`
}

func (c *CreateTableRequest) ToModel() model.Table {
	return model.Table{
		TableName: c.TableName,
		Capacity:  c.Capacity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type SeatTableRequest struct {
	ReservationID int64 `json:"reservation_id" validate:"required"`
}

type TableResponse struct {
	ID            int64  `json:"table_id"`
	TableName     string `json:"table_name"`
	Capacity      int    `json:"capacity"`
	ReservationID *int64 `json:"reservation_id"`
	gDto.Metadata
}

func (t *TableResponse) FromModel(model model.Table) {
	t.ID = model.ID
	t.TableName = model.TableName
	t.Capacity = model.Capacity

	if model.ReservationID.Valid {
		reservationID := model.ReservationID.Int64
		t.ReservationID = &reservationID
	}

	t.Metadata.FromModel(model.Metadata)
}

func NewTablesResponse(models []model.Table) []TableResponse {
	tables := make([]TableResponse, len(models))
	for i, mod := range models {
		tables[i].FromModel(mod)
	}

	return tables
}
