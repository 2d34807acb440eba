package dto

import (
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
}
