package entities

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// Delivery содержит контактные данные и адрес получателя.
type Delivery struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	ZIP     string `json:"zip" validate:"required"`
	City    string `json:"city" validate:"required"`
	Address string `json:"address" validate:"required"`
	Region  string `json:"region" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

// Item — одна товарная позиция заказа. Порядок позиций значим и сохраняется.
type Item struct {
	ChrtID      int    `json:"chrt_id" validate:"required,gte=0"`
	TrackNumber string `json:"track_number" validate:"required"`
	Price       int    `json:"price" validate:"gte=0"`
	RID         string `json:"rid" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Sale        int    `json:"sale" validate:"gte=0"`
	Size        string `json:"size" validate:"required"`
	TotalPrice  int    `json:"total_price" validate:"gte=0"`
	NmID        int    `json:"nm_id" validate:"required,gte=0"`
	Brand       string `json:"brand" validate:"required"`
	Status      int    `json:"status" validate:"gte=0"`
}

// Payment — данные о платеже, суммы в минимальных единицах валюты.
type Payment struct {
	Transaction  string `json:"transaction" validate:"required"`
	RequestID    string `json:"request_id"`
	Currency     string `json:"currency" validate:"required"`
	Provider     string `json:"provider" validate:"required"`
	Amount       int    `json:"amount" validate:"gte=0"`
	PaymentDT    int64  `json:"payment_dt" validate:"required,gte=0"`
	Bank         string `json:"bank" validate:"required"`
	DeliveryCost int    `json:"delivery_cost" validate:"gte=0"`
	GoodsTotal   int    `json:"goods_total" validate:"gte=0"`
	CustomFee    int    `json:"custom_fee" validate:"gte=0"`
}

// Order — корневой документ. OrderUID одновременно служит ключом хранения,
// документ всегда читается и пишется целиком.
type Order struct {
	OrderUID        string    `json:"order_uid" validate:"required"`
	TrackNumber     string    `json:"track_number" validate:"required"`
	Entry           string    `json:"entry" validate:"required"`
	Delivery        Delivery  `json:"delivery" validate:"required"`
	Payment         Payment   `json:"payment" validate:"required"`
	Items           []Item    `json:"items" validate:"required,dive"`
	Locale          string    `json:"locale" validate:"required"`
	InternalSig     string    `json:"internal_signature"`
	CustomerID      string    `json:"customer_id" validate:"required"`
	DeliveryService string    `json:"delivery_service" validate:"required"`
	ShardKey        string    `json:"shardkey" validate:"required"`
	SmID            int       `json:"sm_id" validate:"required,gte=0"`
	DateCreated     time.Time `json:"date_created" validate:"required"`
	OofShard        string    `json:"oof_shard" validate:"required"`
}

var validate = validator.New()

// Validate проверяет документ на структурную полноту. Один и тот же
// предикат используется при записи и при чтении уже сохранённого блоба.
func (o Order) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errors.Join(ErrInvalidOrder, err)
	}
	return nil
}

func (o Order) Marshal() ([]byte, error) {
	return json.Marshal(o)
}

func (o *Order) Unmarshal(data []byte) error {
	return json.Unmarshal(data, o)
}
