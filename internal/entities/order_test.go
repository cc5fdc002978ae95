package entities_test

import (
	"testing"
	"time"

	"github.com/dremdor/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() entities.Order {
	return entities.Order{
		OrderUID:    "b563feb7b2b84b6test",
		TrackNumber: "WBILMTESTTRACK",
		Entry:       "WBIL",
		Delivery: entities.Delivery{
			Name:    "Test Testov",
			Phone:   "+9720000000",
			ZIP:     "2639809",
			City:    "Kiryat Mozkin",
			Address: "Ploshad Mira 15",
			Region:  "Kraiot",
			Email:   "test@gmail.com",
		},
		Payment: entities.Payment{
			Transaction:  "b563feb7b2b84b6test",
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       1817,
			PaymentDT:    1637907727,
			Bank:         "alpha",
			DeliveryCost: 1500,
			GoodsTotal:   317,
		},
		Items: []entities.Item{
			{
				ChrtID:      9934930,
				TrackNumber: "WBILMTESTTRACK",
				Price:       453,
				RID:         "ab4219087a764ae0btest",
				Name:        "Mascaras",
				Sale:        30,
				Size:        "0",
				TotalPrice:  317,
				NmID:        2389212,
				Brand:       "Vivienne Sabo",
				Status:      202,
			},
		},
		Locale:          "en",
		CustomerID:      "test",
		DeliveryService: "meest",
		ShardKey:        "9",
		SmID:            99,
		DateCreated:     time.Date(2021, 11, 26, 6, 22, 19, 0, time.UTC),
		OofShard:        "1",
	}
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	src := validOrder()
	src.Items = append(src.Items, entities.Item{
		ChrtID:      555, TrackNumber: "WBILMTESTTRACK", Price: 10, RID: "second-item",
		Name: "Pen", Size: "1", TotalPrice: 10, NmID: 777, Brand: "Generic", Status: 200,
	})

	data, err := src.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))

	assert.Equal(t, src, got)
	// порядок позиций значим
	assert.Equal(t, "ab4219087a764ae0btest", got.Items[0].RID)
	assert.Equal(t, "second-item", got.Items[1].RID)
}

func TestOrder_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(o *entities.Order)
		wantErr bool
	}{
		{
			name:   "valid order",
			mutate: func(o *entities.Order) {},
		},
		{
			name: "empty internal signature is allowed",
			mutate: func(o *entities.Order) {
				o.InternalSig = ""
			},
		},
		{
			name: "missing order uid",
			mutate: func(o *entities.Order) {
				o.OrderUID = ""
			},
			wantErr: true,
		},
		{
			name: "missing items",
			mutate: func(o *entities.Order) {
				o.Items = nil
			},
			wantErr: true,
		},
		{
			name: "negative payment amount",
			mutate: func(o *entities.Order) {
				o.Payment.Amount = -1
			},
			wantErr: true,
		},
		{
			name: "negative item price",
			mutate: func(o *entities.Order) {
				o.Items[0].Price = -453
			},
			wantErr: true,
		},
		{
			name: "missing delivery email",
			mutate: func(o *entities.Order) {
				o.Delivery.Email = ""
			},
			wantErr: true,
		},
		{
			name: "zero date created",
			mutate: func(o *entities.Order) {
				o.DateCreated = time.Time{}
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := validOrder()
			tc.mutate(&order)

			err := order.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidOrder)
				return
			}
			assert.NoError(t, err)
		})
	}
}
