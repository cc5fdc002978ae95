package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/dremdor/order-service/internal/config"
	"github.com/dremdor/order-service/internal/entities"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

// Демонстрационный публикатор: шлёт в топик случайные документы заказов.
func main() {
	godotenv.Load()
	conf := config.New()

	count := flag.Int("count", 10, "how many orders to publish")
	interval := flag.Duration("interval", 200*time.Millisecond, "delay between messages")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(conf.Kafka.Brokers...),
		Topic:    conf.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	for i := 0; i < *count; i++ {
		order := randomOrder()
		value, err := order.Marshal()
		if err != nil {
			log.Fatalf("failed to marshal order: %v", err)
		}

		err = writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(order.OrderUID),
			Value: value,
		})
		if err != nil {
			log.Fatalf("failed to publish order: %v", err)
		}
		log.Printf("published order %s", order.OrderUID)

		select {
		case <-ctx.Done():
			return
		case <-time.After(*interval):
		}
	}
}

func randomOrder() entities.Order {
	uid := randomString(19)
	track := "WBILM" + randomString(10)

	return entities.Order{
		OrderUID:    uid,
		TrackNumber: track,
		Entry:       "WBIL",
		Delivery: entities.Delivery{
			Name:    "Test Testov",
			Phone:   fmt.Sprintf("+9%09d", rand.Intn(1_000_000_000)),
			ZIP:     fmt.Sprintf("%07d", rand.Intn(10_000_000)),
			City:    "Kiryat Mozkin",
			Address: fmt.Sprintf("Ploshad Mira %d", rand.Intn(100)),
			Region:  "Kraiot",
			Email:   "test@gmail.com",
		},
		Payment: entities.Payment{
			Transaction:  uid,
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       rand.Intn(5000),
			PaymentDT:    time.Now().Unix(),
			Bank:         "alpha",
			DeliveryCost: 1500,
			GoodsTotal:   rand.Intn(1000),
			CustomFee:    0,
		},
		Items: []entities.Item{
			{
				ChrtID:      9934930 + rand.Intn(1000),
				TrackNumber: track,
				Price:       rand.Intn(1000),
				RID:         randomString(21),
				Name:        "Mascaras",
				Sale:        rand.Intn(50),
				Size:        "0",
				TotalPrice:  rand.Intn(1000),
				NmID:        2389212 + rand.Intn(1000),
				Brand:       "Vivienne Sabo",
				Status:      202,
			},
		},
		Locale:          "en",
		CustomerID:      "test",
		DeliveryService: "meest",
		ShardKey:        "9",
		SmID:            99,
		DateCreated:     time.Now().UTC().Truncate(time.Second),
		OofShard:        "1",
	}
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
