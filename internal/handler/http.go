package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dremdor/order-service/internal/entities"
	"github.com/dremdor/order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type OrderService interface {
	SaveOrder(ctx context.Context, order entities.Order) error
	GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error)
}

type HTTPHandler struct {
	logger *slog.Logger
	svc    OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger: logger.With(slog.String("handler", "http")),
		svc:    svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/orders/{order_uid}", h.GetOrderByID)
	r.Post("/orders", h.SaveOrder)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по UID
// @Description  Возвращает документ заказа по его уникальному идентификатору
// @Tags         orders
// @Param        order_uid   path      string  true  "Уникальный идентификатор заказа"
// @Success      200  {object}  entities.Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_uid} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	order, err := h.svc.GetOrderByID(ctx, orderUID)

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		orderFetches.WithLabelValues(outcomeNotFound).Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCorruptOrder):
		h.logger.ErrorContext(ctx, "stored order is corrupt",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		orderFetches.WithLabelValues(outcomeError).Inc()
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		orderFetches.WithLabelValues(outcomeError).Inc()
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		orderFetches.WithLabelValues(outcomeOK).Inc()
		utils.WriteJSON(w, order, http.StatusOK)
	}
}

// SaveOrder сохраняет документ заказа целиком.
// @Summary      Сохранить заказ
// @Description  Принимает документ заказа и сохраняет его по order_uid.
// @Description  Повторная отправка того же order_uid замещает документ.
// @Tags         orders
// @Accept       json
// @Param        order  body  entities.Order  true  "Документ заказа"
// @Success      200  {object}  SaveOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) SaveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var order entities.Order
	if err := utils.DecodeBody(r, &order); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}

	err := h.svc.SaveOrder(ctx, order)

	switch {
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteValidationError(w, err)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to save order",
			slog.String("order_uid", order.OrderUID), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, SaveOrderResponse{
			Message:  "order saved",
			OrderUID: order.OrderUID,
		}, http.StatusOK)
	}
}

// SaveOrderResponse подтверждает сохранение и возвращает ключ документа.
type SaveOrderResponse struct {
	Message  string `json:"message"`
	OrderUID string `json:"order_uid"`
}
