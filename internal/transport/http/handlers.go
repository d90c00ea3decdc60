package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/logitrack/internal/domain"
	"github.com/Gunvolt24/logitrack/pkg/httpx"
	"github.com/Gunvolt24/logitrack/pkg/validate"
)

// createOrderRequest — тело POST /api/orders: имя клиента и ссылки на позиции.
// Дата заказа клиентом не передаётся — её проставляет сервис.
type createOrderRequest struct {
	CustomerName string  `json:"customer_name"`
	ItemIDs      []int64 `json:"item_ids"`
}

// opCtx — контекст операции с таймаутом обработчика (если настроен).
func (h *Handler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.handlerTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.handlerTimeout)
}

// writeError — раскладка таксономии ошибок по статусам:
// валидация -> 400 (с указанием виновного поля/ID), not found -> 404,
// остальное (ошибки хранилища) -> 500 без деталей.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, validate.ErrInvalidItem), errors.Is(err, validate.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) listInventory(c *gin.Context) {
	ctx, cancel := h.opCtx(c)
	defer cancel()

	items, err := h.inventory.List(ctx)
	if err != nil {
		h.writeError(c, "inventory.List", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) addInventoryItem(c *gin.Context) {
	var item domain.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}
	item.ID = 0 // ID назначает хранилище

	ctx, cancel := h.opCtx(c)
	defer cancel()

	created, err := h.inventory.AddItem(ctx, &item)
	if err != nil {
		h.writeError(c, "inventory.AddItem", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) deleteInventoryItem(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.inventory.DeleteItem(ctx, id); err != nil {
		h.writeError(c, "inventory.DeleteItem", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listOrders(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.opCtx(c)
	defer cancel()

	orders, err := h.orders.ListOrders(ctx, limit, offset)
	if err != nil {
		h.writeError(c, "orders.ListOrders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, id)
	if err != nil {
		h.writeError(c, "orders.GetOrder", err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	order, err := h.orders.CreateOrder(ctx, req.CustomerName, req.ItemIDs)
	if err != nil {
		h.writeError(c, "orders.CreateOrder", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.orders.DeleteOrder(ctx, id); err != nil {
		h.writeError(c, "orders.DeleteOrder", err)
		return
	}
	c.Status(http.StatusNoContent)
}
