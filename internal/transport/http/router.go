package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/logitrack/internal/ports"
	"github.com/Gunvolt24/logitrack/pkg/ctxmeta"
	"github.com/Gunvolt24/logitrack/pkg/httpx"
)

// Handler — HTTP-обработчики поверх сервисов инвентаря и заказов.
type Handler struct {
	inventory      ports.InventoryService
	orders         ports.OrderService
	log            ports.Logger
	handlerTimeout time.Duration // 0 — без таймаута на обработчик
}

// NewHandler — конструктор Handler.
func NewHandler(inventory ports.InventoryService, orders ports.OrderService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{
		inventory:      inventory,
		orders:         orders,
		log:            log,
		handlerTimeout: handlerTimeout,
	}
}

// NewRouter — маршруты и middleware. otelServiceName != "" включает otelgin.
// Мутирующие операции закрыты ролью manager; саму роль проставляет внешний
// слой идентификации (заголовок X-User-Role).
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RoleMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	manager := httpx.RequireRole(ctxmeta.RoleManager)

	api := r.Group("/api")
	{
		api.GET("/inventory", h.listInventory)
		api.POST("/inventory", manager, h.addInventoryItem)
		api.DELETE("/inventory/:id", manager, h.deleteInventoryItem)

		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrderByID)
		api.POST("/orders", manager, h.createOrder)
		api.DELETE("/orders/:id", manager, h.deleteOrder)
	}

	return r
}
