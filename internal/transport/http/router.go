package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
	"github.com/Gunvolt24/wb_cache/pkg/httpx"
)

// Handler — HTTP-обработчики поверх оркестратора.
// Каждый паттерн консистентности — отдельный маршрут: клиент явно
// выбирает гарантии, единого "умного" write-эндпоинта нет.
type Handler struct {
	orch      ports.CacheOrchestrator
	validator ports.ItemValidator
	log       ports.Logger
	timeout   time.Duration // таймаут обработки одного запроса; <=0 — без таймаута
}

func NewHandler(orch ports.CacheOrchestrator, validator ports.ItemValidator, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{orch: orch, validator: validator, log: log, timeout: timeout}
}

func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if h.timeout > 0 {
		r.Use(handlerTimeout(h.timeout))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", h.health)

	r.POST("/write-through/:id", h.writeThrough)
	r.POST("/write-behind/:id", h.writeBehind)
	r.GET("/read-through/:id", h.readThrough)
	r.GET("/cache-aside/:id", h.readCacheAside)
	r.DELETE("/invalidate-cache/:id", h.invalidate)
	r.DELETE("/item/:id", h.deleteItem)

	// Прямой доступ к хранилищу, мимо кэша (отладка/инспекция).
	r.GET("/store/:id", h.storeItem)
	r.GET("/store", h.storeList)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// handlerTimeout — ограничивает время обработки запроса через контекст.
func handlerTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// bindItem — общий разбор тела write-запросов: JSON → Item, id из пути
// имеет приоритет, затем доменная валидация.
func (h *Handler) bindItem(c *gin.Context) (*domain.Item, bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return nil, false
	}

	var item domain.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return nil, false
	}
	item.ID = id

	if err := h.validator.Validate(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &item, true
}

func (h *Handler) writeThrough(c *gin.Context) {
	item, ok := h.bindItem(c)
	if !ok {
		return
	}

	stored, err := h.orch.WriteThrough(c.Request.Context(), item.ID, item)
	if err != nil {
		// Запись долговечна, но кэш её не принял: отдаём 502, клиент
		// знает, что чтения до ближайшего read-miss могут быть медленными.
		if errors.Is(err, domain.ErrUncachedWrite) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "stored but not cached"})
			return
		}
		h.log.Errorf(c.Request.Context(), "WriteThrough failed id=%s err=%v", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *Handler) writeBehind(c *gin.Context) {
	item, ok := h.bindItem(c)
	if !ok {
		return
	}

	stored, err := h.orch.WriteBehind(c.Request.Context(), item.ID, item)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "WriteBehind failed id=%s err=%v", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	// Запись принята: кэш обновлён, хранилище догонит асинхронно.
	c.JSON(http.StatusAccepted, stored)
}

func (h *Handler) readThrough(c *gin.Context) {
	h.readWith(c, h.orch.ReadThrough, "ReadThrough")
}

func (h *Handler) readCacheAside(c *gin.Context) {
	h.readWith(c, h.orch.ReadCacheAside, "ReadCacheAside")
}

func (h *Handler) readWith(c *gin.Context, read func(context.Context, string) (*domain.Item, error), op string) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	item, err := read(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		h.log.Errorf(c.Request.Context(), "%s failed id=%s err=%v", op, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) invalidate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	removed, err := h.orch.Invalidate(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "Invalidate failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	// Отсутствие записи в кэше — тоже успех, различаем только флагом.
	c.JSON(http.StatusOK, gin.H{"item_id": id, "invalidated": removed})
}

func (h *Handler) deleteItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	if err := h.orch.DeleteAndInvalidate(c.Request.Context(), id); err != nil {
		h.log.Errorf(c.Request.Context(), "DeleteAndInvalidate failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) health(c *gin.Context) {
	if err := h.orch.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) storeItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	item, err := h.orch.StoreItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		h.log.Errorf(c.Request.Context(), "StoreItem failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) storeList(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	items, err := h.orch.StoreList(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "StoreList failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}
