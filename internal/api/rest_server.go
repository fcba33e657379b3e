// Package api - REST сервер предпросмотра сгенерированных уровней.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/logging"
	"github.com/annel0/levelgen/internal/middleware"
	"github.com/annel0/levelgen/internal/tile"
)

// defaultSpan: ширина региона по умолчанию вокруг x = 0.
const defaultSpan = 32

// RestServer представляет REST API сервер
type RestServer struct {
	router  *gin.Engine
	http    *http.Server
	service *LevelService
	metrics *ServerMetrics
	encoder *zstdEncoder
	logger  *logging.Logger
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port      string                // адрес для запуска сервера, например ":8090"
	Service   *LevelService         // генерация и кеш схем
	Namespace string                // префикс HTTP-метрик
	Registry  prometheus.Registerer // nil - дефолтный регистр
	Gatherer  prometheus.Gatherer   // источник /metrics; nil - дефолтный
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) (*RestServer, error) {
	if config.Service == nil {
		return nil, errors.New("rest server: level service is required")
	}
	if config.Port == "" {
		config.Port = ":8090"
	}
	if config.Namespace == "" {
		config.Namespace = "levelgen"
	}

	encoder, err := newZstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware(config.Namespace))
	router.Use(middleware.NewRequestLogger(nil).Handler())

	promMw := middleware.NewPrometheusMiddleware(config.Namespace, config.Registry)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router, config.Gatherer)

	rs := &RestServer{
		router:  router,
		service: config.Service,
		metrics: NewServerMetrics(),
		encoder: encoder,
		logger:  logging.GetServerLogger(),
	}
	rs.http = &http.Server{
		Addr:              config.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	rs.setupRoutes()
	return rs, nil
}

// Handler возвращает http.Handler сервера (для тестов и встраивания)
func (rs *RestServer) Handler() http.Handler {
	return rs.router
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	// Middleware для CORS
	rs.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Accept-Encoding")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := rs.router.Group("/api")
	{
		api.GET("/stats", rs.handleStats)

		levels := api.Group("/levels/:seed")
		levels.GET("/tiles", rs.handleTiles)
		levels.GET("/features", rs.handleFeatures)
	}

	rs.router.GET("/health", rs.handleHealth)
}

// defaultRegion: регион по умолчанию: полоса шириной 2*defaultSpan на всю высоту уровня.
func (rs *RestServer) defaultRegion() box.Box2[int] {
	h := rs.service.Settings().HalfHeight
	return box.New2(-defaultSpan, -2, defaultSpan, h+1)
}

func (rs *RestServer) badRequest(c *gin.Context, err error) {
	rs.logger.Warn("⚠️ Неверный запрос %s: %v", c.Request.URL.String(), err)
	c.JSON(http.StatusBadRequest, GenericResponse{
		Success: false,
		Message: err.Error(),
	})
}

// handleTiles возвращает сетку тайлов региона
func (rs *RestServer) handleTiles(c *gin.Context) {
	seed, err := parseSeed(c)
	if err != nil {
		rs.badRequest(c, err)
		return
	}
	region, err := parseRegion(c, rs.defaultRegion())
	if err != nil {
		rs.badRequest(c, err)
		return
	}
	layers, err := parseLayers(c)
	if err != nil {
		rs.badRequest(c, err)
		return
	}

	logging.LogRegionRequest(c.GetString(middleware.TraceIDKey), seed, region.X.Lo, region.Y.Lo, region.X.Hi, region.Y.Hi)
	grid := rs.service.Tiles(c.Request.Context(), seed, region)

	resp := TilesResponse{
		Seed:   seed,
		Region: region,
		Layers: make(map[string][][]tile.ID, len(layers)),
	}
	for _, l := range layers {
		resp.Layers[l.String()] = grid.Rows(l)
	}
	rs.encoder.writeJSON(c, http.StatusOK, resp)
}

// handleFeatures возвращает фичи, пересекающие регион
func (rs *RestServer) handleFeatures(c *gin.Context) {
	seed, err := parseSeed(c)
	if err != nil {
		rs.badRequest(c, err)
		return
	}
	region, err := parseRegion(c, rs.defaultRegion())
	if err != nil {
		rs.badRequest(c, err)
		return
	}

	records := rs.service.Features(c.Request.Context(), seed, region)
	rs.encoder.writeJSON(c, http.StatusOK, FeaturesResponse{
		Seed:     seed,
		Region:   region,
		Features: toFeatureDTOs(records),
	})
}

// handleStats возвращает статистику сервера
func (rs *RestServer) handleStats(c *gin.Context) {
	stats := make(map[string]interface{})
	stats["server"] = rs.metrics.Snapshot()
	stats["cache"] = rs.service.CacheStats()

	st := rs.service.Settings()
	zones := make([]string, 0, len(st.Zones))
	for _, z := range st.Zones {
		zones = append(zones, z.Tag.String())
	}
	stats["generator"] = map[string]interface{}{
		"half_width":  st.HalfWidth,
		"half_height": st.HalfHeight,
		"heights":     st.Heights,
		"zones":       zones,
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Статистика получена",
		Data:    stats,
	})
}

// handleHealth проверка состояния сервера
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// Start запускает REST сервер и блокируется до его остановки
func (rs *RestServer) Start() error {
	rs.logger.Info("🌐 REST API слушает %s", rs.http.Addr)
	if err := rs.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop останавливает REST сервер, дожидаясь завершения запросов
func (rs *RestServer) Stop(ctx context.Context) error {
	err := rs.http.Shutdown(ctx)
	rs.encoder.Close()
	return err
}
