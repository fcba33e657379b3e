package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/levelgen/internal/api"
	"github.com/annel0/levelgen/internal/config"
	"github.com/annel0/levelgen/internal/levelgen"
	"github.com/annel0/levelgen/internal/logging"
	"github.com/annel0/levelgen/internal/metrics"
	"github.com/annel0/levelgen/internal/observability"
)

const version = "0.3.0"

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию ENV LEVELGEN_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализируем систему логирования
	level, err := logging.ParseLevel(cfg.Logging.ConsoleLevel)
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации логирования: %v", err)
	}
	logging.GetLoggerManager().Configure(cfg.Logging.Dir, level)
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	err = run(cfg)
	if err != nil {
		logging.Error("❌ %v", err)
	}
	// Закрываем явно: os.Exit не выполняет defer, а файловые логи нужно дописать
	logging.GetLoggerManager().CloseAll()
	if err != nil {
		os.Exit(1)
	}
}

// run поднимает сервис и REST API и блокируется до сигнала или падения сервера.
func run(cfg *config.Config) error {
	logging.Info("🗺️ Запуск сервера предпросмотра уровней v%s", version)

	settings, err := levelgen.SettingsFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("параметры генератора: %w", err)
	}

	// === ТРАССИРОВКА ===
	// OTLP экспорт включается, только если задан адрес коллектора
	shutdownTracing := observability.ShutdownFunc(observability.NoopShutdown)
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdownTracing, err = observability.InitTelemetry(context.Background(), "levelgen", version)
		if err != nil {
			logging.Warn("⚠️ Трассировка отключена: %v", err)
			shutdownTracing = observability.NoopShutdown
		}
	}

	// === КОМПОНЕНТЫ ===
	namespace := cfg.Server.MetricsNamespace
	genMetrics := metrics.NewGenerationMetrics(namespace, prometheus.DefaultRegisterer)

	service, err := api.NewLevelService(settings, cfg.Server.CacheSize, genMetrics)
	if err != nil {
		return fmt.Errorf("сервис уровней: %w", err)
	}
	defer service.Close()

	restPort := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	server, err := api.NewRestServer(api.Config{
		Port:      restPort,
		Service:   service,
		Namespace: namespace,
	})
	if err != nil {
		return fmt.Errorf("REST API: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logging.Info("✅ Сервер готов")
	logging.Info("   🌐 REST API: http://localhost%s", restPort)
	logging.Info("   ❤️  Health check: http://localhost%s/health", restPort)
	logging.Info("💡 Пример: curl 'http://localhost%s/api/levels/42/tiles?x0=0&x1=40&layer=midground'", restPort)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigCh:
		logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
	case runErr = <-errCh:
		logging.Warn("⚠️ REST API остановился без сигнала")
	}

	// === GRACEFUL SHUTDOWN ===
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logging.Warn("⚠️ Ошибка остановки трассировки: %v", err)
	}

	if runErr != nil {
		return fmt.Errorf("REST API: %w", runErr)
	}
	logging.Info("👋 Сервер успешно остановлен")
	return nil
}
