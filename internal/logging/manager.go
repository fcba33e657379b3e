package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Имена компонентов, под которыми пишут пакеты модуля.
const (
	ComponentGenerator = "levelgen"
	ComponentResolver  = "autotile"
	ComponentServer    = "server"
)

// LoggerManager раздаёт логгеры по компонентам: один логгер (и один файл) на компонент.
type LoggerManager struct {
	mu           sync.Mutex
	loggers      map[string]*Logger
	dir          string
	consoleLevel LogLevel
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = &LoggerManager{
			loggers:      make(map[string]*Logger),
			consoleLevel: INFO,
		}
	})
	return globalManager
}

// Configure задаёт каталог файлов для новых логгеров и уровень консоли для всех.
func (lm *LoggerManager) Configure(dir string, consoleLevel LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	lm.dir = dir
	lm.consoleLevel = consoleLevel
	for _, l := range lm.loggers {
		l.minConsoleLevel = consoleLevel
	}
}

// GetLogger возвращает логгер компонента, создавая его при первом обращении
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if l, ok := lm.loggers[component]; ok {
		return l, nil
	}
	l, err := NewLogger(component, lm.dir)
	if err != nil {
		return nil, fmt.Errorf("logger %s: %w", component, err)
	}
	l.minConsoleLevel = lm.consoleLevel
	lm.loggers[component] = l
	return l, nil
}

// MustGetLogger как GetLogger, но при ошибке файла откатывается на консольный логгер.
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	l, err := lm.GetLogger(component)
	if err == nil {
		return l
	}
	fallback, _ := NewLogger(component, "")
	fallback.minConsoleLevel = lm.consoleLevel
	fallback.Warn("⚠️ Файловый лог недоступен, пишу только в консоль: %v", err)
	return fallback
}

// CloseAll закрывает все логгеры и забывает их
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for component, l := range lm.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close logger %s: %w", component, err))
		}
	}
	lm.loggers = make(map[string]*Logger)
	return errors.Join(errs...)
}

// ListComponents возвращает отсортированные имена компонентов с живыми логгерами
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// SetLogLevel меняет пороги одного компонента, например чтобы включить TRACE для autotile.
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l, ok := lm.loggers[component]
	if !ok {
		return fmt.Errorf("logger %s not found", component)
	}
	l.minConsoleLevel = consoleLevel
	l.minFileLevel = fileLevel
	return nil
}

// GetComponentLogger: сокращение для GetLoggerManager().MustGetLogger.
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetGeneratorLogger() *Logger { return GetComponentLogger(ComponentGenerator) }

func GetResolverLogger() *Logger { return GetComponentLogger(ComponentResolver) }

func GetServerLogger() *Logger { return GetComponentLogger(ComponentServer) }
