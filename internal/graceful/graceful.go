package graceful

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"etkinlikHub/internal/utils/logger/sl"
)

// Operation — операция остановки одного сервиса.
type Operation func(ctx context.Context) error

// GracefulShutdown ждёт SIGINT/SIGTERM и выполняет все операции остановки
// параллельно, с общим таймаутом. Возвращённый канал закрывается, когда
// все операции завершены.
func GracefulShutdown(ctx context.Context, timeout time.Duration, ops map[string]Operation, log *slog.Logger) <-chan struct{} {
	wait := make(chan struct{})

	go func() {
		s := make(chan os.Signal, 1)
		signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
		<-s

		log.Info("shutting down")

		timeoutFunc := time.AfterFunc(timeout, func() {
			log.Error("shutdown timeout exceeded, forcing exit", slog.Duration("timeout", timeout))
			os.Exit(1)
		})
		defer timeoutFunc.Stop()

		var wg sync.WaitGroup

		for key, op := range ops {
			wg.Add(1)
			go func(name string, op Operation) {
				defer wg.Done()

				log.Info("cleaning up", slog.String("operation", name))
				if err := op(ctx); err != nil {
					log.Error("cleanup failed", slog.String("operation", name), sl.Err(err))
					return
				}

				log.Info("shutdown completed", slog.String("operation", name))
			}(key, op)
		}

		wg.Wait()
		close(wait)
	}()

	return wait
}
