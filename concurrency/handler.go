// concurrency/handler.go

/* The concurrency package regulates the number of in-flight HTTP requests one API
client instance may have against the parking platform. A weighted semaphore bounds
concurrency; each permit is tagged with a unique request id for traceability. */
package concurrency

import (
	"context"
	"sync"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Metrics captures counters related to the client's interactions with the API.
type Metrics struct {
	TotalRequests  int64         // Total number of requests made
	TotalRetries   int64         // Total number of retry attempts
	PermitWaitTime time.Duration // Total time spent waiting for permits
	Lock           sync.Mutex    // Lock for all metrics fields
}

// Handler controls the number of concurrent HTTP requests for one client instance.
type Handler struct {
	sem     *semaphore.Weighted
	logger  logger.Logger
	Metrics *Metrics
}

// NewHandler initializes a new Handler with the given concurrency limit, logger,
// and metrics. The Handler ensures no more than limit concurrent requests are made.
func NewHandler(limit int64, log logger.Logger, metrics *Metrics) *Handler {
	if metrics == nil {
		metrics = &Metrics{}
	}
	return &Handler{
		sem:     semaphore.NewWeighted(limit),
		logger:  log,
		Metrics: metrics,
	}
}

// AcquirePermit acquires a concurrency permit, blocking until one is available or
// the context is done. It returns a unique request id identifying the permit.
func (h *Handler) AcquirePermit(ctx context.Context) (uuid.UUID, error) {
	requestID := uuid.New()
	start := time.Now()

	if err := h.sem.Acquire(ctx, 1); err != nil {
		h.logger.Warn("Failed to acquire concurrency permit",
			zap.String("requestID", requestID.String()),
			zap.Error(err))
		return uuid.Nil, err
	}

	waited := time.Since(start)
	h.Metrics.Lock.Lock()
	h.Metrics.PermitWaitTime += waited
	h.Metrics.Lock.Unlock()

	h.logger.Debug("Acquired concurrency permit",
		zap.String("requestID", requestID.String()),
		zap.Duration("waited", waited))

	return requestID, nil
}

// ReleasePermit releases the concurrency permit identified by requestID.
func (h *Handler) ReleasePermit(requestID uuid.UUID) {
	h.sem.Release(1)
	h.logger.Debug("Released concurrency permit",
		zap.String("requestID", requestID.String()))
}

// RecordRequest increments the total request counter.
func (h *Handler) RecordRequest() {
	h.Metrics.Lock.Lock()
	h.Metrics.TotalRequests++
	h.Metrics.Lock.Unlock()
}

// RecordRetry increments the retry counter.
func (h *Handler) RecordRetry() {
	h.Metrics.Lock.Lock()
	h.Metrics.TotalRetries++
	h.Metrics.Lock.Unlock()
}
