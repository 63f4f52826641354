package jobs

import (
	"context"
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/service"
	"crmserver/internal/utils"
	"time"

	"github.com/labstack/gommon/log"
)

// ConnectionCleaner sweeps feed connections whose token expired or whose
// heartbeat went silent, telling the client first so it does not reconnect.
type ConnectionCleaner struct {
	feed *service.FeedService
}

func NewConnectionCleaner(feed *service.FeedService) *ConnectionCleaner {
	return &ConnectionCleaner{feed: feed}
}

func (c *ConnectionCleaner) Start(ctx context.Context) {
	// Poll every 5 minutes
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	log.Info("Connection cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping connection cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *ConnectionCleaner) cleanup() {
	now := utils.NowUTC()
	heartbeatLimit := now - entity.HeartbeatPeriodMillis - entity.HeartbeatToleranceMillis

	conns, err := c.feed.ConnRepo.FindStale(now, heartbeatLimit)
	if err != nil {
		log.Errorf("Cleaner: failed to fetch stale connections: %v", err)
		return
	}

	if len(conns) == 0 {
		return
	}

	log.Infof("Cleaner: found %d stale connections. Terminating...", len(conns))

	envelope := &contract.OutgoingSocketMessage{
		Type: contract.EventSessionExpired,
	}

	for _, conn := range conns {
		// Use a fresh context for network calls, detached from the ticker's timing
		bgCtx := context.Background()

		// Notify Client (So they know NOT to try reconnecting)
		_ = c.feed.Gateway.PostToConnection(bgCtx, conn.ConnectionID, envelope)

		// Tell AWS we are dropping the connection
		_ = c.feed.Gateway.DeleteConnection(bgCtx, conn.ConnectionID)

		// Remove from our DB
		_ = c.feed.ConnRepo.Delete(conn.ConnectionID)
	}
}
