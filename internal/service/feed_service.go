package service

import (
	"context"
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/domain/events"
	"crmserver/internal/infrastructure/aws/websocket"
	"crmserver/internal/utils"
	"crmserver/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ConnectionRepository interface {
	Save(conn *entity.Connection) error
	Delete(connID string) error
	FindAll() ([]string, error)
	FindStale(now, heartbeatLimit int64) ([]*entity.Connection, error)
	UpdateHeartbeat(connID string, now int64) error
}

// FeedService pushes entity change events to every dashboard holding an open
// websocket, and keeps the connection registry fresh through heartbeats.
type FeedService struct {
	ConnRepo ConnectionRepository
	Gateway  websocket.GatewayClient
}

func NewFeedService(repo ConnectionRepository, gateway websocket.GatewayClient) *FeedService {
	return &FeedService{
		ConnRepo: repo,
		Gateway:  gateway,
	}
}

func (s *FeedService) RegisterConnection(userID int64, connectionID string, exp int64) apierror.ErrorResponse {
	now := utils.NowUTC()
	conn := &entity.Connection{
		ConnectionID:    connectionID,
		UserID:          userID,
		ExpiresAt:       exp * 1000, // "exp" is stored in seconds, our app uses millis
		LastHeartbeatAt: now,        // Avoid users getting disconnected immediately
		CreatedAt:       now,
	}

	if err := s.ConnRepo.Save(conn); err != nil {
		log.Errorf("failed to save connection: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *FeedService) RemoveConnection(connectionID string) {
	// We don't return error here because if it fails, it's not the client's fault
	_ = s.ConnRepo.Delete(connectionID)
}

func (s *FeedService) HandleMessage(msg *contract.IncomingSocketMessage, connID string) {
	switch msg.Type {
	case contract.EventPing:
		s.handlePing(connID)
	}
}

// Broadcast sends an event to ALL connected users.
// This iterates through every active connection in the DB.
func (s *FeedService) Broadcast(ctx context.Context, evt events.SocketEvent) {
	conns, err := s.ConnRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all connections for broadcast: %v", err)
		return
	}

	envelope := &contract.OutgoingSocketMessage{
		Type: evt.GetType(),
		Data: evt,
	}

	for _, connID := range conns {
		// We ignore errors here so one stale connection doesn't block others
		_ = s.Gateway.PostToConnection(ctx, connID, envelope)
	}
}

func (s *FeedService) handlePing(connID string) {
	now := utils.NowUTC()
	err := s.ConnRepo.UpdateHeartbeat(connID, now)
	if err != nil {
		log.Errorf("failed to update heartbeat: %v", err)
		return
	}

	go func(conn string) {
		ack := &contract.OutgoingSocketMessage{Type: contract.EventAck}
		if err := s.Gateway.PostToConnection(context.Background(), conn, ack); err != nil {
			log.Errorf("failed to post ack to conn %s: %v", conn, err)
		}
	}(connID)
}
