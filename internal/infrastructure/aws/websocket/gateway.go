package websocket

import (
	"context"
	"crmserver/internal/contract"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	"github.com/labstack/gommon/log"
)

// HeaderConnectionID carries the API Gateway connection ID on every feed
// request proxied through the REST surface.
const HeaderConnectionID = "X-Connection-Id"

// GatewayClient delivers activity feed envelopes to dashboard connections
// held open on the API Gateway websocket endpoint.
type GatewayClient interface {
	PostToConnection(ctx context.Context, connID string, msg *contract.OutgoingSocketMessage) error
	DeleteConnection(ctx context.Context, connID string) error
}

type AWSGatewayClient struct {
	client *apigatewaymanagementapi.Client
}

func NewAWSGatewayClient(ctx context.Context, endpoint, region string) (*AWSGatewayClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	client := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.Region = region
	})
	return &AWSGatewayClient{client: client}, nil
}

// PostToConnection pushes one envelope to one dashboard. Failures are logged
// but left to the caller: broadcasts ignore them, heartbeats report them.
func (g *AWSGatewayClient) PostToConnection(ctx context.Context, connID string, msg *contract.OutgoingSocketMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_, err = g.client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connID),
		Data:         payload,
	})

	if err != nil {
		// Usually means the dashboard closed the socket already
		log.Warnf("failed to push feed event to connection %s: %v", connID, err)
	}
	return err
}

// DeleteConnection tells the gateway to drop a stale dashboard socket.
func (g *AWSGatewayClient) DeleteConnection(ctx context.Context, connID string) error {
	_, err := g.client.DeleteConnection(ctx, &apigatewaymanagementapi.DeleteConnectionInput{
		ConnectionId: aws.String(connID),
	})
	return err
}
