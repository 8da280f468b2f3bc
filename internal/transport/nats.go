package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/config"
	"github.com/bodhs/bodhs-bot/internal/handlers"
	"github.com/bodhs/bodhs-bot/internal/models"
)

// NATSTransport is the optional second inbound: the same webhook envelope
// carried over a request/reply subject, for deployments where the chat
// gateway speaks NATS instead of HTTP.
type NATSTransport struct {
	conn      *nats.Conn
	cfg       config.NATSConfig
	responder *handlers.Responder
	log       *zap.SugaredLogger
}

func NewNATSTransport(cfg config.NATSConfig, serviceName string, responder *handlers.Responder, log *zap.SugaredLogger) (*NATSTransport, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name(serviceName),
		nats.Timeout(cfg.Timeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	log.Infow("connected to NATS", "url", cfg.URL)

	return &NATSTransport{
		conn:      conn,
		cfg:       cfg,
		responder: responder,
		log:       log,
	}, nil
}

func (nt *NATSTransport) Start() error {
	_, err := nt.conn.Subscribe(nt.cfg.Subject, nt.handleMessage)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", nt.cfg.Subject, err)
	}

	nt.log.Infow("subscribed", "subject", nt.cfg.Subject)
	return nil
}

func (nt *NATSTransport) handleMessage(msg *nats.Msg) {
	if !nt.responder.Online() {
		nt.respond(msg, handlers.OfflineResponse())
		return
	}

	// Malformed payloads count as an empty message, same as the HTTP webhook.
	var req models.WebhookRequest
	_ = json.Unmarshal(msg.Data, &req)

	userID := req.User.ID
	if userID == "" {
		userID = anonymousUserID
	}

	ctx, cancel := context.WithTimeout(context.Background(), nt.cfg.Timeout)
	defer cancel()

	nt.respond(msg, nt.responder.HandleMessage(ctx, userID, req.Message.Text))
}

func (nt *NATSTransport) respond(msg *nats.Msg, resp *models.WebhookResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		nt.log.Errorw("marshal response", "error", err)
		return
	}

	if err := msg.Respond(data); err != nil {
		nt.log.Errorw("send response", "error", err)
	}
}

func (nt *NATSTransport) Close() error {
	if nt.conn != nil {
		nt.conn.Close()
		nt.log.Infow("NATS connection closed")
	}
	return nil
}
