// Package handlers holds the conversational responder: intent routing,
// session updates and reply rendering.
package handlers

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/intent"
	"github.com/bodhs/bodhs-bot/internal/models"
	"github.com/bodhs/bodhs-bot/internal/session"
)

// Explainer is the engine surface the responder needs.
type Explainer interface {
	Explain(ctx context.Context, word string, language models.Language) models.ExplainResult
}

// Responder drives the per-user two-state machine (mode unset / mode set)
// and renders the fixed reply templates.
type Responder struct {
	explainer Explainer
	sessions  session.Store
	log       *zap.SugaredLogger
}

// NewResponder wires the responder. A nil explainer means the completion
// provider never came up; transports must answer offline instead of
// calling HandleMessage.
func NewResponder(explainer Explainer, sessions session.Store, log *zap.SugaredLogger) *Responder {
	return &Responder{
		explainer: explainer,
		sessions:  sessions,
		log:       log,
	}
}

// Online reports whether the explanation engine is available.
func (r *Responder) Online() bool {
	return r.explainer != nil
}

// HandleMessage classifies one inbound message and produces the reply
// envelope. Flow, first match wins:
//
//  1. greeting        -> reset mode, show the mode menu
//  2. mode choice     -> store mode, confirm with example words
//  3. empty message   -> show the mode menu
//  4. mode still unset -> remind to pick a mode first
//  5. otherwise       -> strip fillers and explain the residue
func (r *Responder) HandleMessage(ctx context.Context, userID, text string) *models.WebhookResponse {
	if r.explainer == nil {
		return OfflineResponse()
	}

	in := intent.Classify(text)

	switch in.Kind {
	case intent.KindGreeting:
		if err := r.sessions.Clear(ctx, userID); err != nil {
			r.log.Warnw("session clear failed", "user_id", userID, "error", err)
		}
		return modeSelectionResponse(false)

	case intent.KindModeSelect:
		if err := r.sessions.Set(ctx, userID, in.Language); err != nil {
			r.log.Warnw("session set failed", "user_id", userID, "error", err)
		}
		r.log.Infow("mode selected", "user_id", userID, "language", in.Language)
		return modeConfirmedResponse(in.Language)

	case intent.KindEmpty:
		return modeSelectionResponse(false)
	}

	language, err := r.sessions.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			r.log.Warnw("session get failed", "user_id", userID, "error", err)
		}
		return modeSelectionResponse(true)
	}

	if in.Word == "" {
		return typeWordResponse()
	}

	result := r.explainer.Explain(ctx, in.Word, language)
	if !result.Success {
		return errorResponse(in.Word)
	}
	return successResponse(result)
}
