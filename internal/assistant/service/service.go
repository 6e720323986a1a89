// Package service implements the conversational assistant orchestrator: per
// turn it generates a reply, extracts structured fields from the same
// utterance, merges them into the accumulated quote data, advances the
// conversation stage, and dispatches any paint actions.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"paintquote_backend/internal/assistant/transport"
	contractortransport "paintquote_backend/internal/contractor/transport"
	parserservice "paintquote_backend/internal/parser/service"
	"paintquote_backend/internal/quote"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/apperr"
	"paintquote_backend/platform/logger"
)

const (
	replyTemperature = 0.7
	replyMaxTokens   = 500

	// historyWindow bounds how many prior messages accompany each reply
	// call.
	historyWindow = 10
)

// ContextLoader provides the contractor context for new sessions.
type ContextLoader interface {
	Load(ctx context.Context, companyID string) *contractortransport.ContractorContext
}

// Service is the assistant orchestrator.
type Service struct {
	model    ai.ChatModel
	parser   *parserservice.Service
	loader   ContextLoader
	catalog  CatalogWriter
	sessions SessionStore
	log      *logger.Logger
}

// New creates the orchestrator. The model may be nil; in that case Chat
// returns a configuration error, while extraction keeps working through the
// parser's fallback.
func New(model ai.ChatModel, parser *parserservice.Service, loader ContextLoader, catalog CatalogWriter, sessions SessionStore, log *logger.Logger) *Service {
	return &Service{
		model:    model,
		parser:   parser,
		loader:   loader,
		catalog:  catalog,
		sessions: sessions,
		log:      log,
	}
}

// Chat processes one conversation turn.
//
// A missing model backend is a hard configuration error here, unlike the
// parsing paths: the product can parse deterministically, but it cannot
// converse without a model.
func (s *Service) Chat(ctx context.Context, req transport.ChatRequest) (*transport.ChatResponse, error) {
	if s.model == nil {
		return nil, apperr.Config("no model backend configured for conversational replies").WithOp("assistant.chat")
	}

	state, err := s.loadOrCreateSession(ctx, req)
	if err != nil {
		return nil, err
	}
	log := s.log.WithSessionID(state.ID)

	// The reply and the extraction read the same utterance but neither
	// depends on the other's result, so they run concurrently. Both
	// closures swallow their errors into local fallbacks.
	var (
		reply           string
		replyConfidence float64
		extracted       *quote.ParsedQuoteData
	)
	var g errgroup.Group
	g.Go(func() error {
		reply, replyConfidence = s.generateReply(ctx, state, req.Message)
		return nil
	})
	g.Go(func() error {
		result := s.parser.Parse(ctx, req.Message)
		if result.Data != nil {
			extracted = result.Data
		}
		return nil
	})
	_ = g.Wait()

	state.ExtractedData = quote.Merge(state.ExtractedData, extracted)
	state.Stage = computeStage(state.ExtractedData)

	actions := s.dispatchActions(ctx, state, extracted)

	state.History = append(state.History,
		ai.User(req.Message),
		ai.Assistant(reply),
	)
	state.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, state); err != nil {
		// A failed save loses continuity, not this turn's answer.
		log.Error("failed to save session", "error", err)
	}

	return &transport.ChatResponse{
		SessionID:       state.ID,
		Reply:           reply,
		ReplyConfidence: replyConfidence,
		Stage:           state.Stage,
		ExtractedData:   state.ExtractedData,
		Actions:         actions,
	}, nil
}

// EndSession destroys a conversation session.
func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *Service) loadOrCreateSession(ctx context.Context, req transport.ChatRequest) (*ConversationState, error) {
	if req.SessionID != "" {
		state, err := s.sessions.Get(ctx, req.SessionID)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, apperr.Wrap(apperr.KindUnavailable, "session store unavailable", err).WithOp("assistant.session")
		}
		// Expired or unknown: start fresh under a new ID.
	}

	now := time.Now()
	return &ConversationState{
		ID:            uuid.NewString(),
		CompanyID:     req.CompanyID,
		Stage:         StageCollectingBasics,
		ExtractedData: &quote.ParsedQuoteData{},
		Context:       s.loader.Load(ctx, req.CompanyID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// generateReply calls the model for the conversational reply, falling back
// to a canned keyword response on any failure.
func (s *Service) generateReply(ctx context.Context, state *ConversationState, message string) (string, float64) {
	messages := make([]ai.Message, 0, historyWindow+2)
	messages = append(messages, ai.System(buildSystemPrompt(state.Context)))

	history := state.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	messages = append(messages, history...)
	messages = append(messages, ai.User(message))

	start := time.Now()
	reply, err := s.model.Complete(ctx, ai.Request{
		Messages:    messages,
		Temperature: replyTemperature,
		MaxTokens:   replyMaxTokens,
	})
	s.log.ModelCall("conversational_reply", s.model.Name(), float64(time.Since(start).Milliseconds()), err)
	if err != nil || reply == "" {
		return cannedReply(message), cannedReplyConfidence
	}
	return reply, modelReplyConfidence
}
