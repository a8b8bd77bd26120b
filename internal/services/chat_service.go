package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/config"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

const assistantInstruction = "You are a helpful Smart Classroom Assistant for students and teachers. " +
	"Answer questions about courses, assignments, schedules and study techniques. Keep replies concise."

// ChatService relays a conversation to a generative text endpoint. One send
// may be outstanding at a time; a second concurrent send is rejected rather
// than queued, mirroring the UI's disabled send button. There is no retry and
// no cancellation beyond the client timeout.
type ChatService interface {
	Send(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}

type ChatRequest struct {
	Turns []ChatTurn `json:"turns" validate:"required,min=1,dive"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Wire format of the generative endpoint.

type generateContentRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

type chatService struct {
	cfg       config.AssistantConfig
	client    *http.Client
	logger    *slog.Logger
	validator *utils.Validator

	// sending guards the single outstanding request.
	sending sync.Mutex
}

func NewChatService(cfg config.AssistantConfig, logger *slog.Logger, validator *utils.Validator) ChatService {
	return &chatService{
		cfg:       cfg,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
		validator: validator,
	}
}

func (s *chatService) Send(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	if !s.sending.TryLock() {
		return nil, ErrChatBusy
	}
	defer s.sending.Unlock()

	payload := generateContentRequest{
		SystemInstruction: &generateContent{
			Parts: []generatePart{{Text: assistantInstruction}},
		},
		Contents: make([]generateContent, 0, len(req.Turns)),
	}
	for _, turn := range req.Turns {
		payload.Contents = append(payload.Contents, generateContent{
			Role:  turn.Role,
			Parts: []generatePart{{Text: turn.Text}},
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assistant request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", s.cfg.APIURL, s.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build assistant request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Error("Assistant call failed", "error", err)
		return nil, ErrChatUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Assistant returned non-200", "status", resp.StatusCode)
		return nil, ErrChatUnavailable
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		s.logger.Error("Assistant response unreadable", "error", err)
		return nil, ErrChatUnavailable
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, ErrChatUnavailable
	}

	return &ChatResponse{Reply: out.Candidates[0].Content.Parts[0].Text}, nil
}
