package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/repository"
)

// payloadSchema constrains the public nomination body before anything
// touches the database.
var payloadSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"category", "business_name", "submitter_name", "submitter_email"},
	"properties": map[string]any{
		"category":         map[string]any{"type": "string", "minLength": 1},
		"business_name":    map[string]any{"type": "string", "minLength": 2, "maxLength": 200},
		"business_address": map[string]any{"type": "string", "maxLength": 500},
		"business_phone":   map[string]any{"type": "string", "maxLength": 32},
		"business_website": map[string]any{"type": "string", "maxLength": 300},
		"submitter_name":   map[string]any{"type": "string", "minLength": 2, "maxLength": 120},
		"submitter_email":  map[string]any{"type": "string", "format": "email", "maxLength": 254},
		"submitter_phone":  map[string]any{"type": "string", "maxLength": 32},
		"description":      map[string]any{"type": "string", "maxLength": 2000},
	},
}

var compiledPayloadSchema = mustCompileSchema(payloadSchema)

func mustCompileSchema(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("submission.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	schema, err := compiler.Compile("submission.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// Payload is the wire body for a public nomination.
type Payload struct {
	Category        string `json:"category"`
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address,omitempty"`
	BusinessPhone   string `json:"business_phone,omitempty"`
	BusinessWebsite string `json:"business_website,omitempty"`
	SubmitterName   string `json:"submitter_name"`
	SubmitterEmail  string `json:"submitter_email"`
	SubmitterPhone  string `json:"submitter_phone,omitempty"`
	Description     string `json:"description,omitempty"`
}

// Service handles public nomination business logic.
type Service struct {
	repo   repository.SubmissionRepository
	logger *slog.Logger
}

func NewService(repo repository.SubmissionRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the raw nomination body and records it as pending.
func (s *Service) Create(ctx context.Context, body []byte) (*entity.Submission, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("submission body is not valid JSON: %w", common.ErrValidation)
	}
	if err := compiledPayloadSchema.Validate(v); err != nil {
		s.logger.Warn("submission.rejected", "error", err)
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	category, ok := constants.CanonicalizeEntityType(p.Category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q: %w", p.Category, common.ErrValidation)
	}

	sub, err := s.repo.Create(ctx, &repository.CreateSubmissionRequest{
		Category:        category,
		BusinessName:    p.BusinessName,
		BusinessAddress: p.BusinessAddress,
		BusinessPhone:   p.BusinessPhone,
		BusinessWebsite: p.BusinessWebsite,
		SubmitterName:   p.SubmitterName,
		SubmitterEmail:  p.SubmitterEmail,
		SubmitterPhone:  p.SubmitterPhone,
		Description:     p.Description,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("submission.accepted", "submission_id", sub.ID, "category", sub.Category)
	return sub, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*entity.Submission, int, error) {
	var st constants.SubmissionStatus
	if status != "" {
		st = constants.SubmissionStatus(status)
		valid := false
		for _, known := range constants.SubmissionStatuses {
			if known == status {
				valid = true
				break
			}
		}
		if !valid {
			return nil, 0, fmt.Errorf("unknown status %q: %w", status, common.ErrInvalidInput)
		}
	}
	return s.repo.List(ctx, st, limit, offset)
}

// Transition moves a submission between triage states by explicit admin
// action. Invalid moves are rejected before touching the database.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, to constants.SubmissionStatus, adminNotes *string) (*entity.Submission, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !constants.ValidSubmissionTransition(cur.Status, to) {
		return nil, fmt.Errorf("cannot move submission from %s to %s: %w", cur.Status, to, common.ErrConflict)
	}
	return s.repo.SetStatus(ctx, id, to, adminNotes)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
