package repository

import (
	"context"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/gen/ent"
	"github.com/bestofgoa/bok/gen/ent/submission"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/utils"
)

// CreateSubmissionRequest wraps parameters for recording a public nomination.
type CreateSubmissionRequest struct {
	Category        constants.EntityType
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	BusinessWebsite string
	SubmitterName   string
	SubmitterEmail  string
	SubmitterPhone  string
	Description     string
}

type SubmissionRepository interface {
	Create(ctx context.Context, req *CreateSubmissionRequest) (*entity.Submission, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	List(ctx context.Context, status constants.SubmissionStatus, limit, offset int) ([]*entity.Submission, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.SubmissionStatus, adminNotes *string) (*entity.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type submissionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubmissionRepository(client *ent.Client, logger *slog.Logger) SubmissionRepository {
	return &submissionRepository{
		client: client,
		logger: logger,
	}
}

func (r *submissionRepository) Create(ctx context.Context, req *CreateSubmissionRequest) (*entity.Submission, error) {
	builder := r.client.Submission.Create().
		SetCategory(string(req.Category)).
		SetBusinessName(req.BusinessName).
		SetSubmitterName(req.SubmitterName).
		SetSubmitterEmail(req.SubmitterEmail)
	if req.BusinessAddress != "" {
		builder = builder.SetBusinessAddress(req.BusinessAddress)
	}
	if req.BusinessPhone != "" {
		builder = builder.SetBusinessPhone(req.BusinessPhone)
	}
	if req.BusinessWebsite != "" {
		builder = builder.SetBusinessWebsite(req.BusinessWebsite)
	}
	if req.SubmitterPhone != "" {
		builder = builder.SetSubmitterPhone(req.SubmitterPhone)
	}
	if req.Description != "" {
		builder = builder.SetDescription(req.Description)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create submission", "business_name", req.BusinessName, "error", err)
		return nil, err
	}
	r.logger.Info("submission.created", "submission_id", rec.ID, "category", rec.Category)
	return utils.ToSubmission(rec), nil
}

func (r *submissionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	rec, err := r.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get submission", "submission_id", id, "error", err)
		return nil, err
	}
	return utils.ToSubmission(rec), nil
}

func (r *submissionRepository) List(ctx context.Context, status constants.SubmissionStatus, limit, offset int) ([]*entity.Submission, int, error) {
	q := r.client.Submission.Query()
	if status != "" {
		q = q.Where(submission.Status(string(status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	recs, err := q.Order(submission.ByCreatedAt(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list submissions", "error", err)
		return nil, 0, err
	}

	result := make([]*entity.Submission, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToSubmission(rec)
	}
	return result, total, nil
}

func (r *submissionRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.SubmissionStatus, adminNotes *string) (*entity.Submission, error) {
	builder := r.client.Submission.UpdateOneID(id).SetStatus(string(status))
	if adminNotes != nil {
		builder = builder.SetAdminNotes(*adminNotes)
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to update submission status", "submission_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("submission.status.changed", "submission_id", id, "status", status)
	return utils.ToSubmission(rec), nil
}

func (r *submissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Submission.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("submission %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to delete submission", "submission_id", id, "error", err)
		return err
	}
	return nil
}
