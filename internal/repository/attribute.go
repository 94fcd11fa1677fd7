package repository

import (
	"context"
	"log/slog"

	"github.com/bestofgoa/bok/gen/ent"
	"github.com/bestofgoa/bok/gen/ent/attribute"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/utils"
)

type AttributeRepository interface {
	ListByKind(ctx context.Context, kind string) ([]entity.AttributeRef, error)
	// Ensure resolves names to attribute refs within a kind, creating any
	// entries that do not exist yet.
	Ensure(ctx context.Context, kind string, names []string) ([]entity.AttributeRef, error)
}

type attributeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAttributeRepository(client *ent.Client, logger *slog.Logger) AttributeRepository {
	return &attributeRepository{
		client: client,
		logger: logger,
	}
}

func (r *attributeRepository) ListByKind(ctx context.Context, kind string) ([]entity.AttributeRef, error) {
	recs, err := r.client.Attribute.Query().
		Where(attribute.Kind(kind)).
		Order(attribute.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list attributes", "kind", kind, "error", err)
		return nil, err
	}
	result := make([]entity.AttributeRef, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToAttributeRef(rec)
	}
	return result, nil
}

func (r *attributeRepository) Ensure(ctx context.Context, kind string, names []string) ([]entity.AttributeRef, error) {
	refs := make([]entity.AttributeRef, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		slug := utils.Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		rec, err := r.client.Attribute.Query().
			Where(attribute.Kind(kind), attribute.Slug(slug)).
			Only(ctx)
		if ent.IsNotFound(err) {
			rec, err = r.client.Attribute.Create().
				SetKind(kind).
				SetName(name).
				SetSlug(slug).
				Save(ctx)
			if err != nil && ent.IsConstraintError(err) {
				// lost a create race; the row exists now
				rec, err = r.client.Attribute.Query().
					Where(attribute.Kind(kind), attribute.Slug(slug)).
					Only(ctx)
			}
		}
		if err != nil {
			r.logger.Error("failed to ensure attribute", "kind", kind, "slug", slug, "error", err)
			return nil, err
		}
		refs = append(refs, utils.ToAttributeRef(rec))
	}
	return refs, nil
}
