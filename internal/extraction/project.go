package extraction

import (
	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

// image-step sub-progress defaults when the runner omits the counters
const (
	defaultImagesTotal = 10
)

// NewSteps returns the initial projected step list for a template:
// every step present once, all pending.
func NewSteps(tmpl []StepTemplate) []entity.StepStatus {
	out := make([]entity.StepStatus, len(tmpl))
	for i, t := range tmpl {
		out[i] = entity.StepStatus{
			Name:        t.Name,
			DisplayName: t.DisplayName,
			Status:      constants.StepPending,
		}
	}
	return out
}

// ProjectSteps maps one poll's partial step reports onto the fixed template.
// The result always has exactly one entry per templated step, in template
// order. A step the runner omitted keeps its previous projected state, so a
// completed step never regresses to pending just because a later poll did not
// mention it.
func ProjectSteps(tmpl []StepTemplate, prev []entity.StepStatus, reported []entity.StepReport) []entity.StepStatus {
	prevByName := make(map[string]entity.StepStatus, len(prev))
	for _, s := range prev {
		prevByName[s.Name] = s
	}
	repByName := make(map[string]entity.StepReport, len(reported))
	for _, r := range reported {
		repByName[r.Name] = r
	}

	out := make([]entity.StepStatus, len(tmpl))
	for i, t := range tmpl {
		step := entity.StepStatus{
			Name:        t.Name,
			DisplayName: t.DisplayName,
			Status:      constants.StepPending,
		}
		if p, ok := prevByName[t.Name]; ok {
			step.Status = p.Status
			step.StartedAt = p.StartedAt
			step.CompletedAt = p.CompletedAt
			step.Error = p.Error
			step.Progress = p.Progress
		}
		if r, ok := repByName[t.Name]; ok {
			step.Status = r.Status
			step.StartedAt = r.StartedAt
			step.CompletedAt = r.CompletedAt
			step.Error = r.Error
			if t.Name == StepProcessImages {
				step.Progress = imageProgress(r)
			}
		}
		out[i] = step
	}
	return out
}

func imageProgress(r entity.StepReport) *entity.StepProgress {
	p := entity.StepProgress{Total: defaultImagesTotal}
	if r.ImagesProcessed != nil {
		p.Current = *r.ImagesProcessed
	}
	if r.ImagesTotal != nil {
		p.Total = *r.ImagesTotal
	}
	if r.CurrentCost != nil {
		p.Cost = *r.CurrentCost
	}
	return &p
}
