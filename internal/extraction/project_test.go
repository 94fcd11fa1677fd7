package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

func TestStepsForEveryEntityType(t *testing.T) {
	for _, et := range constants.EntityTypes() {
		tmpl := StepsFor(et)
		require.NotEmpty(t, tmpl, "entity type %s", et)

		seen := map[string]int{}
		for _, s := range tmpl {
			assert.NotEmpty(t, s.Name)
			assert.NotEmpty(t, s.DisplayName)
			seen[s.Name]++
		}
		for name, n := range seen {
			assert.Equal(t, 1, n, "step %s duplicated for %s", name, et)
		}
	}
}

func TestProjectStepsTemplateCompleteness(t *testing.T) {
	tmpl := StepsFor(constants.EntityRestaurant)

	tests := []struct {
		name     string
		reported []entity.StepReport
	}{
		{name: "empty response"},
		{
			name: "single step reported",
			reported: []entity.StepReport{
				{Name: "apify_fetch", Status: constants.StepCompleted},
			},
		},
		{
			name: "unknown step name ignored",
			reported: []entity.StepReport{
				{Name: "some_future_step", Status: constants.StepRunning},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectSteps(tmpl, nil, tt.reported)
			require.Len(t, got, len(tmpl))
			for i, s := range got {
				assert.Equal(t, tmpl[i].Name, s.Name)
				assert.Equal(t, tmpl[i].DisplayName, s.DisplayName)
			}
		})
	}
}

func TestProjectStepsNoRegression(t *testing.T) {
	tmpl := StepsFor(constants.EntityRestaurant)

	first := ProjectSteps(tmpl, nil, []entity.StepReport{
		{Name: "apify_fetch", Status: constants.StepCompleted},
	})

	// a later poll that omits the completed step must not reset it
	second := ProjectSteps(tmpl, first, []entity.StepReport{
		{Name: "firecrawl_menu", Status: constants.StepRunning},
	})

	byName := map[string]entity.StepStatus{}
	for _, s := range second {
		byName[s.Name] = s
	}
	assert.Equal(t, constants.StepCompleted, byName["apify_fetch"].Status)
	assert.Equal(t, constants.StepRunning, byName["firecrawl_menu"].Status)
	assert.Equal(t, constants.StepPending, byName["finalize"].Status)
}

func TestProjectStepsDisplayNameFromTemplate(t *testing.T) {
	tmpl := []StepTemplate{{Name: "apify_fetch", DisplayName: "Fetch place data"}}

	got := ProjectSteps(tmpl, nil, []entity.StepReport{
		{Name: "apify_fetch", Status: constants.StepCompleted},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Fetch place data", got[0].DisplayName)
}

func TestProjectStepsCopiesReportDetails(t *testing.T) {
	tmpl := StepsFor(constants.EntityRestaurant)
	started := time.Now().Add(-time.Minute)
	done := time.Now()

	got := ProjectSteps(tmpl, nil, []entity.StepReport{
		{
			Name:        "ai_enrichment",
			Status:      constants.StepFailed,
			StartedAt:   &started,
			CompletedAt: &done,
			Error:       "model unavailable",
		},
	})

	var step entity.StepStatus
	for _, s := range got {
		if s.Name == "ai_enrichment" {
			step = s
		}
	}
	assert.Equal(t, constants.StepFailed, step.Status)
	assert.Equal(t, &started, step.StartedAt)
	assert.Equal(t, &done, step.CompletedAt)
	assert.Equal(t, "model unavailable", step.Error)
}

func TestProjectStepsImageProgress(t *testing.T) {
	tmpl := StepsFor(constants.EntityHotel)

	t.Run("defaults when counters absent", func(t *testing.T) {
		got := ProjectSteps(tmpl, nil, []entity.StepReport{
			{Name: StepProcessImages, Status: constants.StepRunning},
		})
		var step entity.StepStatus
		for _, s := range got {
			if s.Name == StepProcessImages {
				step = s
			}
		}
		require.NotNil(t, step.Progress)
		assert.Equal(t, 0, step.Progress.Current)
		assert.Equal(t, 10, step.Progress.Total)
		assert.Equal(t, 0.0, step.Progress.Cost)
	})

	t.Run("counters copied when present", func(t *testing.T) {
		processed, total, cost := 4, 12, 0.35
		got := ProjectSteps(tmpl, nil, []entity.StepReport{
			{
				Name:            StepProcessImages,
				Status:          constants.StepRunning,
				ImagesProcessed: &processed,
				ImagesTotal:     &total,
				CurrentCost:     &cost,
			},
		})
		var step entity.StepStatus
		for _, s := range got {
			if s.Name == StepProcessImages {
				step = s
			}
		}
		require.NotNil(t, step.Progress)
		assert.Equal(t, 4, step.Progress.Current)
		assert.Equal(t, 12, step.Progress.Total)
		assert.Equal(t, 0.35, step.Progress.Cost)
	})
}
