package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// allPhases defines the canonical execution order. Friends are linked only
// after every user has an id.
var allPhases = []string{"users", "friends"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds a fixture into the store.
type Pipeline struct {
	log     *slog.Logger
	repo    UserRepo
	cfg     Config
	ids     map[string]string
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo UserRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		cfg:     cfg,
		ids:     make(map[string]string),
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// IDs returns the store id assigned to each fixture name.
func (p *Pipeline) IDs() map[string]string {
	return p.ids
}

// Run validates the fixture and executes the phases in order. The first
// failing phase stops the run.
func (p *Pipeline) Run(ctx context.Context, fx *Fixture) error {
	if err := fx.Validate(); err != nil {
		return fmt.Errorf("validate fixture: %w", err)
	}

	for _, phase := range allPhases {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx, fx)
		case "friends":
			result = p.runFriends(ctx, fx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("updated", result.Updated),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("users", len(fx.Users)))
	return nil
}

func (p *Pipeline) runUsers(ctx context.Context, fx *Fixture) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(fx.Users)}
	}

	var result PhaseResult
	for _, u := range fx.Users {
		name := strings.TrimSpace(u.Name)
		created, err := p.repo.Create(ctx, &name)
		if err != nil {
			result.Err = fmt.Errorf("create %q: %w", name, err)
			return result
		}
		p.ids[name] = created.ID
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runFriends(ctx context.Context, fx *Fixture) PhaseResult {
	var result PhaseResult
	for _, u := range fx.Users {
		if len(u.Friends) == 0 || p.cfg.DryRun {
			result.Skipped++
			continue
		}

		name := strings.TrimSpace(u.Name)
		friendIDs := make([]string, 0, len(u.Friends))
		for _, friend := range u.Friends {
			friendIDs = append(friendIDs, p.ids[strings.TrimSpace(friend)])
		}

		if err := p.repo.SetFriends(ctx, p.ids[name], friendIDs); err != nil {
			result.Err = fmt.Errorf("link friends of %q: %w", name, err)
			return result
		}
		result.Updated++
	}
	return result
}
