// Package enrich drives one classification pass per viewed diary entry and
// merges the outcome back into the repository.
package enrich

import (
	"context"
	"errors"
	"sync"

	"github.com/mongle/monglectl/internal/classify"
	"github.com/mongle/monglectl/internal/diary"
	"github.com/mongle/monglectl/internal/entry"
)

// FallbackMessage is shown when classification fails. The entry keeps no
// emotion so a future view can retry.
const FallbackMessage = "AI 응답에 실패했습니다. 나중에 다시 시도해주세요."

// ErrInFlight is returned when a classification pass for the same entry is
// already running.
var ErrInFlight = errors.New("classification already in flight for entry")

// State tracks an enrichment pass for a single entry.
type State int

const (
	Pending State = iota
	Classifying
	Enriched
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Classifying:
		return "classifying"
	case Enriched:
		return "enriched"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Classifier is the subset of the classification client the coordinator needs.
type Classifier interface {
	Classify(ctx context.Context, text string) (classify.Result, error)
}

// Result is the outcome of one enrichment pass, exposed to the presentation
// layer. On Failed, Message carries the static fallback and the stored entry
// is untouched.
type Result struct {
	State   State
	Emotion entry.Emotion
	Message string
}

// Coordinator runs at most one classification pass per entry id at a time.
type Coordinator struct {
	repo       *diary.Repository
	classifier Classifier

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCoordinator creates an enrichment coordinator over the given repository.
func NewCoordinator(repo *diary.Repository, classifier Classifier) *Coordinator {
	return &Coordinator{
		repo:       repo,
		classifier: classifier,
		inflight:   make(map[string]struct{}),
	}
}

// Enrich classifies the given entry and merges the resulting label into the
// repository. An entry that already carries an emotion is returned as
// enriched without another call. A concurrent pass for the same id yields
// ErrInFlight.
//
// The merge tolerates entries deleted while the call was in flight: the
// repository treats the stale SetEmotion as a no-op and the outcome is still
// reported to the caller.
func (c *Coordinator) Enrich(ctx context.Context, e entry.Entry) (Result, error) {
	if e.Emotion != "" {
		return Result{State: Enriched, Emotion: e.Emotion}, nil
	}

	c.mu.Lock()
	if _, busy := c.inflight[e.ID]; busy {
		c.mu.Unlock()
		return Result{State: Classifying}, ErrInFlight
	}
	c.inflight[e.ID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, e.ID)
		c.mu.Unlock()
	}()

	res, err := c.classifier.Classify(ctx, e.Text)
	if err != nil {
		// The entry stays unclassified and eligible for a future attempt.
		return Result{State: Failed, Message: FallbackMessage}, nil
	}

	if err := c.repo.SetEmotion(e.ID, res.Emotion); err != nil {
		return Result{}, err
	}

	return Result{State: Enriched, Emotion: res.Emotion, Message: res.Message}, nil
}
