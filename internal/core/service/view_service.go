package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/testcreator/quiz-system/internal/core/ports"
)

// ViewDedup abstracts the repeat-view store (Redis). A view by the same
// viewer of the same quiz within the store's TTL window counts once.
type ViewDedup interface {
	IsViewed(ctx context.Context, quizID, viewerID string) (bool, error)
	MarkViewed(ctx context.Context, quizID, viewerID string, seen time.Time) error
}

type viewService struct {
	quizRepo ports.QuizRepository
	dedup    ViewDedup
	log      zerolog.Logger
}

// NewViewService returns a ViewService implementation.
func NewViewService(quizRepo ports.QuizRepository, dedup ViewDedup, log zerolog.Logger) ports.ViewService {
	return &viewService{quizRepo: quizRepo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single view event.
func (s *viewService) Process(ctx context.Context, in ports.ViewEventInput) error {
	// Repeat-view check; a dedup store failure is logged and the view counted
	// anyway, since double-counting is preferable to dropping the increment.
	seen, err := s.dedup.IsViewed(ctx, in.QuizID, in.ViewerID)
	if err != nil {
		s.log.Warn().Err(err).Str("quiz_id", in.QuizID).Msg("view dedup check failed, counting anyway")
	} else if seen {
		s.log.Debug().Str("quiz_id", in.QuizID).Str("viewer_id", in.ViewerID).Msg("repeat view skipped")
		return nil
	}

	if markErr := s.dedup.MarkViewed(ctx, in.QuizID, in.ViewerID, in.Seen); markErr != nil {
		s.log.Warn().Err(markErr).Str("quiz_id", in.QuizID).Msg("failed to set view dedup key")
	}

	if err := s.quizRepo.IncrementViewCount(ctx, in.QuizID); err != nil {
		return fmt.Errorf("process view: %w", err)
	}

	return nil
}
