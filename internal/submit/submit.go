// Package submit provides the concrete submission collaborators the form
// shell hands assembled payloads to.
package submit

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/form"
	"github.com/tradeport/formengine/internal/models"
)

// SubmissionWriter is the journal surface the sink needs.
type SubmissionWriter interface {
	Create(sub *models.Submission) error
}

// JournalSubmitter journals each payload to the submissions table.
type JournalSubmitter struct {
	repo   SubmissionWriter
	logger *zap.Logger
}

// NewJournalSubmitter creates a journal-backed submitter.
func NewJournalSubmitter(repo SubmissionWriter, logger *zap.Logger) *JournalSubmitter {
	return &JournalSubmitter{
		repo:   repo,
		logger: logger,
	}
}

// Submit serializes the payload and journals it.
func (s *JournalSubmitter) Submit(_ context.Context, p *form.Payload) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize payload: %w", err)
	}

	sub := &models.Submission{
		FormID:      p.FormID,
		Title:       p.Title,
		Vertical:    p.Vertical,
		ItemCount:   p.Aggregates.ItemCount,
		GrandTotal:  p.Aggregates.GrandTotal,
		Payload:     string(raw),
		SubmittedAt: p.SubmittedAt,
	}
	if err := s.repo.Create(sub); err != nil {
		return err
	}

	s.logger.Info("Submission journaled",
		zap.Int64("submission_id", sub.ID),
		zap.String("form_id", p.FormID),
		zap.Float64("grand_total", p.Aggregates.GrandTotal))
	return nil
}

// LogSubmitter writes the payload to the structured log and nothing else.
// Useful for local runs without a journal database.
type LogSubmitter struct {
	logger *zap.Logger
}

// NewLogSubmitter creates a log-only submitter.
func NewLogSubmitter(logger *zap.Logger) *LogSubmitter {
	return &LogSubmitter{logger: logger}
}

// Submit logs the payload.
func (s *LogSubmitter) Submit(_ context.Context, p *form.Payload) error {
	s.logger.Info("Form payload submitted",
		zap.String("form_id", p.FormID),
		zap.Any("header", p.Header),
		zap.Int("item_count", p.Aggregates.ItemCount),
		zap.Float64("grand_total", p.Aggregates.GrandTotal),
		zap.String("amount_in_words", p.AmountInWords))
	return nil
}
