package store

import (
	"context"
	"fmt"

	"github.com/psinha/quizforge/ent"
)

// eventRepo implements EventRepo on the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append model request event: %w", err)
	}
	return nil
}

func (r *eventRepo) Summary(ctx context.Context) (*LLMRequestSummary, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query model request events: %w", err)
	}
	sum := &LLMRequestSummary{}
	for _, row := range rows {
		sum.Requests++
		if !row.Success {
			sum.Failures++
		}
		sum.InputTokens += row.InputTokens
		sum.OutputTokens += row.OutputTokens
	}
	return sum, nil
}
