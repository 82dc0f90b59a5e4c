package mock

import (
	"context"

	"stackdigest"
)

var _ stackdigest.RunService = (*RunService)(nil)

// RunService is a mock implementation of stackdigest.RunService.
type RunService struct {
	RecordRunFn  func(ctx context.Context, rec *stackdigest.RunRecord) error
	RecentRunsFn func(ctx context.Context, limit int) ([]*stackdigest.RunRecord, error)
}

func (s *RunService) RecordRun(ctx context.Context, rec *stackdigest.RunRecord) error {
	return s.RecordRunFn(ctx, rec)
}

func (s *RunService) RecentRuns(ctx context.Context, limit int) ([]*stackdigest.RunRecord, error) {
	return s.RecentRunsFn(ctx, limit)
}
