package store

import (
	"context"
)

// ResetRuns clears all recorded runs and their attempt history.
func (s *Store) ResetRuns(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM attempts;`); err != nil {
		return err
	}
	_, err := s.DB.ExecContext(ctx, `DELETE FROM runs;`)
	return err
}
