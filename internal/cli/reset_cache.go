package cli

import (
	"context"
	"fmt"
	"io"
)

type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// RunResetCacheCommand drops the cached diary snapshot so the next page
// load refetches from the backend.
func RunResetCacheCommand(ctx context.Context, diary SnapshotInvalidator, stdout io.Writer) error {
	if err := diary.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate diary snapshot: %w", err)
	}
	fmt.Fprintln(stdout, "✅ Diary cache cleared")
	fmt.Fprintln(stdout, "The next page load will refetch entries from the backend.")
	return nil
}
