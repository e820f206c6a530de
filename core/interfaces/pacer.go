// ABOUTME: Scheduling policy for spacing out sequential API requests
// ABOUTME: Implementations range from a fixed delay to a token bucket

package interfaces

import "context"

// Pacer blocks between two consecutive requests.
// Wait returns early with the context error when ctx is cancelled.
type Pacer interface {
	Wait(ctx context.Context) error
}
