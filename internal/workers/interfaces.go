// Package workers runs the background jobs of the landing service.
//
// A [Workers] aggregate starts every configured [Worker] with a shared
// context; cancelling that context stops them all.
package workers

import (
	"context"

	"github.com/MKhiriev/webinar-landing/models"
)

// Worker is implemented by any background job. Run must not block: long
// running work is started on its own goroutine and stops when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// ConfigLoader reloads the landing configuration. A successful Refresh makes
// the result the served snapshot; a failed one leaves it untouched.
// *landing.Controller satisfies it.
type ConfigLoader interface {
	Refresh(ctx context.Context) (models.LandingConfig, error)
}
