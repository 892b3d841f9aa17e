package ports

import (
	"time"

	"github.com/aretw0/gauntlet/pkg/domain"
)

// Recorder receives execution telemetry. Implementations must be safe for
// concurrent use: independent runs may report at the same time.
type Recorder interface {
	// RecordRun is called once per completed run, aborted or not.
	RecordRun(name string, passed bool, duration time.Duration)

	// RecordCheck is called once per recorded check result.
	RecordCheck(kind string, status domain.Status)
}
