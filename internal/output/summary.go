package output

import (
	"time"

	"github.com/manav03panchal/gitfiti/internal/model"
)

// Summary describes a finished painting session.
type Summary struct {
	State       string
	Brush       string
	Start       time.Time
	End         time.Time
	PaintedDays int
	Verify      string
	Push        string
	Pending     model.Submission
	SVGPath     string
}
