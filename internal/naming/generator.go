package naming

import (
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"videoname/internal/form"
)

// Generator runs the normalize, validate, compose pipeline. It holds no
// per-call state and is safe for concurrent use.
type Generator struct {
	loc *time.Location
	now func() time.Time
	log logrus.FieldLogger
}

// NewGenerator returns a Generator that reads calendar days in loc and the
// current time from now. Nil arguments fall back to time.Local, time.Now
// and the standard logrus logger.
func NewGenerator(loc *time.Location, now func() time.Time, log logrus.FieldLogger) *Generator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Generator{loc: loc, now: now, log: log}
}

// Generate returns the video name for raw, or the first validation error.
// Internal faults surface as ErrGenerationFailed.
func (g *Generator) Generate(raw form.RawInput) (string, error) {
	var (
		name   string
		reject error
	)
	fault := oops.Recoverf(func() {
		in := form.Normalize(raw, g.loc)
		if reject = Validate(in, g.now(), g.loc); reject != nil {
			return
		}
		name = Compose(in)
	}, "generate video name")
	if fault != nil {
		g.log.WithError(fault).
			WithField("accountName", raw.AccountName).
			WithField("scriptName", raw.ScriptName).
			Error("video name generation failed")
		return "", ErrGenerationFailed
	}
	if reject != nil {
		return "", reject
	}
	return name, nil
}

// Result is the single-text host contract: the name on success, the error
// message otherwise.
func (g *Generator) Result(raw form.RawInput) string {
	name, err := g.Generate(raw)
	if err != nil {
		return err.Error()
	}
	return name
}
