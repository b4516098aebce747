package validation

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/scheduler"
)

// complements maps a constraint kind to the sibling error kinds its success
// can invalidate.
var complements = map[string][]string{
	KindRequired:       {KindRequired},
	KindMin:            {KindMax},
	KindMax:            {KindMin},
	KindMinDate:        {KindMaxDate, KindMaxOrEqualDate},
	KindMaxDate:        {KindMinDate, KindMinOrEqualDate},
	KindMinOrEqualDate: {KindMaxDate, KindMaxOrEqualDate},
	KindMaxOrEqualDate: {KindMinDate, KindMinOrEqualDate},
}

// Complements returns the error kinds complementary to kind.
func Complements(kind string) []string {
	return complements[kind]
}

// Revalidator schedules sibling revalidation when a complementary constraint
// stops failing. Revalidation runs on the next scheduler tick and is
// coalesced per control.
type Revalidator struct {
	sched  *scheduler.Scheduler
	logger *slog.Logger
}

type revalidateKey struct {
	c control.AbstractControl
}

// NewRevalidator creates a revalidator on s. A nil s uses scheduler.Default().
func NewRevalidator(s *scheduler.Scheduler, log *slog.Logger) *Revalidator {
	if s == nil {
		s = scheduler.Default()
	}
	return &Revalidator{sched: s, logger: logger.OrDiscard(log)}
}

// Complete is a Complete callback. When kind produced no error, every enabled
// sibling that declares a dependency on c and currently holds a complementary
// error is scheduled for revalidation.
func (r *Revalidator) Complete(c control.AbstractControl, kind string, errs control.Errors) {
	if len(errs) > 0 {
		return
	}
	kinds := complements[kind]
	if len(kinds) == 0 {
		return
	}
	name, ok := control.Name(c)
	if !ok {
		return
	}

	for _, sibling := range c.Parent().Children() {
		if sibling == c || !sibling.Enabled() || sibling.Validator() == nil || !sibling.DependsOn(name) {
			continue
		}
		if !hasAny(sibling.Errors(), kinds) {
			continue
		}

		target := sibling
		if r.sched.ScheduleOnce(revalidateKey{target}, func() {
			if !target.Destroyed() {
				target.UpdateValueAndValidity()
			}
		}) {
			r.logger.Debug("revalidation scheduled",
				logger.Field(name),
				logger.Constraint(kind),
			)
		}
	}
}

func hasAny(errs control.Errors, kinds []string) bool {
	for _, k := range kinds {
		if errs.Has(k) {
			return true
		}
	}
	return false
}
