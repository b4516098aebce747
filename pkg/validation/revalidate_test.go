package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/scheduler"
	"github.com/dmitrymomot/formkit/pkg/validation"
)

func date(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func readTime(c control.AbstractControl) (time.Time, bool) {
	t, ok := c.Value().(time.Time)
	return t, ok
}

// vacation wires a start/end pair where each bound follows the other field.
func vacation(t *testing.T, s *scheduler.Scheduler, start, end time.Time) (*control.Group, *control.Control, *control.Control) {
	t.Helper()

	rv := validation.NewRevalidator(s, nil)
	g := control.NewGroup()
	startCtrl := control.New(start)
	endCtrl := control.New(end)

	validation.New(validation.Rules[time.Time]{
		MaxDate: validation.Func(func(time.Time) (time.Time, bool) { return readTime(endCtrl) }).DependsOn("end"),
	}, validation.WithRevalidator(rv)).Apply(startCtrl, nil)
	validation.New(validation.Rules[time.Time]{
		MinDate: validation.Func(func(time.Time) (time.Time, bool) { return readTime(startCtrl) }).DependsOn("start"),
	}, validation.WithRevalidator(rv)).Apply(endCtrl, nil)

	require.NoError(t, g.Add("start", startCtrl))
	require.NoError(t, g.Add("end", endCtrl))
	startCtrl.UpdateValueAndValidity()
	endCtrl.UpdateValueAndValidity()
	return g, startCtrl, endCtrl
}

func TestRevalidator(t *testing.T) {
	t.Parallel()

	t.Run("correcting one field clears the dependent error on the next tick", func(t *testing.T) {
		t.Parallel()

		s := scheduler.New()
		g, start, end := vacation(t, s, date(10), date(5))
		require.True(t, start.HasError(validation.KindMaxDate))
		require.True(t, end.HasError(validation.KindMinDate))
		s.Flush()

		start.SetValue(date(1))
		assert.True(t, start.Valid())
		assert.True(t, end.HasError(validation.KindMinDate), "revalidation is deferred")
		assert.Equal(t, 1, s.Len())

		s.Flush()
		assert.True(t, end.Valid())
		assert.True(t, g.Valid())
		assert.Zero(t, s.Len(), "no revalidation loop")
	})

	t.Run("siblings without a declared dependency are left alone", func(t *testing.T) {
		t.Parallel()

		s := scheduler.New()
		rv := validation.NewRevalidator(s, nil)
		g := control.NewGroup()
		low := control.New(5)
		high := control.New(3)
		bound := 5.0

		validation.New(validation.Rules[int]{
			Min: validation.Func(func(int) (float64, bool) { return bound, true }),
		}, validation.WithRevalidator(rv)).Apply(high, nil)
		validation.New(validation.Rules[int]{
			Max: validation.Const[int](10.0),
		}, validation.WithRevalidator(rv)).Apply(low, nil)

		require.NoError(t, g.Add("low", low))
		require.NoError(t, g.Add("high", high))
		high.UpdateValueAndValidity()
		require.True(t, high.HasError(validation.KindMin))

		bound = 1
		low.SetValue(6)
		assert.Zero(t, s.Len())
		s.Flush()
		assert.True(t, high.HasError(validation.KindMin))
	})

	t.Run("revalidation is coalesced per control", func(t *testing.T) {
		t.Parallel()

		s := scheduler.New()
		_, start, end := vacation(t, s, date(10), date(5))
		s.Flush()

		start.SetValue(date(2))
		start.SetValue(date(3))
		assert.Equal(t, 1, s.Len())
		s.Flush()
		assert.True(t, end.Valid())
	})

	t.Run("disabled siblings are skipped", func(t *testing.T) {
		t.Parallel()

		s := scheduler.New()
		_, start, end := vacation(t, s, date(10), date(5))
		s.Flush()

		end.Disable()
		start.SetValue(date(1))
		assert.Zero(t, s.Len())
	})

	t.Run("detached controls do nothing", func(t *testing.T) {
		t.Parallel()

		s := scheduler.New()
		rv := validation.NewRevalidator(s, nil)
		c := control.New(1)
		rv.Complete(c, validation.KindMin, nil)
		assert.Zero(t, s.Len())
	})
}

func TestComplements(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{validation.KindMax}, validation.Complements(validation.KindMin))
	assert.Equal(t, []string{validation.KindMin}, validation.Complements(validation.KindMax))
	assert.ElementsMatch(t, []string{validation.KindMaxDate, validation.KindMaxOrEqualDate}, validation.Complements(validation.KindMinDate))
	assert.ElementsMatch(t, []string{validation.KindMinDate, validation.KindMinOrEqualDate}, validation.Complements(validation.KindMaxOrEqualDate))
	assert.Equal(t, []string{validation.KindRequired}, validation.Complements(validation.KindRequired))
	assert.Nil(t, validation.Complements(validation.KindPattern))
}
