package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// TriggerKind tags how a job's firing times are computed
type TriggerKind string

const (
	TriggerInterval TriggerKind = "interval"
	TriggerCron     TriggerKind = "cron"
	TriggerOnce     TriggerKind = "once"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Trigger describes when a job fires. Exactly one of Every, Spec or At is meaningful, selected by Kind.
type Trigger struct {
	Kind  TriggerKind
	Every time.Duration
	Spec  string
	At    time.Time

	schedule cron.Schedule
}

// Interval fires every d, first at add time + d
func Interval(d time.Duration) Trigger {
	return Trigger{Kind: TriggerInterval, Every: d}
}

// Cron fires at the times described by a standard five-field spec or a descriptor such as @hourly
func Cron(spec string) Trigger {
	return Trigger{Kind: TriggerCron, Spec: spec}
}

// Once fires a single time at t
func Once(t time.Time) Trigger {
	return Trigger{Kind: TriggerOnce, At: t}
}

// compile validates the trigger and parses cron specs
func (t Trigger) compile() (Trigger, error) {
	switch t.Kind {
	case TriggerInterval:
		if t.Every <= 0 {
			return Trigger{}, fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidTrigger, t.Every)
		}
	case TriggerCron:
		sched, err := cronParser.Parse(t.Spec)
		if err != nil {
			return Trigger{}, fmt.Errorf("%w: %q: %v", ErrInvalidTrigger, t.Spec, err)
		}
		t.schedule = sched
	case TriggerOnce:
		if t.At.IsZero() {
			return Trigger{}, fmt.Errorf("%w: once trigger needs a time", ErrInvalidTrigger)
		}
	default:
		return Trigger{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidTrigger, t.Kind)
	}
	return t, nil
}

// first returns the first firing time for a job added at now
func (t Trigger) first(now time.Time) time.Time {
	switch t.Kind {
	case TriggerInterval:
		return now.Add(t.Every)
	case TriggerCron:
		return t.schedule.Next(now)
	default:
		return t.At
	}
}

// after returns the firing time following one scheduled at prev, strictly after now.
// ok is false when the trigger never fires again.
func (t Trigger) after(prev, now time.Time) (next time.Time, ok bool) {
	switch t.Kind {
	case TriggerInterval:
		return advance(prev.Add(t.Every), now, t.Every), true
	case TriggerCron:
		return t.schedule.Next(now), true
	default:
		return time.Time{}, false
	}
}

// realign moves a missed firing time past now without firing it.
// Interval jobs keep their phase; a past once-time is left due so it fires once.
func (t Trigger) realign(next, now time.Time) time.Time {
	if next.After(now) {
		return next
	}
	switch t.Kind {
	case TriggerInterval:
		return advance(next, now, t.Every)
	case TriggerCron:
		return t.schedule.Next(now)
	default:
		return next
	}
}

func advance(next, now time.Time, every time.Duration) time.Time {
	if next.After(now) {
		return next
	}
	missed := now.Sub(next)/every + 1
	return next.Add(missed * every)
}

func (t Trigger) String() string {
	switch t.Kind {
	case TriggerInterval:
		return fmt.Sprintf("interval[%s]", t.Every)
	case TriggerCron:
		return fmt.Sprintf("cron[%s]", t.Spec)
	case TriggerOnce:
		return fmt.Sprintf("once[%s]", t.At.Format(time.RFC3339))
	default:
		return string(t.Kind)
	}
}
