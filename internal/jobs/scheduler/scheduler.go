package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"autojoin-server/internal/observability"
)

var (
	ErrInvalidTrigger = errors.New("invalid trigger")
	ErrJobNotFound    = errors.New("job not found")
	ErrJobRunning     = errors.New("job is already running")
)

// JobFunc is the unit of scheduled work
type JobFunc func(ctx context.Context) error

// Job is a named unit of work that knows its own trigger
type Job interface {
	// Name returns the job id used for registration and logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Trigger returns when the job fires
	Trigger() Trigger
}

// Recorder receives per-job run metrics
type Recorder interface {
	ObserveJobRun(jobID string, duration time.Duration, err error)
	IncJobSkipped(jobID string)
}

// JobInfo is a snapshot of one registered job
type JobInfo struct {
	ID      string     `json:"id"`
	Trigger string     `json:"trigger"`
	NextRun *time.Time `json:"next_run,omitempty"`
	Running bool       `json:"running"`
}

// Status is a snapshot of the scheduler
type Status struct {
	Running bool      `json:"running"`
	Paused  bool      `json:"paused"`
	Jobs    []JobInfo `json:"jobs"`
}

type job struct {
	id      string
	fn      JobFunc
	trigger Trigger
	next    time.Time
}

// Scheduler fires registered jobs from a single loop goroutine. Each firing runs in its
// own goroutine and at most one run per job id is in flight; overlapping firings are skipped.
type Scheduler struct {
	mu       sync.Mutex
	jobs     map[string]*job
	inFlight map[string]bool
	running  bool
	paused   bool
	baseCtx  context.Context
	stop     chan struct{}
	loopDone chan struct{}
	wake     chan struct{}
	wg       sync.WaitGroup
	now      func() time.Time
	recorder Recorder
	logger   *observability.Logger
}

// New creates a stopped scheduler with no jobs
func New(logger *observability.Logger, recorder Recorder) *Scheduler {
	return &Scheduler{
		jobs:     make(map[string]*job),
		inFlight: make(map[string]bool),
		baseCtx:  context.Background(),
		wake:     make(chan struct{}, 1),
		now:      time.Now,
		recorder: recorder,
		logger:   logger,
	}
}

// Register adds a Job under its own name and trigger
func (s *Scheduler) Register(j Job) error {
	return s.AddJob(j.Name(), j.Run, j.Trigger())
}

// AddIntervalJob schedules fn every d. Re-adding an id replaces the previous job.
func (s *Scheduler) AddIntervalJob(fn JobFunc, id string, every time.Duration) error {
	return s.AddJob(id, fn, Interval(every))
}

// AddCronJob schedules fn on a cron spec. Re-adding an id replaces the previous job.
func (s *Scheduler) AddCronJob(fn JobFunc, id string, spec string) error {
	return s.AddJob(id, fn, Cron(spec))
}

// AddOnceJob schedules fn to run a single time at t. The job removes itself after it fires.
func (s *Scheduler) AddOnceJob(fn JobFunc, id string, at time.Time) error {
	return s.AddJob(id, fn, Once(at))
}

// AddJob validates the trigger and atomically adds or replaces the job with this id
func (s *Scheduler) AddJob(id string, fn JobFunc, trigger Trigger) error {
	if fn == nil {
		return fmt.Errorf("%w: nil job function", ErrInvalidTrigger)
	}
	compiled, err := trigger.compile()
	if err != nil {
		return err
	}

	s.mu.Lock()
	_, replaced := s.jobs[id]
	s.jobs[id] = &job{id: id, fn: fn, trigger: compiled, next: compiled.first(s.now())}
	s.mu.Unlock()
	s.signal()

	ctx := observability.WithFields(context.Background(), observability.Field{Key: "job_id", Value: id})
	if replaced {
		s.logger.Info(ctx, fmt.Sprintf("Replaced scheduled job: %s (%s)", id, compiled))
	} else {
		s.logger.Info(ctx, fmt.Sprintf("Registered scheduled job: %s (%s)", id, compiled))
	}
	return nil
}

// RemoveJob unregisters a job. An in-flight run is not cancelled.
func (s *Scheduler) RemoveJob(id string) bool {
	s.mu.Lock()
	_, ok := s.jobs[id]
	delete(s.jobs, id)
	s.mu.Unlock()
	if ok {
		s.signal()
	}
	return ok
}

// GetJob returns a snapshot of one job
func (s *Scheduler) GetJob(id string) (JobInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return JobInfo{}, false
	}
	return s.infoLocked(j), true
}

// Status returns a snapshot of the scheduler and its jobs, ordered by id
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{Running: s.running, Paused: s.paused, Jobs: make([]JobInfo, 0, len(s.jobs))}
	for _, j := range s.jobs {
		st.Jobs = append(st.Jobs, s.infoLocked(j))
	}
	sort.Slice(st.Jobs, func(a, b int) bool { return st.Jobs[a].ID < st.Jobs[b].ID })
	return st
}

func (s *Scheduler) infoLocked(j *job) JobInfo {
	next := j.next
	return JobInfo{ID: j.id, Trigger: j.trigger.String(), NextRun: &next, Running: s.inFlight[j.id]}
}

// Start begins firing jobs. Job runs receive ctx. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.baseCtx = ctx
	s.stop = make(chan struct{})
	s.loopDone = make(chan struct{})
	s.realignLocked(s.now())
	stop, done := s.stop, s.loopDone
	count := len(s.jobs)
	s.mu.Unlock()

	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", count))
	go s.loop(stop, done)
}

// Stop halts firing. With drain it blocks until in-flight runs finish. Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop(drain bool) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.loopDone
	s.mu.Unlock()

	<-done
	if drain {
		s.wg.Wait()
	}
	s.logger.Info(context.Background(), "Scheduler stopped")
}

// Pause suppresses firing without cancelling in-flight runs
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		return
	}
	s.paused = true
	s.logger.Info(context.Background(), "Scheduler paused")
}

// Resume re-enables firing. Ticks missed while paused are skipped, not replayed.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	if !s.paused {
		s.mu.Unlock()
		return
	}
	s.paused = false
	s.realignLocked(s.now())
	s.mu.Unlock()
	s.signal()
	s.logger.Info(context.Background(), "Scheduler resumed")
}

// RunJob fires a job immediately without changing its schedule
func (s *Scheduler) RunJob(id string) error {
	return s.RunJobWith(id, nil)
}

// RunJobWith fires fn immediately in the run slot of job id, so it obeys the same one-run-at-a-time
// rule as the scheduled runs. A nil fn runs the registered function.
func (s *Scheduler) RunJobWith(id string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	if s.inFlight[id] {
		return ErrJobRunning
	}
	if fn == nil {
		fn = j.fn
	}
	s.dispatchLocked(id, fn)
	return nil
}

// Wait blocks until every in-flight run has returned
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) realignLocked(now time.Time) {
	for _, j := range s.jobs {
		j.next = j.trigger.realign(j.next, now)
	}
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		wait, hasNext := s.tick()

		var timer *time.Timer
		var timerC <-chan time.Time
		if hasNext {
			timer = time.NewTimer(wait)
			timerC = timer.C
		}

		select {
		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-s.wake:
		case <-timerC:
		}
		if timer != nil {
			timer.Stop()
		}
	}
}

// tick fires every due job and returns how long to sleep until the next one
func (s *Scheduler) tick() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		return 0, false
	}

	now := s.now()
	var earliest time.Time
	for id, j := range s.jobs {
		if !j.next.After(now) {
			if s.inFlight[id] {
				if j.trigger.Kind == TriggerOnce {
					// fires when the previous run of this id returns
					continue
				}
				s.skipLocked(j)
			} else {
				s.dispatchLocked(id, j.fn)
			}

			next, ok := j.trigger.after(j.next, now)
			if !ok {
				delete(s.jobs, id)
				continue
			}
			j.next = next
		}
		if earliest.IsZero() || j.next.Before(earliest) {
			earliest = j.next
		}
	}

	if earliest.IsZero() {
		return 0, false
	}
	return earliest.Sub(now), true
}

func (s *Scheduler) skipLocked(j *job) {
	ctx := observability.WithFields(s.baseCtx, observability.Field{Key: "job_id", Value: j.id})
	s.logger.Warn(ctx, fmt.Sprintf("Skipping scheduled job %s: previous run still in flight", j.id))
	if s.recorder != nil {
		s.recorder.IncJobSkipped(j.id)
	}
}

func (s *Scheduler) dispatchLocked(id string, fn JobFunc) {
	s.inFlight[id] = true
	s.wg.Add(1)
	go s.execute(s.baseCtx, id, fn)
}

func (s *Scheduler) execute(ctx context.Context, id string, fn JobFunc) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "job_id", Value: id})
	start := time.Now()
	var err error

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
		duration := time.Since(start)
		if err != nil {
			s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", id, duration), err)
		} else {
			s.logger.Debug(ctx, fmt.Sprintf("Job %s completed in %v", id, duration))
		}
		if s.recorder != nil {
			s.recorder.ObserveJobRun(id, duration, err)
		}

		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
		s.wg.Done()
		s.signal()
	}()

	err = fn(ctx)
}
