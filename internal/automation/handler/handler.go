package handler

import (
	"context"
	"net/http"
	"strconv"

	"autojoin-server/internal/apierrors"
	automation "autojoin-server/internal/automation/processor"
	entries "autojoin-server/internal/entries/processor"
	"autojoin-server/internal/jobs/scheduler"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// SchedulerControl is the lifecycle surface of the scheduler
type SchedulerControl interface {
	Start(ctx context.Context)
	Stop(drain bool)
	Pause()
	Resume()
	Status() scheduler.Status
}

// JobRunner fires application jobs on demand
type JobRunner interface {
	RunAutomationNow() error
	RunSafetyNow(ctx context.Context) error
}

// CycleState exposes the live automation stage
type CycleState interface {
	State() automation.State
}

// SingleEntry enters one giveaway on request
type SingleEntry interface {
	EnterSingle(ctx context.Context, code string) (entries.Attempt, error)
}

// WebSocket upgrades event stream clients
type WebSocket interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

// Store defines the database operations the handler needs
type Store interface {
	GetSchedulerState(ctx context.Context) (store.SchedulerState, error)
	ResetSchedulerStats(ctx context.Context) (store.SchedulerState, error)
	CountEntriesByStatus(ctx context.Context) (map[string]int, error)
	CountActivityLogsByLevel(ctx context.Context) (map[string]int, error)
	CountActivityLogsByEventType(ctx context.Context) (map[string]int, error)
	CountGiveaways(ctx context.Context) (store.GiveawayCounts, error)
	ListRecentActivityLogs(ctx context.Context, limit int) ([]store.ActivityLog, error)
	ClearActivityLogs(ctx context.Context) (int64, error)
}

type Handler struct {
	// baseCtx outlives requests; the scheduler keeps it for every job run after Start
	baseCtx context.Context
	sched   SchedulerControl
	jobs    JobRunner
	cycle   CycleState
	entries SingleEntry
	ws      WebSocket
	store   Store
	logger  *observability.Logger
}

func New(
	baseCtx context.Context,
	sched SchedulerControl,
	jobs JobRunner,
	cycle CycleState,
	entries SingleEntry,
	ws WebSocket,
	store Store,
	logger *observability.Logger,
) Handler {
	return Handler{
		baseCtx: baseCtx,
		sched:   sched,
		jobs:    jobs,
		cycle:   cycle,
		entries: entries,
		ws:      ws,
		store:   store,
		logger:  logger,
	}
}

// StatusResponse combines the live scheduler view with the persisted counters
type StatusResponse struct {
	scheduler.Status
	CycleState automation.State     `json:"cycle_state"`
	Stats      store.SchedulerState `json:"stats"`
}

// StatsResponse aggregates counts across the store
type StatsResponse struct {
	Entries         map[string]int       `json:"entries"`
	ActivityByLevel map[string]int       `json:"activity_by_level"`
	ActivityByEvent map[string]int       `json:"activity_by_event"`
	Giveaways       store.GiveawayCounts `json:"giveaways"`
	Scheduler       store.SchedulerState `json:"scheduler"`
}

type ActivityResponse struct {
	Logs []store.ActivityLog `json:"logs"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// HandleGetStatus handles GET /api/scheduler/status
func (h *Handler) HandleGetStatus(c *gin.Context) {
	state, err := h.store.GetSchedulerState(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{
		Status:     h.sched.Status(),
		CycleState: h.cycle.State(),
		Stats:      state,
	})
}

// HandleStart handles POST /api/scheduler/start
func (h *Handler) HandleStart(c *gin.Context) {
	h.sched.Start(h.baseCtx)
	h.logger.Info(c.Request.Context(), "Scheduler started via API")
	c.JSON(http.StatusOK, h.sched.Status())
}

// HandleStop handles POST /api/scheduler/stop. In-flight runs finish in the background.
func (h *Handler) HandleStop(c *gin.Context) {
	h.sched.Stop(false)
	h.logger.Info(c.Request.Context(), "Scheduler stopped via API")
	c.JSON(http.StatusOK, h.sched.Status())
}

// HandlePause handles POST /api/scheduler/pause
func (h *Handler) HandlePause(c *gin.Context) {
	h.sched.Pause()
	c.JSON(http.StatusOK, h.sched.Status())
}

// HandleResume handles POST /api/scheduler/resume
func (h *Handler) HandleResume(c *gin.Context) {
	h.sched.Resume()
	c.JSON(http.StatusOK, h.sched.Status())
}

// HandleRunAutomation handles POST /api/scheduler/run
func (h *Handler) HandleRunAutomation(c *gin.Context) {
	if err := h.jobs.RunAutomationNow(); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, MessageResponse{Message: "automation cycle started"})
}

// HandleRunSafety handles POST /api/scheduler/safety/run
func (h *Handler) HandleRunSafety(c *gin.Context) {
	if err := h.jobs.RunSafetyNow(c.Request.Context()); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, MessageResponse{Message: "safety check started"})
}

// HandleResetStats handles POST /api/scheduler/stats/reset
func (h *Handler) HandleResetStats(c *gin.Context) {
	state, err := h.store.ResetSchedulerStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// HandleGetStats handles GET /api/stats
func (h *Handler) HandleGetStats(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		resp StatsResponse
		err  error
	)

	if resp.Entries, err = h.store.CountEntriesByStatus(ctx); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if resp.ActivityByLevel, err = h.store.CountActivityLogsByLevel(ctx); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if resp.ActivityByEvent, err = h.store.CountActivityLogsByEventType(ctx); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if resp.Giveaways, err = h.store.CountGiveaways(ctx); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if resp.Scheduler, err = h.store.GetSchedulerState(ctx); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleListActivity handles GET /api/activity?limit=
func (h *Handler) HandleListActivity(c *gin.Context) {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = min(n, maxActivityLimit)
	}

	logs, err := h.store.ListRecentActivityLogs(c.Request.Context(), limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if logs == nil {
		logs = []store.ActivityLog{}
	}
	c.JSON(http.StatusOK, ActivityResponse{Logs: logs})
}

// HandleClearActivity handles DELETE /api/activity
func (h *Handler) HandleClearActivity(c *gin.Context) {
	n, err := h.store.ClearActivityLogs(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// HandleEnterGiveaway handles POST /api/giveaways/:code/enter
func (h *Handler) HandleEnterGiveaway(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "giveaway code is required"))
		return
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "giveaway_code", Value: code})
	attempt, err := h.entries.EnterSingle(ctx, code)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// HandleWebSocket handles GET /ws
func (h *Handler) HandleWebSocket(c *gin.Context) {
	h.ws.ServeWS(c.Writer, c.Request)
}
