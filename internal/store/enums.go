package store

// Entry ENUMs
const (
	EntryTypeManual   = "manual"
	EntryTypeAuto     = "auto"
	EntryTypeWishlist = "wishlist"
)

const (
	EntryStatusSuccess = "success"
	EntryStatusFailed  = "failed"
	EntryStatusPending = "pending"
)

// Activity log ENUMs
const (
	ActivityLevelInfo    = "info"
	ActivityLevelWarning = "warning"
	ActivityLevelError   = "error"
)

const (
	ActivityEventScan     = "scan"
	ActivityEventEntry    = "entry"
	ActivityEventWin      = "win"
	ActivityEventSafety   = "safety"
	ActivityEventCycle    = "cycle"
	ActivityEventSession  = "session"
	ActivityEventSettings = "settings"
	ActivityEventError    = "error"
)

// Catalog ENUMs
const (
	GameTypeGame   = "game"
	GameTypeDLC    = "dlc"
	GameTypeBundle = "bundle"
)

// Settings ENUMs
const (
	// SafetyErrorPolicyMarkSafe marks a giveaway safe with a neutral score when the check errors.
	SafetyErrorPolicyMarkSafe = "mark_safe"
	// SafetyErrorPolicyRetry leaves it unchecked and moves it to the back of the queue.
	SafetyErrorPolicyRetry = "retry"
)

// Singleton row keys
const (
	SettingsID       = 1
	SchedulerStateID = 1
)

// NeutralSafetyScore is recorded when a check could not complete under the mark_safe policy.
const NeutralSafetyScore = 50
