package apierrors

import (
	"errors"

	"autojoin-server/internal/catalog"
	"autojoin-server/internal/clients/steamgifts"
	entriesProcessor "autojoin-server/internal/entries/processor"
	"autojoin-server/internal/jobs/scheduler"
	"autojoin-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// An error that already is an APIError is returned as-is. Unknown errors become a
// sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *store.ValidationError
	if errors.As(err, &validationErr) {
		return BadRequest(CodeValidationFailed, validationErr.Error())
	}

	switch {
	// Map entry processor errors
	case errors.Is(err, entriesProcessor.ErrGiveawayNotFound):
		return NotFound(CodeGiveawayNotFound, "Giveaway not found")

	case errors.Is(err, entriesProcessor.ErrAlreadyEntered):
		return Conflict(CodeAlreadyEntered, "Giveaway already entered")

	case errors.Is(err, entriesProcessor.ErrGiveawayEnded):
		return Conflict(CodeGiveawayEnded, "Giveaway has ended")

	// Map scheduler errors
	case errors.Is(err, scheduler.ErrJobNotFound):
		return NotFound(CodeJobNotFound, "Job not found")

	case errors.Is(err, scheduler.ErrJobRunning):
		return Conflict(CodeJobRunning, "Job is already running")

	case errors.Is(err, scheduler.ErrInvalidTrigger):
		return BadRequest(CodeInvalidTrigger, "Invalid job trigger")

	// Map site client errors
	case errors.Is(err, steamgifts.ErrNotConfigured):
		return BadRequest(CodeNotConfigured, "Site session is not configured")

	case errors.Is(err, steamgifts.ErrAuthExpired):
		return Unauthorized("Site session has expired. Update it in settings.")

	case errors.Is(err, steamgifts.ErrRateLimited):
		return TooManyRequests(CodeSiteRateLimited, "The site is rate limiting requests. Please try again later.")

	case errors.Is(err, steamgifts.ErrSiteUnavailable):
		return BadGateway(CodeSiteUnavailable, "The site is temporarily unavailable. Please try again later.", err)

	// Map store and catalog errors
	case errors.Is(err, catalog.ErrNotFound):
		return NotFound(CodeNotFound, "Game not found")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
