package apierrors

import (
	"errors"

	campaignsprocessor "relance-server/internal/relance/campaigns/processor"
	"relance-server/internal/relance/lifecycle"
	messagetemplatesprocessor "relance-server/internal/relance/messagetemplates/processor"
	"relance-server/internal/relance/selection"
	settingsprocessor "relance-server/internal/relance/settings/processor"
	targetsprocessor "relance-server/internal/relance/targets/processor"
	"relance-server/internal/relance/templates"
	"relance-server/internal/relance/transport"
	webhooksprocessor "relance-server/internal/relance/webhooks/processor"
	"relance-server/internal/store"
)

type mapping struct {
	target error
	build  func(err error) *APIError
}

func fixed(e *APIError) func(error) *APIError {
	return func(error) *APIError { return e }
}

// withDetail keeps the wrapped message, which names the offending field
func withDetail(build func(message string) *APIError) func(error) *APIError {
	return func(err error) *APIError { return build(err.Error()) }
}

func badRequest(code string) func(string) *APIError {
	return func(message string) *APIError { return BadRequest(code, message) }
}

// Checked in order: specific processor errors before the generic ones they may wrap.
var mappings = []mapping{
	{campaignsprocessor.ErrCampaignNotFound, fixed(NotFound(CodeCampaignNotFound, "Campaign not found"))},
	{campaignsprocessor.ErrUnauthorized, fixed(Forbidden(CodeForbidden, "You do not have access to this campaign"))},
	{campaignsprocessor.ErrSubscriptionRequired, fixed(Forbidden(CodeSubscriptionRequired, "An active subscription is required to create campaigns"))},
	{campaignsprocessor.ErrTooManyTargets, withDetail(badRequest(CodeTooManyTargets))},
	{campaignsprocessor.ErrInvalidRunAfter, withDetail(badRequest(CodeInvalidRunAfter))},
	{campaignsprocessor.ErrInvalidSchedule, withDetail(badRequest(CodeInvalidSchedule))},
	{campaignsprocessor.ErrInvalidCustomMessage, withDetail(badRequest(CodeInvalidTemplate))},
	{campaignsprocessor.ErrCampaignNotEditable, fixed(Conflict(CodeCampaignLocked, "Campaign can no longer be edited"))},
	{campaignsprocessor.ErrCampaignNotDeletable, fixed(Conflict(CodeCampaignLocked, "Campaign cannot be deleted in its current status"))},
	{campaignsprocessor.ErrFilterLocked, fixed(Conflict(CodeCampaignLocked, "Target filter cannot change once the campaign has started"))},
	{lifecycle.ErrCampaignNotFound, fixed(NotFound(CodeCampaignNotFound, "Campaign not found"))},
	{lifecycle.ErrInvalidTransition, withDetail(func(message string) *APIError { return Conflict(CodeInvalidTransition, message) })},

	{targetsprocessor.ErrTargetNotFound, fixed(NotFound(CodeTargetNotFound, "Target not found"))},
	{targetsprocessor.ErrUnauthorized, fixed(Forbidden(CodeForbidden, "You do not have access to this target"))},
	{targetsprocessor.ErrInvalidTargetState, fixed(Conflict(CodeInvalidTargetState, "Target is not in a state that allows this action"))},

	{messagetemplatesprocessor.ErrTemplateNotFound, fixed(NotFound(CodeTemplateNotFound, "Message template not found"))},
	{messagetemplatesprocessor.ErrInvalidDay, fixed(BadRequest(CodeInvalidDay, "Day must be between 1 and 7"))},
	{messagetemplatesprocessor.ErrEmptyTemplate, fixed(BadRequest(CodeInvalidTemplate, "Message template needs at least one language"))},
	{messagetemplatesprocessor.ErrTestSendFailed, func(err error) *APIError {
		return ServiceUnavailable(CodeProviderError, "Failed to send test message", err)
	}},

	{settingsprocessor.ErrInvalidSettings, withDetail(badRequest(CodeInvalidSettings))},
	{webhooksprocessor.ErrMissingMessageID, fixed(BadRequest(CodeInvalidInput, "Callback has no message id"))},

	{selection.ErrInvalidFilter, withDetail(badRequest(CodeInvalidFilter))},
	{templates.ErrInvalidTemplate, withDetail(badRequest(CodeInvalidTemplate))},
	{templates.ErrNoTemplate, fixed(NotFound(CodeTemplateNotFound, "No message template for this day"))},
	{transport.ErrNoRecipient, fixed(BadRequest(CodeInvalidInput, "Recipient has no address for this channel"))},
	{transport.ErrUnsupportedChannel, fixed(BadRequest(CodeInvalidInput, "Unsupported channel"))},
	{store.ErrNotFound, fixed(NotFound(CodeNotFound, "Resource not found"))},
}

// MapError converts a domain error to the API error it is reported as.
// Unknown errors become a 500.
func MapError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.build(err)
		}
	}
	return InternalError(err)
}
