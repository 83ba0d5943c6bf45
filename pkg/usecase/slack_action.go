package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/interfaces"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
)

// SlackActionUseCase validates spoken inputs and applies them to Slack.
// Each method is one action: the first failure ends it and nothing already applied
// is rolled back.
type SlackActionUseCase struct {
	slack       interfaces.SlackActionClient
	statusTable *model.StatusTable
	offsets     *offsetSource
	now         func() time.Time
}

// newSlackActionUseCase creates a SlackActionUseCase
func newSlackActionUseCase(slack interfaces.SlackActionClient, table *model.StatusTable, offsets *offsetSource, now func() time.Time) *SlackActionUseCase {
	return &SlackActionUseCase{
		slack:       slack,
		statusTable: table,
		offsets:     offsets,
		now:         now,
	}
}

// SetPresence sets the user's presence from the spoken presence value
func (uc *SlackActionUseCase) SetPresence(ctx context.Context, token model.SlackToken, value string) (types.Presence, error) {
	presence, err := types.ParsePresence(value)
	if err != nil {
		return "", goerr.Wrap(model.ErrInvalidPresence, "presence is empty", goerr.V("presence", value))
	}

	if err := uc.slack.SetPresence(ctx, presence, token); err != nil {
		return "", goerr.Wrap(err, "failed to set presence")
	}
	return presence, nil
}

// SetStatus resolves the spoken status phrase and sets it on the user's profile
func (uc *SlackActionUseCase) SetStatus(ctx context.Context, token model.SlackToken, phrase string) (model.StatusProfile, error) {
	profile := uc.statusTable.Resolve(phrase)
	if err := uc.slack.SetStatus(ctx, profile, token); err != nil {
		return model.StatusProfile{}, goerr.Wrap(err, "failed to set status")
	}
	return profile, nil
}

// ClearStatus clears the user's status. Slack keeps a snooze running when the status is
// cleared, so an active snooze is ended explicitly afterwards.
func (uc *SlackActionUseCase) ClearStatus(ctx context.Context, token model.SlackToken) error {
	if err := uc.slack.SetStatus(ctx, uc.statusTable.Resolve(""), token); err != nil {
		return goerr.Wrap(err, "failed to clear status")
	}

	active, err := uc.slack.IsSnoozeActive(ctx, token)
	if err != nil {
		return goerr.Wrap(err, "failed to check snooze")
	}
	if !active {
		return nil
	}

	logging.From(ctx).Debug("ending active snooze after clearing status")
	if err := uc.slack.EndSnooze(ctx, token); err != nil {
		return goerr.Wrap(err, "failed to end snooze")
	}
	return nil
}

// SnoozeRequest is the spoken input of a snooze action. Duration is an ISO-8601
// duration slot and Time a time slot; both may be empty.
type SnoozeRequest struct {
	Duration string
	Time     string
	Device   *model.Device
}

// SnoozeResult describes the snooze that was set
type SnoozeResult struct {
	Minutes int
	// Until is the HH:mm clock time the snooze was requested until, if any
	Until string
}

// Snooze turns on DND. An explicit duration wins over a target time; with neither the
// default length is used.
func (uc *SlackActionUseCase) Snooze(ctx context.Context, token model.SlackToken, req SnoozeRequest) (*SnoozeResult, error) {
	result, err := uc.snoozeLength(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := uc.slack.SetSnooze(ctx, result.Minutes, token); err != nil {
		return nil, goerr.Wrap(err, "failed to set snooze")
	}
	return result, nil
}

func (uc *SlackActionUseCase) snoozeLength(ctx context.Context, req SnoozeRequest) (*SnoozeResult, error) {
	switch {
	case req.Duration != "":
		d, err := types.ParseSlotDuration(req.Duration)
		if err != nil {
			return nil, goerr.Wrap(model.ErrInvalidDuration, "unparsable duration",
				goerr.V(model.DurationKey, req.Duration), goerr.V("cause", err.Error()))
		}
		minutes, err := model.DurationMinutes(d)
		if err != nil {
			return nil, err
		}
		return &SnoozeResult{Minutes: minutes}, nil

	case req.Time != "":
		clock := types.NormalizeTime(req.Time)
		if err := model.ValidateClock(clock); err != nil {
			return nil, err
		}
		offset, err := uc.offsets.resolve(ctx, req.Device)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve UTC offset")
		}
		minutes, err := model.MinutesUntil(clock, offset, uc.now().UTC())
		if err != nil {
			return nil, err
		}
		return &SnoozeResult{Minutes: minutes, Until: clock}, nil

	default:
		return &SnoozeResult{Minutes: model.DefaultSnoozeMinutes}, nil
	}
}

// EndSnooze ends the user's snooze
func (uc *SlackActionUseCase) EndSnooze(ctx context.Context, token model.SlackToken) error {
	if err := uc.slack.EndSnooze(ctx, token); err != nil {
		return goerr.Wrap(err, "failed to end snooze")
	}
	return nil
}
