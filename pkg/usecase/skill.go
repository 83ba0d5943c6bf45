package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/model/alexa"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
	"github.com/secmon-lab/slackvoice/pkg/utils/errutil"
	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
)

type intentHandler func(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error)

// SkillUseCase dispatches voice requests to actions and renders their outcome as speech.
// Handle never fails: every error becomes a spoken reply.
type SkillUseCase struct {
	actions  *SlackActionUseCase
	handlers map[types.IntentName]intentHandler
}

// NewSkillUseCase creates a SkillUseCase with the fixed intent table
func NewSkillUseCase(actions *SlackActionUseCase) *SkillUseCase {
	uc := &SkillUseCase{actions: actions}
	uc.handlers = map[types.IntentName]intentHandler{
		types.IntentHelp:   uc.help,
		types.IntentStop:   uc.okay,
		types.IntentCancel: uc.okay,

		types.IntentSlackAway:        withToken(uc.setPresence),
		types.IntentSlackStatus:      withToken(uc.setStatus),
		types.IntentSlackClearStatus: withToken(uc.clearStatus),
		types.IntentSlackSnooze:      withToken(uc.snooze),
		types.IntentSlackEndSnooze:   withToken(uc.endSnooze),
	}
	return uc
}

// Handle processes one voice request
func (uc *SkillUseCase) Handle(ctx context.Context, req *alexa.RequestEnvelope) (resp *alexa.ResponseEnvelope) {
	logger := logging.From(ctx).With(
		"action_id", uuid.NewString(),
		"request_type", req.Request.Type,
		"intent", req.IntentName(),
	)
	ctx = logging.With(ctx, logger)

	defer func() {
		if r := recover(); r != nil {
			err := goerr.New("panic in intent handler", goerr.V("panic", fmt.Sprint(r)))
			_ = errutil.Handle(ctx, err, "intent handler panicked")
			resp = alexa.Tell(speechUnknownError)
		}
	}()

	switch req.Request.Type {
	case types.RequestTypeLaunch:
		return uc.launch(req)

	case types.RequestTypeSessionEnded:
		logger.Info("session ended", "reason", req.Request.Reason)
		return alexa.Empty()

	case types.RequestTypeIntent:
		handler, ok := uc.handlers[req.IntentName()]
		if !ok {
			logger.Warn("unhandled intent")
			return alexa.Ask(speechUnhandled, speechReprompt)
		}

		resp, err := handler(ctx, req)
		if err != nil {
			if isExpected(err) {
				logger.Warn("action failed", "error", err.Error())
			} else {
				_ = errutil.Handle(ctx, err, "action failed")
			}
			return errorResponse(err)
		}
		logger.Info("action succeeded")
		return resp

	default:
		logger.Warn("unhandled request type")
		return alexa.Ask(speechUnhandled, speechReprompt)
	}
}

func (uc *SkillUseCase) launch(req *alexa.RequestEnvelope) *alexa.ResponseEnvelope {
	if req.AccessToken() == "" {
		return alexa.TellWithLinkAccountCard(speechLinkAccount)
	}
	return alexa.Ask(speechLaunch, speechReprompt)
}

func (uc *SkillUseCase) help(_ context.Context, _ *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	return alexa.AskSSML(helpSSML, speechReprompt), nil
}

func (uc *SkillUseCase) okay(_ context.Context, _ *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	return alexa.Tell(speechOkay), nil
}

type tokenHandler func(ctx context.Context, req *alexa.RequestEnvelope, token model.SlackToken) (*alexa.ResponseEnvelope, error)

// withToken rejects requests without a linked Slack account before the action runs
func withToken(h tokenHandler) intentHandler {
	return func(ctx context.Context, req *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
		token := req.AccessToken()
		if token == "" {
			return nil, goerr.Wrap(model.ErrMissingCredential, "no access token in request")
		}
		return h(ctx, req, token)
	}
}

func (uc *SkillUseCase) setPresence(ctx context.Context, req *alexa.RequestEnvelope, token model.SlackToken) (*alexa.ResponseEnvelope, error) {
	presence, err := uc.actions.SetPresence(ctx, token, req.SlotValue(types.SlotAwayStatus))
	if err != nil {
		return nil, err
	}
	return alexa.Tell(presenceSpeech(presence.String())), nil
}

func (uc *SkillUseCase) setStatus(ctx context.Context, req *alexa.RequestEnvelope, token model.SlackToken) (*alexa.ResponseEnvelope, error) {
	phrase := req.SlotValue(types.SlotStatus)
	if phrase == "" {
		return alexa.Ask(speechAskStatus, speechReprompt), nil
	}

	if _, err := uc.actions.SetStatus(ctx, token, phrase); err != nil {
		return nil, err
	}
	return alexa.Tell(statusSpeech(phrase)), nil
}

func (uc *SkillUseCase) clearStatus(ctx context.Context, _ *alexa.RequestEnvelope, token model.SlackToken) (*alexa.ResponseEnvelope, error) {
	if err := uc.actions.ClearStatus(ctx, token); err != nil {
		return nil, err
	}
	return alexa.Tell(speechCleared), nil
}

func (uc *SkillUseCase) snooze(ctx context.Context, req *alexa.RequestEnvelope, token model.SlackToken) (*alexa.ResponseEnvelope, error) {
	result, err := uc.actions.Snooze(ctx, token, SnoozeRequest{
		Duration: req.SlotValue(types.SlotDuration),
		Time:     req.SlotValue(types.SlotTime),
		Device:   req.Device(),
	})
	if err != nil {
		return nil, err
	}
	return alexa.Tell(snoozeSpeech(result)), nil
}

func (uc *SkillUseCase) endSnooze(ctx context.Context, _ *alexa.RequestEnvelope, token model.SlackToken) (*alexa.ResponseEnvelope, error) {
	if err := uc.actions.EndSnooze(ctx, token); err != nil {
		return nil, err
	}
	return alexa.Tell(speechSnoozeEnded), nil
}
