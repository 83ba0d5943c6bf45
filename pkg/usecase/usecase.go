package usecase

import (
	"time"

	"github.com/secmon-lab/slackvoice/pkg/domain/interfaces"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
)

type UseCases struct {
	slack          interfaces.SlackActionClient
	statusTable    *model.StatusTable
	fallbackOffset model.UTCOffset
	location       *LocationResolver
	now            func() time.Time

	Actions *SlackActionUseCase
	Skill   *SkillUseCase
}

type Option func(*UseCases)

// WithStatusTable replaces the built-in status keyword table
func WithStatusTable(table *model.StatusTable) Option {
	return func(uc *UseCases) {
		uc.statusTable = table
	}
}

// WithFallbackOffset sets the UTC offset used when the device location cannot be looked up
func WithFallbackOffset(offset model.UTCOffset) Option {
	return func(uc *UseCases) {
		uc.fallbackOffset = offset
	}
}

// WithLocation enables per-request timezone resolution from the device address
func WithLocation(address interfaces.DeviceAddressClient, geo interfaces.GeoClient) Option {
	return func(uc *UseCases) {
		uc.location = NewLocationResolver(address, geo)
	}
}

// WithClock overrides the current time source
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(slack interfaces.SlackActionClient, opts ...Option) *UseCases {
	uc := &UseCases{
		slack:       slack,
		statusTable: model.NewStatusTable(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.location != nil {
		uc.location.now = uc.now
	}

	offsets := &offsetSource{
		location: uc.location,
		fallback: uc.fallbackOffset,
	}
	uc.Actions = newSlackActionUseCase(uc.slack, uc.statusTable, offsets, uc.now)
	uc.Skill = NewSkillUseCase(uc.Actions)

	return uc
}
