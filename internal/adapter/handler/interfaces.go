package handler

import (
	"context"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/locating"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type LocatingService interface {
	Mount(ctx context.Context, input locating.MountInput) (locating.State, error)
	State(ctx context.Context, sessionID string) (locating.State, error)
	Unmount(ctx context.Context, sessionID string) error
	ReportPosition(ctx context.Context, report locating.PositionReport) error
	AcceptMockLocation(ctx context.Context, sessionID string) (valueobject.Location, error)
	DeclineMockLocation(ctx context.Context, sessionID string) error
	SetMockLocationEnabled(ctx context.Context, session *entity.MapSession, enabled bool) error
	MockLocationEnabled(ctx context.Context, session *entity.MapSession) (bool, error)
}
