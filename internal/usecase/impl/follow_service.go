package impl

import (
	"context"
	"log/slog"

	deliverycontext "agrinet/internal/delivery/context"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/domain/service"
	"agrinet/internal/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	opFollow   = "follow"
	opUnfollow = "unfollow"
)

type followService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// FollowServiceParams holds dependencies for FollowService, injected by Fx.
type FollowServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewFollowService creates a new follow service instance.
func NewFollowService(params FollowServiceParams) usecase.FollowUsecase {
	return &followService{
		txManager: params.TxManager,
		qrService: params.QRService,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *followService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *followService) Follow(ctx context.Context, actorID, targetID uuid.UUID) (*usecase.FollowResult, error) {
	return srv.apply(ctx, opFollow, actorID, targetID)
}

func (srv *followService) Unfollow(ctx context.Context, actorID, targetID uuid.UUID) (*usecase.FollowResult, error) {
	return srv.apply(ctx, opUnfollow, actorID, targetID)
}

func (srv *followService) FollowByQR(ctx context.Context, actorID uuid.UUID, qrData string) (*usecase.FollowResult, error) {
	targetID, err := srv.qrService.ParseFollowQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return srv.apply(ctx, opFollow, actorID, targetID)
}

// apply writes or removes the edge and both counters in one transaction.
// Both profile rows are locked first, so concurrent requests on the same pair serialise.
func (srv *followService) apply(ctx context.Context, op string, actorID, targetID uuid.UUID) (*usecase.FollowResult, error) {
	if actorID == targetID {
		return nil, domainerrors.ErrSelfFollow
	}

	var changed bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		followRepo := repoFactory.FollowRepo()

		if err := profileRepo.LockByIDs(ctx, []uuid.UUID{actorID, targetID}); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "follow target or actor not found")
			}

			return errors.Wrap(err, "failed to lock profiles")
		}

		var err error
		delta := 1
		if op == opFollow {
			changed, err = followRepo.Create(ctx, actorID, targetID)
		} else {
			changed, err = followRepo.Delete(ctx, actorID, targetID)
			delta = -1
		}
		if err != nil {
			return errors.Wrapf(err, "failed to %s", op)
		}

		if !changed {
			return nil
		}

		if err := profileRepo.AdjustFollowCounts(ctx, actorID, targetID, delta); err != nil {
			return errors.Wrap(err, "failed to adjust follow counts")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change follow relation",
			slog.String("op", op), slog.Any("actor_id", actorID), slog.Any("target_id", targetID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.FollowChanged(op, changed)
	srv.log(ctx).Info("Follow relation updated",
		slog.String("op", op), slog.Any("actor_id", actorID), slog.Any("target_id", targetID), slog.Bool("changed", changed))

	return &usecase.FollowResult{
		TargetID:  targetID,
		Following: op == opFollow,
		Changed:   changed,
	}, nil
}
