// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/domain/service"
	"agrinet/internal/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	followRepo  repository.FollowRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	FollowRepo  repository.FollowRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		followRepo:  params.FollowRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("user_id", userID))

	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := srv.followRepo.FindFollowerIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load followers")
	}

	following, err := srv.followRepo.FindFollowingIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load following")
	}

	profile.Followers = followers
	profile.Following = following

	return profile, nil
}

func (srv *profileService) EnsureProfile(ctx context.Context, input *usecase.EnsureProfileInput) (*entity.UserProfile, bool, error) {
	uid := strings.TrimSpace(input.UID)
	if uid == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("uid is required")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleFarmer
	}
	if !role.IsValid() {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role))
	}

	existing, err := srv.profileRepo.FindByUID(ctx, uid)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up profile")
	}

	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	now := time.Now()
	profile := &entity.UserProfile{
		ID:          id,
		UID:         uid,
		DisplayName: strings.TrimSpace(input.DisplayName),
		Username:    username,
		Email:       input.Email,
		PhotoURL:    input.PhotoURL,
		Role:        role,
		Region:      input.Region,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if role == entity.RoleExpert {
		profile.Specialization = input.Specialization
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		if !errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, false, errors.Wrap(err, "failed to create profile")
		}

		// Either a concurrent first sign-in won the insert or the username is taken.
		existing, findErr := srv.profileRepo.FindByUID(ctx, uid)
		if findErr != nil {
			return nil, false, domainerrors.ErrConflict.WithDetails("username is already taken")
		}

		return existing, false, nil
	}

	srv.log(ctx).Info("Profile created", slog.Any("user_id", profile.ID), slog.String("role", role.String()))

	return profile, true, nil
}

func (srv *profileService) ListFollowers(ctx context.Context, userID uuid.UUID) ([]entity.ProfileSummary, error) {
	if _, err := srv.findProfile(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := srv.followRepo.FindFollowerIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load followers")
	}

	return srv.summaries(ctx, ids)
}

func (srv *profileService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]entity.ProfileSummary, error) {
	if _, err := srv.findProfile(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := srv.followRepo.FindFollowingIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load following")
	}

	return srv.summaries(ctx, ids)
}

func (srv *profileService) ListExperts(ctx context.Context) ([]entity.ProfileSummary, error) {
	experts, err := srv.profileRepo.FindByRole(ctx, entity.RoleExpert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list experts")
	}

	result := make([]entity.ProfileSummary, 0, len(experts))
	for _, expert := range experts {
		result = append(result, expert.Summary())
	}

	return result, nil
}

func (srv *profileService) FollowQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.findProfile(ctx, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateFollowQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate follow QR code")
	}

	return png, nil
}

func (srv *profileService) findProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// summaries resolves ids to profile summaries, keeping the order of ids and skipping deleted profiles.
func (srv *profileService) summaries(ctx context.Context, ids []uuid.UUID) ([]entity.ProfileSummary, error) {
	if len(ids) == 0 {
		return []entity.ProfileSummary{}, nil
	}

	profiles, err := srv.profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}

	byID := make(map[uuid.UUID]*entity.UserProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	result := make([]entity.ProfileSummary, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			result = append(result, p.Summary())
		}
	}

	return result, nil
}
