package middleware

import (
	"github.com/gigsters-app/gigsters/internal/common"
	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/repositories"

	"github.com/labstack/echo/v4"
)

// ProfileIDParam is the path parameter naming the tenant profile
const ProfileIDParam = "profileId"

// ProfileGuard admits superadmins, holders of the manage:any permission, and the owner
// of the profile named in the path. Everyone else gets 403.
type ProfileGuard struct {
	profiles repositories.BusinessProfileRepository
	logger   *logger.Logger
}

func NewProfileGuard(profiles repositories.BusinessProfileRepository, log *logger.Logger) *ProfileGuard {
	return &ProfileGuard{profiles: profiles, logger: log}
}

func (g *ProfileGuard) RequireAccess() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			principal, ok := common.GetPrincipalFromContext(ctx)
			if !ok {
				return common.SendUnauthorizedError(c)
			}

			profileID, err := common.ValidateUUID(c.Param(ProfileIDParam), "profile_id")
			if err != nil {
				return common.SendValidationError(c, "profile_id", err.Error())
			}

			if principal.HasRole(common.RoleSuperadmin) || principal.HasPermission(common.PermissionManageAny) {
				return next(c)
			}

			ownerID, err := g.profiles.GetOwnerID(ctx, profileID)
			if err != nil {
				if ierr.IsNotFound(err) {
					// hide which profiles exist from non-owners
					return common.SendForbiddenError(c)
				}
				g.logger.Errorw("profile ownership lookup failed", "profile_id", profileID, "error", err)
				return common.SendError(c, err)
			}
			if ownerID != principal.UserID {
				g.logger.Infow("profile access denied", "profile_id", profileID, "user_id", principal.UserID)
				return common.SendForbiddenError(c)
			}
			return next(c)
		}
	}
}
