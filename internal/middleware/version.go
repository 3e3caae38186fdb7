package middleware

import (
	"net/http"
	"regexp"
	"sort"
	"time"

	"github.com/gigsters-app/gigsters/internal/common"
	ierr "github.com/gigsters-app/gigsters/internal/errors"

	"github.com/labstack/echo/v4"
)

// APIVersion describes one published API version
type APIVersion struct {
	Version    string     `json:"version"`
	Status     string     `json:"status"` // "active", "deprecated"
	SunsetDate *time.Time `json:"sunset_date,omitempty"`
	Message    string     `json:"message,omitempty"`
}

var versionPrefix = regexp.MustCompile(`^/(v[0-9]+)(/|$)`)

// VersionMiddleware tags responses with API version headers and rejects unknown versions
type VersionMiddleware struct {
	versions       map[string]APIVersion
	defaultVersion string
}

func NewVersionMiddleware() *VersionMiddleware {
	return &VersionMiddleware{
		versions: map[string]APIVersion{
			"v1": {Version: "v1", Status: "active", Message: "Current stable API version"},
		},
		defaultVersion: "v1",
	}
}

// VersionHeader sets X-API-Version and, for deprecated versions, the sunset headers
func (vm *VersionMiddleware) VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set("X-API-Version", version)
			if v, ok := vm.versions[version]; ok {
				if v.Status == "deprecated" {
					header.Set("X-API-Deprecated", "true")
					if v.SunsetDate != nil {
						header.Set("X-API-Sunset", v.SunsetDate.Format(time.RFC3339))
					}
				}
				if v.Message != "" {
					header.Set("X-API-Message", v.Message)
				}
			}
			return next(c)
		}
	}
}

// APIVersionResolver stores the requested version under "api_version" and answers 404 for
// versioned paths it does not serve
func (vm *VersionMiddleware) APIVersionResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			version := vm.defaultVersion
			if m := versionPrefix.FindStringSubmatch(c.Request().URL.Path); m != nil {
				if _, ok := vm.versions[m[1]]; !ok {
					return c.JSON(http.StatusNotFound, common.CreateErrorResponse(ierr.ErrCodeNotFound,
						"unsupported API version", map[string]any{"supported_versions": vm.SupportedVersions()}))
				}
				version = m[1]
			}
			c.Set("api_version", version)
			return next(c)
		}
	}
}

// SupportedVersions lists the versions still served, sorted
func (vm *VersionMiddleware) SupportedVersions() []string {
	versions := make([]string, 0, len(vm.versions))
	for name := range vm.versions {
		versions = append(versions, name)
	}
	sort.Strings(versions)
	return versions
}

// Deprecate marks version deprecated with an optional sunset date
func (vm *VersionMiddleware) Deprecate(version, message string, sunset *time.Time) {
	v := vm.versions[version]
	v.Version, v.Status, v.Message, v.SunsetDate = version, "deprecated", message, sunset
	vm.versions[version] = v
}
