package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DefaultProjectColor is used when a project is created without a color.
const DefaultProjectColor = "#FFFFFF"

// hexColorRe accepts 3- and 6-digit hex colors with a leading '#'.
var hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// IsValidHexColor reports whether s is a #RGB or #RRGGBB hex color.
func IsValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// Project groups tasks under a name and a display color.
type Project struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       string
	CreatedAt   time.Time
	Deleted     bool
}

// ProjectUpdateParams holds the mutable fields of a project.
type ProjectUpdateParams struct {
	Name        string
	Description *string
	Color       string
}
