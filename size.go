package sizes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/code19m/errx"
	"github.com/spf13/cast"
)

// Size describes image dimensions: a scale tier, an orientation tag and the
// explicit width and height in pixels.
//
// The orientation tag is whatever the constructor asserted; width and height
// are never validated against it (a Landscape taller than it is wide is
// accepted as-is).
type Size struct {
	Scale       Scale       `json:"scale"       yaml:"scale"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	Width       int         `json:"width"       yaml:"width"`
	Height      int         `json:"height"      yaml:"height"`
}

// NewThumbnail returns a square Size with the given side length and scale.
func NewThumbnail(side int, scale Scale) Size {
	return Size{
		Scale:       scale,
		Orientation: Thumbnail,
		Width:       side,
		Height:      side,
	}
}

// NewLandscape returns a landscape-tagged Size with the given dimensions
// and scale.
func NewLandscape(width, height int, scale Scale) Size {
	return Size{
		Scale:       scale,
		Orientation: Landscape,
		Width:       width,
		Height:      height,
	}
}

// NewPortrait returns a portrait-tagged Size with the given dimensions
// and scale.
func NewPortrait(width, height int, scale Scale) Size {
	return Size{
		Scale:       scale,
		Orientation: Portrait,
		Width:       width,
		Height:      height,
	}
}

// IsEmpty reports whether s is the zero value {XXSM, Thumbnail, 0, 0}.
func (s Size) IsEmpty() bool {
	return s == Size{}
}

// SortByScale stably sorts sizes in place from the smallest tier to
// the largest.
func SortByScale(sizes []Size) {
	slices.SortStableFunc(sizes, func(a, b Size) int {
		return a.Scale.Compare(b.Scale)
	})
}

// Value implements driver.Valuer. The whole record is stored as a single
// JSON text column; no format marker is ever written.
func (s Size) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner. Rows written by an earlier format may carry
// a single leading control byte (the jsonb version marker) in front of the
// JSON payload; it is stripped before parsing.
func (s *Size) Scan(src any) error {
	raw, err := cast.ToStringE(src)
	if err != nil {
		return errx.Wrap(err, errx.WithDetails(errx.D{
			"src_type": fmt.Sprintf("%T", src),
		}))
	}

	data := []byte(raw)
	if len(data) > 0 && data[0] < 0x20 {
		data = data[1:]
	}

	var decoded Size
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errx.Wrap(err, errx.WithDetails(errx.D{
			"payload": raw,
		}))
	}

	*s = decoded
	return nil
}
