package sizes

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Orientation is the aspect tag of an image size.
//
// The zero value is Thumbnail (square). The tag is caller-asserted: nothing
// checks it against the actual width and height.
type Orientation uint8

const (
	// Thumbnail is a square aspect ratio.
	Thumbnail Orientation = iota
	// Landscape is wider than it is tall.
	Landscape
	// Portrait is taller than it is wide.
	Portrait
)

// Orientations returns all orientations in declaration order.
func Orientations() []Orientation {
	return []Orientation{Thumbnail, Landscape, Portrait}
}

// OrientationFromStr leniently converts a string into an Orientation.
// Matching is case-insensitive and never fails: anything that is not
// "landscape" or "portrait" (including "thumbnail" itself) maps to Thumbnail.
func OrientationFromStr(s string) Orientation {
	switch strings.ToLower(s) {
	case "landscape":
		return Landscape
	case "portrait":
		return Portrait
	default:
		return Thumbnail
	}
}

// OrientationFromPtr is the lenient conversion for optional strings.
// A nil pointer maps to Thumbnail.
func OrientationFromPtr(s *string) Orientation {
	if s == nil {
		return Thumbnail
	}
	return OrientationFromStr(*s)
}

// ParseOrientation strictly converts a string into an Orientation.
// Matching is case-insensitive; unlike OrientationFromStr, an unrecognized
// token is an error rather than a silent default.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "thumbnail":
		return Thumbnail, nil
	case "landscape":
		return Landscape, nil
	case "portrait":
		return Portrait, nil
	default:
		return Thumbnail, errUnknownVariant("orientation", s, orientationTokens())
	}
}

func orientationTokens() []string {
	return lo.Map(Orientations(), func(o Orientation, _ int) string {
		return o.String()
	})
}

// String returns the fixed uppercase token for the orientation.
func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "LANDSCAPE"
	case Portrait:
		return "PORTRAIT"
	default:
		return "THUMBNAIL"
	}
}

// MarshalText implements encoding.TextMarshaler, emitting the uppercase
// token. JSON serialization rides on this.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the strict
// parsing path.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the uppercase token.
func (o Orientation) MarshalYAML() (any, error) {
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using the strict parsing path.
func (o *Orientation) UnmarshalYAML(node *yaml.Node) error {
	var token string
	if err := node.Decode(&token); err != nil {
		return errx.Wrap(err)
	}
	parsed, err := ParseOrientation(token)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Value implements driver.Valuer. The orientation is stored as its
// uppercase token in a TEXT column.
func (o Orientation) Value() (driver.Value, error) {
	return o.String(), nil
}

// Scan implements sql.Scanner. Stored tokens are expected to already
// conform, so an unknown token is an error rather than a default.
func (o *Orientation) Scan(src any) error {
	token, err := cast.ToStringE(src)
	if err != nil {
		return errx.Wrap(err, errx.WithDetails(errx.D{
			"src_type": fmt.Sprintf("%T", src),
		}))
	}
	parsed, err := ParseOrientation(token)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
