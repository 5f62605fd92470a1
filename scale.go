package sizes

import (
	"cmp"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Scale is a discrete image size tier.
//
// The zero value is XXSM. Declaration order is meaningful: tiers compare
// with the usual operators, XXSM smallest and XXLG largest.
type Scale uint8

const (
	// XXSM is extra extra small.
	XXSM Scale = iota
	// XSM is extra small.
	XSM
	// SM is small.
	SM
	// MD is medium.
	MD
	// LG is large.
	LG
	// XLG is extra large.
	XLG
	// XXLG is extra extra large.
	XXLG
)

// Scales returns all scales in ascending tier order.
func Scales() []Scale {
	return []Scale{XXSM, XSM, SM, MD, LG, XLG, XXLG}
}

// ScaleFromStr leniently converts a string into a Scale.
// Matching is case-insensitive and never fails: any unrecognized input
// maps to XXSM.
func ScaleFromStr(s string) Scale {
	switch strings.ToLower(s) {
	case "xsm":
		return XSM
	case "sm":
		return SM
	case "md":
		return MD
	case "lg":
		return LG
	case "xlg":
		return XLG
	case "xxlg":
		return XXLG
	default:
		return XXSM
	}
}

// ScaleFromPtr is the lenient conversion for optional strings.
// A nil pointer maps to XXSM.
func ScaleFromPtr(s *string) Scale {
	if s == nil {
		return XXSM
	}
	return ScaleFromStr(*s)
}

// ParseScale strictly converts a string into a Scale.
// Matching is case-insensitive; unlike ScaleFromStr, an unrecognized token
// is an error rather than a silent default.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(s) {
	case "xxsm":
		return XXSM, nil
	case "xsm":
		return XSM, nil
	case "sm":
		return SM, nil
	case "md":
		return MD, nil
	case "lg":
		return LG, nil
	case "xlg":
		return XLG, nil
	case "xxlg":
		return XXLG, nil
	default:
		return XXSM, errUnknownVariant("scale", s, scaleTokens())
	}
}

func scaleTokens() []string {
	return lo.Map(Scales(), func(s Scale, _ int) string {
		return s.String()
	})
}

// String returns the fixed uppercase token for the scale.
func (s Scale) String() string {
	switch s {
	case XSM:
		return "XSM"
	case SM:
		return "SM"
	case MD:
		return "MD"
	case LG:
		return "LG"
	case XLG:
		return "XLG"
	case XXLG:
		return "XXLG"
	default:
		return "XXSM"
	}
}

// Compare returns -1 if s is a smaller tier than other, 0 if equal,
// and +1 if larger.
func (s Scale) Compare(other Scale) int {
	return cmp.Compare(s, other)
}

// Less reports whether s is a smaller tier than other.
func (s Scale) Less(other Scale) bool {
	return s < other
}

// ClampScale clamps s into the inclusive tier range [min, max].
func ClampScale(s, min, max Scale) Scale {
	if s < min {
		return min
	}
	if s > max {
		return max
	}
	return s
}

// MarshalText implements encoding.TextMarshaler, emitting the uppercase
// token. JSON serialization rides on this.
func (s Scale) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the strict
// parsing path.
func (s *Scale) UnmarshalText(text []byte) error {
	parsed, err := ParseScale(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the uppercase token.
func (s Scale) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using the strict parsing path.
func (s *Scale) UnmarshalYAML(node *yaml.Node) error {
	var token string
	if err := node.Decode(&token); err != nil {
		return errx.Wrap(err)
	}
	parsed, err := ParseScale(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer. The scale is stored as its uppercase
// token in a TEXT column.
func (s Scale) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner. Stored tokens are expected to already
// conform, so an unknown token is an error rather than a default.
func (s *Scale) Scan(src any) error {
	token, err := cast.ToStringE(src)
	if err != nil {
		return errx.Wrap(err, errx.WithDetails(errx.D{
			"src_type": fmt.Sprintf("%T", src),
		}))
	}
	parsed, err := ParseScale(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
