// Package sizes provides immutable value types for describing image
// dimensions: an Orientation tag (thumbnail/landscape/portrait), an ordered
// Scale tier (XXSM through XXLG), and a Size record combining both with
// explicit width and height.
//
// Every type carries two distinct parsing paths:
//   - lenient (OrientationFromStr, ScaleFromStr and the *FromPtr variants):
//     case-insensitive, never fails, unknown input maps to the default
//     variant. Intended for best-effort parsing of loosely-sourced strings.
//   - strict (ParseOrientation, ParseScale and the Unmarshal*/Scan methods):
//     case-insensitive, fails with an unknown-variant error. Intended for
//     wire payloads and stored records that must already conform.
//
// All types serialize to JSON and YAML and bind to SQL columns through the
// standard driver.Valuer/sql.Scanner interfaces: the enums as uppercase TEXT
// tokens, Size as a single JSON text column.
package sizes

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"
)

// codeUnknownVariant is the error code attached to strict-parse failures.
const codeUnknownVariant = "UNKNOWN_VARIANT"

// errUnknownVariant builds the strict-path parse error for an unrecognized
// enum token. The details always list every valid token.
func errUnknownVariant(kind, token string, valid []string) error {
	return errx.New(
		fmt.Sprintf("unknown %s variant: %q", kind, token),
		errx.WithCode(codeUnknownVariant),
		errx.WithDetails(errx.D{
			"token": token,
			"valid": strings.Join(valid, ", "),
		}),
	)
}
