package style

import (
	"fmt"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/pterm/pterm"
)

// FormatError renders err with the pterm error prefix, showing the error
// code when err carries one
func FormatError(err error) string {
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s %s %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error(),
		)
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// Bold renders s in bold with pterm
func Bold(s string) string {
	return pterm.Bold.Sprint(s)
}
