package commands

import (
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/ga-sheets/ga-app-sheets/analytics"
)

// Hint suggests a remedy for the errors a user can fix without changing the spreadsheet,
// or returns "" if there is nothing useful to add.
func Hint(err error) string {
	var rerr *oauth2.RetrieveError

	switch {
	case err == nil:
		return ""

	case analytics.IsUnauthorized(err), errors.As(err, &rerr):
		return fmt.Sprintf("the authorisation tokens are invalid or have been revoked - run '%v authorise' to renew them", APP)

	case analytics.IsForbidden(err):
		return "the authorised account does not have edit access to the spreadsheet or the Analytics property"

	case analytics.IsRateLimited(err):
		return "API quota exceeded - retry later or increase the ua-modify --delay"

	case analytics.IsNotFound(err):
		return "check the spreadsheet URL and the account/property IDs in the worksheet"
	}

	return ""
}
