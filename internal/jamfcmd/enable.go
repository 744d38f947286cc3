package jamfcmd

import (
	"context"
	"fmt"
	"io"

	"github.com/psumac/jamfcmd/internal/jamf"
	"github.com/sirupsen/logrus"
)

// MissingIDPolicy decides what happens when the device lookup does not
// produce a usable ID.
type MissingIDPolicy string

const (
	// MissingIDFail aborts before the command POST.
	MissingIDFail MissingIDPolicy = "fail"
	// MissingIDForward issues the POST with an empty target and lets
	// the server reject it, matching the shell tooling this replaces.
	MissingIDForward MissingIDPolicy = "forward"
)

func ParseMissingIDPolicy(s string) (MissingIDPolicy, error) {
	switch MissingIDPolicy(s) {
	case MissingIDFail, MissingIDForward:
		return MissingIDPolicy(s), nil
	default:
		return "", fmt.Errorf("invalid missing-id policy: %q (must be %q or %q)", s, MissingIDFail, MissingIDForward)
	}
}

// EnableRemoteDesktop resolves the device ID for serial and dispatches
// the EnableRemoteDesktop command against it. The two outcome lines
// written to out are fixed; policy logs on the server side match on
// them.
func EnableRemoteDesktop(ctx context.Context, log *logrus.Entry, client jamf.Client, serial string, policy MissingIDPolicy, out io.Writer) error {
	deviceID, err := client.LookupComputerID(ctx, serial)
	if err != nil {
		if policy != MissingIDForward {
			return fmt.Errorf("looking up device id: %w", err)
		}

		log.WithError(err).Warn("device lookup failed, forwarding empty device id")
		deviceID = ""
	}

	if err := client.SendComputerCommand(ctx, jamf.CommandEnableRemoteDesktop, deviceID); err != nil {
		fmt.Fprintf(out, "Screen Sharing was NOT enabled for device %s\n", serial)
		return fmt.Errorf("dispatching %s: %w", jamf.CommandEnableRemoteDesktop, err)
	}

	fmt.Fprintf(out, "Screen Sharing was enabled for device %s\n", serial)

	return nil
}
