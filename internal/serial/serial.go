package serial

import (
	"bytes"
	"fmt"
	"regexp"
)

// Parsing lives here rather than in the platform files so it can be
// tested on any platform.

var (
	ioregSerialPattern     = regexp.MustCompile(`"IOPlatformSerialNumber" = "([^"]+)"`)
	dmidecodeSerialPattern = regexp.MustCompile(`Serial Number: (.+)\n`)
)

func parseIoregOutput(b []byte) (string, error) {
	matches := ioregSerialPattern.FindSubmatch(b)
	if len(matches) != 2 {
		return "", fmt.Errorf("unable to extract serial from output: %v", string(b))
	}

	return string(matches[1]), nil
}

func parseDmidecodeOutput(b []byte) (string, error) {
	matches := dmidecodeSerialPattern.FindSubmatch(b)
	if len(matches) != 2 {
		return "", fmt.Errorf("unable to extract serial from output: %v", string(b))
	}

	return string(matches[1]), nil
}

func parseWmicOutput(b []byte) (string, error) {
	lines := bytes.Split(b, []byte("\r\r\n"))
	if len(lines) < 2 {
		return "", fmt.Errorf("unable to extract serial from output: %v", string(b))
	}

	serial := bytes.TrimSpace(lines[1])
	if len(serial) == 0 {
		return "", fmt.Errorf("unable to extract serial from output: %v", string(b))
	}

	return string(serial), nil
}
