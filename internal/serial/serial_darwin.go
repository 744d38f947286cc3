package serial

import (
	"fmt"
	"os/exec"
)

func GetDeviceSerial() (string, error) {
	cmd := exec.Command("/usr/sbin/ioreg", "-rd1", "-c", "IOPlatformExpertDevice")
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("getting serial with ioreg: %w: %v", err, string(b))
	}

	return parseIoregOutput(b)
}
