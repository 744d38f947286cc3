package serial

import (
	"fmt"
	"os/exec"
)

func GetDeviceSerial() (string, error) {
	cmd := exec.Command("wmic", "bios", "get", "serialnumber")
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("getting serial with wmic: %w: %v", err, string(b))
	}

	return parseWmicOutput(b)
}
