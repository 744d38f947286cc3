package serial

import (
	"fmt"
	"os/exec"
)

func GetDeviceSerial() (string, error) {
	cmd := exec.Command("/usr/bin/sudo", "dmidecode", "-t", "system")
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("getting serial with dmidecode: %w: %v", err, string(b))
	}

	return parseDmidecodeOutput(b)
}
