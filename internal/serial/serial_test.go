package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ioregOutput = `+-o J316sAP  <class IOPlatformExpertDevice, id 0x100000110, registered, matched, active, busy 0 (13131 ms), retain 38>
    {
      "IOPlatformUUID" = "8A3348C1-0000-0000-0000-8C8590B5C2B4"
      "serial-number" = <433032414243313233585a5a00000000>
      "IOPlatformSerialNumber" = "C02ABC123XYZ"
      "model" = <"MacBookPro18,3">
    }
`

const dmidecodeOutput = `# dmidecode 3.3
Getting SMBIOS data from sysfs.
SMBIOS 3.2.0 present.

Handle 0x0001, DMI type 1, 27 bytes
System Information
	Manufacturer: LENOVO
	Product Name: 20UD0000MX
	Serial Number: PF2ABC12
	UUID: 01234567-89ab-cdef-0123-456789abcdef
`

func TestParseIoregOutput(t *testing.T) {
	serial, err := parseIoregOutput([]byte(ioregOutput))
	require.NoError(t, err)
	assert.Equal(t, "C02ABC123XYZ", serial)
}

func TestParseIoregOutputNoMatch(t *testing.T) {
	_, err := parseIoregOutput([]byte("+-o J316sAP  <class IOPlatformExpertDevice>\n"))
	assert.Error(t, err)
}

func TestParseDmidecodeOutput(t *testing.T) {
	serial, err := parseDmidecodeOutput([]byte(dmidecodeOutput))
	require.NoError(t, err)
	assert.Equal(t, "PF2ABC12", serial)
}

func TestParseDmidecodeOutputNoMatch(t *testing.T) {
	_, err := parseDmidecodeOutput([]byte("System Information\n"))
	assert.Error(t, err)
}

func TestParseWmicOutput(t *testing.T) {
	serial, err := parseWmicOutput([]byte("SerialNumber  \r\r\nPF2ABC12  \r\r\n\r\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "PF2ABC12", serial)
}

func TestParseWmicOutputEmpty(t *testing.T) {
	_, err := parseWmicOutput([]byte("SerialNumber"))
	assert.Error(t, err)
}
