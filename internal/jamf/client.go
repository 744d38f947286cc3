package jamf

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// CommandEnableRemoteDesktop turns on Screen Sharing for a computer.
const CommandEnableRemoteDesktop = "EnableRemoteDesktop"

const requestTimeout = 10 * time.Second

type client struct {
	HTTPClient *http.Client
	BaseURL    string
	log        *logrus.Entry
}

type Client interface {
	LookupComputerID(ctx context.Context, serial string) (string, error)
	SendComputerCommand(ctx context.Context, command, deviceID string) error
}

func New(log *logrus.Entry, baseURL, username, password string) Client {
	return &client{
		HTTPClient: &http.Client{
			Transport: Transport{Username: username, Password: password},
		},
		BaseURL: baseURL,
		log:     log,
	}
}

// computerRecord mirrors the part of the Classic API computer
// representation we read. The record carries far more (hardware,
// location, extension attributes); everything else is skipped by the
// decoder.
type computerRecord struct {
	General struct {
		ID int `xml:"id"`
	} `xml:"general"`
}

// LookupComputerID resolves a hardware serial number to the server's
// internal device ID.
func (c *client) LookupComputerID(ctx context.Context, serial string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/JSSResource/computers/serialnumber/%s", c.BaseURL, serial)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating lookup request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("getting computer record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("looking up serial %s: unexpected status code: %d", serial, resp.StatusCode)
	}

	var record computerRecord
	if err := xml.NewDecoder(resp.Body).Decode(&record); err != nil {
		return "", fmt.Errorf("decoding computer record: %w", err)
	}

	if record.General.ID == 0 {
		return "", fmt.Errorf("computer record for serial %s has no device id", serial)
	}

	c.log.Debugf("resolved serial %s to device id %d", serial, record.General.ID)

	return strconv.Itoa(record.General.ID), nil
}

// SendComputerCommand dispatches a remote-management command against a
// device ID. The Classic API takes the command and target in the URL;
// the POST body stays empty.
func (c *client) SendComputerCommand(ctx context.Context, command, deviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/JSSResource/computercommands/command/%s/id/%s", c.BaseURL, command, deviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("creating command request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("dispatching %s: %w", command, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("dispatching %s to device %s: unexpected status code: %d", command, deviceID, resp.StatusCode)
	}

	c.log.Debugf("dispatched %s to device %s", command, deviceID)

	return nil
}
