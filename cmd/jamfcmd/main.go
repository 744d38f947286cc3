package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/psumac/jamfcmd/internal/config"
	"github.com/psumac/jamfcmd/internal/jamf"
	"github.com/psumac/jamfcmd/internal/jamfcmd"
	"github.com/psumac/jamfcmd/internal/logger"
	"github.com/psumac/jamfcmd/internal/serial"
	"github.com/psumac/jamfcmd/internal/version"
)

const (
	flagURL         = "url"
	flagUsername    = "username"
	flagPassword    = "password"
	flagSerial      = "serial"
	flagPlist       = "plist"
	flagLogLevel    = "log-level"
	flagOnMissingID = "on-missing-id"
)

func main() {
	cfg := config.DefaultConfig()

	app := &cli.App{
		Name:    "jamfcmd",
		Usage:   "issue remote-management commands for this device against Jamf Pro",
		Version: fmt.Sprintf("%s\nrevision: %s", version.Version, version.Revision),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagURL,
				Usage:   "Jamf Pro server base URL (defaults to the enrolled server from the agent preferences)",
				EnvVars: []string{"JAMF_API_URL"},
			},
			&cli.StringFlag{
				Name:    flagUsername,
				Usage:   "Jamf Pro API username",
				EnvVars: []string{"JAMF_API_USERNAME"},
			},
			&cli.StringFlag{
				Name:    flagPassword,
				Usage:   "Jamf Pro API password",
				EnvVars: []string{"JAMF_API_PASSWORD"},
			},
			&cli.StringFlag{
				Name:  flagPlist,
				Value: cfg.PlistPath,
				Usage: "path to the management agent preference plist",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: cfg.LogLevel,
				Usage: "which log level to output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "enable-remote-desktop",
				Aliases: []string{"erd"},
				Usage:   "enable Screen Sharing for this device",
				Flags: []cli.Flag{
					serialFlag(),
					&cli.StringFlag{
						Name:  flagOnMissingID,
						Value: cfg.OnMissingID,
						Usage: "what to do when no device id resolves: fail or forward",
					},
				},
				Action: enableRemoteDesktop,
			},
			{
				Name:   "lookup",
				Usage:  "print the device id for a serial number",
				Flags:  []cli.Flag{serialFlag()},
				Action: lookupDevice,
			},
			{
				Name:   "serial",
				Usage:  "print this machine's hardware serial number",
				Action: printSerial,
			},
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func serialFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  flagSerial,
		Usage: "serial number to target instead of this machine's",
	}
}

// resolveConfig gathers everything the pipeline needs from flags and,
// when no server URL was given, the management agent's preferences.
// Nothing downstream reads ambient state.
func resolveConfig(c *cli.Context) (config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.BaseURL = c.String(flagURL)
	cfg.Username = c.String(flagUsername)
	cfg.Password = c.String(flagPassword)
	cfg.Serial = c.String(flagSerial)
	cfg.PlistPath = c.String(flagPlist)
	cfg.LogLevel = c.String(flagLogLevel)
	if s := c.String(flagOnMissingID); s != "" {
		cfg.OnMissingID = s
	}

	if cfg.BaseURL == "" {
		url, err := config.ReadJSSURL(cfg.PlistPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolving server url: %w", err)
		}
		cfg.BaseURL = url
	}
	cfg.BaseURL = config.NormalizeURL(cfg.BaseURL)

	return cfg, nil
}

func resolveSerial(cfg config.Config) (string, error) {
	if cfg.Serial != "" {
		return cfg.Serial, nil
	}

	return serial.GetDeviceSerial()
}

func enableRemoteDesktop(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	policy, err := jamfcmd.ParseMissingIDPolicy(cfg.OnMissingID)
	if err != nil {
		return err
	}

	l := logger.Setup(cfg.LogLevel, "jamfcmd")
	l.WithFields(version.LogFields).Debugf("using server %s", cfg.BaseURL)

	deviceSerial, err := resolveSerial(cfg)
	if err != nil {
		return fmt.Errorf("getting device serial: %w", err)
	}

	client := jamf.New(l, cfg.BaseURL, cfg.Username, cfg.Password)
	if err := jamfcmd.EnableRemoteDesktop(c.Context, l, client, deviceSerial, policy, c.App.Writer); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func lookupDevice(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	l := logger.Setup(cfg.LogLevel, "jamfcmd")

	deviceSerial, err := resolveSerial(cfg)
	if err != nil {
		return fmt.Errorf("getting device serial: %w", err)
	}

	client := jamf.New(l, cfg.BaseURL, cfg.Username, cfg.Password)
	id, err := client.LookupComputerID(c.Context, deviceSerial)
	if err != nil {
		return fmt.Errorf("looking up device id: %w", err)
	}

	fmt.Fprintln(c.App.Writer, id)

	return nil
}

func printSerial(c *cli.Context) error {
	deviceSerial, err := serial.GetDeviceSerial()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, deviceSerial)

	return nil
}
