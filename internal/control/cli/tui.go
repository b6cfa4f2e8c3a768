package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/config"
	"github.com/ja-he/featedit/internal/control"
	"github.com/ja-he/featedit/internal/potatolog"
	"github.com/ja-he/featedit/internal/storage/providers"
	"github.com/ja-he/featedit/internal/styling"
	"github.com/ja-he/featedit/internal/tui"
)

// TuiCommand holds the flags for the `tui` command line command.
type TuiCommand struct {
	File          string `short:"f" long:"file" required:"true" description:"Specify the GeoJSON file to edit" value-name:"<file>"`
	Config        string `short:"c" long:"config" description:"Specify the config file (default '${FEATEDIT_HOME}/config.yaml')" value-name:"<file>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the tui command.
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	potatolog.GlobalMemoryLogReaderWriter.Capacity = 1000
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging: %w", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	envData := control.EnvDataFromEnvironment()
	configPath := command.Config
	if configPath == "" {
		configPath = envData.ConfigFilePath()
	}

	// read config from file
	yamlData, err := os.ReadFile(configPath)
	if err != nil {
		log.Warn().Err(err).Str("file", configPath).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return fmt.Errorf("can't parse config data: %w", err)
	}
	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		return fmt.Errorf("invalid stylesheet: %w", err)
	}

	source, err := providers.NewGeoJSONSourceFromFile(command.File, configData.GeometryType)
	if err != nil {
		return err
	}
	log.Info().Str("file", command.File).Int("features", len(source.Features())).Msg("loaded features")

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}

	controller, err := NewController(source, configData, *stylesheet, screen)
	if err != nil {
		screen.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
