package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ipranges/bale/app"
	"github.com/ipranges/bale/types"
	"github.com/ipranges/bale/versioninfo"
)

var (
	config types.Config
	once   bool
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Print(versioninfo.VersionString())
	}

	// env first, flags override via Destination
	if err := envconfig.Process("bale", &config); err != nil {
		log.Fatalln(err)
	}

	cliApp := &cli.App{
		Name:    versioninfo.NAME,
		Usage:   "compact published cloud IP range lists",
		Version: versioninfo.VERSION,
		Action:  run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "debug or not",
				Value:       config.Debug,
				Destination: &config.Debug,
				EnvVars:     []string{"BALE_DEBUG"},
			},
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "url of the upstream ip-ranges document",
				Value:       config.SourceURL,
				Destination: &config.SourceURL,
				EnvVars:     []string{"BALE_SOURCE_URL"},
			},
			&cli.StringFlag{
				Name:        "output-dir",
				Aliases:     []string{"o"},
				Usage:       "directory the three result documents are written to",
				Value:       config.OutputDir,
				Destination: &config.OutputDir,
				EnvVars:     []string{"BALE_OUTPUT_DIR"},
			},
			&cli.DurationFlag{
				Name:        "interval",
				Aliases:     []string{"i"},
				Usage:       "refresh cadence in daemon mode",
				Value:       config.Interval,
				Destination: &config.Interval,
				EnvVars:     []string{"BALE_INTERVAL"},
			},
			&cli.DurationFlag{
				Name:        "fetch-timeout",
				Usage:       "timeout for one upstream fetch",
				Value:       config.FetchTimeout,
				Destination: &config.FetchTimeout,
				EnvVars:     []string{"BALE_FETCH_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:        "skip-invalid",
				Usage:       "drop unparsable upstream records instead of aborting the pass",
				Value:       config.SkipInvalid,
				Destination: &config.SkipInvalid,
				EnvVars:     []string{"BALE_SKIP_INVALID"},
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "rotate logs into this file besides stdout",
				Value:       config.LogFile,
				Destination: &config.LogFile,
				EnvVars:     []string{"BALE_LOG_FILE"},
			},
			&cli.BoolFlag{
				Name:        "once",
				Usage:       "run a single pass and exit",
				Destination: &once,
				EnvVars:     []string{"BALE_ONCE"},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(c *cli.Context) error {
	initLogging()

	return app.Application{
		Config:          config,
		Once:            once,
		ShutdownTimeout: time.Duration(30) * time.Second,
	}.Run()
}

func initLogging() {
	if config.Debug {
		log.SetLevel(log.DebugLevel)
		log.Debugln("Debug logging enabled")
	}
	if config.LogFile == "" {
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}))
}
