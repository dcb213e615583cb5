package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ipranges/bale/feed"
	"github.com/ipranges/bale/service"
	"github.com/ipranges/bale/service/compactor"
	"github.com/ipranges/bale/store/filesystem"
	"github.com/ipranges/bale/types"
	"github.com/ipranges/bale/utils"
)

// Application .
type Application struct {
	Config          types.Config
	Once            bool
	ShutdownTimeout time.Duration
}

// Run validates the config, wires the pipeline and either executes one pass
// or serves on the configured cadence until terminated.
func (app Application) Run() error {
	if err := app.Config.Validate(); err != nil {
		return errors.Trace(err)
	}

	stor, err := filesystem.NewStore(app.Config.OutputDir)
	if err != nil {
		return errors.Trace(err)
	}
	client := feed.NewClient(app.Config.SourceURL, app.Config.FetchTimeout)
	comp := compactor.New(client, stor, app.Config.Interval, app.Config.SkipInvalid)

	if app.Once {
		log.Info("Running a single pass")
		return app.runOnce(comp)
	}
	log.Infof("Running as daemon, interval %v", app.Config.Interval)
	return app.runServices([]service.Service{comp})
}

func (app Application) runOnce(comp *compactor.Compactor) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		<-sigs
		cancel()
	}()

	return comp.RunOnce(ctx)
}

func (app Application) runServices(ss []service.Service) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigs)
	defer close(sigs)

	return newStarter(utils.NewStandardLogger(), ss, app.ShutdownTimeout).start(sigs)
}
