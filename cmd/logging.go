package cmd

import (
	"sync"

	"github.com/df07/go-montecarlo-tracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("tracer")

func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}

// progressLogger reports finished columns: every column at debug level and
// every whole step of 10% at info level
type progressLogger struct {
	mu       sync.Mutex
	reported int // Last reported tenth
}

func (p *progressLogger) update(done, total int) {
	percent := 100.0 * float64(done) / float64(total)
	logger.Debugf("%.1f%%", percent)

	p.mu.Lock()
	defer p.mu.Unlock()
	if tenth := done * 10 / total; tenth > p.reported {
		p.reported = tenth
		logger.Infof("progress %d%% (%d/%d columns)", tenth*10, done, total)
	}
}
