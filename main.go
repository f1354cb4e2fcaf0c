package main

import (
	"os"

	"github.com/df07/go-montecarlo-tracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	app := newApp()
	app.Run(os.Args)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tracer"
	app.Usage = "render scenes with an offline Monte Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:        "render",
			Usage:       "render a scene to a PNG image",
			Description: `Render a registered scene. Zero-valued options fall back to the scene's recommended settings.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "cornell",
					Usage: "name of the scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "image height in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Usage: "maximum surface interactions per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 uses all cpus)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base random seed (0 derives one from the clock)",
				},
				cli.Float64Flag{
					Name:  "focal",
					Usage: "camera focal length override",
				},
				cli.StringFlag{
					Name:  "out",
					Usage: "output file (default output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: cmd.Render,
		},
		{
			Name:   "scenes",
			Usage:  "list the available scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}
