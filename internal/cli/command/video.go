package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// VideosCommand returns the videos subcommand group.
func VideosCommand() *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"v"},
		Usage:   "Browse the video catalog",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List dashboard videos, newest first",
				Action:  videosList,
			},
			{
				Name:      "play",
				Usage:     "Resolve a video to its playback URL",
				ArgsUsage: "VIDEO_ID",
				Action:    videosPlay,
			},
		},
	}
}

func videosList(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}

	videos, err := rt.client.Dashboard(c.Context)
	if err != nil {
		return err
	}
	return rt.render(c, videos)
}

func videosPlay(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: videos play VIDEO_ID")
	}

	rt, err := newRuntime(c)
	if err != nil {
		return err
	}

	info, err := rt.client.PlayURL(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	return rt.render(c, info)
}
