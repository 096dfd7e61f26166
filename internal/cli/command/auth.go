package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// AuthCommand returns the auth subcommand group.
func AuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the login session",
		Subcommands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password (min 8 characters)",
						Required: true,
					},
				},
				Action: authSignup,
			},
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password",
						Required: true,
					},
				},
				Action: authLogin,
			},
			{
				Name:   "logout",
				Usage:  "Sign out and discard the stored token",
				Action: authLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the signed-in profile",
				Action: authWhoami,
			},
		},
	}
}

func authSignup(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}

	user, err := rt.controller.Signup(c.Context, c.String("name"), c.String("email"), c.String("password"))
	if err != nil {
		return err
	}

	if user != nil {
		fmt.Fprintf(c.App.Writer, "Signed up as %s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Fprintln(c.App.Writer, "Signed up")
	}
	return nil
}

func authLogin(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}

	user, err := rt.controller.Login(c.Context, c.String("email"), c.String("password"))
	if err != nil {
		return err
	}

	if user != nil {
		fmt.Fprintf(c.App.Writer, "Signed in as %s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Fprintln(c.App.Writer, "Signed in")
	}
	return nil
}

func authLogout(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}

	rt.controller.Logout(c.Context)
	fmt.Fprintln(c.App.Writer, "Signed out")
	return nil
}

func authWhoami(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}

	rt.controller.StartupCheck(c.Context)
	if !rt.controller.SignedIn() {
		return fmt.Errorf("not signed in")
	}
	return rt.render(c, rt.controller.User())
}
