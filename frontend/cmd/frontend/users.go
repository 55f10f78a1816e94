package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/apiclient"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/setup"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/config"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	"github.com/urfave/cli/v3"
)

var errNotAdmin = errors.New("account is not an administrator")

func newUsersCmd() *cli.Command {
	idFlag := func() cli.Flag { return &cli.Int64Flag{Name: "id", Usage: "user id", Required: true} }
	return &cli.Command{
		Name:  "users",
		Usage: "manage accounts as an administrator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Usage:    "administrator email",
				Sources:  cli.EnvVars("KALSUBAI_ADMIN_EMAIL"),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Usage:    "administrator password",
				Sources:  cli.EnvVars("KALSUBAI_ADMIN_PASSWORD"),
				Required: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list every account",
				Action: withAdmin(func(ctx context.Context, client *apiclient.APIClient, _ *cli.Command) error {
					return listUsers(ctx, client, os.Stdout)
				}),
			},
			{
				Name:  "set-role",
				Usage: "change an account's role",
				Flags: []cli.Flag{
					idFlag(),
					&cli.StringFlag{Name: "role", Usage: "new role, e.g. ROLE_ADMIN", Required: true},
				},
				Action: withAdmin(func(ctx context.Context, client *apiclient.APIClient, clicmd *cli.Command) error {
					resp, err := client.Admin.UpdateRole(ctx, clicmd.Int64("id"), clicmd.String("role"))
					if err != nil {
						return err
					}
					user, ok := resp.Value()
					if !ok {
						return fmt.Errorf("backend refused: %s", resp.ErrorMessage())
					}
					return printUsers(os.Stdout, []domain.User{user})
				}),
			},
			{
				Name:  "delete",
				Usage: "delete an account",
				Flags: []cli.Flag{idFlag()},
				Action: withAdmin(func(ctx context.Context, client *apiclient.APIClient, clicmd *cli.Command) error {
					resp, err := client.Admin.DeleteUser(ctx, clicmd.Int64("id"))
					if err != nil {
						return err
					}
					if !resp.Success {
						return fmt.Errorf("backend refused: %s", resp.ErrorMessage())
					}
					fmt.Fprintf(os.Stdout, "deleted user %d\n", clicmd.Int64("id"))
					return nil
				}),
			},
			{
				Name:  "create-admin",
				Usage: "create another administrator account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "new-username", Required: true},
					&cli.StringFlag{Name: "new-email", Required: true},
					&cli.StringFlag{Name: "new-password", Required: true},
				},
				Action: withAdmin(func(ctx context.Context, client *apiclient.APIClient, clicmd *cli.Command) error {
					resp, err := client.Admin.CreateAdmin(ctx, api.RegisterRequest{
						Username: clicmd.String("new-username"),
						Email:    clicmd.String("new-email"),
						Password: clicmd.String("new-password"),
					})
					if err != nil {
						return err
					}
					user, ok := resp.Value()
					if !ok {
						return fmt.Errorf("backend refused: %s", resp.ErrorMessage())
					}
					return printUsers(os.Stdout, []domain.User{user})
				}),
			},
		},
	}
}

type adminAction func(ctx context.Context, client *apiclient.APIClient, clicmd *cli.Command) error

// withAdmin signs in with --email/--password before running the action.
func withAdmin(action adminAction) cli.ActionFunc {
	return func(ctx context.Context, clicmd *cli.Command) error {
		initLogger(clicmd, config.Public{LogLevel: "warn"})

		apiURL := clicmd.String("api-url")
		if apiURL == "" {
			apiURL = config.DefaultAPIURL
		}
		client := setup.NewAPIClient(apiURL, cliNavigator(os.Stderr), config.DefaultLoginPath)
		ctx, err := adminSession(ctx, client, clicmd.String("email"), clicmd.String("password"))
		if err != nil {
			return err
		}
		return action(ctx, client, clicmd)
	}
}

// adminSession logs in and returns a context carrying the administrator's
// credential for the following calls.
func adminSession(ctx context.Context, client *apiclient.APIClient, email, password string) (context.Context, error) {
	store := credential.NewMemoryStore()
	ctx = credential.NewContext(ctx, store)

	resp, err := client.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	result, ok := resp.Value()
	if !ok {
		return nil, fmt.Errorf("login refused: %s", resp.ErrorMessage())
	}
	cred := credential.FromLogin(result)
	if !cred.User.IsAdmin() {
		return nil, errNotAdmin
	}
	if err := store.Set(cred); err != nil {
		return nil, err
	}
	return ctx, nil
}

func listUsers(ctx context.Context, client *apiclient.APIClient, w io.Writer) error {
	resp, err := client.Admin.ListUsers(ctx)
	if err != nil {
		return err
	}
	users, ok := resp.Value()
	if !ok {
		return fmt.Errorf("backend refused: %s", resp.ErrorMessage())
	}
	return printUsers(w, users)
}

func printUsers(w io.Writer, users []domain.User) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "No users found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tPHONE\tROLES")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.Id, u.Username, u.Email, u.PhoneNumber, strings.Join(u.Roles, ","))
	}
	return tw.Flush()
}
