package main

import (
	"context"
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

func newRoomsCmd() *cli.Command {
	return &cli.Command{
		Name:  "rooms",
		Usage: "list rooms from the backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Value: domain.RoomTypeAll,
				Usage: "room type filter (All, Standard, Deluxe, Suite)",
			},
			&cli.StringFlag{
				Name:  "check-in",
				Usage: "only rooms available from this date (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:  "check-out",
				Usage: "only rooms available until this date (YYYY-MM-DD)",
			},
		},
		Action: roomsCmd,
	}
}

func roomsCmd(ctx context.Context, clicmd *cli.Command) error {
	initLogger(clicmd, config.Public{LogLevel: "warn"})

	apiURL := clicmd.String("api-url")
	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}
	client := setup.NewAPIClient(apiURL, cliNavigator(os.Stderr), config.DefaultLoginPath)
	ctx = credential.NewContext(ctx, credential.NewMemoryStore())

	var (
		resp *api.Response[[]domain.Room]
		err  error
	)
	checkIn, checkOut := clicmd.String("check-in"), clicmd.String("check-out")
	if checkIn != "" || checkOut != "" {
		in, perr := domain.ParseDate(checkIn)
		if perr != nil {
			return fmt.Errorf("invalid --check-in: %w", perr)
		}
		out, perr := domain.ParseDate(checkOut)
		if perr != nil {
			return fmt.Errorf("invalid --check-out: %w", perr)
		}
		resp, err = client.Rooms.GetAvailable(ctx, in, out)
	} else {
		resp, err = client.Rooms.GetAll(ctx)
	}
	if err != nil {
		return err
	}

	rooms, ok := resp.Value()
	if !ok {
		return fmt.Errorf("backend refused: %s", resp.ErrorMessage())
	}
	return printRooms(os.Stdout, domain.FilterRoomsByType(rooms, clicmd.String("type")))
}

// cliNavigator tells the operator to log in again; there is no page to send
// them to.
func cliNavigator(w io.Writer) apiclient.Navigator {
	return apiclient.NavigatorFunc(func(_ context.Context, _ string) {
		fmt.Fprintln(w, "session expired, log in again")
	})
}

func printRooms(w io.Writer, rooms []domain.Room) error {
	if len(rooms) == 0 {
		_, err := fmt.Fprintln(w, "No rooms found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPRICE/NIGHT\tGUESTS\tAVAILABLE\tAMENITIES")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%d\t%t\t%s\n",
			r.Id, r.Name, r.Type, r.PricePerNight, r.MaxOccupancy, r.IsAvailable, strings.Join(r.Amenities, ", "))
	}
	return tw.Flush()
}
