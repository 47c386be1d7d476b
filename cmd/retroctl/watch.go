package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/retroboard-backend/pkg/retroclient"
)

var categories = []string{
	retroclient.CategoryHot,
	retroclient.CategoryDisappointment,
	retroclient.CategoryFantasy,
}

func watchCommand(g *globalFlags) *cobra.Command {
	var reconnect time.Duration
	cmd := &cobra.Command{
		Use:   "watch <retro-id>",
		Short: "Print the board and redraw it on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			log := g.logger(cmd.ErrOrStderr())

			c := g.client()
			store := retroclient.NewStore(c, retroclient.Session{UserName: g.user, RetroID: args[0]}, log)
			if err := store.Load(ctx); err != nil {
				return err
			}
			printBoard(out, store)

			redraw := retroclient.HandlerFunc(func(ctx context.Context, ev retroclient.Event) error {
				if err := store.Reconcile(ctx, ev); err != nil {
					return err
				}
				fmt.Fprintf(out, "\n--- %s at %s\n", ev.Type, time.Now().Format(time.TimeOnly))
				printBoard(out, store)
				return nil
			})
			sub, err := retroclient.NewSubscriber(c, args[0], redraw, log,
				retroclient.OnConnect(store.Load))
			if err != nil {
				return err
			}
			return sub.Listen(ctx, reconnect)
		},
	}
	cmd.Flags().DurationVar(&reconnect, "reconnect", 2*time.Second, "delay before reconnecting")
	return cmd
}

func printBoard(w io.Writer, s *retroclient.Store) {
	r, alive := s.Retro()
	if !alive {
		fmt.Fprintf(w, "retrospective %s was deleted\n", r.ID)
		return
	}
	fmt.Fprintf(w, "%s (%s)\n", r.Name, r.Team)

	titles := map[string]string{}
	for _, grp := range s.Groups() {
		titles[grp.ID] = grp.Title
	}
	for _, cat := range categories {
		cards := s.CardsIn(cat)
		fmt.Fprintf(w, "\n%s (%d)\n", cat, len(cards))
		for _, c := range cards {
			group := ""
			if c.GroupID != nil {
				group = " {" + titles[*c.GroupID] + "}"
			}
			author := ""
			if c.Author != "" {
				author = " - " + c.Author
			}
			fmt.Fprintf(w, "  [%d] %s%s%s\n", c.Votes, oneLine(c.Content), author, group)
		}
	}

	actions := s.Actions()
	if len(actions) > 0 {
		fmt.Fprintf(w, "\nactions\n")
		for _, a := range actions {
			done := " "
			if a.Completed {
				done = "x"
			}
			fmt.Fprintf(w, "  [%s] %s\n", done, oneLine(a.Text))
		}
	}
}
