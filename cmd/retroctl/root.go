package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/retroboard-backend/pkg/retroclient"
)

type globalFlags struct {
	server  string
	token   string
	user    string
	jsonOut bool
	debug   bool
}

func rootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "retroctl",
		Short:         "Retrospective board CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.server, "server", envOr("RETRO_SERVER", "http://localhost:8080"), "server base URL")
	pf.StringVar(&g.token, "token", os.Getenv("RETRO_TOKEN"), "session token from login")
	pf.StringVarP(&g.user, "user", "u", os.Getenv("RETRO_USER"), "display name to act as when no token is set")
	pf.BoolVar(&g.jsonOut, "json", false, "print raw JSON")
	pf.BoolVarP(&g.debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(
		loginCommand(g),
		retroCommand(g),
		cardCommand(g),
		voteCommand(g),
		commentCommand(g),
		actionCommand(g),
		groupCommand(g),
		watchCommand(g),
	)
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (g *globalFlags) client() *retroclient.Client {
	return retroclient.New(g.server, retroclient.WithToken(g.token))
}

func (g *globalFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if g.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// print writes v as JSON when --json is set, otherwise calls text with a
// tab-aligned writer.
func (g *globalFlags) print(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if g.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

func loginCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Get a session token for a display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := g.client().Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return g.print(cmd, tok, func(w io.Writer) {
				fmt.Fprintf(w, "export RETRO_TOKEN=%s\n", tok.Token)
			})
		},
	}
}
