package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/retroboard-backend/pkg/retroclient"
)

func retroCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "retro",
		Aliases: []string{"retros"},
		Short:   "Manage retrospectives",
	}
	cmd.AddCommand(retroListCommand(g), retroCreateCommand(g), retroGetCommand(g),
		retroUpdateCommand(g), retroDeleteCommand(g))
	return cmd
}

func retroListCommand(g *globalFlags) *cobra.Command {
	var (
		team  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List retrospectives, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := g.client().ListRetros(cmd.Context(), team, limit)
			if err != nil {
				return err
			}
			return g.print(cmd, list, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tNAME\tTEAM\tCREATED")
				for _, r := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Team, r.CreatedAt.Format(time.DateTime))
				}
			})
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "only this team")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	return cmd
}

func retroCreateCommand(g *globalFlags) *cobra.Command {
	var in retroclient.NewRetro
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a retrospective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			if in.CreatedBy == "" {
				in.CreatedBy = g.user
			}
			r, err := g.client().CreateRetro(cmd.Context(), in)
			if err != nil {
				return err
			}
			return g.print(cmd, r, func(w io.Writer) { printRetro(w, r) })
		},
	}
	cmd.Flags().StringVar(&in.Team, "team", "", "team name")
	cmd.Flags().StringVar(&in.CreatedBy, "created-by", "", "facilitator name (defaults to --user)")
	cmd.Flags().BoolVar(&in.IsAnonymous, "anonymous", false, "hide card authors")
	return cmd
}

func retroGetCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a retrospective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.client().GetRetro(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return g.print(cmd, r, func(w io.Writer) { printRetro(w, r) })
		},
	}
}

func retroUpdateCommand(g *globalFlags) *cobra.Command {
	var (
		name, team string
		anonymous  bool
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a retrospective's name, team or anonymity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch retroclient.RetroPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("team") {
				patch.Team = &team
			}
			if cmd.Flags().Changed("anonymous") {
				patch.IsAnonymous = &anonymous
			}
			r, err := g.client().UpdateRetro(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return g.print(cmd, r, func(w io.Writer) { printRetro(w, r) })
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&team, "team", "", "new team")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "hide card authors")
	return cmd
}

func retroDeleteCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a retrospective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.client().DeleteRetro(cmd.Context(), args[0])
		},
	}
}

func printRetro(w io.Writer, r retroclient.Retrospective) {
	fmt.Fprintf(w, "id:\t%s\n", r.ID)
	fmt.Fprintf(w, "name:\t%s\n", r.Name)
	fmt.Fprintf(w, "team:\t%s\n", r.Team)
	fmt.Fprintf(w, "created by:\t%s\n", r.CreatedBy)
	fmt.Fprintf(w, "anonymous:\t%t\n", r.IsAnonymous)
}
