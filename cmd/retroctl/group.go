package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/retroboard-backend/pkg/retroclient"
)

func groupCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Group cards of one category",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <retro-id>",
		Short: "List card groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := g.client().ListGroups(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return g.print(cmd, groups, func(w io.Writer) { printGroups(w, groups) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <retro-id> <title> <card-id>...",
		Short: "Group two or more cards of the same category",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := g.client().CreateGroup(cmd.Context(), args[0], retroclient.NewGroup{
				Title:   args[1],
				CardIDs: args[2:],
			})
			if err != nil {
				return err
			}
			return g.print(cmd, grp, func(w io.Writer) { printGroups(w, []retroclient.CardGroup{grp}) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <group-id> <title>",
		Short: "Rename a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := g.client().RenameGroup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return g.print(cmd, grp, func(w io.Writer) { printGroups(w, []retroclient.CardGroup{grp}) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <group-id> <card-id>",
		Short: "Add a card to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := g.client().AddCardToGroup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return g.print(cmd, grp, func(w io.Writer) { printGroups(w, []retroclient.CardGroup{grp}) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <group-id> <card-id>",
		Short: "Take a card out of a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := g.client().RemoveCardFromGroup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return g.print(cmd, grp, func(w io.Writer) { printGroups(w, []retroclient.CardGroup{grp}) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <group-id>",
		Short: "Dissolve a group; its cards stay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.client().DeleteGroup(cmd.Context(), args[0])
		},
	})

	return cmd
}

func printGroups(w io.Writer, groups []retroclient.CardGroup) {
	fmt.Fprintln(w, "ID\tCATEGORY\tTITLE\tCARDS")
	for _, grp := range groups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", grp.ID, grp.Category, grp.Title, strings.Join(grp.CardIDs, ","))
	}
}
