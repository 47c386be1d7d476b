package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/retroboard-backend/pkg/retroclient"
)

func actionCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "action",
		Aliases: []string{"actions"},
		Short:   "Manage action items",
	}
	cmd.AddCommand(actionListCommand(g), actionAddCommand(g), actionToggleCommand(g),
		actionAssignCommand(g), actionDeleteCommand(g))
	return cmd
}

func actionListCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list <retro-id>",
		Short: "List action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := g.client().ListActions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return g.print(cmd, items, func(w io.Writer) { printActions(w, items) })
		},
	}
}

func actionAddCommand(g *globalFlags) *cobra.Command {
	var in retroclient.NewAction
	cmd := &cobra.Command{
		Use:   "add <retro-id> <text>",
		Short: "Add an action item, optionally linked to a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Text = args[1]
			a, err := g.client().CreateAction(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return g.print(cmd, a, func(w io.Writer) { printActions(w, []retroclient.ActionItem{a}) })
		},
	}
	cmd.Flags().StringVar(&in.Assignee, "assignee", "", "who owns it")
	cmd.Flags().StringVar(&in.CardID, "card", "", "card the action follows up on")
	return cmd
}

func actionToggleCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <action-id>",
		Short: "Flip an action item between open and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.client().ToggleAction(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return g.print(cmd, a, func(w io.Writer) { printActions(w, []retroclient.ActionItem{a}) })
		},
	}
}

func actionAssignCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <action-id> [assignee]",
		Short: "Set or clear the assignee",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignee := ""
			if len(args) == 2 {
				assignee = args[1]
			}
			a, err := g.client().UpdateAction(cmd.Context(), args[0], retroclient.ActionPatch{Assignee: &assignee})
			if err != nil {
				return err
			}
			return g.print(cmd, a, func(w io.Writer) { printActions(w, []retroclient.ActionItem{a}) })
		},
	}
}

func actionDeleteCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <action-id>",
		Short: "Delete an action item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.client().DeleteAction(cmd.Context(), args[0])
		},
	}
}

func printActions(w io.Writer, items []retroclient.ActionItem) {
	fmt.Fprintln(w, "ID\tDONE\tASSIGNEE\tTEXT\tFROM CARD")
	for _, a := range items {
		done := " "
		if a.Completed {
			done = "x"
		}
		assignee := "-"
		if a.Assignee != nil {
			assignee = *a.Assignee
		}
		from := ""
		if a.CardContent != nil {
			from = oneLine(*a.CardContent)
			if a.CardCategory != nil {
				from = "[" + *a.CardCategory + "] " + from
			}
		}
		fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\t%s\n", a.ID, done, assignee, oneLine(a.Text), from)
	}
}
