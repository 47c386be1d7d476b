package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/retroboard-backend/pkg/retroclient"
)

func cardCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "card",
		Aliases: []string{"cards"},
		Short:   "Manage cards",
	}
	cmd.AddCommand(cardListCommand(g), cardAddCommand(g), cardEditCommand(g), cardMoveCommand(g), cardDeleteCommand(g))
	return cmd
}

func cardListCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list <retro-id>",
		Short: "List the cards of a retrospective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := g.client().ListCards(cmd.Context(), args[0], g.user)
			if err != nil {
				return err
			}
			return g.print(cmd, cards, func(w io.Writer) { printCards(w, cards) })
		},
	}
}

func cardAddCommand(g *globalFlags) *cobra.Command {
	var in retroclient.NewCard
	cmd := &cobra.Command{
		Use:   "add <retro-id> <content>",
		Short: "Post a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Content = args[1]
			if in.Author == "" {
				in.Author = g.user
			}
			c, err := g.client().CreateCard(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return g.print(cmd, c, func(w io.Writer) { printCards(w, []retroclient.Card{c}) })
		},
	}
	cmd.Flags().StringVarP(&in.Category, "category", "c", retroclient.CategoryHot, "hot, disappointment or fantasy")
	cmd.Flags().StringVar(&in.Author, "author", "", "author name (defaults to --user)")
	return cmd
}

func cardEditCommand(g *globalFlags) *cobra.Command {
	var content, category string
	cmd := &cobra.Command{
		Use:   "edit <card-id>",
		Short: "Change a card's content or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch retroclient.CardPatch
			if cmd.Flags().Changed("content") {
				patch.Content = &content
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			c, err := g.client().UpdateCard(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return g.print(cmd, c, func(w io.Writer) { printCards(w, []retroclient.Card{c}) })
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "new content")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	return cmd
}

func cardMoveCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "move <retro-id> <card-id> <category>",
		Short: "Move a card to another category; it leaves its group",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := retroclient.NewStore(g.client(),
				retroclient.Session{UserName: g.user, RetroID: args[0]},
				g.logger(cmd.ErrOrStderr()))
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}
			res := store.ChangeCategory(cmd.Context(), args[1], args[2])
			if res.Outcome == retroclient.Failed {
				return res.Err
			}
			return g.print(cmd, res.Card, func(w io.Writer) { printCards(w, []retroclient.Card{res.Card}) })
		},
	}
}

func cardDeleteCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.client().DeleteCard(cmd.Context(), args[0])
		},
	}
}

func voteCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <card-id>",
		Short: "Toggle your vote on a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := g.client().ToggleVote(cmd.Context(), args[0], g.user)
			if err != nil {
				return err
			}
			return g.print(cmd, res, func(w io.Writer) {
				state := "removed"
				if res.HasVoted {
					state = "added"
				}
				fmt.Fprintf(w, "vote %s, card %s has %d\n", state, res.CardID, res.Votes)
			})
		},
	}
}

func commentCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <card-id> <content>",
		Short: "Comment on a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.client().AddComment(cmd.Context(), args[0], g.user, args[1])
			if err != nil {
				return err
			}
			return g.print(cmd, c, func(w io.Writer) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Author, c.Content)
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.client().DeleteComment(cmd.Context(), args[0])
		},
	})
	return cmd
}

func printCards(w io.Writer, cards []retroclient.Card) {
	fmt.Fprintln(w, "ID\tCATEGORY\tVOTES\tAUTHOR\tGROUP\tCONTENT")
	for _, c := range cards {
		voted := ""
		if c.HasVoted {
			voted = "*"
		}
		group := "-"
		if c.GroupID != nil {
			group = *c.GroupID
		}
		fmt.Fprintf(w, "%s\t%s\t%d%s\t%s\t%s\t%s\n",
			c.ID, c.Category, c.Votes, voted, c.Author, group, oneLine(c.Content))
		for _, m := range c.Comments {
			fmt.Fprintf(w, "\t\t\t\t\t  > %s: %s\n", m.Author, oneLine(m.Content))
		}
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
