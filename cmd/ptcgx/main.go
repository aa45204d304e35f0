package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/ptcgx/internal/attack"
	"github.com/peterkuimelis/ptcgx/internal/game"
	gamelog "github.com/peterkuimelis/ptcgx/internal/log"
	"github.com/peterkuimelis/ptcgx/internal/mcp"
	"github.com/peterkuimelis/ptcgx/internal/scenario"
)

var (
	cardsFile    string
	scenarioFile string
	seed         int64
	flips        string
	choices      string
	endTurn      bool
)

var rootCmd = &cobra.Command{
	Use:   "ptcgx",
	Short: "Resolve trading card game attacks against a board scenario",
}

var cardsCmd = &cobra.Command{
	Use:   "cards [name]",
	Short: "List cards, or show one card's attacks and compiled pipelines",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, err := game.ParseCardFile(cardsFile)
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}
		if len(args) == 0 {
			for _, name := range db.Names() {
				fmt.Println(name)
			}
			return nil
		}
		card, ok := db[args[0]]
		if !ok {
			return fmt.Errorf("unknown card %q", args[0])
		}
		fmt.Printf("%s (%s, %d HP)\n", card.Name, card.Type, card.HP)
		for _, a := range card.Attacks {
			b, err := attack.For(a)
			if err != nil {
				return err
			}
			fmt.Printf("  %s [%s] %d\n", a.Name, a.Cost, a.Damage)
			if a.Text != "" {
				fmt.Printf("    %s\n", a.Text)
			}
			fmt.Printf("    %s\n", b)
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <attack>",
	Short: "Resolve one attack of the turn player's active Pokemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, err := game.ParseCardFile(cardsFile)
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}
		sc, err := scenario.ParseFile(scenarioFile)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
		queued, err := mcp.ParseFlips(flips)
		if err != nil {
			return err
		}

		logger := gamelog.NewTextLogger(os.Stdout)
		state, err := sc.Build(db, attack.BaseFormat(), logger)
		if err != nil {
			return fmt.Errorf("build scenario: %w", err)
		}
		dm := mcp.NewToolDecider(queued, mcp.ParseChoices(choices), game.NewRandomDecisionMaker(seed))

		ctx, err := attack.Execute(state, dm, args[0])
		if err != nil {
			return err
		}
		state = ctx.Engine()
		if endTurn {
			state = state.EndTurn(dm)
		}

		fmt.Println()
		fmt.Printf("failed=%t prevented=%t damage=%d\n", ctx.Failed(), ctx.Prevented(), ctx.DamageDone())
		printBoard(state)
		return nil
	},
}

func printBoard(s *game.State) {
	for p := game.PlayerID(0); p < 2; p++ {
		pl := s.Player(p)
		var bench []string
		for _, b := range pl.Bench {
			bench = append(bench, b.String())
		}
		fmt.Printf("%s active: %s  bench: [%s]  prizes taken: %d\n",
			p, pl.Active, strings.Join(bench, ", "), pl.PrizesTaken)
	}
	for _, e := range s.Effects() {
		if !e.System {
			fmt.Printf("effect %s on %s until %s\n", e.Consequence, e.Target, e.Expiration)
		}
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cardsFile, "cards", "cards.yaml", "path to cards YAML file")

	resolveCmd.Flags().StringVar(&scenarioFile, "scenario", "scenario.yaml", "path to scenario YAML file")
	resolveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = random)")
	resolveCmd.Flags().StringVar(&flips, "flips", "", "coin results to use first, e.g. 'H T'")
	resolveCmd.Flags().StringVar(&choices, "choices", "", "comma-separated answers to choices")
	resolveCmd.Flags().BoolVar(&endTurn, "end-turn", false, "end the turn after the attack")

	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(resolveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
