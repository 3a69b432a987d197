package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jwebster45206/craft-engine/internal/config"
	"github.com/jwebster45206/craft-engine/internal/logger"
	"github.com/jwebster45206/craft-engine/pkg/action"
	"github.com/jwebster45206/craft-engine/pkg/condition"
	"github.com/jwebster45206/craft-engine/pkg/craft"
	"github.com/jwebster45206/craft-engine/pkg/dice"
	"github.com/jwebster45206/craft-engine/pkg/quality"
	"github.com/jwebster45206/craft-engine/pkg/recipe"
	"github.com/jwebster45206/craft-engine/pkg/rotation"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	excellentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	poorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	specialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // green
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // red
			Bold(true)

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func main() {
	var (
		rotationPath = flag.String("rotation", "", "path to a rotation JSON file")
		actionList   = flag.String("actions", "", "comma-separated action list (alternative to -rotation)")
		seed         = flag.Int64("seed", 0, "random seed; 0 falls back to CRAFT_SEED, then the clock")
		exhaustive   = flag.Bool("exhaustive", false, "print every weighted branch of each action before rolling it")
		prospective  = flag.Bool("prospective", false, "carry on past infeasible actions instead of aborting")
		collectable  = flag.Bool("collectable", false, "report collectability instead of HQ chance")

		craftsmanship = flag.Uint("craftsmanship", 3691, "character craftsmanship")
		control       = flag.Uint("control", 3664, "character control")
		maxCP         = flag.Int("cp", 564, "character max CP")
		level         = flag.Uint("level", 90, "character level")
		specialist    = flag.Bool("specialist", false, "character is a specialist")

		rlvl             = flag.Uint("rlvl", 580, "internal recipe level")
		recipeLevel      = flag.Uint("recipe-level", 90, "player-facing recipe level")
		stars            = flag.Int("stars", 2, "recipe stars")
		maxProgress      = flag.Uint("progress", 3900, "recipe progress target")
		maxQuality       = flag.Uint("quality", 10920, "recipe quality target")
		maxDurability    = flag.Int("durability", 70, "recipe durability")
		progressDivider  = flag.Uint("progress-divider", 130, "recipe progress divider")
		qualityDivider   = flag.Uint("quality-divider", 115, "recipe quality divider")
		progressModifier = flag.Uint("progress-modifier", 80, "recipe progress modifier")
		qualityModifier  = flag.Uint("quality-modifier", 70, "recipe quality modifier")
		ruleSetName      = flag.String("ruleset", "regular", "condition rule set: regular, qa, expert1 or expert2")
	)
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg)
	log = logger.WithRunID(log, uuid.NewString())

	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	rot, err := loadRotation(*rotationPath, *actionList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load rotation: %v\n", err)
		os.Exit(1)
	}

	ruleSet, err := condition.ParseRuleSet(*ruleSetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var r recipe.Stats
	if rot.Recipe != nil {
		// A rotation file shipping its own recipe wins over the flags.
		r, err = rot.Recipe.Stats()
	} else {
		r, err = recipe.New(recipe.Stats{
			RLvl:             uint16(*rlvl),
			Level:            uint8(*recipeLevel),
			Stars:            uint8(*stars),
			MaxProgress:      uint32(*maxProgress),
			MaxQuality:       uint32(*maxQuality),
			MaxDurability:    int8(*maxDurability),
			ProgressDivider:  uint16(*progressDivider),
			QualityDivider:   uint16(*qualityDivider),
			ProgressModifier: uint16(*progressModifier),
			QualityModifier:  uint16(*qualityModifier),
			Conditions:       ruleSet.Bits(),
			RuleSet:          ruleSet,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid recipe: %v\n", err)
		os.Exit(1)
	}

	c := craft.CharacterStats{
		Craftsmanship: uint16(*craftsmanship),
		Control:       uint16(*control),
		MaxCP:         int16(*maxCP),
		Level:         uint8(*level),
		Specialist:    *specialist,
	}

	if problems := rot.Validate(c.Level); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		os.Exit(1)
	}
	kinds, err := rot.Kinds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid rotation: %v\n", err)
		os.Exit(1)
	}

	s, err := craft.NewSimulator(c, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build simulator: %v\n", err)
		os.Exit(1)
	}

	log.Info("starting simulation",
		"rotation", rot.Name,
		"actions", len(kinds),
		"seed", *seed,
		"ruleset", r.RuleSet.String(),
		"base_progress", s.BaseProgress(),
		"base_quality", s.BaseQuality())

	run(s, kinds, dice.NewSource(*seed), runOptions{
		exhaustive:  *exhaustive,
		prospective: *prospective,
		collectable: *collectable,
		log:         log,
	})
}

type runOptions struct {
	exhaustive  bool
	prospective bool
	collectable bool
	log         *slog.Logger
}

func run(s *craft.Simulator, kinds []action.Kind, roller dice.Roller, opts runOptions) {
	p := message.NewPrinter(language.English)
	st := s.Initial()

	fmt.Println(headerStyle.Render(fmt.Sprintf(
		"%4s  %-20s %-10s %9s %9s %6s %6s", "step", "action", "condition", "progress", "quality", "dur", "cp")))

	status := action.InProgress
	for i, k := range kinds {
		cond := st.Condition

		if opts.exhaustive {
			branches, _ := action.Exhaustive(s, st, k)
			for _, b := range branches {
				printBranch(p, b)
			}
		}

		out, err := action.ProspectiveAct(s, st, k, roller)
		if err != nil {
			var infeasible *action.InfeasibleError
			if !errors.As(err, &infeasible) || !opts.prospective {
				fmt.Fprintf(os.Stderr, "Step %d (%s): %v\n", i+1, k, err)
				os.Exit(1)
			}
			opts.log.Warn("carrying infeasible action",
				"step", i+1,
				"action", k.String(),
				"too_little_cp", infeasible.TooLittleCP,
				"not_executable", infeasible.NotExecutable)
			out = infeasible.Outcome
		}

		st = st.GenerateNext(s, out.Delta, roller)
		printStep(p, i+1, k, cond, out, st)

		if status = out.Status; status != action.InProgress {
			break
		}
	}

	fmt.Println()
	switch status {
	case action.Completed:
		fmt.Println(successStyle.Render("Craft completed."))
		if opts.collectable {
			p.Printf("Collectability: %d\n", uint32(quality.CollectabilityForQuality(st.Quality, s.Recipe.MaxQuality)))
		} else {
			hq := quality.ForQuality(st.Quality, s.Recipe.MaxQuality)
			p.Printf("HQ chance: %d%% (quality %d of %d)\n", uint8(hq), st.Quality, s.Recipe.MaxQuality)
		}
	case action.Failed:
		fmt.Println(failStyle.Render("Craft failed: durability ran out."))
	default:
		p.Printf("Rotation ended with the craft in progress: %d of %d progress.\n",
			st.Progress, s.Recipe.MaxProgress)
	}
}

func printStep(p *message.Printer, step int, k action.Kind, cond condition.Condition, out action.Outcome, st craft.State) {
	row := p.Sprintf("%4d  %s %s %9d %9d %6d %6d",
		step,
		actionStyle.Render(fmt.Sprintf("%-20s", k)),
		conditionCell(cond),
		st.Progress, st.Quality, st.Durability, st.CP)
	if out.Delta.ProgressCapped {
		row += "  " + specialStyle.Render("(appraised)")
	}
	fmt.Println(row)
}

func printBranch(p *message.Printer, b action.Branch) {
	label := "success"
	if b.Failed {
		label = "failure"
	}
	fmt.Println(branchStyle.Render(p.Sprintf(
		"      %3d%% %s: +%d progress, +%d quality, %d durability, %d cp",
		b.Weight, label, b.Outcome.Delta.Progress, b.Outcome.Delta.Quality,
		b.Outcome.Delta.Durability, b.Outcome.Delta.CP)))
}

func conditionCell(cond condition.Condition) string {
	name := fmt.Sprintf("%-10v", cond)
	switch {
	case cond.IsExcellent():
		return excellentStyle.Render(name)
	case cond.IsGood():
		return goodStyle.Render(name)
	case cond.QualityMod() < 100:
		return poorStyle.Render(name)
	case cond.RuleSet().Expert() && cond != cond.RuleSet().Initial():
		return specialStyle.Render(name)
	}
	return name
}

func loadRotation(path, list string) (*rotation.Rotation, error) {
	switch {
	case path != "" && list != "":
		return nil, fmt.Errorf("use -rotation or -actions, not both")
	case path != "":
		return rotation.Load(path)
	case list != "":
		return rotation.FromList(list)
	}
	return nil, fmt.Errorf("a rotation is required: pass -rotation <file> or -actions <list>")
}
