package main

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/coregx/rex"
	"github.com/coregx/rex/recipe"
)

var errNoRecipe = errors.New("exactly one of --recipe or --builtin is required")

func loadRecipe(cmd *cli.Command) (*recipe.Recipe, error) {
	file, builtin := cmd.String("recipe"), cmd.String("builtin")
	switch {
	case file != "" && builtin == "":
		return recipe.Load(file)
	case builtin != "" && file == "":
		return recipe.Builtin(builtin)
	default:
		return nil, errNoRecipe
	}
}

func runPattern(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	r, err := loadRecipe(cmd)
	if err != nil {
		return err
	}
	f, err := r.Fragment()
	if err != nil {
		return fmt.Errorf("unable to build recipe %q: %w", r.Name, err)
	}
	e.Log.Debug("Recipe built", zap.String("recipe", r.Name), zap.Int("parts", r.Parts.Len()))

	_, err = fmt.Fprintln(cmd.Root().Writer, f.String())
	return err
}

func runMatch(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	if cmd.NArg() == 0 {
		return errors.New("nothing to match, provide at least one INPUT")
	}
	r, err := loadRecipe(cmd)
	if err != nil {
		return err
	}
	mode := r.Mode
	if s := cmd.String("mode"); s != "" {
		if mode, err = recipe.ParseMode(s); err != nil {
			return err
		}
	}

	f, err := r.Fragment()
	if err != nil {
		return fmt.Errorf("unable to build recipe %q: %w", r.Name, err)
	}
	compile := rex.Compile
	if e.Cache != nil {
		compile = e.Cache.Get
	}
	re, err := compile(f)
	if err != nil {
		return fmt.Errorf("unable to compile recipe %q: %w", r.Name, err)
	}
	e.Log.Debug("Recipe compiled", zap.String("recipe", r.Name), zap.String("mode", string(mode)), zap.Stringer("pattern", re))

	enc := yaml.NewEncoder(cmd.Root().Writer)
	enc.SetIndent(2)
	defer enc.Close()

	matched := 0
	for _, input := range cmd.Args().Slice() {
		m := mode.Match(re, input)
		if m != nil {
			matched++
		}
		if err := enc.Encode(result(input, m)); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
	}
	e.Log.Info("Matching done", zap.Int("inputs", cmd.NArg()), zap.Int("matched", matched))
	return nil
}

// result renders one input as a YAML document whose groups keep pattern
// order; a failed match is null.
func result(input string, m *rex.Match) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = append(doc.Content, scalar("input"), scalar(input), scalar("match"))
	if m == nil {
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
		return doc
	}
	groups := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range m.Names() {
		value, ok := m.Named(name)
		if !ok {
			groups.Content = append(groups.Content, scalar(name), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
			continue
		}
		groups.Content = append(groups.Content, scalar(name), scalar(value))
	}
	doc.Content = append(doc.Content, groups)
	return doc
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func runBuiltins(_ context.Context, cmd *cli.Command) error {
	for _, name := range recipe.BuiltinNames() {
		r, err := recipe.Builtin(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cmd.Root().Writer, "%s\t%s\t%s\n", r.Name, r.Mode, r.Description); err != nil {
			return err
		}
	}
	return nil
}
