package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jwebster45206/text-adventure/pkg/state"
	"github.com/jwebster45206/text-adventure/pkg/textfilter"
)

const plainPrompt = "> "

// runPlain plays the game over a line-oriented reader and writer. It returns
// when the player quits, the input ends, or ctx is cancelled.
func runPlain(ctx context.Context, g *state.Game, in io.Reader, out io.Writer, width int) error {
	show := func(text string) {
		fmt.Fprintln(out, textfilter.Wrap(text, width))
	}

	show(g.Look())
	fmt.Fprint(out, plainPrompt)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		res := g.Execute(ctx, scanner.Text())
		if res.Message != "" {
			show(res.Message)
		}
		if res.Quit {
			return nil
		}
		fmt.Fprint(out, plainPrompt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}
