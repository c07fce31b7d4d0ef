package pasta

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// pick asks the user to choose one of the Pascal source files under root.
//
// If there's only one, it's chosen without asking.
func (p Pasta) pick(ctx context.Context, root string) (string, error) {
	files, err := sources(root)
	if err != nil {
		return "", err
	}

	switch len(files) {
	case 0:
		return "", fmt.Errorf("no Pascal source files found under %s", root)
	case 1:
		return files[0], nil
	}

	var file string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a file to tokenize").
				Options(huh.NewOptions(files...)...).
				Value(&file),
		),
	).WithInput(p.stdin).WithOutput(p.stderr)

	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("could not pick a file: %w", err)
	}

	return file, nil
}
