package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/charmbracelet/huh"
)

// textInput returns a single-line huh.Input bound to value.
func textInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value)
}

// textArea returns a multi-line huh.Text bound to value.
func textArea(title, placeholder string, value *string) *huh.Text {
	return huh.NewText().
		Title(title).
		Placeholder(placeholder).
		Lines(3).
		Value(value)
}

// percentInput returns a huh.Input that only accepts whole numbers 0-100.
func percentInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(strconv.Itoa(domain.DefaultPerformance)).
		Value(value).
		Validate(validatePercent)
}

// optionSelect returns a huh.Select over opts. The leading blank option lets
// the user leave the field unanswered.
func optionSelect(title, blank string, opts []domain.Option, value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(opts)+1)
	options = append(options, huh.NewOption(blank, ""))
	for _, o := range opts {
		options = append(options, huh.NewOption(o.Label, o.Value))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(value)
}

// tagSelect returns a huh.MultiSelect over a fixed tag vocabulary.
func tagSelect(title string, tags []string, value *[]string) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(huh.NewOptions(tags...)...).
		Height(8).
		Value(value)
}

func validatePercent(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 0 || n > 100 {
		return errors.New("must be between 0 and 100")
	}
	return nil
}

// parsePercent converts validated percent input, falling back to def when
// blank or invalid.
func parsePercent(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 100 {
		return def
	}
	return n
}
