package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a string flag restricted to a fixed set of values. Input is
// matched case-insensitively and stored in its canonical spelling.
type choiceValue struct {
	target  *string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(target *string, def string, choices ...string) *choiceValue {
	*target = def
	return &choiceValue{target: target, choices: choices}
}

func (c *choiceValue) String() string {
	if c.target == nil {
		return ""
	}
	return *c.target
}

func (c *choiceValue) Set(s string) error {
	for _, choice := range c.choices {
		if strings.EqualFold(strings.TrimSpace(s), choice) {
			*c.target = choice
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
}

func (c *choiceValue) Type() string { return "string" }
