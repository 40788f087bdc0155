package intake

import (
	"context"
	"fmt"
)

// BlockedError reports the step that refused to advance while driving a
// wizard from a prefilled record.
type BlockedError struct {
	Index  int
	Step   string
	Fields FieldErrors
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("step %d (%s) is incomplete: %d field(s) need attention", e.Index+1, e.Step, len(e.Fields))
}

// Drive calls Next until the wizard completes or a step blocks. It is the
// non-interactive path used when answers come from a file.
func Drive(ctx context.Context, w *Wizard) error {
	for !w.Completed() {
		out, err := w.Next(ctx)
		if err != nil {
			return err
		}
		if out == OutcomeBlocked {
			return &BlockedError{Index: w.Index(), Step: w.Current().Label(), Fields: w.Errors()}
		}
	}
	return nil
}
