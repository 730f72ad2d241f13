package notify

import (
	"context"
	"io"
)

// Bell rings the terminal bell by writing BEL to W.
type Bell struct {
	W io.Writer
}

func (b Bell) Notify(_ context.Context, _ Alert) error {
	_, err := io.WriteString(b.W, "\a")
	return err
}
