package authoring

import (
	"context"
	"errors"
)

var ErrNotConfirmed = errors.New("authoring: delete not confirmed")

// Confirmer asks the user before a destructive call
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// Answer is a confirmation the user already gave, such as ?confirm=true
type Answer bool

func (a Answer) Confirm(context.Context, string) bool { return bool(a) }
