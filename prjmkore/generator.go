package prjmkore

import "context"

// Generator turns resolved configurations into actual project files. prjmkore
// never writes anything itself.
type Generator interface {
	Project(ctx context.Context, cfg *Configuration) error
}

type GeneratorFunc func(ctx context.Context, cfg *Configuration) error

func (f GeneratorFunc) Project(ctx context.Context, cfg *Configuration) error {
	return f(ctx, cfg)
}
