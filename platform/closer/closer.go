package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

// Closer runs registered shutdown functions in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
	err    error
}

var globalCloser = New()

func New() *Closer { return &Closer{} }

func SetLogger(l Logger) { globalCloser.SetLogger(l) }

func AddNamed(name string, fn func(ctx context.Context) error) {
	globalCloser.AddNamed(name, fn)
}

func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

func (c *Closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
	c.mu.Unlock()
}

// CloseAll is safe to call more than once; only the first call closes anything.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", f.name, err))
				continue
			}

			if err := f.fn(ctx); err != nil {
				if log != nil {
					log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
				}
				errs = append(errs, fmt.Errorf("close %s: %w", f.name, err))
				continue
			}

			if log != nil {
				log.Info(ctx, "closed", zap.String("name", f.name))
			}
		}

		c.err = errors.Join(errs...)
	})

	return c.err
}
