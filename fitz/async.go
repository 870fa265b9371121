package fitz

import "context"

type asyncResult[T any] struct {
	value T
	err   error
}

func runAsync[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}

	resultCh := make(chan asyncResult[T], 1)
	go func() {
		value, err := fn()
		resultCh <- asyncResult[T]{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case out := <-resultCh:
		return out.value, out.err
	}
}

// PageTextContext extracts page text with context support.
//
// Cancellation is best-effort: the engine call cannot be interrupted, but
// the function returns early with ctx.Err() once the context is done. The
// abandoned call keeps using the Context until it completes, so the Context
// and Document must not be closed before then.
func (d *Document) PageTextContext(ctx context.Context, pageNumber int) (string, error) {
	return runAsync(ctx, func() (string, error) {
		return d.PageText(pageNumber)
	})
}

// PageCountContext counts pages with context support. Same cancellation
// caveats as PageTextContext.
func (d *Document) PageCountContext(ctx context.Context) (int, error) {
	return runAsync(ctx, func() (int, error) {
		return d.PageCount()
	})
}

// XFAContext extracts XFA data with context support. Same cancellation
// caveats as PageTextContext.
func (d *Document) XFAContext(ctx context.Context) ([]byte, error) {
	return runAsync(ctx, func() ([]byte, error) {
		return d.XFA()
	})
}

// RenderPageContext renders a page with context support. If the context is
// done before the render completes, the eventual pixmap is closed by the
// abandoned goroutine rather than leaked.
func (d *Document) RenderPageContext(ctx context.Context, pageNumber, dpi int) (*Pixmap, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resultCh := make(chan asyncResult[*Pixmap], 1)
	go func() {
		pix, err := d.RenderPage(pageNumber, dpi)
		resultCh <- asyncResult[*Pixmap]{value: pix, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			out := <-resultCh
			out.value.Close()
		}()
		return nil, ctx.Err()
	case out := <-resultCh:
		return out.value, out.err
	}
}
