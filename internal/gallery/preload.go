package gallery

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"runtime"
	"sync"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Decoded holds the images that decoded and the reason each failure did not.
type Decoded struct {
	Images map[string]image.Image
	Failed map[string]error
}

// Preload decodes paths from fsys concurrently. Individual failures are
// recorded, not returned; the error is non-nil only if ctx ends first.
func Preload(ctx context.Context, fsys fs.FS, paths []string) (*Decoded, error) {
	out := &Decoded{
		Images: make(map[string]image.Image, len(paths)),
		Failed: make(map[string]error),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decode(fsys, p)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				out.Failed[p] = err
				return nil
			}
			out.Images[p] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}

func decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
