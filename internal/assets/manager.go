// Package assets loads the sprite images a session needs before it starts.
package assets

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

//go:embed images/*.png
var projectAssets embed.FS

// ErrLoad is wrapped by every sprite load failure.
var ErrLoad = errors.New("assets: image load failed")

// Loader fetches an image and reports the outcome through exactly one of the
// two callbacks. Callbacks may run on any goroutine.
type Loader interface {
	LoadImage(src string, onLoad func(image.Image), onError func(error))
}

// FSLoader decodes PNG sprites from a file system in the background.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader rooted at fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewLoader returns a loader for the given asset root, or for the embedded
// sprites when root is empty.
func NewLoader(root string) (*FSLoader, error) {
	if root == "" {
		return NewFSLoader(Embedded()), nil
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("assets: root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: root %s is not a directory", root)
	}
	return NewFSLoader(os.DirFS(root)), nil
}

// Embedded returns the sprites compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(projectAssets, "images")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// LoadImage reads and decodes src on a separate goroutine.
func (l *FSLoader) LoadImage(src string, onLoad func(image.Image), onError func(error)) {
	go func() {
		data, err := fs.ReadFile(l.fsys, src)
		if err != nil {
			onError(fmt.Errorf("read %s: %w", src, err))
			return
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			onError(fmt.Errorf("decode %s: %w", src, err))
			return
		}
		onLoad(img)
	}()
}

// Load requests one image and waits for the first reported outcome.
func Load(ctx context.Context, l Loader, src string, logger *log.Logger) (image.Image, error) {
	c := NewCompletion[image.Image](src, logger)
	l.LoadImage(src,
		func(img image.Image) { c.Resolve(img) },
		func(err error) { c.Reject(fmt.Errorf("%w: %w", ErrLoad, err)) },
	)
	return c.Wait(ctx)
}

// Sprites are the images a session holds for its lifetime.
type Sprites struct {
	Demon image.Image
	Bean  image.Image
}

// LoadSprites loads the demon sprite, then the bean sprite. The first failure
// aborts; there is no retry and no fallback image.
func LoadSprites(ctx context.Context, l Loader, demonSrc, beanSrc string, logger *log.Logger) (Sprites, error) {
	demon, err := Load(ctx, l, demonSrc, logger)
	if err != nil {
		return Sprites{}, err
	}
	bean, err := Load(ctx, l, beanSrc, logger)
	if err != nil {
		return Sprites{}, err
	}
	return Sprites{Demon: demon, Bean: bean}, nil
}
