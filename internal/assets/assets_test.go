package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"
)

// racingLoader fires both callbacks, success first or failure first.
type racingLoader struct {
	failFirst bool
}

func (r racingLoader) LoadImage(src string, onLoad func(image.Image), onError func(error)) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if r.failFirst {
		onError(errors.New("boom"))
		onLoad(img)
		return
	}
	onLoad(img)
	onError(errors.New("late failure"))
}

// silentLoader never reports back.
type silentLoader struct{}

func (silentLoader) LoadImage(string, func(image.Image), func(error)) {}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf), &buf
}

func TestCompletionFirstWriterWins(t *testing.T) {
	logger, buf := newTestLogger()
	c := NewCompletion[int]("answer", logger)

	if !c.Resolve(42) {
		t.Fatal("first Resolve should deliver")
	}
	if c.Reject(errors.New("too late")) {
		t.Error("second delivery should be refused")
	}
	if c.Resolve(7) {
		t.Error("third delivery should be refused")
	}

	v, err := c.Wait(context.Background())
	if err != nil || v != 42 {
		t.Errorf("Wait() = %d, %v; expected 42, nil", v, err)
	}
	if !strings.Contains(buf.String(), "already delivered") {
		t.Errorf("redundant delivery was not logged: %q", buf.String())
	}
}

func TestCompletionWaitHonoursContext(t *testing.T) {
	c := NewCompletion[int]("never", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := c.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, expected deadline exceeded", err)
	}
}

func TestLoadRacingCallbacks(t *testing.T) {
	logger, _ := newTestLogger()

	img, err := Load(context.Background(), racingLoader{}, "demon.png", logger)
	if err != nil || img == nil {
		t.Errorf("success-first load = %v, %v; expected the image", img, err)
	}

	_, err = Load(context.Background(), racingLoader{failFirst: true}, "demon.png", logger)
	if !errors.Is(err, ErrLoad) {
		t.Errorf("failure-first load error = %v, expected ErrLoad", err)
	}
}

func TestLoadEmbeddedSprites(t *testing.T) {
	logger, _ := newTestLogger()
	loader, err := NewLoader("")
	if err != nil {
		t.Fatalf("NewLoader() failed: %v", err)
	}

	sprites, err := LoadSprites(context.Background(), loader, "demon.png", "bean.png", logger)
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}
	if sprites.Demon.Bounds().Dx() != 16 || sprites.Bean.Bounds().Dx() != 16 {
		t.Errorf("unexpected sprite sizes: %v, %v", sprites.Demon.Bounds(), sprites.Bean.Bounds())
	}
}

func TestLoadSpritesFailsFast(t *testing.T) {
	logger, _ := newTestLogger()
	fsys := fstest.MapFS{
		"bean.png":  &fstest.MapFile{Data: []byte("not a png")},
		"demon.png": &fstest.MapFile{Data: readEmbedded(t, "demon.png")},
	}

	_, err := LoadSprites(context.Background(), NewFSLoader(fsys), "demon.png", "bean.png", logger)
	if !errors.Is(err, ErrLoad) {
		t.Errorf("error = %v, expected ErrLoad for the undecodable bean", err)
	}

	_, err = LoadSprites(context.Background(), NewFSLoader(fsys), "missing.png", "bean.png", logger)
	if !errors.Is(err, ErrLoad) || !strings.Contains(err.Error(), "missing.png") {
		t.Errorf("error = %v, expected ErrLoad naming the missing file", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, silentLoader{}, "demon.png", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, expected context.Canceled", err)
	}
}

func TestNewLoaderRejectsMissingRoot(t *testing.T) {
	if _, err := NewLoader("/definitely/not/here"); err == nil {
		t.Error("NewLoader() should fail for a missing root")
	}
}

func readEmbedded(t *testing.T, name string) []byte {
	t.Helper()
	data, err := projectAssets.ReadFile("images/" + name)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
