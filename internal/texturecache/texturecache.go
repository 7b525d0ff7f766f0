// Package texturecache keeps decoded frame textures and their thumbnails in
// memory. Entries invalidate on filesystem events and a periodic reconcile
// aligns the cache with the set of referenced frame paths. The cache never
// touches a document; it only sees point-in-time path lists.
package texturecache

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/image/draw"

	// Frame textures are PNG in practice, but any registered decoder works.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/dshills/spritestorm/internal/app"
)

// ErrClosed indicates the cache was already closed.
var ErrClosed = errors.New("texture cache closed")

// thumbnailHeight is the pixel height of generated thumbnails; width keeps
// the texture's aspect ratio.
const thumbnailHeight = 32

// PathLister returns the frame paths currently referenced by any open
// document. It must be safe to call from the cache's goroutine.
type PathLister func() []string

type entry struct {
	texture   image.Image
	thumbnail image.Image
	err       error
}

// Cache is a concurrency-safe texture cache.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	closed  bool

	lister  PathLister
	watcher *fsnotify.Watcher
	logger  *app.Logger
}

// New creates a cache reconciling against lister. A nil logger logs at info
// to stderr.
func New(lister PathLister, logger *app.Logger) (*Cache, error) {
	if logger == nil {
		logger = app.NewLogger(app.LogLevelInfo, nil)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("texture cache: %w", err)
	}
	return &Cache{
		entries: make(map[string]*entry),
		lister:  lister,
		watcher: watcher,
		logger:  logger.WithComponent("texturecache"),
	}, nil
}

// Run services filesystem events and reconciles every period, until ctx is
// cancelled.
func (c *Cache) Run(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	c.Reconcile()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			c.handleEvent(event)
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.logger.Warn("watch error: %v", err)
		case <-ticker.C:
			c.Reconcile()
		}
	}
}

// handleEvent reloads or drops the entry a filesystem event refers to.
func (c *Cache) handleEvent(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
		c.logger.Debug("texture changed: %s", event.Name)
		c.reload(event.Name)
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		c.logger.Debug("texture removed: %s", event.Name)
		c.mu.Lock()
		if _, ok := c.entries[event.Name]; ok {
			c.entries[event.Name] = &entry{err: os.ErrNotExist}
		}
		c.mu.Unlock()
	}
}

// Reconcile adds entries for referenced paths the cache is missing and
// evicts entries nothing references anymore.
func (c *Cache) Reconcile() {
	referenced := make(map[string]struct{})
	for _, path := range c.lister() {
		referenced[path] = struct{}{}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	var missing, extraneous []string
	for path := range referenced {
		if _, ok := c.entries[path]; !ok {
			missing = append(missing, path)
		}
	}
	for path := range c.entries {
		if _, ok := referenced[path]; !ok {
			extraneous = append(extraneous, path)
		}
	}
	for _, path := range extraneous {
		delete(c.entries, path)
	}
	c.mu.Unlock()

	for _, path := range extraneous {
		if err := c.watcher.Remove(path); err != nil {
			c.logger.Debug("unwatch %s: %v", path, err)
		}
	}
	for _, path := range missing {
		c.reload(path)
		if err := c.watcher.Add(path); err != nil {
			c.logger.Warn("watch %s: %v", path, err)
		}
	}
	if len(missing) > 0 || len(extraneous) > 0 {
		c.logger.Debug("reconciled: %d added, %d evicted", len(missing), len(extraneous))
	}
}

// reload decodes the texture at path and replaces its entry; decode failures
// are cached so a broken file is not re-read on every access.
func (c *Cache) reload(path string) {
	e := &entry{}
	e.texture, e.err = decode(path)
	if e.err != nil {
		c.logger.Warn("decode %s: %v", path, e.err)
	} else {
		e.thumbnail = scaleThumbnail(e.texture)
	}

	c.mu.Lock()
	if !c.closed {
		c.entries[path] = e
	}
	c.mu.Unlock()
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
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

// scaleThumbnail downscales to the thumbnail height, preserving aspect.
// Textures already small enough pass through unscaled.
func scaleThumbnail(texture image.Image) image.Image {
	bounds := texture.Bounds()
	if bounds.Dy() <= thumbnailHeight {
		return texture
	}
	width := bounds.Dx() * thumbnailHeight / bounds.Dy()
	if width < 1 {
		width = 1
	}
	thumb := image.NewRGBA(image.Rect(0, 0, width, thumbnailHeight))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), texture, bounds, draw.Over, nil)
	return thumb
}

// Texture returns the decoded texture at path, if cached and readable.
func (c *Cache) Texture(path string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[path]
	if !ok || e.err != nil {
		return nil, false
	}
	return e.texture, true
}

// Thumbnail returns the cached thumbnail at path.
func (c *Cache) Thumbnail(path string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[path]
	if !ok || e.err != nil {
		return nil, false
	}
	return e.thumbnail, true
}

// Len returns the number of cached entries, readable or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops watching and drops every entry.
func (c *Cache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.closed = true
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
	return c.watcher.Close()
}
