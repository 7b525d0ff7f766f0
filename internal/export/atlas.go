package export

import (
	"image"
	"sort"

	"golang.org/x/image/draw"
)

// ImageSource resolves a frame path to its decoded texture. The texture
// cache satisfies this.
type ImageSource interface {
	Texture(path string) (image.Image, bool)
}

// Placement is where a frame landed in the atlas.
type Placement struct {
	X, Y, W, H int
}

// Atlas is a packed texture sheet.
type Atlas struct {
	Image      *image.RGBA
	Placements map[string]Placement
}

// packAtlas packs the given frame textures into one image using shelf
// packing: frames sorted by height open rows left to right, and the atlas
// width is chosen near the total area's square root to keep it roughly
// square.
func packAtlas(paths []string, source ImageSource) (*Atlas, error) {
	type item struct {
		path string
		img  image.Image
		w, h int
	}

	items := make([]item, 0, len(paths))
	totalArea := 0
	maxWidth := 0
	for _, path := range paths {
		img, ok := source.Texture(path)
		if !ok {
			return nil, &MissingTextureError{Path: path}
		}
		bounds := img.Bounds()
		items = append(items, item{path: path, img: img, w: bounds.Dx(), h: bounds.Dy()})
		totalArea += bounds.Dx() * bounds.Dy()
		if bounds.Dx() > maxWidth {
			maxWidth = bounds.Dx()
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].h != items[j].h {
			return items[i].h > items[j].h
		}
		return items[i].path < items[j].path
	})

	atlasWidth := maxWidth
	for atlasWidth*atlasWidth < totalArea {
		atlasWidth *= 2
	}

	placements := make(map[string]Placement, len(items))
	x, y, shelfHeight := 0, 0, 0
	for _, it := range items {
		if x+it.w > atlasWidth {
			x = 0
			y += shelfHeight
			shelfHeight = 0
		}
		placements[it.path] = Placement{X: x, Y: y, W: it.w, H: it.h}
		if it.h > shelfHeight {
			shelfHeight = it.h
		}
		x += it.w
	}
	atlasHeight := y + shelfHeight

	atlas := image.NewRGBA(image.Rect(0, 0, atlasWidth, atlasHeight))
	for _, it := range items {
		p := placements[it.path]
		target := image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H)
		draw.Copy(atlas, target.Min, it.img, it.img.Bounds(), draw.Src, nil)
	}

	return &Atlas{Image: atlas, Placements: placements}, nil
}
