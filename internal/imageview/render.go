package imageview

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder; animated files show their first frame.
	_ "image/jpeg" // JPEG decoder.
	_ "image/png"  // PNG decoder.
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

const halfBlock = "▀"

// Renderer turns image references into half-block previews sized to a cell box.
type Renderer struct {
	resolver *Resolver
	width    int
	height   int
	previews *cache.Cache
}

// NewRenderer returns a renderer fitting images into width x height cells.
func NewRenderer(resolver *Resolver, width, height int) *Renderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Renderer{
		resolver: resolver,
		width:    width,
		height:   height,
		previews: cache.New(cache.NoExpiration, 0),
	}
}

// Size returns the preview cell box.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Render resolves, decodes and renders ref. Results are cached per file.
func (r *Renderer) Render(ref string) (string, error) {
	path, err := r.resolver.Resolve(ref)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s@%dx%d", path, r.width, r.height)
	if cached, ok := r.previews.Get(key); ok {
		return cached.(string), nil
	}
	img, err := decodeFile(path)
	if err != nil {
		return "", err
	}
	out := renderHalfBlocks(img, r.width, r.height)
	r.previews.SetDefault(key, out)
	return out, nil
}

// Cached reports how many previews are held.
func (r *Renderer) Cached() int {
	return r.previews.ItemCount()
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only image.
			_ = cerr
		}
	}()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// fitBox scales src dimensions into a box of cols x rows*2 pixels, keeping
// aspect ratio. Each cell holds two vertical pixels.
func fitBox(srcW, srcH, cols, rows int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	boxW := float64(cols)
	boxH := float64(rows * 2)
	scale := boxW / float64(srcW)
	if s := boxH / float64(srcH); s < scale {
		scale = s
	}
	w := int(float64(srcW)*scale + 0.5)
	h := int(float64(srcH)*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func renderHalfBlocks(img image.Image, cols, rows int) string {
	b := img.Bounds()
	w, h := fitBox(b.Dx(), b.Dy(), cols, rows)
	if w == 0 || h == 0 {
		return ""
	}
	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var line strings.Builder
		for x := 0; x < w; x++ {
			style := lipgloss.NewStyle().Foreground(averageColor(img, x, y, w, h))
			if y+1 < h {
				style = style.Background(averageColor(img, x, y+1, w, h))
			}
			line.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// averageColor returns the mean color of the source area mapped to target
// pixel (x, y) of a w x h image.
func averageColor(img image.Image, x, y, w, h int) lipgloss.Color {
	b := img.Bounds()
	x0 := b.Min.X + x*b.Dx()/w
	x1 := b.Min.X + (x+1)*b.Dx()/w
	y0 := b.Min.Y + y*b.Dy()/h
	y1 := b.Min.Y + (y+1)*b.Dy()/h
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	var rs, gs, bs, n uint64
	for sy := y0; sy < y1; sy++ {
		for sx := x0; sx < x1; sx++ {
			r, g, bl, _ := img.At(sx, sy).RGBA()
			rs += uint64(r >> 8)
			gs += uint64(g >> 8)
			bs += uint64(bl >> 8)
			n++
		}
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rs/n, gs/n, bs/n))
}

// Load renders ref for a page about to be entered and applies policy. It
// returns the preview, whether the caller may enter the page and the load
// error to show, if any. A nil renderer means previews are disabled.
func (r *Renderer) Load(ref string, policy Policy) (preview string, proceed bool, loadErr error) {
	if r == nil || strings.TrimSpace(ref) == "" {
		return "", true, nil
	}
	preview, err := r.Render(ref)
	if err != nil {
		return "", policy != PolicyAbort, err
	}
	return preview, true, nil
}
