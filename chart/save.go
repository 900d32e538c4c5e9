package chart

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
	_ "gonum.org/v1/plot/vg/vgtex"
)

const (
	// DefaultSize is the default side length of the square figure.
	DefaultSize = 5 * vg.Inch

	// DefaultDPI is the output resolution of rasterized .webp and .tga figures.
	DefaultDPI = 96

	// DefaultSupersample is the render-resolution multiplier applied before
	// downscaling raster output.
	DefaultSupersample = 3
)

// SaveOptions controls figure size and raster resolution.
// Zero fields take their defaults.
type SaveOptions struct {
	Size        vg.Length
	DPI         int
	Supersample int
}

func (o SaveOptions) withDefaults() (SaveOptions, error) {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Supersample == 0 {
		o.Supersample = DefaultSupersample
	}
	if o.Size < 0 || o.DPI < 0 || o.Supersample < 0 {
		return o, ErrBadSize
	}

	return o, nil
}

// plotFormats are the extensions plot.Save encodes through the vg backends
// registered by the imports above.
var plotFormats = map[string]bool{
	".eps": true, ".jpg": true, ".jpeg": true, ".pdf": true,
	".png": true, ".svg": true, ".tex": true, ".tif": true, ".tiff": true,
}

// Save writes p to path, choosing the encoder by extension.
func Save(p *plot.Plot, path string, o SaveOptions) error {
	o, err := o.withDefaults()
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case plotFormats[ext]:
		if err = p.Save(o.Size, o.Size, path); err != nil {
			return fmt.Errorf("chart: save %s: %w", path, err)
		}

		return nil
	case ext == ".webp" || ext == ".tga":
		return saveRaster(p, path, ext, o)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

func saveRaster(p *plot.Plot, path, ext string, o SaveOptions) error {
	img := Rasterize(p, o)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".tga":
		err = tga.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("chart: encode %s: %w", ext, err)
	}

	return f.Close()
}

// Rasterize renders p at Supersample×DPI and scales the result down to
// Size at DPI with Catmull-Rom filtering.
func Rasterize(p *plot.Plot, o SaveOptions) *image.RGBA {
	o, _ = o.withDefaults()

	c := vgimg.NewWith(
		vgimg.UseWH(o.Size, o.Size),
		vgimg.UseDPI(o.DPI*o.Supersample),
	)
	p.Draw(draw.New(c))
	src := c.Image()

	px := int(float64(o.Size/vg.Inch)*float64(o.DPI) + 0.5)
	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst
}
