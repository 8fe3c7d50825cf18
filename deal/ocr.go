package deal

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/freecell-solver/freecell-solver/cards"
)

// OCR recognizes a dealt FreeCell board from a saved screenshot by
// template-matching each of the 52 known card faces against it. ScenePath
// is the screenshot; TemplateDir holds one PNG or JPEG per card, named
// "<rank><suit>.png" (e.g. "13H.png"), matching the card text syntax used
// throughout the repository.
type OCR struct {
	ScenePath   string
	TemplateDir string
}

type match struct {
	card       cards.Card
	x, y       int
	confidence float64
}

// Deal loads the screenshot and every template, finds the best-matching
// position for each template within the screenshot, and returns the 52
// recognized cards ordered top-to-bottom then left-to-right, the order a
// board dealt left-to-right across rows reads in.
func (o OCR) Deal() ([52]cards.Card, error) {
	var deck [52]cards.Card

	scene, err := decodeImage(o.ScenePath)
	if err != nil {
		return deck, errors.Wrapf(err, "deal: loading screenshot %s", o.ScenePath)
	}

	templates, err := o.loadTemplates()
	if err != nil {
		return deck, errors.Wrap(err, "deal: loading templates")
	}
	if len(templates) != 52 {
		return deck, errors.Errorf("deal: expected 52 templates, found %d in %s", len(templates), o.TemplateDir)
	}

	matches := make([]match, 0, 52)
	for card, tmpl := range templates {
		x, y, confidence, ok := bestMatch(scene, tmpl)
		if !ok {
			return deck, errors.Errorf("deal: no confident match found for %s", card)
		}
		matches = append(matches, match{card: card, x: x, y: y, confidence: confidence})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].y != matches[j].y {
			return matches[i].y < matches[j].y
		}
		return matches[i].x < matches[j].x
	})

	for i, m := range matches {
		deck[i] = m.card
	}
	return deck, nil
}

func (o OCR) loadTemplates() (map[cards.Card]image.Image, error) {
	entries, err := os.ReadDir(o.TemplateDir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading template directory %s", o.TemplateDir)
	}

	templates := make(map[cards.Card]image.Image, 52)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			continue
		}

		symbol := strings.TrimSuffix(name, ext)
		card, err := cards.ParseCard(symbol)
		if err != nil {
			return nil, errors.Wrapf(err, "template filename %q is not a valid card", name)
		}

		img, err := decodeImage(filepath.Join(o.TemplateDir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "decoding template %s", name)
		}
		templates[card] = img
	}
	return templates, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// bestMatch scans tmpl over scene at every offset and scores each position
// with normalized cross-correlation over grayscale luminance. It returns
// the top-left corner of the highest-scoring position. Templates larger
// than the scene are downscaled to fit first, since a screenshot taken at
// a different display scale than the templates would otherwise never
// match.
func bestMatch(scene, tmpl image.Image) (x, y int, confidence float64, ok bool) {
	sb := scene.Bounds()
	tb := tmpl.Bounds()

	if tb.Dx() > sb.Dx() || tb.Dy() > sb.Dy() {
		scale := float64(sb.Dx()) / float64(tb.Dx())
		if altScale := float64(sb.Dy()) / float64(tb.Dy()); altScale < scale {
			scale = altScale
		}
		newW := int(float64(tb.Dx()) * scale)
		newH := int(float64(tb.Dy()) * scale)
		resized := image.NewRGBA(image.Rect(0, 0, newW, newH))
		draw.NearestNeighbor.Scale(resized, resized.Bounds(), tmpl, tb, draw.Over, nil)
		tmpl = resized
		tb = tmpl.Bounds()
	}

	best := -1.0
	bestX, bestY := 0, 0
	for oy := sb.Min.Y; oy+tb.Dy() <= sb.Max.Y; oy++ {
		for ox := sb.Min.X; ox+tb.Dx() <= sb.Max.X; ox++ {
			score := correlate(scene, tmpl, ox, oy)
			if score > best {
				best = score
				bestX, bestY = ox, oy
			}
		}
	}

	const confidenceThreshold = 0.6
	if best < confidenceThreshold {
		return 0, 0, best, false
	}
	return bestX, bestY, best, true
}

// correlate computes a normalized cross-correlation between tmpl and the
// region of scene at (offsetX, offsetY), sampling grayscale luminance.
func correlate(scene, tmpl image.Image, offsetX, offsetY int) float64 {
	tb := tmpl.Bounds()

	var sum, sumSq, sceneSum, sceneSumSq, dot float64
	n := float64(tb.Dx() * tb.Dy())

	for ty := tb.Min.Y; ty < tb.Max.Y; ty++ {
		for tx := tb.Min.X; tx < tb.Max.X; tx++ {
			t := luminance(tmpl.At(tx, ty))
			s := luminance(scene.At(offsetX+tx-tb.Min.X, offsetY+ty-tb.Min.Y))

			sum += t
			sumSq += t * t
			sceneSum += s
			sceneSumSq += s * s
			dot += t * s
		}
	}

	tMean := sum / n
	sMean := sceneSum / n
	numerator := dot - n*tMean*sMean
	denominator := (sumSq - n*tMean*tMean) * (sceneSumSq - n*sMean*sMean)
	if denominator <= 0 {
		return 0
	}
	return numerator / math.Sqrt(denominator)
}

func luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}
