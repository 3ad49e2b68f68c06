// Package image derives a search target colour from an image file. The
// dominant colour of the image is computed with a small k-means clustering
// over a grid sample of pixels.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF format
	_ "image/jpeg" // register JPEG format
	_ "image/png"  // register PNG format
	"math"
	"os"

	_ "golang.org/x/image/webp" // register WebP format

	"github.com/mixtint/mixtint/internal/colour"
)

const (
	maxSamples    = 2000
	clusterCount  = 4
	maxIterations = 20
)

// TargetColour loads an image file and returns its dominant colour.
// Supported formats: JPEG, PNG, GIF, WebP.
func TargetColour(path string) (colour.RGB, error) {
	if path == "" {
		return colour.RGB{}, fmt.Errorf("image path cannot be empty")
	}
	file, err := os.Open(path) // #nosec G304 - user-specified image file, intended to be read
	if err != nil {
		return colour.RGB{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return Dominant(img), nil
}

// Dominant returns the image's dominant colour: the mean of the largest
// k-means cluster over a grid sample of pixels. The clustering is seeded
// deterministically (farthest-point initialization), so the same image
// always yields the same target.
func Dominant(img image.Image) colour.RGB {
	points := samplePixels(img)
	if len(points) == 0 {
		return colour.RGB{}
	}

	k := clusterCount
	if k > len(points) {
		k = len(points)
	}
	centroids := initCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if iter > 0 && changed == 0 {
			break
		}
		centroids = recalculate(points, assignments, centroids)
	}

	counts := make([]int, len(centroids))
	for _, a := range assignments {
		counts[a]++
	}
	dominant := 0
	for i, c := range counts {
		if c > counts[dominant] {
			dominant = i
		}
	}

	m := centroids[dominant]
	return colour.Mixed{R: m[0], G: m[1], B: m[2]}.Round()
}

type point [3]float64

func (p point) distance(o point) float64 {
	dr, dg, db := p[0]-o[0], p[1]-o[1], p[2]-o[2]
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels walks the image on a grid chosen so that at most maxSamples
// pixels are visited.
func samplePixels(img image.Image) []point {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return nil
	}

	step := 1
	if total > maxSamples {
		step = int(math.Sqrt(float64(total) / float64(maxSamples)))
		if step < 1 {
			step = 1
		}
	}

	points := make([]point, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			points = append(points, point{
				float64(r >> 8),
				float64(g >> 8),
				float64(b >> 8),
			})
		}
	}
	return points
}

// initCentroids seeds k centroids deterministically: the first sample, then
// repeatedly the sample farthest from all chosen centroids.
func initCentroids(points []point, k int) []point {
	centroids := make([]point, 0, k)
	centroids = append(centroids, points[0])

	for len(centroids) < k {
		farIdx, farDist := 0, -1.0
		for i, p := range points {
			min := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < min {
					min = d
				}
			}
			if min > farDist {
				farDist = min
				farIdx = i
			}
		}
		centroids = append(centroids, points[farIdx])
	}
	return centroids
}

func nearestCentroid(p point, centroids []point) int {
	nearest, min := 0, math.MaxFloat64
	for i, c := range centroids {
		if d := p.distance(c); d < min {
			min = d
			nearest = i
		}
	}
	return nearest
}

// recalculate moves each centroid to the mean of its assigned points. Empty
// clusters keep their previous position.
func recalculate(points []point, assignments []int, prev []point) []point {
	sums := make([]point, len(prev))
	counts := make([]int, len(prev))
	for i, p := range points {
		c := assignments[i]
		sums[c][0] += p[0]
		sums[c][1] += p[1]
		sums[c][2] += p[2]
		counts[c]++
	}

	centroids := make([]point, len(prev))
	for i := range centroids {
		if counts[i] == 0 {
			centroids[i] = prev[i]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point{sums[i][0] / n, sums[i][1] / n, sums[i][2] / n}
	}
	return centroids
}
