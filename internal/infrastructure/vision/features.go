package vision

import (
	"image"
	"math"
)

// analysisSize сторона растра, к которому приводится любой снимок.
// Фиксированный размер делает пороги независимыми от исходного разрешения.
const analysisSize = 224

// windowRadius радиус окна локальной дисперсии яркости
const windowRadius = 5

// rasterStats сводная статистика по приведённому растру
type rasterStats struct {
	mean      [3]float64 // средний цвет по каналам R, G, B
	std       [3]float64 // разброс цвета по каналам
	edge      float64    // средняя локальная вариация яркости
	grayscale bool       // во всех пикселях каналы совпадают
}

// computeStats приводит изображение к analysisSize и считает статистику
func computeStats(img image.Image) rasterStats {
	r, g, b, grayscale := resample(img)

	var s rasterStats
	s.grayscale = grayscale
	s.mean[0], s.std[0] = meanStd(r)
	s.mean[1], s.std[1] = meanStd(g)
	s.mean[2], s.std[2] = meanStd(b)

	// Яркость — среднее трёх каналов, как в исходной эвристике
	gray := make([]float64, analysisSize*analysisSize)
	for i := range gray {
		gray[i] = (r[i] + g[i] + b[i]) / 3
	}
	s.edge = edgeIntensity(gray)

	return s
}

// resample растягивает или сжимает снимок до analysisSize по ближайшему
// соседу и раскладывает его на каналы в диапазоне 0..255.
func resample(img image.Image) (r, g, b []float64, grayscale bool) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	n := analysisSize * analysisSize
	r = make([]float64, n)
	g = make([]float64, n)
	b = make([]float64, n)
	grayscale = true

	for y := 0; y < analysisSize; y++ {
		srcY := bounds.Min.Y + y*srcH/analysisSize
		for x := 0; x < analysisSize; x++ {
			srcX := bounds.Min.X + x*srcW/analysisSize
			pr, pg, pb, _ := img.At(srcX, srcY).RGBA()

			i := y*analysisSize + x
			r[i] = float64(pr >> 8)
			g[i] = float64(pg >> 8)
			b[i] = float64(pb >> 8)
			if pr != pg || pg != pb {
				grayscale = false
			}
		}
	}

	return r, g, b, grayscale
}

// meanStd среднее и среднеквадратичное отклонение канала
func meanStd(values []float64) (mean, std float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	for _, v := range values {
		d := v - mean
		std += d * d
	}
	std = math.Sqrt(std / float64(len(values)))

	return mean, std
}

// edgeIntensity считает карту локальных отклонений яркости скользящим
// окном и возвращает её среднее по всему растру. Кайма шириной в радиус
// остаётся нулевой и входит в среднее — так же, как в исходной эвристике.
func edgeIntensity(gray []float64) float64 {
	var total float64

	for i := windowRadius; i < analysisSize-windowRadius; i++ {
		for j := windowRadius; j < analysisSize-windowRadius; j++ {
			total += windowStd(gray, i, j)
		}
	}

	return total / float64(analysisSize*analysisSize)
}

// windowStd отклонение яркости в окне 2r×2r вокруг точки (i, j)
func windowStd(gray []float64, i, j int) float64 {
	var sum, sumSq float64
	count := 0

	for y := i - windowRadius; y < i+windowRadius; y++ {
		row := y * analysisSize
		for x := j - windowRadius; x < j+windowRadius; x++ {
			v := gray[row+x]
			sum += v
			sumSq += v * v
			count++
		}
	}

	mean := sum / float64(count)
	variance := sumSq/float64(count) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return math.Sqrt(variance)
}
