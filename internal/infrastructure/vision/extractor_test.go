package vision

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"pcb-advisor/internal/domain/entity"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func checkerboardImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func TestStdExtractor_UniformGray(t *testing.T) {
	e := NewStdExtractor(DefaultThresholds())
	data := encodePNG(t, uniformImage(224, 224, color.RGBA{128, 128, 128, 255}))

	f, err := e.Extract(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, entity.DensityLow, f.ComponentDensity)
	require.Equal(t, entity.TypeSingleSided, f.PCBType)
	require.Equal(t, 1, f.EstimatedLayerCount)
	require.Equal(t, []string{entity.IssueNoneDetected}, f.Issues)
	require.True(t, f.Grayscale)
	require.Zero(t, f.EdgeIntensity)
}

func TestStdExtractor_ResizesAnySourceSize(t *testing.T) {
	e := NewStdExtractor(DefaultThresholds())

	small := encodePNG(t, uniformImage(48, 32, color.RGBA{128, 128, 128, 255}))
	large := encodePNG(t, uniformImage(640, 480, color.RGBA{128, 128, 128, 255}))

	fs, err := e.Extract(context.Background(), small)
	require.NoError(t, err)
	fl, err := e.Extract(context.Background(), large)
	require.NoError(t, err)

	require.Equal(t, fs, fl)
}

func TestStdExtractor_GrayscaleSourceNeverFails(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 224, 224))
	for y := 0; y < 224; y++ {
		for x := 0; x < 224; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x*7 + y*13) % 256)})
		}
	}

	e := NewStdExtractor(DefaultThresholds())
	f, err := e.Extract(context.Background(), encodePNG(t, img))
	require.NoError(t, err)

	require.True(t, f.Grayscale)
	// Без цвета тип определяется только плотностной ветвью
	require.Contains(t, []entity.PCBType{
		entity.TypeSingleSided, entity.TypeDoubleSided, entity.TypeMultilayer,
	}, f.PCBType)
}

func TestStdExtractor_CorruptBytes(t *testing.T) {
	e := NewStdExtractor(DefaultThresholds())

	_, err := e.Extract(context.Background(), []byte("definitely not an image"))
	require.Error(t, err)
}

func TestStdExtractor_ColorOverrides(t *testing.T) {
	tests := []struct {
		name     string
		fill     color.RGBA
		wantType entity.PCBType
		wantApp  entity.Application
	}{
		{"blue laminate", color.RGBA{30, 40, 200, 255}, entity.TypeHighFrequency, entity.AppTelecom},
		{"red laminate", color.RGBA{200, 60, 60, 255}, entity.TypeHighPower, entity.AppIndustrial},
		{"amber polyimide", color.RGBA{200, 150, 50, 255}, entity.TypeFlexible, entity.AppWearables},
	}

	e := NewStdExtractor(DefaultThresholds())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := e.Extract(context.Background(), encodePNG(t, uniformImage(224, 224, tt.fill)))
			require.NoError(t, err)
			require.Equal(t, tt.wantType, f.PCBType)
			require.Equal(t, tt.wantApp, f.IntendedApplication)
		})
	}
}

func TestStdExtractor_DensityGrowsWithTexture(t *testing.T) {
	e := NewStdExtractor(DefaultThresholds())

	flat, err := e.Extract(context.Background(), encodePNG(t, uniformImage(224, 224, color.RGBA{128, 128, 128, 255})))
	require.NoError(t, err)

	busy, err := e.Extract(context.Background(), encodePNG(t, checkerboardImage(224, 224)))
	require.NoError(t, err)

	require.Greater(t, busy.EdgeIntensity, flat.EdgeIntensity)
	require.GreaterOrEqual(t, busy.ComponentDensity.Rank(), flat.ComponentDensity.Rank())
	require.Equal(t, entity.DensityVeryHigh, busy.ComponentDensity)
}

func TestStdExtractor_IssuesOnBusyImage(t *testing.T) {
	e := NewStdExtractor(DefaultThresholds())

	f, err := e.Extract(context.Background(), encodePNG(t, checkerboardImage(224, 224)))
	require.NoError(t, err)

	require.Contains(t, f.Issues, "potential color inconsistency")
	require.Contains(t, f.Issues, "high complexity - careful inspection recommended")
	require.Equal(t, DefaultThresholds().MaxLayers, f.EstimatedLayerCount)
}
