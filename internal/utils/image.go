package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

const (
	MaxImageWidth  = 1920
	MaxImageHeight = 1920
	JPEGQuality    = 85
)

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func GetImageDimensions(data []byte) (*ImageDimensions, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &ImageDimensions{Width: config.Width, Height: config.Height}, nil
}

// FitImage shrinks a jpeg or png so it fits within maxWidth x maxHeight,
// keeping its aspect ratio. Images that already fit and other formats are
// returned as they are. Data that does not decode is an error.
func FitImage(data []byte, filename string, maxWidth, maxHeight uint) ([]byte, error) {
	ext := imageExt(filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return data, nil
	}

	dims, err := GetImageDimensions(data)
	if err != nil {
		return nil, err
	}
	width, height := uint(dims.Width), uint(dims.Height)
	if width <= maxWidth && height <= maxHeight {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	var newWidth, newHeight uint
	if widthRatio < heightRatio {
		newWidth = maxWidth
		newHeight = uint(float64(height) * widthRatio)
	} else {
		newWidth = uint(float64(width) * heightRatio)
		newHeight = maxHeight
	}

	resized := resize.Resize(newWidth, newHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if ext == ".png" {
		err = png.Encode(&buf, resized)
	} else {
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
