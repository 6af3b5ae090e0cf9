package main

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"photo.png", KindRaster},
		{"photo.PNG", KindRaster},
		{"pic.jpg", KindRaster},
		{"pic.JPEG", KindRaster},
		{"anim.gif", KindRaster},
		{"scan.bmp", KindRaster},
		{"scan.tiff", KindRaster},
		{"scan.tif", KindRaster},
		{"favicon.ico", KindRaster},
		{"logo.svg", KindVector},
		{"logo.SVG", KindVector},
		{"notes.txt", KindUnsupported},
		{"already.webp", KindUnsupported},
		{"noextension", KindUnsupported},
		{"dir/nested.Png", KindRaster},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
