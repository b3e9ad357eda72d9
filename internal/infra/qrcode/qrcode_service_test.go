package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"sweets/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.GeneratePNG("https://doces.example/secure-order/0b5a3c1e-7f4e-4f0a-9d59-2f8f3e0d6c11")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GeneratePNG_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "H")

		pngBytes, err := svc.GeneratePNG("https://doces.example/secure-order/abc")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.GeneratePNG("")

	assert.Error(t, err)
	assert.Nil(t, pngBytes)
}

func TestNewQRCodeServiceFromConfig_Defaults(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})

	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultQRCodeSize, impl.size)
	assert.Equal(t, qrcode.Medium, impl.errorCorrectionLevel)
}
