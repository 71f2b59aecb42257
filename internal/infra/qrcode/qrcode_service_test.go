package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentQR_ProducesDecodablePNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data, err := svc.GeneratePaymentQR("https://pay.example/invoice/ORD-123")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestGeneratePaymentQR_EmptyURLIsError(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePaymentQR("")
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	data, err := svc.GeneratePaymentQR("https://pay.example/x")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
