package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDispatchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DispatchMode
		wantErr bool
	}{
		{"webhook", DispatchWebhook, false},
		{"whatsapp", DispatchWhatsApp, false},
		{"", "", true},
		{"WhatsApp", "", true},
		{"email", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDispatchMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}
