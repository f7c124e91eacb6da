package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "versioned upload URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1234567890/chat-uploads/abc123.jpg",
			want: "chat-uploads/abc123",
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/raw/upload/chat-uploads/notes.pdf",
			want: "chat-uploads/notes",
		},
		{
			name:    "no upload segment",
			url:     "https://res.cloudinary.com/x",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractPublicID(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
