package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		want  string
		found bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch URL with extra params", "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short URL with params", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ", true},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"shorts URL", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no id segment", "https://www.youtube.com/watch?v=short", "", false},
		{"unrelated URL", "https://example.com/watch?v=dQw4w9WgXcQ", "", false},
		{"channel URL", "https://www.youtube.com/@somechannel", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractVideoID(tt.url)
			if got != tt.want || found != tt.found {
				t.Errorf("got (%q, %v), want (%q, %v)", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestValidVideoID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid id", "dQw4w9WgXcQ", true},
		{"valid id with dash and underscore", "a-b_c9D3efG", true},
		{"too short", "abc", false},
		{"too long", "dQw4w9WgXcQQ", false},
		{"illegal chars", "dQw4w9WgXc!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidVideoID(tt.id); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
