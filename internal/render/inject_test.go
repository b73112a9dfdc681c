package render

import (
	"strings"
	"testing"
)

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = "body { margin: 0; }"

	tests := []struct {
		name string
		html string
		want string // substring that must appear, with the style before it
	}{
		{
			name: "before closing head",
			html: "<html><head><title>t</title></head><body></body></html>",
			want: "</head>",
		},
		{
			name: "after body when no head",
			html: "<html><body class=\"x\"><p>hi</p></body></html>",
			want: "<p>hi</p>",
		},
		{
			name: "prepended to bare fragment",
			html: "<p>hi</p>",
			want: "<p>hi</p>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := InjectCSS(tt.html, css)

			styleIdx := strings.Index(got, css)
			if styleIdx < 0 {
				t.Fatal("CSS not injected")
			}
			anchorIdx := strings.Index(got, tt.want)
			if anchorIdx < 0 {
				t.Fatalf("anchor %q missing from output", tt.want)
			}
			if styleIdx > anchorIdx {
				t.Errorf("style injected after %q", tt.want)
			}
		})
	}
}

func TestInjectCSS_EmptyCSSUnchanged(t *testing.T) {
	t.Parallel()

	const html = "<html><head></head><body></body></html>"
	if got := InjectCSS(html, ""); got != html {
		t.Error("empty CSS should leave HTML unchanged")
	}
}

func TestInjectCSS_CaseInsensitiveTags(t *testing.T) {
	t.Parallel()

	got := InjectCSS("<HTML><HEAD></HEAD><BODY></BODY></HTML>", "p{}")
	if !strings.Contains(got, "p{}") {
		t.Error("CSS not injected into uppercase document")
	}
	if strings.Index(got, "p{}") > strings.Index(got, "</HEAD>") {
		t.Error("CSS should land inside the head")
	}
}
